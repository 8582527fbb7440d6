package note

import "errors"

// The messages are part of the public contract, clients match on them
var (
	ErrNotFound     = errors.New("The note does not exist")
	ErrForbidden    = errors.New("Only the owner can do this")
	ErrUnauthorized = errors.New("You do not have permission to read this note")
)
