package schema

import (
	"context"
	"database/sql"
	"errors"
)

func Drop(ctx context.Context, db *sql.DB) error {
	for _, stmt := range dropSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.New("drop schema: " + err.Error())
		}
	}

	return nil
}
