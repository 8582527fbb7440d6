package database

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestOpenSqlite(t *testing.T) {
	db, err := Open("sqlite3", ":memory:", time.Second)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open("nope", "", time.Second)
	assert.Error(t, err)
}
