// Package database opens the sql connection pool for the configured driver
package database

import (
	"context"
	"database/sql"
	"fmt"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"time"
)

// Memory is the driver name that skips sql entirely and keeps notes in process
const Memory = "memory"

// Open connects and pings the database
func Open(driver, url string, pingTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}
	// sqlite serializes writers anyway, and an in memory database only lives on its own connection
	if driver == "sqlite3" {
		db.SetMaxOpenConns(1)
	}

	dbCtx, dbCancel := context.WithTimeout(context.Background(), pingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return db, nil
}
