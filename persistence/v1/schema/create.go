package schema

import (
	"context"
	"database/sql"
	"errors"
)

func Create(ctx context.Context, db *sql.DB, driver string) error {
	stmts, err := schemaFor(driver)
	if err != nil {
		return errors.New("create schema: " + err.Error())
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.New("create schema: " + err.Error())
		}
	}

	return nil
}
