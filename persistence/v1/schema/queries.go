package schema

import "fmt"

var schemas = map[string][]string{
	"mysql": {
		`CREATE TABLE IF NOT EXISTS notes (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			owner VARCHAR(128) NOT NULL,
			content TEXT NOT NULL,
			is_public BOOLEAN NOT NULL,
			updated_at DATETIME(6) NOT NULL,
			created_at DATETIME(6) NOT NULL,
			PRIMARY KEY (id)
		)`,
		`CREATE TABLE IF NOT EXISTS note_shares (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			note_id BIGINT UNSIGNED NOT NULL,
			identity VARCHAR(128) NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY note_shares_note_identity (note_id, identity)
		)`,
		`CREATE TABLE IF NOT EXISTS owner_notes (
			owner VARCHAR(128) NOT NULL,
			note_id BIGINT UNSIGNED NOT NULL,
			PRIMARY KEY (owner, note_id)
		)`,
	},
	"sqlite3": {
		`CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner TEXT NOT NULL,
			content TEXT NOT NULL,
			is_public BOOLEAN NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS note_shares (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			note_id INTEGER NOT NULL,
			identity TEXT NOT NULL,
			UNIQUE (note_id, identity)
		)`,
		`CREATE TABLE IF NOT EXISTS owner_notes (
			owner TEXT NOT NULL,
			note_id INTEGER NOT NULL,
			PRIMARY KEY (owner, note_id)
		)`,
	},
}

var dropSchema = []string{
	"DROP TABLE IF EXISTS owner_notes",
	"DROP TABLE IF EXISTS note_shares",
	"DROP TABLE IF EXISTS notes",
}

func schemaFor(driver string) ([]string, error) {
	s, ok := schemas[driver]
	if !ok {
		return nil, fmt.Errorf("no schema for driver %q", driver)
	}
	return s, nil
}
