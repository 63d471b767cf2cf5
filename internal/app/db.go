package app

import (
	"database/sql"

	"github.com/rohanthewiz/serr"
	_ "modernc.org/sqlite"
)

// OpenDB opens the SQLite database at path and brings its schema up to date.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, serr.Wrap(err, "path", path)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, serr.Wrap(err, "path", path)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, serr.Wrap(err, "path", path)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			account TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
