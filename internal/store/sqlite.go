// Package store provides the persistence backends behind todo.Repository:
// a flat text file and a SQLite database.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MihkelHunter/tasklist/internal/todo"
	_ "modernc.org/sqlite" // pure-Go SQLite driver, no CGO required
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	position INTEGER PRIMARY KEY,
	line     TEXT    NOT NULL
);`

// SQLiteStore implements todo.Repository using SQLite. The path handed to
// SaveLines/LoadLines is the database file; the last one opened is kept open
// until a different path is requested or Close is called.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLite returns a SQLite backend with no database open yet.
func NewSQLite() *SQLiteStore {
	return &SQLiteStore{}
}

// open (or creates) the database at path and makes sure the schema exists.
func (s *SQLiteStore) open(path string) (*sql.DB, error) {
	if s.db != nil && s.path == path {
		return s.db, nil
	}
	if err := s.Close(); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	s.db, s.path = db, path
	return db, nil
}

// SaveLines replaces every stored row with lines inside one transaction.
func (s *SQLiteStore) SaveLines(path string, lines []string) error {
	db, err := s.open(path)
	if err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO tasks (position, line) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()
	for i, line := range lines {
		if _, err := stmt.Exec(i, line); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// LoadLines returns the stored lines in position order. A database file that
// does not exist yields todo.ErrNotFound and is not created.
func (s *SQLiteStore) LoadLines(path string) ([]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, todo.ErrNotFound
	}
	db, err := s.open(path)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(`SELECT line FROM tasks ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db, s.path = nil, ""
	return err
}
