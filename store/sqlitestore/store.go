// Package sqlitestore is the relational store driver, backed by SQLite
// through database/sql.
package sqlitestore

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schema string

// Store implements store.Store over a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and initializes the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// encodeStrings packs a string slice into a JSON column value; empty slices
// collapse to the empty string.
func encodeStrings(values []string) string {
	if len(values) == 0 {
		return ""
	}
	b, _ := json.Marshal(values)
	return string(b)
}

func decodeStrings(raw string) []string {
	if raw == "" {
		return nil
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil
	}
	return values
}

// setClause joins column assignments for a partial UPDATE.
func setClause(sets []string) string {
	return strings.Join(sets, ", ")
}
