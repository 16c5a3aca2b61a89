// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"ballotbox/election"
)

// CreateSchema creates the person registry table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Column types are kept to the portable subset both sqlite and postgres
// accept; birth_date is stored as an ISO date string for the same reason.
const schema = `
CREATE TABLE IF NOT EXISTS person (
    ssn TEXT PRIMARY KEY,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    birth_date TEXT NOT NULL,
    birth_place TEXT,
    enabled INTEGER NOT NULL DEFAULT 1,
    pw_hash TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_person_last_name ON person(last_name);
`

const birthDateLayout = "2006-01-02"

// InsertPerson registers a person. Used for seeding and by tests.
func InsertPerson(db *sql.DB, p *election.Person) error {
	enabled := 0
	if p.Enabled {
		enabled = 1
	}
	_, err := db.Exec(`
		INSERT INTO person (ssn, first_name, last_name, birth_date, birth_place, enabled, pw_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.SSN, p.FirstName, p.LastName, p.BirthDate.Format(birthDateLayout), p.BirthPlace, enabled, p.PwHash)
	if err != nil {
		return fmt.Errorf("failed to insert person %s: %w", p.SSN, err)
	}
	return nil
}

func scanPerson(row interface{ Scan(...interface{}) error }) (*election.Person, error) {
	var p election.Person
	var birthDate string
	var enabled int
	var birthPlace sql.NullString
	err := row.Scan(&p.SSN, &p.FirstName, &p.LastName, &birthDate, &birthPlace, &enabled, &p.PwHash)
	if err != nil {
		return nil, err
	}
	p.BirthDate, err = time.Parse(birthDateLayout, birthDate)
	if err != nil {
		return nil, fmt.Errorf("bad birth_date for person %s: %w", p.SSN, err)
	}
	p.BirthPlace = birthPlace.String
	p.Enabled = enabled != 0
	return &p, nil
}
