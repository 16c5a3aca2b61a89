// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"ballotbox/election"
)

// Directory is the SQL-backed person directory. It implements
// election.PersonDirectory over the person table and never writes to it.
type Directory struct {
	db *sql.DB
}

// NewDirectory builds a Directory over an open database handle.
func NewDirectory(db *sql.DB) *Directory {
	return &Directory{db: db}
}

const personColumns = "ssn, first_name, last_name, birth_date, birth_place, enabled, pw_hash"

// FindByID returns the person with the given SSN, or nil if there is no
// such person.
func (d *Directory) FindByID(ssn string) (*election.Person, error) {
	row := d.db.QueryRow(`
		SELECT `+personColumns+` FROM person WHERE ssn = $1
	`, ssn)
	p, err := scanPerson(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query person: %w", err)
	}
	return p, nil
}

// FindAll returns every registered person.
func (d *Directory) FindAll() ([]*election.Person, error) {
	rows, err := d.db.Query(`
		SELECT ` + personColumns + ` FROM person ORDER BY ssn
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	var people []*election.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read people: %w", err)
	}
	return people, nil
}
