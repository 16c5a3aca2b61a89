// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db holds the person registry schema and its read-only directory.

# Schema Creation

CreateSchema initializes the person table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Directory

Directory adapts the person table to election.PersonDirectory, the lookup
port the voting core reads electors from. The core never mutates the
registry; InsertPerson exists for seeding and tests only.

The SQL sticks to the subset that works unchanged on both supported
drivers (modernc.org/sqlite and lib/pq): TEXT/INTEGER columns, ISO date
strings, $n placeholders.
*/
package db
