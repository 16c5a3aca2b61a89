// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 4270)
  - DatabaseURL: Person registry connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - TokenSalt: Secret for auth token HMAC (required)
  - AdminSSN: SSN of the session administrator (optional)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	--token-salt  Auth token salt
	--admin-ssn   Administrator SSN

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	TOKEN_SALT    → --token-salt
	ADMIN_SSN     → --admin-ssn

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - TOKEN_SALT must be provided
  - DATABASE_TYPE, when given, must be sqlite or postgres

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("sqlite", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(board, cfg)
*/
package cliparse
