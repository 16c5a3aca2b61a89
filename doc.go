// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ballotbox API server.

Ballotbox is an electronic voting and tallying engine: one election
session at a time, a tree of voting papers (categorical, ordinal,
preferenced and referendum elections), guarantor-approved session start,
eligibility gating, and score/turnout computation once the session closes.

# Starting the Server

The server reads environment variables (optionally from a .env file) or
CLI flags:

	DATABASE_URL=registry.db TOKEN_SALT=... go run main.go

Or with flags:

	go run main.go -p 4270 -d registry.db -t sqlite --token-salt ...

# Configuration

Required settings:

  - DATABASE_URL (-d): person registry connection string
  - TOKEN_SALT (--token-salt): secret for auth token HMAC

Optional settings:

  - PORT (-p): server port (default: 4270)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_SSN (--admin-ssn): the administrator's SSN, looked up once at
    startup; a missing admin is a warning, not an error

# Architecture

The server uses a handler-based architecture with dependency injection:

  - election: the voting core (session state machine, papers, votes,
    results) — in-memory, no persistence by design
  - db: person registry schema and read-only directory
  - handlers: HTTP request handlers (login, session, voting, results)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response types
  - auth: credential hashing and token validation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
