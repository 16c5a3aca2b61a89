// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP surface over the election core.

# Handlers

  - AuthHandler: POST /login — credential check against the person
    registry, issues the HMAC auth token.
  - SessionHandler: session lifecycle (status, initialize, ready, approve,
    force-close) plus role lookup. Initialize and the other admin
    operations require the caller to be the board's administrator.
  - VotingHandler: POST /papers/{index}/votes — builds the
    method-specific vote from the ballot body and casts it; nested
    preferenced ballots are cast on their sub-papers as independent votes.
  - ResultsHandler: paper listing and sealed results (409 while the
    session is running).

# Error mapping

Core errors are classified with errors.Is: ErrIllegalState maps to 409,
ErrInvalidArgument and ErrMissingValue to 400. Authentication failures are
401, non-admin callers on admin routes 403, unknown papers 404.

Handlers receive the *election.Board and config by injection, so tests run
them against an in-memory person directory without a database.
*/
package handlers
