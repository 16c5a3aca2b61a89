// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP glue shared by every handler: request
logging, JSON response/error helpers, body parsing and CORS.

	mux.HandleFunc("GET /session", middleware.WithLogging(h.Status))

ErrorResponse emits the standard error envelope:

	{"error": "Conflict", "message": "election is still running"}
*/
package middleware
