// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

# Routes

Authentication:

	POST /login

Session lifecycle:

	GET  /session
	POST /session
	POST /session/ready
	POST /session/approve
	POST /session/close
	GET  /session/roles

Voting and results:

	GET  /papers
	POST /papers/{index}/votes
	GET  /papers/{index}/results

Every route is wrapped with request logging.
*/
package router
