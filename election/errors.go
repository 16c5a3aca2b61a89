// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "errors"

// Error kinds for the election core. Every error returned by this package
// wraps exactly one of these, so callers can classify failures with
// errors.Is and map them to their own surface (HTTP status codes, UI
// messages) without string matching.
var (
	// ErrInvalidArgument marks malformed or out-of-contract input: a
	// duplicate choice in an ordinal vote, a vote whose method does not
	// match its paper, a non-guarantor approving, and so on. Always
	// caller-correctable.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState marks an operation attempted in the wrong session
	// state: voting while closed, reading results while running,
	// re-initializing a running session.
	ErrIllegalState = errors.New("illegal state")

	// ErrMissingValue marks a required value that was absent. Treated as
	// a programming error at the boundary rather than user input.
	ErrMissingValue = errors.New("missing value")
)
