// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"ballotbox/auth"
	"ballotbox/cliparse"
	"ballotbox/election"
	"ballotbox/middleware"
)

// currentPerson resolves the caller from the X-Auth-SSN and X-Auth-Token
// headers. On failure it writes the error response and returns false.
func currentPerson(board *election.Board, cfg cliparse.Config, w http.ResponseWriter, r *http.Request) (*election.Person, bool) {
	ssn := r.Header.Get("X-Auth-SSN")
	token := r.Header.Get("X-Auth-Token")
	if ssn == "" || token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Auth-SSN and X-Auth-Token headers required")
		return nil, false
	}
	if err := auth.ValidateToken(ssn, token, cfg.TokenSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "invalid auth token")
		return nil, false
	}

	p, err := board.Directory().FindByID(ssn)
	if err != nil {
		slog.Error("failed to look up person", "error", err, "ssn", ssn)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	if p == nil || !p.Enabled {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "unknown or disabled person")
		return nil, false
	}
	return p, true
}

// requireAdmin resolves the caller and checks they are the board's
// administrator.
func requireAdmin(board *election.Board, cfg cliparse.Config, w http.ResponseWriter, r *http.Request) (*election.Person, bool) {
	p, ok := currentPerson(board, cfg, w, r)
	if !ok {
		return nil, false
	}
	if !p.Same(board.Admin()) {
		middleware.ErrorResponse(w, http.StatusForbidden, "administrator only")
		return nil, false
	}
	return p, true
}

// writeCoreError maps an election core error to an HTTP response: wrong
// state is a conflict, bad input is a bad request.
func writeCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, election.ErrIllegalState):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, election.ErrInvalidArgument), errors.Is(err, election.ErrMissingValue):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("core operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "internal error")
	}
}
