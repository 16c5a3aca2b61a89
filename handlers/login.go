// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"ballotbox/auth"
	"ballotbox/cliparse"
	"ballotbox/election"
	"ballotbox/middleware"
	"ballotbox/models"
)

type AuthHandler struct {
	board *election.Board
	cfg   cliparse.Config
}

func NewAuthHandler(board *election.Board, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{board: board, cfg: cfg}
}

// Login handles POST /login. It verifies the person's credentials against
// the registry and issues the auth token for the X-Auth-* headers.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.SSN == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ssn and password are required")
		return
	}

	p, err := h.board.Directory().FindByID(req.SSN)
	if err != nil {
		slog.Error("failed to look up person", "error", err, "ssn", req.SSN)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	// Same answer for unknown person and wrong password.
	if p == nil || auth.CheckPassword(p.PwHash, req.Password) != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "bad credentials")
		return
	}
	if !p.Enabled {
		middleware.ErrorResponse(w, http.StatusForbidden, "person is disabled")
		return
	}

	slog.Info("login", "ssn", p.SSN)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token: auth.GenerateToken(p.SSN, h.cfg.TokenSalt),
	})
}
