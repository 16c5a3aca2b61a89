// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"ballotbox/cliparse"
	"ballotbox/election"
	"ballotbox/middleware"
	"ballotbox/models"
)

type SessionHandler struct {
	board *election.Board
	cfg   cliparse.Config
}

func NewSessionHandler(board *election.Board, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{board: board, cfg: cfg}
}

// Status handles GET /session. Public: reports the session state machine
// without exposing any vote data.
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	s := h.board.Session()
	if s == nil {
		middleware.JSONResponse(w, http.StatusOK, models.SessionStatusResponse{
			State: models.StateUninitialized,
		})
		return
	}

	state := models.StateClosed
	switch {
	case s.IsRunning():
		state = models.StateRunning
	case !s.IsReady():
		state = models.StateNotReady
	case !s.CheckApproval():
		state = models.StatePendingApproval
	}

	approvals := 0
	for _, g := range s.Guarantors() {
		if approved, err := s.HasApproved(g); err == nil && approved {
			approvals++
		}
	}

	params := s.CurrentParameters()
	start, end := params.Start(), params.End()
	resp := models.SessionStatusResponse{
		State:      state,
		Start:      &start,
		End:        &end,
		Ready:      s.IsReady(),
		Approvals:  approvals,
		Guarantors: len(s.Guarantors()),
		Papers:     len(s.Papers()),
	}
	if state == models.StateRunning {
		resp.EndsIn = humanize.Time(end)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Initialize handles POST /session. Admin only: builds the paper tree from
// the request and initializes a new session with the given guarantors.
func (h *SessionHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(h.board, h.cfg, w, r); !ok {
		return
	}

	var req models.InitializeSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	params := election.NewSessionParameters()
	params.SetStart(req.Start)
	params.SetEnd(req.End)
	for _, spec := range req.Papers {
		paper, err := buildPaper(spec)
		if err != nil {
			writeCoreError(w, err)
			return
		}
		if err := params.AddPaper(paper); err != nil {
			writeCoreError(w, err)
			return
		}
	}

	guarantors := make([]*election.Person, 0, len(req.Guarantors))
	for _, ssn := range req.Guarantors {
		g, err := h.board.Directory().FindByID(ssn)
		if err != nil {
			slog.Error("failed to look up guarantor", "error", err, "ssn", ssn)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if g == nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown guarantor "+ssn)
			return
		}
		guarantors = append(guarantors, g)
	}

	if _, err := h.board.InitializeSession(params, guarantors); err != nil {
		writeCoreError(w, err)
		return
	}

	slog.Info("session initialized",
		"papers", len(req.Papers),
		"guarantors", len(guarantors),
		"start", req.Start,
		"end", req.End,
	)

	middleware.JSONResponse(w, http.StatusCreated, map[string]string{
		"message": "session initialized",
	})
}

// SetReady handles POST /session/ready. Admin only: opens the session for
// guarantor approval.
func (h *SessionHandler) SetReady(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(h.board, h.cfg, w, r); !ok {
		return
	}
	s := h.board.Session()
	if s == nil {
		middleware.ErrorResponse(w, http.StatusConflict, "no session has been initialized")
		return
	}
	s.SetReady()
	slog.Info("session set to ready")
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "session ready"})
}

// Approve handles POST /session/approve. The caller must be one of the
// session's guarantors.
func (h *SessionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	p, ok := currentPerson(h.board, h.cfg, w, r)
	if !ok {
		return
	}
	s := h.board.Session()
	if s == nil {
		middleware.ErrorResponse(w, http.StatusConflict, "no session has been initialized")
		return
	}
	if err := s.Approve(p); err != nil {
		writeCoreError(w, err)
		return
	}
	slog.Info("session approved", "guarantor", p.SSN)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "session approved"})
}

// Close handles POST /session/close. Admin only: force-closes the session,
// resetting readiness and approvals while keeping the cast votes.
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(h.board, h.cfg, w, r); !ok {
		return
	}
	s := h.board.Session()
	if s == nil {
		middleware.ErrorResponse(w, http.StatusConflict, "no session has been initialized")
		return
	}
	s.ForceClose()
	slog.Info("session force-closed")
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "session closed"})
}

// Roles handles GET /session/roles: the caller's roles for the current
// session.
func (h *SessionHandler) Roles(w http.ResponseWriter, r *http.Request) {
	p, ok := currentPerson(h.board, h.cfg, w, r)
	if !ok {
		return
	}
	roles := h.board.Roles(p)
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	middleware.JSONResponse(w, http.StatusOK, models.RolesResponse{Roles: names})
}

// buildPaper converts a paper spec into a core VotingPaper, recursing into
// sub-paper specs.
func buildPaper(spec models.PaperSpec) (*election.VotingPaper, error) {
	method, err := election.ParseMethod(spec.Method)
	if err != nil {
		return nil, err
	}

	var decider election.Decider
	if spec.AgeThreshold != nil {
		d, err := election.NewAdultDecider(*spec.AgeThreshold)
		if err != nil {
			return nil, err
		}
		decider = d
	}

	choices := make(map[election.Choice]*election.VotingPaper, len(spec.Choices))
	for _, cs := range spec.Choices {
		c, err := election.NewChoice(cs.Name)
		if err != nil {
			return nil, err
		}
		var sub *election.VotingPaper
		if cs.Sub != nil {
			sub, err = buildPaper(*cs.Sub)
			if err != nil {
				return nil, err
			}
		}
		choices[c] = sub
	}

	return election.NewVotingPaper(spec.Title, choices, method, decider)
}
