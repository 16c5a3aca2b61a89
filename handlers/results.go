// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"ballotbox/cliparse"
	"ballotbox/election"
	"ballotbox/middleware"
	"ballotbox/models"
)

type ResultsHandler struct {
	board *election.Board
	cfg   cliparse.Config
}

func NewResultsHandler(board *election.Board, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{board: board, cfg: cfg}
}

// GetPapers handles GET /papers. Public: lists the session's papers with
// their choices, sub-papers nested, but never any vote data.
func (h *ResultsHandler) GetPapers(w http.ResponseWriter, r *http.Request) {
	s := h.board.Session()
	if s == nil {
		middleware.ErrorResponse(w, http.StatusConflict, "no session has been initialized")
		return
	}
	papers := s.Papers()
	views := make([]models.PaperView, 0, len(papers))
	for i, p := range papers {
		v := paperView(p)
		v.Index = i
		views = append(views, v)
	}
	middleware.JSONResponse(w, http.StatusOK, views)
}

// GetResults handles GET /papers/{index}/results.
// Returns 409 while the session is running: results stay sealed until the
// election is over. Sub-paper results are nested under their choices.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	s := h.board.Session()
	if s == nil {
		middleware.ErrorResponse(w, http.StatusConflict, "no session has been initialized")
		return
	}
	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid paper index")
		return
	}
	papers := s.Papers()
	if idx < 0 || idx >= len(papers) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Paper not found")
		return
	}

	view, err := resultsView(papers[idx])
	if err != nil {
		writeCoreError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, view)
}

func paperView(p *election.VotingPaper) models.PaperView {
	choices := make([]models.ChoiceView, 0, len(p.Choices()))
	for _, c := range p.Choices() {
		cv := models.ChoiceView{Name: c.Name()}
		if sub := p.SubPaper(c); sub != nil {
			sv := paperView(sub)
			cv.Sub = &sv
		}
		choices = append(choices, cv)
	}
	return models.PaperView{
		Title:   p.Title(),
		Method:  string(p.Method()),
		Choices: choices,
	}
}

func resultsView(p *election.VotingPaper) (*models.ResultsResponse, error) {
	res, err := p.Results()
	if err != nil {
		return nil, err
	}

	entries := res.Entries()
	out := make([]models.ChoiceResult, 0, len(entries))
	for _, e := range entries {
		rel, err := res.RelativeScore(e.Choice)
		if err != nil {
			return nil, err
		}
		cr := models.ChoiceResult{
			Name:          e.Choice.Name(),
			Score:         e.Score,
			RelativeScore: rel,
		}
		if sub := p.SubPaper(e.Choice); sub != nil {
			sv, err := resultsView(sub)
			if err != nil {
				return nil, err
			}
			cr.Sub = sv
		}
		out = append(out, cr)
	}

	resp := &models.ResultsResponse{
		Title:      p.Title(),
		Method:     string(p.Method()),
		TotalVotes: res.TotalVotes(),
		Turnout:    res.Turnout(),
		Results:    out,
	}
	if winner, ok := res.Winner(); ok {
		resp.Winner = winner.Choice.Name()
	}
	return resp, nil
}
