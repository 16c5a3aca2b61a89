// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"ballotbox/cliparse"
	"ballotbox/election"
	"ballotbox/middleware"
	"ballotbox/models"
)

type VotingHandler struct {
	board *election.Board
	cfg   cliparse.Config
}

func NewVotingHandler(board *election.Board, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{board: board, cfg: cfg}
}

// CastVote handles POST /papers/{index}/votes. The body is a
// method-specific ballot; for preferenced papers it may nest a sub ballot,
// which is cast on the sub-paper as its own independent vote subject to
// that paper's own eligibility and duplicate rules. A sub-vote rejection
// does not undo the parent vote; the response reports the partial outcome.
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	p, ok := currentPerson(h.board, h.cfg, w, r)
	if !ok {
		return
	}

	paper, ok := h.lookupPaper(w, r)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	vote, err := buildVote(paper, req)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	if err := paper.AddVote(vote, p); err != nil {
		writeCoreError(w, err)
		return
	}

	resp := models.CastVoteResponse{Receipt: uuid.NewString()}
	if vote.Sub() != nil {
		accepted := true
		if err := castSubVotes(paper, vote, p); err != nil {
			// Parent vote stays recorded; report the partial outcome.
			accepted = false
			resp.SubError = err.Error()
		}
		resp.SubAccepted = &accepted
	}

	slog.Info("vote cast", "paper", paper.Title(), "receipt", resp.Receipt)

	middleware.JSONResponse(w, http.StatusCreated, resp)
}

// lookupPaper resolves the {index} path value into a top-level paper of
// the current session.
func (h *VotingHandler) lookupPaper(w http.ResponseWriter, r *http.Request) (*election.VotingPaper, bool) {
	s := h.board.Session()
	if s == nil {
		middleware.ErrorResponse(w, http.StatusConflict, "no session has been initialized")
		return nil, false
	}
	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid paper index")
		return nil, false
	}
	papers := s.Papers()
	if idx < 0 || idx >= len(papers) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Paper not found")
		return nil, false
	}
	return papers[idx], true
}

// buildVote converts a ballot request into a core Vote for the given
// paper, validating that every named choice belongs to the paper and
// recursing into sub ballots.
func buildVote(paper *election.VotingPaper, req models.CastVoteRequest) (election.Vote, error) {
	switch paper.Method() {
	case election.MethodOrdinal:
		order := make([]election.Choice, 0, len(req.Order))
		for _, name := range req.Order {
			c, err := paperChoice(paper, name)
			if err != nil {
				return election.Vote{}, err
			}
			order = append(order, c)
		}
		return election.NewOrdinalVote(order)

	case election.MethodCategorical:
		c, err := paperChoice(paper, req.Chosen)
		if err != nil {
			return election.Vote{}, err
		}
		return election.NewCategoricalVote(c)

	case election.MethodReferendum:
		c, err := paperChoice(paper, req.Chosen)
		if err != nil {
			return election.Vote{}, err
		}
		return election.NewReferendumVote(c)

	case election.MethodPreferenced:
		c, err := paperChoice(paper, req.Chosen)
		if err != nil {
			return election.Vote{}, err
		}
		var sub *election.Vote
		if req.Sub != nil {
			subPaper := paper.SubPaper(c)
			if subPaper == nil {
				return election.Vote{}, fmt.Errorf("%w: choice %q has no sub-paper", election.ErrInvalidArgument, c.Name())
			}
			v, err := buildVote(subPaper, *req.Sub)
			if err != nil {
				return election.Vote{}, err
			}
			sub = &v
		}
		return election.NewPreferencedVote(c, sub)
	}
	return election.Vote{}, fmt.Errorf("%w: unknown election method %q", election.ErrInvalidArgument, paper.Method())
}

func paperChoice(paper *election.VotingPaper, name string) (election.Choice, error) {
	c, err := election.NewChoice(name)
	if err != nil {
		return election.Choice{}, err
	}
	if !paper.HasChoice(c) {
		return election.Choice{}, fmt.Errorf("%w: unknown choice %q", election.ErrInvalidArgument, name)
	}
	return c, nil
}

// castSubVotes casts the sub ballots carried by a preferenced vote, one
// independent AddVote per nested paper.
func castSubVotes(paper *election.VotingPaper, v election.Vote, p *election.Person) error {
	sub := v.Sub()
	if sub == nil {
		return nil
	}
	subPaper := paper.SubPaper(v.Chosen())
	if subPaper == nil {
		return fmt.Errorf("%w: choice %q has no sub-paper", election.ErrInvalidArgument, v.Chosen().Name())
	}
	if err := subPaper.AddVote(*sub, p); err != nil {
		return err
	}
	return castSubVotes(subPaper, *sub, p)
}
