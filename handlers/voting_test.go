package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ballotbox/election"
	"ballotbox/models"
	"ballotbox/testutil"
)

// castRequest builds a POST /papers/{index}/votes request.
func castRequest(index string, body interface{}, headers map[string]string) *http.Request {
	req := testutil.MakeRequest("POST", "/papers/"+index+"/votes", body, headers)
	req.SetPathValue("index", index)
	return req
}

func TestCastVote(t *testing.T) {
	board, cfg := newTestBoard(t)
	handler := NewVotingHandler(board, cfg)
	startRunningSession(t, board,
		simplePaper(t, "Pick one", election.MethodCategorical, "A", "B"),
		simplePaper(t, "Rank them", election.MethodOrdinal, "A", "B", "C"),
	)

	tests := []struct {
		name           string
		index          string
		ssn            string
		body           models.CastVoteRequest
		expectedStatus int
	}{
		{
			name:           "categorical vote",
			index:          "0",
			ssn:            "VOT01",
			body:           models.CastVoteRequest{Chosen: "A"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "ordinal vote",
			index:          "1",
			ssn:            "VOT01",
			body:           models.CastVoteRequest{Order: []string{"B", "A", "C"}},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown choice",
			index:          "0",
			ssn:            "VOT02",
			body:           models.CastVoteRequest{Chosen: "Z"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "wrong ballot shape",
			index:          "0",
			ssn:            "VOT02",
			body:           models.CastVoteRequest{Order: []string{"A", "B"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate in order",
			index:          "1",
			ssn:            "VOT02",
			body:           models.CastVoteRequest{Order: []string{"A", "A", "B"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "paper not found",
			index:          "7",
			ssn:            "VOT02",
			body:           models.CastVoteRequest{Chosen: "A"},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid index",
			index:          "abc",
			ssn:            "VOT02",
			body:           models.CastVoteRequest{Chosen: "A"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := castRequest(tt.index, tt.body, testutil.AuthHeaders(tt.ssn, cfg))
			w := httptest.NewRecorder()
			handler.CastVote(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus == http.StatusCreated {
				var resp models.CastVoteResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Receipt == "" {
					t.Error("Expected a non-empty receipt")
				}
			}
		})
	}
}

func TestCastVoteRequiresAuth(t *testing.T) {
	board, cfg := newTestBoard(t)
	handler := NewVotingHandler(board, cfg)
	startRunningSession(t, board, simplePaper(t, "Paper", election.MethodCategorical, "A"))

	req := castRequest("0", models.CastVoteRequest{Chosen: "A"}, nil)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
}

func TestCastVoteTwice(t *testing.T) {
	board, cfg := newTestBoard(t)
	handler := NewVotingHandler(board, cfg)
	startRunningSession(t, board, simplePaper(t, "Paper", election.MethodCategorical, "A", "B"))
	headers := testutil.AuthHeaders("VOT01", cfg)

	req := castRequest("0", models.CastVoteRequest{Chosen: "A"}, headers)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	req = castRequest("0", models.CastVoteRequest{Chosen: "B"}, headers)
	w = httptest.NewRecorder()
	handler.CastVote(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestCastVoteClosedSession(t *testing.T) {
	board, cfg := newTestBoard(t)
	handler := NewVotingHandler(board, cfg)
	s := startRunningSession(t, board, simplePaper(t, "Paper", election.MethodCategorical, "A"))
	s.ForceClose()

	req := castRequest("0", models.CastVoteRequest{Chosen: "A"}, testutil.AuthHeaders("VOT01", cfg))
	w := httptest.NewRecorder()
	handler.CastVote(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestCastVoteNoSession(t *testing.T) {
	board, cfg := newTestBoard(t)
	handler := NewVotingHandler(board, cfg)

	req := castRequest("0", models.CastVoteRequest{Chosen: "A"}, testutil.AuthHeaders("VOT01", cfg))
	w := httptest.NewRecorder()
	handler.CastVote(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestCastPreferencedVoteWithSub(t *testing.T) {
	board, cfg := newTestBoard(t)
	handler := NewVotingHandler(board, cfg)

	sub := simplePaper(t, "Group1 members", election.MethodCategorical, "Alice", "Bob")
	choices := map[election.Choice]*election.VotingPaper{
		testutil.MustChoice(t, "Group1"): sub,
		testutil.MustChoice(t, "Group2"): nil,
	}
	parent, err := election.NewVotingPaper("Groups", choices, election.MethodPreferenced, nil)
	if err != nil {
		t.Fatalf("NewVotingPaper failed: %v", err)
	}
	startRunningSession(t, board, parent)

	body := models.CastVoteRequest{
		Chosen: "Group1",
		Sub:    &models.CastVoteRequest{Chosen: "Alice"},
	}
	req := castRequest("0", body, testutil.AuthHeaders("VOT01", cfg))
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	var resp models.CastVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.SubAccepted == nil || !*resp.SubAccepted {
		t.Errorf("Expected the sub vote to be accepted, got %+v", resp)
	}

	// A choice with no sub-paper cannot carry a sub ballot.
	body = models.CastVoteRequest{
		Chosen: "Group2",
		Sub:    &models.CastVoteRequest{Chosen: "Alice"},
	}
	req = castRequest("0", body, testutil.AuthHeaders("VOT02", cfg))
	w = httptest.NewRecorder()
	handler.CastVote(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

// TestCastPreferencedVotePartialOutcome pins the partial-failure contract:
// if the voter already voted on the sub-paper, the parent vote still lands
// and the response flags the rejected sub vote.
func TestCastPreferencedVotePartialOutcome(t *testing.T) {
	board, cfg := newTestBoard(t)
	handler := NewVotingHandler(board, cfg)

	sub := simplePaper(t, "Group1 members", election.MethodCategorical, "Alice", "Bob")
	choices := map[election.Choice]*election.VotingPaper{
		testutil.MustChoice(t, "Group1"): sub,
	}
	parent, err := election.NewVotingPaper("Groups", choices, election.MethodPreferenced, nil)
	if err != nil {
		t.Fatalf("NewVotingPaper failed: %v", err)
	}
	s := startRunningSession(t, board, parent)

	// Vote on the sub-paper directly first.
	voter, _ := board.Directory().FindByID("VOT01")
	live := s.Papers()[0]
	subPaper := live.SubPaper(testutil.MustChoice(t, "Group1"))
	subVote, _ := election.NewCategoricalVote(testutil.MustChoice(t, "Alice"))
	if err := subPaper.AddVote(subVote, voter); err != nil {
		t.Fatalf("Direct sub vote failed: %v", err)
	}

	body := models.CastVoteRequest{
		Chosen: "Group1",
		Sub:    &models.CastVoteRequest{Chosen: "Bob"},
	}
	req := castRequest("0", body, testutil.AuthHeaders("VOT01", cfg))
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)
	var resp models.CastVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.SubAccepted == nil || *resp.SubAccepted {
		t.Errorf("Expected the sub vote to be rejected, got %+v", resp)
	}
	if resp.SubError == "" {
		t.Error("Expected sub_error to explain the rejection")
	}
	if !live.HasVoted(voter) {
		t.Error("Expected the parent vote to stay recorded")
	}
}
