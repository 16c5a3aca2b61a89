// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"testing"
	"time"

	"ballotbox/cliparse"
	"ballotbox/election"
	"ballotbox/testutil"
)

// newTestBoard seeds an in-memory directory with an admin (ADM01), a
// guarantor (GUA01), two adult voters (VOT01, VOT02), a minor (KID01)
// and a disabled person (OFF01), and returns a board with ADM01 set as
// admin.
func newTestBoard(t *testing.T) (*election.Board, cliparse.Config) {
	t.Helper()

	disabled := testutil.MakePerson("OFF01", 40)
	disabled.Enabled = false

	dir := testutil.NewDirectory(
		testutil.MakePerson("ADM01", 50),
		testutil.MakePerson("GUA01", 45),
		testutil.MakePerson("VOT01", 30),
		testutil.MakePerson("VOT02", 25),
		testutil.MakePerson("KID01", 12),
		disabled,
	)

	board, err := election.NewBoard(dir)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	admin, _ := dir.FindByID("ADM01")
	if err := board.SetAdmin(admin); err != nil {
		t.Fatalf("SetAdmin failed: %v", err)
	}
	return board, testutil.GetTestConfig()
}

// startRunningSession initializes, readies and approves a session over
// the given papers, leaving it running.
func startRunningSession(t *testing.T, board *election.Board, papers ...*election.VotingPaper) *election.Session {
	t.Helper()
	guarantor, _ := board.Directory().FindByID("GUA01")
	params := election.NewSessionParameters()
	params.SetStart(time.Now().Add(-time.Hour))
	params.SetEnd(time.Now().Add(24 * time.Hour))
	for _, p := range papers {
		if err := params.AddPaper(p); err != nil {
			t.Fatalf("AddPaper failed: %v", err)
		}
	}
	return testutil.StartSession(t, board, params, []*election.Person{guarantor})
}

// simplePaper builds a leaf paper with the given method and choices.
func simplePaper(t *testing.T, title string, method election.Method, names ...string) *election.VotingPaper {
	t.Helper()
	choices := make(map[election.Choice]*election.VotingPaper, len(names))
	for _, n := range names {
		choices[testutil.MustChoice(t, n)] = nil
	}
	p, err := election.NewVotingPaper(title, choices, method, nil)
	if err != nil {
		t.Fatalf("NewVotingPaper failed: %v", err)
	}
	return p
}
