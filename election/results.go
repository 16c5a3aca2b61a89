// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"sort"
)

// Result is the tallied score of a single choice.
type Result struct {
	Choice Choice
	Score  int
}

// Results is a read-only tally over a closed paper's votes: per-choice
// scores in ascending order, the number of people who voted, and the
// turnout against the population eligible for this specific paper's
// decider (sub-papers keep their own decider and therefore their own
// eligible population).
type Results struct {
	method     Method
	numChoices int
	entries    []Result // ascending by score, stable ties
	totalVotes int
	turnout    float64
}

func newResults(method Method, choices []Choice, votes []Vote, totalVotes, eligible int) *Results {
	entries := make([]Result, 0, len(choices))
	for _, c := range choices {
		score := 0
		for _, v := range votes {
			score += v.Score(c)
		}
		entries = append(entries, Result{Choice: c, Score: score})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score < entries[j].Score
	})
	turnout := 0.0
	if eligible > 0 {
		turnout = float64(totalVotes) / float64(eligible)
	}
	return &Results{
		method:     method,
		numChoices: len(choices),
		entries:    entries,
		totalVotes: totalVotes,
		turnout:    turnout,
	}
}

// Entries returns the per-choice results in ascending score order. The
// winner, if the caller wants one, is the last entry.
func (r *Results) Entries() []Result {
	res := make([]Result, len(r.entries))
	copy(res, r.entries)
	return res
}

// Winner returns the highest-scoring entry. ok is false when the paper has
// no choices.
func (r *Results) Winner() (Result, bool) {
	if len(r.entries) == 0 {
		return Result{}, false
	}
	return r.entries[len(r.entries)-1], true
}

// TotalVotes returns the number of people who voted on the paper.
func (r *Results) TotalVotes() int {
	return r.totalVotes
}

// Turnout returns the fraction of the eligible population that voted.
func (r *Results) Turnout() float64 {
	return r.turnout
}

// Score returns the score tallied for the given choice.
func (r *Results) Score(c Choice) (int, error) {
	for _, e := range r.entries {
		if e.Choice == c {
			return e.Score, nil
		}
	}
	return 0, fmt.Errorf("%w: the given choice was not present in this paper", ErrInvalidArgument)
}

// RelativeScore returns the choice's score normalized to [0,1]: the score
// divided by totalVotes times the maximum score obtainable per ballot,
// which is (n-1)n/2 for an ordinal paper with n choices and 1 for every
// other method.
func (r *Results) RelativeScore(c Choice) (float64, error) {
	score, err := r.Score(c)
	if err != nil {
		return 0, err
	}
	scorePerVote := 1
	if r.method == MethodOrdinal {
		scorePerVote = (r.numChoices - 1) * r.numChoices / 2
	}
	denom := r.totalVotes * scorePerVote
	if denom == 0 {
		return 0, nil
	}
	return float64(score) / float64(denom), nil
}
