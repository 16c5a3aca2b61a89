// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"sync"
)

// VotingPaper is a single ballot: a set of choices, the election method,
// an optional eligibility decider and, once votes are cast, the record of
// who voted and what they submitted.
//
// Under MethodPreferenced a choice may open a secondary selection: such
// choices map to a nested sub-paper, forming a tree. SubPaper returns the
// nested paper for a choice, or nil for a plain choice. Constructing a
// paper with any sub-paper under a different method fails.
//
// The choices, method and decider are fixed at construction; the only
// mutable state is the accumulated votes and the voted set, both guarded
// by a per-paper mutex so a duplicate-vote check and its record are atomic.
// Copy returns a structurally identical paper with that state stripped.
type VotingPaper struct {
	title   string
	method  Method
	decider Decider
	choices map[Choice]*VotingPaper // nil value = plain choice

	mu      sync.Mutex
	votes   []Vote
	voted   map[string]struct{} // SSNs of people who voted
	session *Session            // owning session; nil until assigned
}

// NewVotingPaper builds a paper with the given title, choices and method.
// Choices that open a sub-paper map to it; plain choices map to nil.
// decider may be nil, meaning anyone registered can vote. The choice map
// is deep-copied, sub-papers included, so the paper owns an independent
// snapshot.
func NewVotingPaper(title string, choices map[Choice]*VotingPaper, method Method, decider Decider) (*VotingPaper, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: paper title is required", ErrMissingValue)
	}
	if method == "" {
		return nil, fmt.Errorf("%w: election method is required", ErrMissingValue)
	}
	if _, err := ParseMethod(string(method)); err != nil {
		return nil, err
	}
	if choices == nil {
		return nil, fmt.Errorf("%w: choice map is required", ErrMissingValue)
	}
	if method != MethodPreferenced {
		for _, sub := range choices {
			if sub != nil {
				return nil, fmt.Errorf("%w: cannot add subchoices for an election method different from %s",
					ErrInvalidArgument, MethodPreferenced)
			}
		}
	}
	copied, err := copyChoiceMap(choices)
	if err != nil {
		return nil, err
	}
	return &VotingPaper{
		title:   title,
		method:  method,
		decider: decider,
		choices: copied,
		voted:   make(map[string]struct{}),
	}, nil
}

// Title returns the paper's title.
func (vp *VotingPaper) Title() string {
	return vp.title
}

// Method returns the paper's election method.
func (vp *VotingPaper) Method() Method {
	return vp.method
}

// Decider returns the paper's eligibility decider, nil if anyone can vote.
func (vp *VotingPaper) Decider() Decider {
	return vp.decider
}

// Choices returns the paper's choices. The order is unspecified.
func (vp *VotingPaper) Choices() []Choice {
	res := make([]Choice, 0, len(vp.choices))
	for c := range vp.choices {
		res = append(res, c)
	}
	return res
}

// HasChoice reports whether c is one of this paper's choices.
func (vp *VotingPaper) HasChoice(c Choice) bool {
	_, ok := vp.choices[c]
	return ok
}

// SubPaper returns the nested paper opened by the given choice, or nil if
// the choice has no suboptions. The returned paper is the live one, not a
// copy: this is the correct way to reach a sub-paper for voting and
// results.
func (vp *VotingPaper) SubPaper(c Choice) *VotingPaper {
	return vp.choices[c]
}

// CanVote reports whether p may vote on this paper: any non-nil person
// when the paper has no decider, otherwise whatever the decider says.
func (vp *VotingPaper) CanVote(p *Person) bool {
	if vp.decider == nil {
		return p != nil
	}
	return vp.decider.CanVote(p)
}

// HasVoted reports whether p has already voted on this paper.
func (vp *VotingPaper) HasVoted(p *Person) bool {
	if p == nil {
		return false
	}
	vp.mu.Lock()
	defer vp.mu.Unlock()
	_, ok := vp.voted[p.SSN]
	return ok
}

// AddVote records the given vote by the given person. This is the only
// moment a person and their vote are associated; results never expose the
// pairing. The checks run in a fixed order and no state is touched until
// all of them pass:
//
//  1. the owning session must be running,
//  2. the vote must be present,
//  3. the vote's method must match the paper's,
//  4. the person must be eligible under the paper's decider,
//  5. the person must not have voted on this paper before.
//
// The duplicate check and the record are done under the paper's mutex, so
// two concurrent submissions by the same person cannot both get in.
func (vp *VotingPaper) AddVote(v Vote, p *Person) error {
	if vp.session == nil || !vp.session.IsRunning() {
		return fmt.Errorf("%w: cannot add a vote to a closed election", ErrIllegalState)
	}
	if v.IsZero() {
		return fmt.Errorf("%w: vote is required", ErrMissingValue)
	}
	if v.Method() != vp.method {
		return fmt.Errorf("%w: vote not compatible with the election method of this paper", ErrInvalidArgument)
	}
	if !vp.CanVote(p) {
		return fmt.Errorf("%w: the given person cannot vote for this paper", ErrInvalidArgument)
	}
	vp.mu.Lock()
	defer vp.mu.Unlock()
	if _, dup := vp.voted[p.SSN]; dup {
		return fmt.Errorf("%w: the given person has already voted for this paper", ErrInvalidArgument)
	}
	vp.votes = append(vp.votes, v)
	vp.voted[p.SSN] = struct{}{}
	return nil
}

// Results computes the tally for this paper's election. It fails while the
// owning session is still running; the votes are therefore read as a
// consistent snapshot. Results are recomputed on every call, never cached.
func (vp *VotingPaper) Results() (*Results, error) {
	if vp.session == nil {
		return nil, fmt.Errorf("%w: cannot get the results: there is no session", ErrIllegalState)
	}
	if vp.session.IsRunning() {
		return nil, fmt.Errorf("%w: election is still running", ErrIllegalState)
	}
	eligible, err := vp.session.HowManyEligible(vp.decider)
	if err != nil {
		return nil, err
	}
	vp.mu.Lock()
	votes := make([]Vote, len(vp.votes))
	copy(votes, vp.votes)
	totalVotes := len(vp.voted)
	vp.mu.Unlock()
	return newResults(vp.method, vp.Choices(), votes, totalVotes, eligible), nil
}

// Copy returns a clone of this paper as never used in a voting session:
// same title, method, decider and (recursively copied) choices, with no
// votes and no session binding.
func (vp *VotingPaper) Copy() *VotingPaper {
	copied, _ := copyChoiceMap(vp.choices) // already validated at construction
	return &VotingPaper{
		title:   vp.title,
		method:  vp.method,
		decider: vp.decider,
		choices: copied,
		voted:   make(map[string]struct{}),
	}
}

// bind attaches this paper and every sub-paper to its owning session.
// Called once when session parameters are installed into a session.
func (vp *VotingPaper) bind(s *Session) {
	vp.session = s
	for _, sub := range vp.choices {
		if sub != nil {
			sub.bind(s)
		}
	}
}

func copyChoiceMap(choices map[Choice]*VotingPaper) (map[Choice]*VotingPaper, error) {
	res := make(map[Choice]*VotingPaper, len(choices))
	for c, sub := range choices {
		if c.IsZero() {
			return nil, fmt.Errorf("%w: choice map contains an empty choice", ErrMissingValue)
		}
		if sub == nil {
			res[c] = nil
		} else {
			res[c] = sub.Copy()
		}
	}
	return res, nil
}

func (vp *VotingPaper) String() string {
	vp.mu.Lock()
	n := len(vp.voted)
	vp.mu.Unlock()
	return fmt.Sprintf("VotingPaper[%q, method=%s, voteNumber=%d, choices=%d]", vp.title, vp.method, n, len(vp.choices))
}
