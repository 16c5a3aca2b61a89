// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"sync"
	"time"
)

// SessionParameters holds a session's schedule and its ordered list of
// voting papers while the administrator is still editing them. A Session
// takes an immutable deep copy at initialization, so a caller may keep
// mutating its own instance safely.
type SessionParameters struct {
	start  time.Time
	end    time.Time
	papers []*VotingPaper
}

// NewSessionParameters builds blank parameters with no schedule and no
// papers.
func NewSessionParameters() *SessionParameters {
	return &SessionParameters{}
}

// SetStart sets the session's start time.
func (sp *SessionParameters) SetStart(t time.Time) {
	sp.start = t
}

// SetEnd sets the session's end time.
func (sp *SessionParameters) SetEnd(t time.Time) {
	sp.end = t
}

// Start returns the session's start time.
func (sp *SessionParameters) Start() time.Time {
	return sp.start
}

// End returns the session's end time.
func (sp *SessionParameters) End() time.Time {
	return sp.end
}

// AddPaper appends a copy of the given paper, so later edits to the
// original do not leak into these parameters.
func (sp *SessionParameters) AddPaper(p *VotingPaper) error {
	if p == nil {
		return fmt.Errorf("%w: paper is required", ErrMissingValue)
	}
	sp.papers = append(sp.papers, p.Copy())
	return nil
}

// Papers returns the papers in insertion order.
func (sp *SessionParameters) Papers() []*VotingPaper {
	res := make([]*VotingPaper, len(sp.papers))
	copy(res, sp.papers)
	return res
}

// Copy returns a deep copy of these parameters. Papers are copied void of
// votes.
func (sp *SessionParameters) Copy() *SessionParameters {
	papers := make([]*VotingPaper, 0, len(sp.papers))
	for _, p := range sp.papers {
		papers = append(papers, p.Copy())
	}
	return &SessionParameters{start: sp.start, end: sp.end, papers: papers}
}

// checkLegality validates the parameters at initialization time.
func (sp *SessionParameters) checkLegality() error {
	if sp.start.IsZero() {
		return fmt.Errorf("%w: session start time is required", ErrMissingValue)
	}
	if sp.end.IsZero() {
		return fmt.Errorf("%w: session end time is required", ErrMissingValue)
	}
	for _, p := range sp.papers {
		if p == nil {
			return fmt.Errorf("%w: paper list contains a nil paper", ErrMissingValue)
		}
	}
	if sp.end.Before(sp.start) {
		return fmt.Errorf("%w: session end is before start", ErrInvalidArgument)
	}
	return nil
}

// Session is one voting session: an immutable copy of its parameters, the
// guarantors with their approval state, and the ready flag the admin flips
// when setup is done.
//
// Whether the session is running is never stored; IsRunning derives it
// from the wall clock and the approval state on every call. Two callers
// querying near the window boundary may therefore observe different
// answers, which is intended.
type Session struct {
	params *SessionParameters
	dir    PersonDirectory

	mu         sync.Mutex
	ready      bool
	approval   map[string]bool // guarantor SSN -> has approved
	guarantors []*Person
}

// newSession is only called by Board.InitializeSession.
func newSession(params *SessionParameters, guarantors []*Person, admin *Person, dir PersonDirectory) (*Session, error) {
	if params == nil {
		return nil, fmt.Errorf("%w: session parameters are required", ErrMissingValue)
	}
	if guarantors == nil {
		return nil, fmt.Errorf("%w: guarantor list is required", ErrMissingValue)
	}
	if len(guarantors) < 1 {
		return nil, fmt.Errorf("%w: invalid guarantor list: at least one guarantor is required", ErrInvalidArgument)
	}
	approval := make(map[string]bool, len(guarantors))
	kept := make([]*Person, 0, len(guarantors))
	for _, g := range guarantors {
		if g == nil {
			return nil, fmt.Errorf("%w: guarantor list contains a nil person", ErrMissingValue)
		}
		if g.Same(admin) {
			return nil, fmt.Errorf("%w: invalid guarantor list: the admin cannot be a guarantor", ErrInvalidArgument)
		}
		approval[g.SSN] = false
		kept = append(kept, g)
	}
	if err := params.checkLegality(); err != nil {
		return nil, err
	}
	s := &Session{
		params:     params.Copy(),
		dir:        dir,
		approval:   approval,
		guarantors: kept,
	}
	for _, p := range s.params.papers {
		p.bind(s)
	}
	return s, nil
}

// Papers returns the live papers of this session, in order. These are the
// papers to vote on and read results from; for a reference copy use
// CurrentParameters instead.
func (s *Session) Papers() []*VotingPaper {
	return s.params.Papers()
}

// CurrentParameters returns a modification-safe copy of the session's
// parameters.
func (s *Session) CurrentParameters() *SessionParameters {
	return s.params.Copy()
}

// Guarantors returns the session's guarantors.
func (s *Session) Guarantors() []*Person {
	res := make([]*Person, len(s.guarantors))
	copy(res, s.guarantors)
	return res
}

// IsGuarantor reports whether p is one of this session's guarantors.
func (s *Session) IsGuarantor(p *Person) bool {
	if p == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.approval[p.SSN]
	return ok
}

// SetReady marks the session ready for guarantor approval. Called by the
// admin when setup is done; calling it again just re-asserts readiness.
func (s *Session) SetReady() {
	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
}

// IsReady reports whether the session is ready to be approved.
func (s *Session) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// Approve records the given guarantor's approval of the session.
func (s *Session) Approve(p *Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return fmt.Errorf("%w: the session is not ready to be approved", ErrIllegalState)
	}
	if p == nil {
		return fmt.Errorf("%w: guarantor is required", ErrMissingValue)
	}
	if _, ok := s.approval[p.SSN]; !ok {
		return fmt.Errorf("%w: person %s is not a guarantor of the session", ErrInvalidArgument, p.SSN)
	}
	s.approval[p.SSN] = true
	return nil
}

// HasApproved reports whether the given guarantor has approved the
// session.
func (s *Session) HasApproved(p *Person) (bool, error) {
	if p == nil {
		return false, fmt.Errorf("%w: guarantor is required", ErrMissingValue)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	approved, ok := s.approval[p.SSN]
	if !ok {
		return false, fmt.Errorf("%w: person %s is not a guarantor of the session", ErrInvalidArgument, p.SSN)
	}
	return approved, nil
}

// CheckApproval reports whether every guarantor has approved the session.
func (s *Session) CheckApproval() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, approved := range s.approval {
		if !approved {
			return false
		}
	}
	return true
}

// IsRunning reports whether voting is currently permitted: the wall clock
// is inside the session window and every guarantor has approved. Derived
// on each call, never stored.
func (s *Session) IsRunning() bool {
	now := time.Now()
	return s.params.start.Before(now) && s.params.end.After(now) && s.CheckApproval()
}

// ForceClose manually closes the session: readiness and every approval are
// reset, so IsRunning turns false regardless of the time window. Votes
// already cast are kept.
func (s *Session) ForceClose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = false
	for ssn := range s.approval {
		s.approval[ssn] = false
	}
}

// HowManyEligible counts the registered people that can vote according to
// the given decider. A nil decider counts everyone. The directory is
// scanned on every call; nothing is cached.
func (s *Session) HowManyEligible(decider Decider) (int, error) {
	people, err := s.dir.FindAll()
	if err != nil {
		return 0, err
	}
	count := 0
	for _, p := range people {
		if decider == nil || decider.CanVote(p) {
			count++
		}
	}
	return count, nil
}
