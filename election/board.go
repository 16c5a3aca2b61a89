// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"sync"
)

// Role is a person's role with respect to the current session.
type Role string

const (
	// RoleAdmin: the session administrator. Builds the papers, sets the
	// parameters, marks the session ready.
	RoleAdmin Role = "admin"
	// RoleGuarantor: a session guarantor. The session only runs once all
	// guarantors have approved it.
	RoleGuarantor Role = "guarantor"
)

// Board is the electoral board: the single place that owns the current
// session and the administrator identity. The system handles one voting
// session at a time, so a process constructs exactly one Board and passes
// it to whoever needs the core (handlers, tests).
type Board struct {
	dir PersonDirectory

	mu      sync.Mutex
	admin   *Person
	session *Session
}

// NewBoard builds a Board over the given person directory.
func NewBoard(dir PersonDirectory) (*Board, error) {
	if dir == nil {
		return nil, fmt.Errorf("%w: person directory is required", ErrMissingValue)
	}
	return &Board{dir: dir}, nil
}

// SetAdmin sets the administrator. The admin can only be set while no
// session exists.
func (b *Board) SetAdmin(p *Person) error {
	if p == nil {
		return fmt.Errorf("%w: admin is required", ErrMissingValue)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session != nil {
		return fmt.Errorf("%w: cannot change admin once the session is initialized", ErrIllegalState)
	}
	b.admin = p
	return nil
}

// Admin returns the administrator, or nil if none has been set.
func (b *Board) Admin() *Person {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.admin
}

// Session returns the current session, or nil if none has been
// initialized.
func (b *Board) Session() *Session {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session
}

// InitializeSession creates a new session from the given parameters and
// guarantor list, replacing the previous session. A running session cannot
// be replaced; force-close it first or wait for its window to end. The
// guarantor list must hold at least one person and must not include the
// admin.
func (b *Board) InitializeSession(params *SessionParameters, guarantors []*Person) (*Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.session != nil && b.session.IsRunning() {
		return nil, fmt.Errorf("%w: cannot initialize a running session", ErrIllegalState)
	}
	s, err := newSession(params, guarantors, b.admin, b.dir)
	if err != nil {
		return nil, err
	}
	b.session = s
	return s, nil
}

// Roles returns the given person's roles for the current session: admin,
// guarantor, both or neither.
func (b *Board) Roles(p *Person) []Role {
	b.mu.Lock()
	defer b.mu.Unlock()
	var res []Role
	if p != nil && p.Same(b.admin) {
		res = append(res, RoleAdmin)
	}
	if b.session != nil && b.session.IsGuarantor(p) {
		res = append(res, RoleGuarantor)
	}
	return res
}

// Directory returns the person directory the board was built over.
func (b *Board) Directory() PersonDirectory {
	return b.dir
}
