// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "time"

// Person is a registered elector. Identity is the SSN alone: two Person
// values with the same SSN refer to the same elector regardless of the
// other fields. The core never mutates a Person; the registry owns them.
type Person struct {
	SSN        string
	FirstName  string
	LastName   string
	BirthDate  time.Time
	BirthPlace string
	Enabled    bool
	PwHash     string
}

// Age returns the person's age in whole years as of now.
func (p *Person) Age() int {
	now := time.Now()
	years := now.Year() - p.BirthDate.Year()
	if now.Month() < p.BirthDate.Month() ||
		(now.Month() == p.BirthDate.Month() && now.Day() < p.BirthDate.Day()) {
		years--
	}
	return years
}

// Same reports whether both persons refer to the same elector (same SSN).
// Either side may be nil.
func (p *Person) Same(other *Person) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.SSN == other.SSN
}

// PersonDirectory is the external person lookup service. The core only
// reads from it: FindByID resolves a single elector (nil, nil when there is
// no such person) and FindAll enumerates every registered elector for
// eligibility counting.
type PersonDirectory interface {
	FindByID(ssn string) (*Person, error)
	FindAll() ([]*Person, error)
}
