// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "fmt"

// Decider grants or denies a person the right to vote on the paper it
// belongs to. Implementations are pure predicates with no side effects and
// must return false for a nil person.
type Decider interface {
	CanVote(p *Person) bool
}

// DefaultAgeThreshold is the voting age used by NewAdultDecider when no
// other threshold is wanted.
const DefaultAgeThreshold = 18

// AdultDecider lets only people at or above an age threshold vote.
type AdultDecider struct {
	threshold int
}

// NewAdultDecider builds an AdultDecider with the given age threshold.
func NewAdultDecider(threshold int) (AdultDecider, error) {
	if threshold < 0 {
		return AdultDecider{}, fmt.Errorf("%w: cannot use a negative age threshold", ErrInvalidArgument)
	}
	return AdultDecider{threshold: threshold}, nil
}

// CanVote reports whether p is old enough to vote. A nil person cannot.
func (d AdultDecider) CanVote(p *Person) bool {
	if p == nil {
		return false
	}
	return p.Age() >= d.threshold
}

func (d AdultDecider) String() string {
	return fmt.Sprintf("AdultDecider[ageThreshold=%d]", d.threshold)
}
