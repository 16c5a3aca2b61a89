// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "fmt"

// Method is the election method of a voting paper and of the votes cast on
// it. A paper only accepts votes built for its own method.
type Method string

const (
	// MethodCategorical: the elector picks exactly one choice.
	MethodCategorical Method = "categorical"
	// MethodOrdinal: the elector ranks the choices from most to least
	// preferred.
	MethodOrdinal Method = "ordinal"
	// MethodPreferenced: the elector picks one choice, which may open a
	// second vote on that choice's own sub-paper.
	MethodPreferenced Method = "preferenced"
	// MethodReferendum: categorical over two choices by convention,
	// typically yes and no. The two-choice convention is not enforced.
	MethodReferendum Method = "referendum"
)

// ParseMethod converts a wire string into a Method.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodCategorical, MethodOrdinal, MethodPreferenced, MethodReferendum:
		return Method(s), nil
	}
	return "", fmt.Errorf("%w: unknown election method %q", ErrInvalidArgument, s)
}

// Vote is an immutable ballot submission, one of the four method variants.
// A vote has no reference to a paper; the paper checks compatibility by
// method when the vote is cast. The zero Vote is invalid.
//
// Scoring per variant:
//
//   - categorical, referendum, preferenced: 1 for the chosen choice, 0 for
//     every other.
//   - ordinal: len(order)-1 for the most preferred choice down to 0 for the
//     least, and 0 for a choice not in the order at all.
type Vote struct {
	method Method
	chosen Choice   // categorical, referendum, preferenced
	order  []Choice // ordinal
	sub    *Vote    // preferenced only; optional vote for the sub-paper
}

// NewCategoricalVote builds a vote for a categorical election.
func NewCategoricalVote(chosen Choice) (Vote, error) {
	if chosen.IsZero() {
		return Vote{}, fmt.Errorf("%w: chosen choice is required", ErrMissingValue)
	}
	return Vote{method: MethodCategorical, chosen: chosen}, nil
}

// NewReferendumVote builds a vote for a referendum. The choice is assumed
// to be yes or no.
func NewReferendumVote(chosen Choice) (Vote, error) {
	if chosen.IsZero() {
		return Vote{}, fmt.Errorf("%w: chosen choice is required", ErrMissingValue)
	}
	return Vote{method: MethodReferendum, chosen: chosen}, nil
}

// NewOrdinalVote builds a vote from an ordered list of choices, most to
// least preferred. No choice may appear twice.
func NewOrdinalVote(order []Choice) (Vote, error) {
	if order == nil {
		return Vote{}, fmt.Errorf("%w: choice order is required", ErrMissingValue)
	}
	seen := make(map[Choice]struct{}, len(order))
	for _, c := range order {
		if c.IsZero() {
			return Vote{}, fmt.Errorf("%w: choice order contains an empty choice", ErrMissingValue)
		}
		if _, dup := seen[c]; dup {
			return Vote{}, fmt.Errorf("%w: duplicate choice %q in order", ErrInvalidArgument, c.Name())
		}
		seen[c] = struct{}{}
	}
	cp := make([]Choice, len(order))
	copy(cp, order)
	return Vote{method: MethodOrdinal, order: cp}, nil
}

// NewPreferencedVote builds a vote for a preferenced election. sub is the
// optional vote for the sub-paper opened by the chosen choice; it is
// carried along for the caller's convenience but is cast on the sub-paper
// as its own independent vote and never contributes to this vote's score.
func NewPreferencedVote(chosen Choice, sub *Vote) (Vote, error) {
	if chosen.IsZero() {
		return Vote{}, fmt.Errorf("%w: chosen choice is required", ErrMissingValue)
	}
	return Vote{method: MethodPreferenced, chosen: chosen, sub: sub}, nil
}

// Method returns the election method this vote is compatible with.
func (v Vote) Method() Method {
	return v.method
}

// Chosen returns the chosen choice of a categorical, referendum or
// preferenced vote, and the zero Choice for an ordinal vote.
func (v Vote) Chosen() Choice {
	return v.chosen
}

// Sub returns the embedded sub-paper vote of a preferenced vote, or nil.
func (v Vote) Sub() *Vote {
	return v.sub
}

// IsZero reports whether this is the zero ("no vote") value.
func (v Vote) IsZero() bool {
	return v.method == ""
}

// Score returns this vote's score contribution for the given choice.
func (v Vote) Score(c Choice) int {
	switch v.method {
	case MethodOrdinal:
		for i, o := range v.order {
			if o == c {
				return len(v.order) - i - 1
			}
		}
		return 0
	default:
		if v.chosen == c {
			return 1
		}
		return 0
	}
}
