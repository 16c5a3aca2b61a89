// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "fmt"

// Choice is a named option on a voting paper. Choices are immutable values
// compared by name, so they work directly as map keys. The zero Choice is
// invalid and stands for "no choice".
type Choice struct {
	name string
}

// NewChoice builds a Choice with the given name.
func NewChoice(name string) (Choice, error) {
	if name == "" {
		return Choice{}, fmt.Errorf("%w: choice name is required", ErrMissingValue)
	}
	return Choice{name: name}, nil
}

// Name returns the choice's name.
func (c Choice) Name() string {
	return c.name
}

// IsZero reports whether this is the zero ("no choice") value.
func (c Choice) IsZero() bool {
	return c.name == ""
}

func (c Choice) String() string {
	return fmt.Sprintf("Choice[%q]", c.name)
}
