package cell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFilter is returned for a filter expression without a field key.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter keeps cells whose value for Field contains Substring. Matching is a
// case-sensitive, unanchored substring search.
type Filter struct {
	Field     Field
	Substring string
}

// ParseFilter parses "KEY=SUBSTRING", e.g. "e=Gue". The substring may be
// empty and may itself contain "=".
func ParseFilter(expr string) (*Filter, error) {
	key, sub, ok := strings.Cut(expr, "=")
	if !ok {
		return nil, fmt.Errorf("%w: %q (want KEY=SUBSTRING)", ErrInvalidFilter, expr)
	}
	f, err := ParseField(strings.TrimSpace(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return &Filter{Field: f, Substring: sub}, nil
}

// Match reports whether c passes the filter. A nil filter matches every
// cell. A missing value counts as the empty string.
func (f *Filter) Match(c Cell) bool {
	if f == nil {
		return true
	}
	return strings.Contains(c.Value(f.Field), f.Substring)
}

func (f *Filter) String() string {
	if f == nil {
		return ""
	}
	return f.Field.Key() + "=" + f.Substring
}
