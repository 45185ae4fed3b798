package models

import (
	"fmt"
	"strings"
)

// Category identifies one of the four fixed task lists on the board.
// The numeric order is the display and serialization order.
type Category int

const (
	Added Category = iota
	DoNow
	Sometime
	Done
)

// NumCategories is the number of lists on a board
const NumCategories = 4

var displayNames = [NumCategories]string{
	"TODO – Added",
	"TODO – Do Now",
	"TODO – Sometime",
	"DONE",
}

var shortNames = [NumCategories]string{
	"added",
	"donow",
	"sometime",
	"done",
}

// Categories returns all categories in board order
func Categories() []Category {
	return []Category{Added, DoNow, Sometime, Done}
}

// Valid reports whether c is one of the four known categories
func (c Category) Valid() bool {
	return c >= Added && c <= Done
}

// DisplayName returns the column title, which is also the key used in the
// persisted board file.
func (c Category) DisplayName() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return displayNames[c]
}

// String returns the short name accepted on the command line
func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return shortNames[c]
}

// Next returns the category to the right of c, or false if c is the last one
func (c Category) Next() (Category, bool) {
	if !c.Valid() || c == Done {
		return c, false
	}
	return c + 1, true
}

// Prev returns the category to the left of c, or false if c is the first one
func (c Category) Prev() (Category, bool) {
	if !c.Valid() || c == Added {
		return c, false
	}
	return c - 1, true
}

// CategoryFromDisplayName maps a persisted key back to its category.
// Matching is exact since display names are the file format.
func CategoryFromDisplayName(name string) (Category, bool) {
	for i, n := range displayNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

// ParseCategory resolves user input to a category.
// Accepts short names ("added", "do-now", "DONE") and exact display names.
func ParseCategory(s string) (Category, error) {
	if c, ok := CategoryFromDisplayName(s); ok {
		return c, nil
	}

	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)
	for i, n := range shortNames {
		if n == normalized {
			return Category(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownCategory, s, strings.Join(shortNames[:], ", "))
}
