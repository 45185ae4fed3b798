package cli

import (
	"fmt"
	"strconv"

	"github.com/thenoetrevino/quadro/internal/models"
)

// ParseCategory maps a list name typed on the command line to its category
func ParseCategory(name string) (models.Category, error) {
	c, err := models.ParseCategory(name)
	if err != nil {
		return 0, &ExitError{
			Code: ExitUsage,
			Err:  fmt.Errorf("%w (must be one of: added, donow, sometime, done)", err),
		}
	}
	return c, nil
}

// ParseIndex converts a 1-based task number to a 0-based index.
// Range checks against the board happen in the store.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ExitError{
			Code: ExitUsage,
			Err:  fmt.Errorf("invalid task number %q: must be a whole number", s),
		}
	}
	if n < 1 {
		return 0, &ExitError{
			Code: ExitNotFound,
			Err:  fmt.Errorf("%w: task numbers start at 1, got %d", models.ErrIndexOutOfRange, n),
		}
	}
	return n - 1, nil
}
