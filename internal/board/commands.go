package board

import (
	"fmt"

	"github.com/thenoetrevino/quadro/internal/models"
)

// Command is a single board mutation produced by a UI layer.
// Apply either changes the board completely or leaves it untouched.
type Command interface {
	Apply(s *Store) error
	String() string
}

// AddTask appends a new task to a list
type AddTask struct {
	Category models.Category
	Text     string
}

func (c AddTask) Apply(s *Store) error {
	return s.Add(c.Category, c.Text)
}

func (c AddTask) String() string {
	return fmt.Sprintf("add %q to %s", c.Text, c.Category)
}

// MoveTask is a completed drag and drop: the task at Index in From is
// dropped onto To and lands at the end of that list.
type MoveTask struct {
	From  models.Category
	Index int
	To    models.Category
}

func (c MoveTask) Apply(s *Store) error {
	return s.Move(c.From, c.Index, c.To)
}

func (c MoveTask) String() string {
	return fmt.Sprintf("move %s[%d] to %s", c.From, c.Index, c.To)
}

// DeleteTask removes the task at Index in Category
type DeleteTask struct {
	Category models.Category
	Index    int
}

func (c DeleteTask) Apply(s *Store) error {
	return s.DeleteAt(c.Category, c.Index)
}

func (c DeleteTask) String() string {
	return fmt.Sprintf("delete %s[%d]", c.Category, c.Index)
}
