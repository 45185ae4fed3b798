// Package board holds the in-memory task board: four ordered lists of task
// text and the operations that mutate them.
package board

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/quadro/internal/models"
)

// Store is the mutable board. It is owned by a single UI loop and is not
// safe for concurrent use.
type Store struct {
	lists [models.NumCategories][]string
}

// New creates an empty board
func New() *Store {
	s := &Store{}
	for i := range s.lists {
		s.lists[i] = []string{}
	}
	return s
}

// FromSnapshot builds a board from a snapshot. The snapshot is copied.
func FromSnapshot(snap models.Snapshot) *Store {
	s := New()
	for _, c := range models.Categories() {
		src := snap[c]
		s.lists[c] = append(make([]string, 0, len(src)), src...)
	}
	return s
}

// Add appends text to the end of category c. The text is stored trimmed.
func (s *Store) Add(c models.Category, text string) error {
	if !c.Valid() {
		return fmt.Errorf("add task: %w: %d", models.ErrUnknownCategory, int(c))
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return models.ErrInvalidInput
	}

	s.lists[c] = append(s.lists[c], text)
	return nil
}

// Move removes the task at index in src and appends it to dst.
// When src == dst the task is relocated to the end of its own list.
// Both categories and the index are validated before anything changes.
func (s *Store) Move(src models.Category, index int, dst models.Category) error {
	if !src.Valid() || !dst.Valid() {
		return fmt.Errorf("move task: %w", models.ErrUnknownCategory)
	}
	if err := s.checkIndex(src, index); err != nil {
		return fmt.Errorf("move task: %w", err)
	}

	task := s.lists[src][index]
	s.lists[src] = remove(s.lists[src], index)
	s.lists[dst] = append(s.lists[dst], task)
	return nil
}

// DeleteAt removes the task at index in c
func (s *Store) DeleteAt(c models.Category, index int) error {
	if !c.Valid() {
		return fmt.Errorf("delete task: %w: %d", models.ErrUnknownCategory, int(c))
	}
	if err := s.checkIndex(c, index); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.lists[c] = remove(s.lists[c], index)
	return nil
}

// Snapshot returns a deep copy of all four lists
func (s *Store) Snapshot() models.Snapshot {
	snap := make(models.Snapshot, models.NumCategories)
	for _, c := range models.Categories() {
		snap[c] = s.Tasks(c)
	}
	return snap
}

// Tasks returns a copy of the list for c
func (s *Store) Tasks(c models.Category) []string {
	if !c.Valid() {
		return []string{}
	}
	out := make([]string, len(s.lists[c]))
	copy(out, s.lists[c])
	return out
}

// Task returns the text at index in c
func (s *Store) Task(c models.Category, index int) (string, error) {
	if !c.Valid() {
		return "", models.ErrUnknownCategory
	}
	if err := s.checkIndex(c, index); err != nil {
		return "", err
	}
	return s.lists[c][index], nil
}

// Len returns the number of tasks in c
func (s *Store) Len(c models.Category) int {
	if !c.Valid() {
		return 0
	}
	return len(s.lists[c])
}

// Total returns the number of tasks on the whole board
func (s *Store) Total() int {
	total := 0
	for _, l := range s.lists {
		total += len(l)
	}
	return total
}

func (s *Store) checkIndex(c models.Category, index int) error {
	if index < 0 || index >= len(s.lists[c]) {
		return fmt.Errorf("%w: %s has %d task(s), got index %d", models.ErrIndexOutOfRange, c, len(s.lists[c]), index)
	}
	return nil
}

// remove returns a new slice without the element at i. The original backing
// array is left untouched so earlier Tasks() copies stay valid.
func remove(list []string, i int) []string {
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}
