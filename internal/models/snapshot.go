package models

// Snapshot is a detached copy of every list on the board.
// All four categories are always present; empty lists are non-nil.
type Snapshot map[Category][]string

// NewSnapshot returns a snapshot with four empty lists
func NewSnapshot() Snapshot {
	s := make(Snapshot, NumCategories)
	for _, c := range Categories() {
		s[c] = []string{}
	}
	return s
}

// Tasks returns the list for c. The returned slice is never nil.
func (s Snapshot) Tasks(c Category) []string {
	if tasks, ok := s[c]; ok && tasks != nil {
		return tasks
	}
	return []string{}
}

// Total returns the number of tasks across all lists
func (s Snapshot) Total() int {
	total := 0
	for _, c := range Categories() {
		total += len(s[c])
	}
	return total
}

// Clone returns a deep copy with all four categories present
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, NumCategories)
	for _, c := range Categories() {
		src := s[c]
		dst := make([]string, len(src))
		copy(dst, src)
		out[c] = dst
	}
	return out
}
