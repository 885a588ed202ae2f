package cfgdoc

import (
	"fmt"
	"slices"
)

// Section is an ordered, name-unique collection of entries. Insertion order
// is preserved and is visible on re-save.
//
// Note: Section is not safe for concurrent use. Callers must provide
// synchronization if needed.
type Section struct {
	name    string
	entries []*Entry
}

// NewSection creates an empty section. The empty name is valid: it denotes
// the default section that INI keys before any [section] header attach to.
func NewSection(name string) *Section {
	return &Section{name: name}
}

// Name returns the section name.
func (s *Section) Name() string { return s.name }

// GetOrCreate returns the entry with the given name. A missing entry is
// created with an empty string value and appended, so even a pure lookup
// mutates the section. Use Lookup when a miss must not create anything.
func (s *Section) GetOrCreate(name string) *Entry {
	if e, ok := s.Lookup(name); ok {
		return e
	}

	e := &Entry{name: name, value: StringValue("")}
	s.entries = append(s.entries, e)

	return e
}

// Lookup returns the entry with the given name without creating it.
func (s *Section) Lookup(name string) (*Entry, bool) {
	for _, e := range s.entries {
		if e.name == name {
			return e, true
		}
	}

	return nil, false
}

// Has reports whether an entry with the given name exists.
func (s *Section) Has(name string) bool {
	_, ok := s.Lookup(name)

	return ok
}

// Set replaces the entry carrying the given name in place, keeping its
// position, or appends e when no such entry exists.
func (s *Section) Set(name string, e *Entry) {
	for i, old := range s.entries {
		if old.name == name {
			s.entries[i] = e

			return
		}
	}

	s.entries = append(s.entries, e)
}

// EntryAt returns the entry at index i.
func (s *Section) EntryAt(i int) (*Entry, error) {
	if i < 0 || i >= len(s.entries) {
		return nil, fmt.Errorf("entry index %d: %w", i, ErrOutOfRange)
	}

	return s.entries[i], nil
}

// SetAt replaces the entry at index i.
func (s *Section) SetAt(i int, e *Entry) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("entry index %d: %w", i, ErrOutOfRange)
	}
	s.entries[i] = e

	return nil
}

// Insert places e at index i, shifting later entries. Indices outside
// [0, Len()-1] are ignored.
func (s *Section) Insert(i int, e *Entry) {
	if e == nil || i < 0 || i >= len(s.entries) {
		return
	}
	s.entries = slices.Insert(s.entries, i, e)
}

// RemoveAt removes the entry at index i.
func (s *Section) RemoveAt(i int) error {
	if i < 0 || i >= len(s.entries) {
		return fmt.Errorf("entry index %d: %w", i, ErrOutOfRange)
	}
	s.entries = slices.Delete(s.entries, i, i+1)

	return nil
}

// Add appends e unless the very same entry (same pointer, or equal name,
// value and comment) is already present. Entries sharing only the name are
// NOT deduplicated here; use Document.Add for name-based dedup.
func (s *Section) Add(e *Entry) {
	if e == nil || s.Contains(e) {
		return
	}
	s.entries = append(s.entries, e)
}

// Contains reports whether e is present, by identity or full equality.
func (s *Section) Contains(e *Entry) bool {
	return s.IndexOf(e) >= 0
}

// IndexOf returns the position of e, matching by identity or full equality,
// or -1 when absent.
func (s *Section) IndexOf(e *Entry) int {
	for i, x := range s.entries {
		if x == e || x.Equal(e) {
			return i
		}
	}

	return -1
}

// Remove deletes the entry with the given name, reporting whether it existed.
func (s *Section) Remove(name string) bool {
	for i, e := range s.entries {
		if e.name == name {
			s.entries = slices.Delete(s.entries, i, i+1)

			return true
		}
	}

	return false
}

// Len returns the number of entries.
func (s *Section) Len() int { return len(s.entries) }

// Clear removes all entries.
func (s *Section) Clear() { s.entries = nil }

// Entries returns the entries in insertion order. The slice is a snapshot:
// mutating the section while ranging over it does not disturb the iteration.
func (s *Section) Entries() []*Entry {
	return slices.Clone(s.entries)
}

// Keys returns the entry names in insertion order.
func (s *Section) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		keys = append(keys, e.name)
	}

	return keys
}
