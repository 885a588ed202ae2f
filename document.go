package cfgdoc

import (
	"fmt"
	"slices"
	"sort"

	"github.com/gopasspw/gopass/pkg/debug"
)

// Document is the full ordered collection of sections. Section names are
// unique; insertion order is preserved and visible on re-save.
//
// The same container exposes two lookup paths with opposite failure policy:
// GetOrCreate creates a missing section as a side effect, GetSection fails
// with ErrNotFound instead. Pick deliberately at the call site.
//
// Note: Document is not safe for concurrent mutation from multiple
// goroutines. Callers must serialize access externally.
type Document struct {
	sections []*Section
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// NewNamed returns a document with one empty section per name, in order.
// Repeated names are created once.
func NewNamed(names ...string) *Document {
	d := New()
	d.AddSectionNames(names...)

	return d
}

// NewFrom returns a document holding the given sections, folded in order
// with the AddSection merge rule.
func NewFrom(sections ...*Section) *Document {
	d := New()
	d.AddSections(sections...)

	return d
}

func (d *Document) lookup(name string) (*Section, bool) {
	for _, s := range d.sections {
		if s.name == name {
			return s, true
		}
	}

	return nil, false
}

// GetOrCreate returns the section with the given name, creating and
// appending an empty one when absent.
func (d *Document) GetOrCreate(name string) *Section {
	if s, ok := d.lookup(name); ok {
		return s
	}

	s := NewSection(name)
	d.sections = append(d.sections, s)

	return s
}

// SectionAt returns the section at index i.
func (d *Document) SectionAt(i int) (*Section, error) {
	if i < 0 || i >= len(d.sections) {
		return nil, fmt.Errorf("section index %d: %w", i, ErrOutOfRange)
	}

	return d.sections[i], nil
}

// GetSection returns the named section or ErrNotFound. It never creates.
func (d *Document) GetSection(name string) (*Section, error) {
	s, ok := d.lookup(name)
	if !ok {
		return nil, fmt.Errorf("section %q: %w", name, ErrNotFound)
	}

	return s, nil
}

// GetKey returns the entry stored at section/key or ErrNotFound.
func (d *Document) GetKey(section, key string) (*Entry, error) {
	s, err := d.GetSection(section)
	if err != nil {
		return nil, err
	}

	e, ok := s.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("key %q in section %q: %w", key, section, ErrNotFound)
	}

	return e, nil
}

// GetKeys returns all entries of the named section or ErrNotFound.
func (d *Document) GetKeys(section string) ([]*Entry, error) {
	s, err := d.GetSection(section)
	if err != nil {
		return nil, err
	}

	return s.Entries(), nil
}

// AddSection appends s when no section with its name exists. Otherwise the
// two are merged: every entry of s whose name is unknown to the existing
// section is appended, and existing entries win. Repeated AddSection calls
// therefore accumulate instead of overwriting.
func (d *Document) AddSection(s *Section) {
	if s == nil {
		return
	}

	existing, ok := d.lookup(s.name)
	if !ok {
		d.sections = append(d.sections, s)

		return
	}

	for _, e := range s.Entries() {
		if !existing.Has(e.name) {
			existing.entries = append(existing.entries, e)
		}
	}
}

// AddSectionName creates an empty section when absent; otherwise a no-op.
func (d *Document) AddSectionName(name string) {
	if _, ok := d.lookup(name); !ok {
		d.sections = append(d.sections, NewSection(name))
	}
}

// Add stores value under section/key. The section is created when missing.
// An existing key is left untouched: the first write wins, use SetKeyValue
// to overwrite. Empty section or key names fail with ErrEmptyName.
func (d *Document) Add(section, key string, value any) error {
	if section == "" {
		return fmt.Errorf("section name: %w", ErrEmptyName)
	}
	if key == "" {
		return fmt.Errorf("key name: %w", ErrEmptyName)
	}

	v, err := NewValue(value)
	if err != nil {
		return err
	}

	s := d.GetOrCreate(section)
	if s.Has(key) {
		debug.V(3).Log("key %q already present in section %q, keeping existing value", key, section)

		return nil
	}
	s.entries = append(s.entries, &Entry{name: key, value: v})

	return nil
}

// AddSectionNames creates an empty section for every name not yet present.
func (d *Document) AddSectionNames(names ...string) {
	for _, n := range names {
		d.AddSectionName(n)
	}
}

// AddSections folds every given section into the document via AddSection.
func (d *Document) AddSections(sections ...*Section) {
	for _, s := range sections {
		d.AddSection(s)
	}
}

// Pair is a key/value tuple for AddPairs.
type Pair struct {
	Key   string
	Value any
}

// AddPairs adds the pairs under one section, in order, with Add semantics.
func (d *Document) AddPairs(section string, pairs ...Pair) error {
	for _, p := range pairs {
		if err := d.Add(section, p.Key, p.Value); err != nil {
			return err
		}
	}

	return nil
}

// AddMap adds the mapping under one section with Add semantics. Keys are
// applied in sorted order so repeated calls behave deterministically.
func (d *Document) AddMap(section string, values map[string]any) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := d.Add(section, k, values[k]); err != nil {
			return err
		}
	}

	return nil
}

// Insert places s at index i, shifting later sections. A duplicate section
// name or an index outside [0, Len()-1] is silently dropped.
func (d *Document) Insert(i int, s *Section) {
	if s == nil || i < 0 || i >= len(d.sections) {
		return
	}
	if _, ok := d.lookup(s.name); ok {
		return
	}
	d.sections = slices.Insert(d.sections, i, s)
}

// Remove deletes the named section, reporting whether it existed. The
// document is unchanged when it did not.
func (d *Document) Remove(name string) bool {
	for i, s := range d.sections {
		if s.name == name {
			d.sections = slices.Delete(d.sections, i, i+1)

			return true
		}
	}

	return false
}

// RemoveKey deletes one key from the named section, reporting whether it
// existed.
func (d *Document) RemoveKey(section, key string) bool {
	s, ok := d.lookup(section)
	if !ok {
		return false
	}

	return s.Remove(key)
}

// RemoveAt deletes the section at index i. ErrOutOfRange is returned only
// when the index is actually invalid.
func (d *Document) RemoveAt(i int) error {
	if i < 0 || i >= len(d.sections) {
		return fmt.Errorf("section index %d: %w", i, ErrOutOfRange)
	}
	d.sections = slices.Delete(d.sections, i, i+1)

	return nil
}

// RenameSection renames a section in place, keeping its position. A missing
// source or an already taken new name leaves the document unchanged.
func (d *Document) RenameSection(name, newName string) {
	if d.Contains(newName) {
		return
	}
	if s, ok := d.lookup(name); ok {
		s.name = newName
	}
}

// RenameKey renames a key within a section in place, keeping its position.
// A missing section or key, or an already taken new name, is a no-op.
func (d *Document) RenameKey(section, key, newKey string) {
	if newKey == "" {
		return
	}

	s, ok := d.lookup(section)
	if !ok || s.Has(newKey) {
		return
	}
	if e, ok := s.Lookup(key); ok {
		e.name = newKey
	}
}

// SetKeyValue stores value under section/key, creating the section and the
// key as needed and overwriting an existing value in place. This is the
// upsert counterpart to Add.
func (d *Document) SetKeyValue(section, key string, value any) error {
	if section == "" {
		return fmt.Errorf("section name: %w", ErrEmptyName)
	}
	if key == "" {
		return fmt.Errorf("key name: %w", ErrEmptyName)
	}

	v, err := NewValue(value)
	if err != nil {
		return err
	}

	s := d.GetOrCreate(section)
	if e, ok := s.Lookup(key); ok {
		e.value = v

		return nil
	}
	s.entries = append(s.entries, &Entry{name: key, value: v})

	return nil
}

// Contains reports whether a section with the given name exists.
func (d *Document) Contains(name string) bool {
	_, ok := d.lookup(name)

	return ok
}

// ContainsKey reports whether section/key exists.
func (d *Document) ContainsKey(section, key string) bool {
	s, ok := d.lookup(section)

	return ok && s.Has(key)
}

// ContainsSection reports whether s is present, by identity or name.
func (d *Document) ContainsSection(s *Section) bool {
	return d.IndexOfSection(s) >= 0
}

// IndexOf returns the position of the named section, or -1.
func (d *Document) IndexOf(name string) int {
	for i, s := range d.sections {
		if s.name == name {
			return i
		}
	}

	return -1
}

// IndexOfSection returns the position of s, matching by identity first and
// name second, or -1.
func (d *Document) IndexOfSection(s *Section) int {
	if s == nil {
		return -1
	}
	for i, x := range d.sections {
		if x == s {
			return i
		}
	}

	return d.IndexOf(s.name)
}

// Len returns the number of sections.
func (d *Document) Len() int { return len(d.sections) }

// Clear removes all sections.
func (d *Document) Clear() { d.sections = nil }

// Sections returns the sections in insertion order. The slice is a snapshot:
// mutating the document while ranging over it does not disturb the
// iteration.
func (d *Document) Sections() []*Section {
	return slices.Clone(d.sections)
}

// Names returns the section names in insertion order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.sections))
	for _, s := range d.sections {
		names = append(names, s.name)
	}

	return names
}

// Merge folds every section of other into d with the AddSection rule:
// sections unknown to d are appended, known ones keep their existing entries
// and gain only the new keys.
func (d *Document) Merge(other *Document) {
	if other == nil {
		return
	}
	for _, s := range other.Sections() {
		d.AddSection(s)
	}
}
