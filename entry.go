package cfgdoc

import "fmt"

// Entry is a single named scalar with an optional inline comment. An entry
// is owned by exactly one section; its name is unique within that section.
type Entry struct {
	name    string
	value   Value
	comment string
}

// NewEntry creates an entry holding the given scalar. The name must be
// non-empty and the value must be one of the supported scalar types.
func NewEntry(name string, value any) (*Entry, error) {
	if name == "" {
		return nil, fmt.Errorf("entry name: %w", ErrEmptyName)
	}
	v, err := NewValue(value)
	if err != nil {
		return nil, err
	}
	return &Entry{name: name, value: v}, nil
}

// Name returns the entry name.
func (e *Entry) Name() string { return e.name }

// Value returns the stored scalar.
func (e *Entry) Value() Value { return e.value }

// Comment returns the inline comment, empty when none is set.
func (e *Entry) Comment() string { return e.comment }

// SetComment sets the inline comment.
func (e *Entry) SetComment(c string) { e.comment = c }

// SetValue replaces the stored scalar.
func (e *Entry) SetValue(value any) error {
	v, err := NewValue(value)
	if err != nil {
		return err
	}
	e.value = v

	return nil
}

// Equal reports whether both entries carry the same name, value and comment.
func (e *Entry) Equal(o *Entry) bool {
	if e == nil || o == nil {
		return e == o
	}

	return e.name == o.name && e.comment == o.comment && e.value.Equal(o.value)
}

// String renders the entry as "name: value", with " ;comment" appended when
// a comment is set.
func (e *Entry) String() string {
	if e.comment == "" {
		return fmt.Sprintf("%s: %s", e.name, e.value)
	}

	return fmt.Sprintf("%s: %s ;%s", e.name, e.value, e.comment)
}
