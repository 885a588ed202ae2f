package cfgdoc

import (
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
)

// TOML bridges the document to TOML: one table per section, with the
// entries of the unnamed section at the top level of the tree.
//
// TOML tables are maps, so Encode writes sections and keys in sorted order
// and Decode reads them back sorted; use the INI or YAML codec when
// insertion order matters.
type TOML struct{}

// Encode writes the document as a TOML tree.
func (TOML) Encode(w io.Writer, d *Document) error {
	tree := make(map[string]any, d.Len())
	for _, s := range d.Sections() {
		if s.Name() == "" {
			for _, e := range s.Entries() {
				tree[e.Name()] = nativeScalar(e.Value())
			}

			continue
		}

		table := make(map[string]any, s.Len())
		for _, e := range s.Entries() {
			table[e.Name()] = nativeScalar(e.Value())
		}
		tree[s.Name()] = table
	}

	return toml.NewEncoder(w).Encode(tree)
}

// Decode parses a TOML tree into a document. Top-level scalars form the
// unnamed section, every table becomes one section. Nested tables and
// arrays have no document counterpart and abort the decode.
func (TOML) Decode(r io.Reader) (*Document, error) {
	tree := make(map[string]any)
	if _, err := toml.NewDecoder(r).Decode(&tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	names := make([]string, 0, len(tree))
	for k := range tree {
		names = append(names, k)
	}
	sort.Strings(names)

	d := New()

	// top-level scalars first, so the unnamed section leads the document
	for _, k := range names {
		if _, isTable := tree[k].(map[string]any); isTable {
			continue
		}
		if err := addDecoded(d, "", k, tree[k]); err != nil {
			return nil, err
		}
	}

	for _, name := range names {
		table, isTable := tree[name].(map[string]any)
		if !isTable {
			continue
		}

		s := d.GetOrCreate(name)

		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if _, nested := table[key].(map[string]any); nested {
				return nil, fmt.Errorf("%w: nested section %q.%q is not supported", ErrDecode, name, key)
			}
			if err := addDecoded(d, s.Name(), key, table[key]); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
