package cfgdoc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// YAML bridges the document to a YAML mapping of section name to key/value
// mapping, with the entries of the unnamed section at the top level. Unlike
// TOML, document order is preserved in both directions.
type YAML struct{}

// Encode writes the document as a YAML mapping.
func (YAML) Encode(w io.Writer, d *Document) error {
	root := yaml.MapSlice{}
	for _, s := range d.Sections() {
		if s.Name() == "" {
			for _, e := range s.Entries() {
				root = append(root, yaml.MapItem{Key: e.Name(), Value: nativeScalar(e.Value())})
			}

			continue
		}

		m := yaml.MapSlice{}
		for _, e := range s.Entries() {
			m = append(m, yaml.MapItem{Key: e.Name(), Value: nativeScalar(e.Value())})
		}
		root = append(root, yaml.MapItem{Key: s.Name(), Value: m})
	}

	data, err := yaml.Marshal(root)
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

// Decode parses a YAML mapping into a document. Top-level scalars form the
// unnamed section, every nested mapping becomes one section. Deeper nesting
// and sequences have no document counterpart and abort the decode.
func (YAML) Decode(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return New(), nil
	}

	var root yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	d := New()
	for _, item := range root {
		name := fmt.Sprint(item.Key)

		sub, isMapping := item.Value.(yaml.MapSlice)
		if !isMapping {
			if err := addDecoded(d, "", name, item.Value); err != nil {
				return nil, err
			}

			continue
		}

		s := d.GetOrCreate(name)
		for _, kv := range sub {
			key := fmt.Sprint(kv.Key)
			if _, nested := kv.Value.(yaml.MapSlice); nested {
				return nil, fmt.Errorf("%w: nested section %q.%q is not supported", ErrDecode, name, key)
			}
			if err := addDecoded(d, s.Name(), key, kv.Value); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
