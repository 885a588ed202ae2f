package cfgdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gopasspw/gopass/pkg/debug"
)

// LoadFile reads and decodes one file in the given format.
func LoadFile(path string, format Format) (*Document, error) {
	c, err := format.Codec()
	if err != nil {
		return nil, err
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close() //nolint:errcheck

	d, err := c.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	debug.V(1).Log("loaded %s document from %s", format, path)

	return d, nil
}

// MergeFile loads the file as a fresh document and merges it into d.
// Sections already known to d keep their entries; only new keys are added.
func (d *Document) MergeFile(path string, format Format) error {
	nd, err := LoadFile(path, format)
	if err != nil {
		return err
	}
	d.Merge(nd)

	return nil
}

// LoadFiles loads every path in the shared format and merges them in order.
// Earlier files win on conflicting keys.
func LoadFiles(format Format, paths ...string) (*Document, error) {
	d := New()
	for _, p := range paths {
		if err := d.MergeFile(p, format); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// LoadFileMap loads every path in its own format and merges them. Paths are
// processed in sorted order so conflicts resolve deterministically.
func LoadFileMap(files map[string]Format) (*Document, error) {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	d := New()
	for _, p := range paths {
		if err := d.MergeFile(p, files[p]); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// WriteFile encodes the document and writes it to path, creating parent
// directories as needed and truncating any existing file. The write is not
// atomic: a crash mid-write can leave a partial file behind.
func (d *Document) WriteFile(path string, format Format) error {
	c, err := format.Codec()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create directory %q for %q: %w", filepath.Dir(path), path, err)
	}

	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open %q for writing: %w", path, err)
	}

	if err := c.Encode(fh, d); err != nil {
		fh.Close() //nolint:errcheck

		return fmt.Errorf("failed to write document to %q: %w", path, err)
	}

	debug.V(1).Log("wrote %s document to %s", format, path)

	return fh.Close()
}
