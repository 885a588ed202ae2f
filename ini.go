package cfgdoc

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gopasspw/gopass/pkg/debug"
)

// INI is the line-oriented textual codec. Lines are "[section]", blank,
// ";full-line comment" or "key=value[ ;inline comment]".
//
// Values get no escaping beyond the "%n" newline substitution, so a value
// containing ';' is cut off as a trailing comment on re-read. This is a
// known format limitation.
type INI struct{}

// Decode parses INI text into a document.
//
// Blank lines and lines starting with ';' are dropped. Everything from the
// first ';' of a remaining line on is stripped and its text discarded; the
// inline comment is NOT attached to the entry. A "[name]" line opens a
// section. Key lines before any section header attach to the section named
// "". Key lines split at the first '='; only the key side is trimmed, the
// value keeps its spacing, has every literal "%n" replaced by a newline and
// is then typed by InferValue. Duplicate keys within a section keep the last
// value.
//
// A key line without '=' or with an empty key aborts the decode with a line
// numbered error wrapping ErrDecode.
func (INI) Decode(r io.Reader) (*Document, error) {
	d := New()

	var current *Section

	s := bufio.NewScanner(r)
	lineno := 0
	for s.Scan() {
		lineno++
		raw := s.Text()

		if strings.TrimSpace(raw) == "" || strings.HasPrefix(raw, ";") {
			continue
		}

		line := raw
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			// only an inline comment was left on this line
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.TrimSpace(line[1 : len(line)-1])
			current = d.GetOrCreate(name)

			continue
		}

		k, v, found := strings.Cut(line, "=")
		if !found {
			return nil, fmt.Errorf("%w: line %d: missing '=' separator", ErrDecode, lineno)
		}
		key := strings.TrimSpace(k)
		if key == "" {
			return nil, fmt.Errorf("%w: line %d: empty key", ErrDecode, lineno)
		}
		value := strings.ReplaceAll(v, "%n", "\n")

		if current == nil {
			current = d.GetOrCreate("")
		}
		current.Set(key, &Entry{name: key, value: InferValue(value)})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrDecode, lineno, err)
	}

	debug.V(3).Log("decoded %d sections from ini", d.Len())

	return d, nil
}

// Encode writes the document as INI text: a "[name]" header per section,
// one "key=value" line per entry with embedded newlines folded to "%n" and
// " ;comment" appended when the entry carries one, and a blank line after
// each section. Null values render as the literal string "null".
//
// Encode then Decode reproduces section names, key names and string, boolean
// and decimal typed values exactly; integer values come back as decimals.
func (INI) Encode(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)

	for _, s := range d.Sections() {
		if _, err := fmt.Fprintf(bw, "[%s]\n", s.Name()); err != nil {
			return err
		}

		for _, e := range s.Entries() {
			v := e.Value().String()
			v = strings.ReplaceAll(v, "\r\n", "%n")
			v = strings.ReplaceAll(v, "\n", "%n")

			var err error
			if c := e.Comment(); c != "" {
				_, err = fmt.Fprintf(bw, "%s=%s ;%s\n", e.Name(), v, c)
			} else {
				_, err = fmt.Fprintf(bw, "%s=%s\n", e.Name(), v)
			}
			if err != nil {
				return err
			}
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
