// Package cfgdoc implements an in-memory, ordered configuration document:
// named sections holding named key/value entries, with codecs for a classic
// INI text format and an equivalent XML tree, plus TOML and YAML bridges.
// Values are typed over a closed scalar set (boolean, integer,
// arbitrary-precision decimal, string, null); section and entry order is
// preserved and visible on re-save.
//
// # Usage
//
// Build a document directly and write it out:
//
//	d := cfgdoc.New()
//	d.Add("Server", "host", "localhost")
//	d.Add("Server", "port", 8080)
//	d.WriteFile("server.ini", cfgdoc.FormatINI)
//
// Or load, query with a typed default, and merge further files on top
// (existing keys win, new keys are added):
//
//	d, err := cfgdoc.LoadFile("server.ini", cfgdoc.FormatINI)
//	if err != nil { ... }
//	port, err := cfgdoc.KeyValue(d, "Server", "port", 80)
//	err = d.MergeFile("defaults.ini", cfgdoc.FormatINI)
//
// # Lookup policy
//
// Every container exposes two lookup paths with opposite failure policy.
// GetOrCreate auto-vivifies: reading a missing section or entry creates an
// empty one as a side effect. GetSection, GetKey and GetKeys fail with
// ErrNotFound instead. Pick deliberately at the call site.
//
// Similarly, Document.Add never overwrites (first write wins) while
// SetKeyValue is an upsert.
//
// # Error Handling
//
// Use errors.Is against the exported sentinels:
//
//	if err := d.Add("", "k", 1); errors.Is(err, cfgdoc.ErrEmptyName) {
//		// invalid argument
//	}
//
// ErrNotFound covers strict lookups, ErrOutOfRange index operations,
// ErrConversion failed typed reads, ErrUnsupportedType scalars or conversion
// targets outside the closed set, and ErrDecode malformed codec input.
// File-system errors propagate unchanged from the os package.
//
// # Known limitations
//
//   - Nested sections, arrays per key and schema validation are out of scope.
//   - INI values are not escaped beyond the %n newline substitution, so a
//     value containing ';' loses its tail to comment stripping on re-read.
//   - Inline comments survive encode but are discarded on decode.
//   - The XML, TOML and YAML forms never carry comments; XML decodes every
//     value as a string, TOML does not preserve section order.
//   - A Document is not safe for concurrent mutation; file writes are not
//     atomic.
package cfgdoc
