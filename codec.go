package cfgdoc

import (
	"fmt"
	"io"
)

// A Codec is a stateless transformer between a Document and one textual
// representation. Decode never returns a partially populated document:
// callers get either a fully decoded document or an error.
type Codec interface {
	Encode(w io.Writer, d *Document) error
	Decode(r io.Reader) (*Document, error)
}

// Format names one of the supported textual representations.
type Format string

const (
	FormatINI  Format = "ini"
	FormatXML  Format = "xml"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Codec returns the codec for the format.
func (f Format) Codec() (Codec, error) {
	switch f {
	case FormatINI:
		return INI{}, nil
	case FormatXML:
		return XML{}, nil
	case FormatTOML:
		return TOML{}, nil
	case FormatYAML:
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("%w: format %q", ErrUnsupportedType, string(f))
	}
}

// nativeScalar maps a stored value onto the native scalar types of the
// tree-shaped codecs (TOML, YAML). Integral decimals that fit int64 are
// written as integers, other decimals as float64 (which may lose precision),
// and null as the literal string "null".
func nativeScalar(v Value) any {
	switch v.Kind() {
	case KindBool, KindInt, KindString:
		return v.Interface()
	case KindDecimal:
		if v.dec.IsInteger() && v.dec.BigInt().IsInt64() {
			return v.dec.IntPart()
		}

		return v.dec.InexactFloat64()
	default:
		return v.String()
	}
}

// addDecoded stores one decoded key under the named section, replacing an
// earlier entry with the same name (last write wins, as everywhere else in
// decoding).
func addDecoded(d *Document, section, key string, raw any) error {
	if key == "" {
		return fmt.Errorf("%w: empty key in section %q", ErrDecode, section)
	}

	v, err := NewValue(raw)
	if err != nil {
		return fmt.Errorf("%w: key %q in section %q: %v", ErrDecode, key, section, err)
	}
	d.GetOrCreate(section).Set(key, &Entry{name: key, value: v})

	return nil
}
