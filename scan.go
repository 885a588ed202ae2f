package cfgdoc

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
)

// Scan decodes the named section into target, which must be a non-nil
// pointer to a struct or map. Pass the empty string to scan the unnamed
// section. Struct fields are matched by their lowercased name or via the
// "cfg" tag. A missing section fails with ErrNotFound, a field that cannot
// hold its entry's value with ErrConversion.
func (d *Document) Scan(section string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	s, err := d.GetSection(section)
	if err != nil {
		return err
	}

	data := make(map[string]any, s.Len())
	for _, e := range s.Entries() {
		data[e.Name()] = e.Value().Interface()
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "cfg",
		WeaklyTypedInput: true,
		DecodeHook:       decimalDecodeHook(),
		ZeroFields:       true,
	})
	if err != nil {
		return fmt.Errorf("scan decoder: %w", err)
	}

	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("%w: section %q: %v", ErrConversion, section, err)
	}

	return nil
}

// decimalDecodeHook lets stored decimals land in the numeric or string
// fields of the target struct.
func decimalDecodeHook() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f != reflect.TypeOf(decimal.Decimal{}) || t == f {
			return data, nil
		}

		dec := data.(decimal.Decimal)
		switch t.Kind() {
		case reflect.String:
			return dec.String(), nil
		case reflect.Float32, reflect.Float64:
			return dec.InexactFloat64(), nil
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if !dec.IsInteger() || !dec.BigInt().IsInt64() {
				return nil, fmt.Errorf("decimal %s does not fit an integer field", dec)
			}

			return dec.IntPart(), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if !dec.IsInteger() || dec.IsNegative() || !dec.BigInt().IsUint64() {
				return nil, fmt.Errorf("decimal %s does not fit an unsigned field", dec)
			}

			return dec.BigInt().Uint64(), nil
		default:
			return data, nil
		}
	}
}
