package cfgdoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies the scalar type stored in a Value.
type Kind uint8

const (
	// KindNull is the absent value. It renders as the literal string "null".
	KindNull Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindInt is a signed 64-bit integer.
	KindInt
	// KindDecimal is an arbitrary-precision decimal number.
	KindDecimal
	// KindString is a plain string.
	KindString
)

// String implements fmt.Stringer for debugging.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is one scalar of a closed set of kinds: null, boolean, integer,
// decimal or string. There is no open "anything" kind; inputs outside the
// supported set are rejected by NewValue. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	dec  decimal.Decimal
	str  string
}

// NullValue returns the null value.
func NullValue() Value { return Value{kind: KindNull} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{kind: KindBool, b: b} }

// IntValue returns an integer value.
func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

// DecimalValue returns a decimal value.
func DecimalValue(d decimal.Decimal) Value { return Value{kind: KindDecimal, dec: d} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NewValue converts a Go scalar into a Value. The accepted inputs are a
// closed set: booleans, all signed and unsigned integer widths, float32/64,
// decimal.Decimal, time.Time (stored as its RFC 3339 string), strings, nil
// and Value itself. Anything else fails with ErrUnsupportedType.
func NewValue(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return x, nil
	case bool:
		return BoolValue(x), nil
	case int:
		return IntValue(int64(x)), nil
	case int8:
		return IntValue(int64(x)), nil
	case int16:
		return IntValue(int64(x)), nil
	case int32:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case uint:
		if uint64(x) > math.MaxInt64 {
			return DecimalValue(decimal.NewFromUint64(uint64(x))), nil
		}
		return IntValue(int64(x)), nil
	case uint8:
		return IntValue(int64(x)), nil
	case uint16:
		return IntValue(int64(x)), nil
	case uint32:
		return IntValue(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return DecimalValue(decimal.NewFromUint64(x)), nil
		}
		return IntValue(int64(x)), nil
	case float32:
		return DecimalValue(decimal.NewFromFloat32(x)), nil
	case float64:
		return DecimalValue(decimal.NewFromFloat(x)), nil
	case decimal.Decimal:
		return DecimalValue(x), nil
	case time.Time:
		return StringValue(x.Format(time.RFC3339)), nil
	case string:
		return StringValue(x), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// InferValue types a raw text the way the INI decoder does: a strict boolean
// parse first (only "true" and "false", any case), then a decimal parse, and
// a plain string when both fail.
func InferValue(s string) Value {
	if strings.EqualFold(s, "true") {
		return BoolValue(true)
	}
	if strings.EqualFold(s, "false") {
		return BoolValue(false)
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return DecimalValue(d)
	}
	return StringValue(s)
}

// Kind returns the stored kind.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// String returns the display form of the value. Null renders as "null".
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindDecimal:
		return v.dec.String()
	default:
		return v.str
	}
}

// Interface returns the stored scalar as its native Go type: nil, bool,
// int64, decimal.Decimal or string.
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindDecimal:
		return v.dec
	default:
		return v.str
	}
}

// Equal reports whether both values have the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindDecimal:
		return v.dec.Equal(o.dec)
	default:
		return v.str == o.str
	}
}
