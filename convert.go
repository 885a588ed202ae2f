package cfgdoc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// KeyValue returns the value stored at section/key converted to T, or def
// when the section or the key does not exist.
//
// The convertible targets are a closed set: bool, every signed and unsigned
// integer width, float32, float64, decimal.Decimal, time.Time, string and
// any. A target outside that set fails with ErrUnsupportedType before any
// lookup is attempted. A stored value that cannot be represented as T
// (format error, overflow, null into a concrete type) fails with
// ErrConversion.
func KeyValue[T any](d *Document, section, key string, def T) (T, error) {
	var zero T
	if !convertibleTo(any(zero)) {
		return zero, fmt.Errorf("%w: conversion target %T", ErrUnsupportedType, zero)
	}

	sec, ok := d.lookup(section)
	if !ok {
		return def, nil
	}

	e, ok := sec.Lookup(key)
	if !ok {
		return def, nil
	}

	out, err := convertValue(e.Value(), any(zero))
	if err != nil {
		return zero, err
	}

	// comma-ok form: a null value converts to a nil any, and a plain
	// assertion on a nil interface panics even for T = any
	res, _ := out.(T)

	return res, nil
}

// convertibleTo reports whether target belongs to the closed conversion set.
// A nil target stands for the generic any kind.
func convertibleTo(target any) bool {
	switch target.(type) {
	case nil, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		decimal.Decimal, time.Time, string:
		return true
	default:
		return false
	}
}

// convertValue coerces v into the concrete type of target. The returned any
// holds exactly that type, or is nil for a null value and the any target.
func convertValue(v Value, target any) (any, error) {
	switch target.(type) {
	case nil:
		return v.Interface(), nil
	case string:
		return v.String(), nil
	case bool:
		return v.toBool()
	case decimal.Decimal:
		return v.toDecimal()
	case time.Time:
		return v.toTime()
	case float64:
		return v.toFloat()
	case float32:
		f, err := v.toFloat()
		if err != nil {
			return nil, err
		}
		if math.Abs(f) > math.MaxFloat32 {
			return nil, convErr(v, "float32")
		}

		return float32(f), nil
	case int:
		i, err := v.toInt(math.MinInt, math.MaxInt)

		return int(i), err
	case int8:
		i, err := v.toInt(math.MinInt8, math.MaxInt8)

		return int8(i), err
	case int16:
		i, err := v.toInt(math.MinInt16, math.MaxInt16)

		return int16(i), err
	case int32:
		i, err := v.toInt(math.MinInt32, math.MaxInt32)

		return int32(i), err
	case int64:
		return v.toInt(math.MinInt64, math.MaxInt64)
	case uint:
		u, err := v.toUint(math.MaxUint)

		return uint(u), err
	case uint8:
		u, err := v.toUint(math.MaxUint8)

		return uint8(u), err
	case uint16:
		u, err := v.toUint(math.MaxUint16)

		return uint16(u), err
	case uint32:
		u, err := v.toUint(math.MaxUint32)

		return uint32(u), err
	case uint64:
		return v.toUint(math.MaxUint64)
	default:
		// convertibleTo guards every caller.
		return nil, fmt.Errorf("%w: conversion target %T", ErrUnsupportedType, target)
	}
}

func convErr(v Value, want string) error {
	return fmt.Errorf("%w: cannot convert %s %q to %s", ErrConversion, v.kind, v.String(), want)
}

func (v Value) toBool() (bool, error) {
	switch v.kind {
	case KindBool:
		return v.b, nil
	case KindString:
		if strings.EqualFold(v.str, "true") {
			return true, nil
		}
		if strings.EqualFold(v.str, "false") {
			return false, nil
		}
	}

	return false, convErr(v, "bool")
}

func (v Value) toDecimal() (decimal.Decimal, error) {
	switch v.kind {
	case KindDecimal:
		return v.dec, nil
	case KindInt:
		return decimal.NewFromInt(v.i), nil
	case KindString:
		d, err := decimal.NewFromString(v.str)
		if err != nil {
			return decimal.Decimal{}, convErr(v, "decimal")
		}

		return d, nil
	}

	return decimal.Decimal{}, convErr(v, "decimal")
}

func (v Value) toTime() (time.Time, error) {
	if v.kind != KindString {
		return time.Time{}, convErr(v, "time")
	}

	t, err := time.Parse(time.RFC3339, v.str)
	if err != nil {
		return time.Time{}, convErr(v, "time")
	}

	return t, nil
}

func (v Value) toFloat() (float64, error) {
	switch v.kind {
	case KindDecimal:
		return v.dec.InexactFloat64(), nil
	case KindInt:
		return float64(v.i), nil
	case KindString:
		f, err := strconv.ParseFloat(v.str, 64)
		if err != nil {
			return 0, convErr(v, "float")
		}

		return f, nil
	}

	return 0, convErr(v, "float")
}

func (v Value) toInt(min, max int64) (int64, error) {
	var i int64
	switch v.kind {
	case KindInt:
		i = v.i
	case KindDecimal:
		if !v.dec.IsInteger() {
			return 0, convErr(v, "integer")
		}
		bi := v.dec.BigInt()
		if !bi.IsInt64() {
			return 0, convErr(v, "integer")
		}
		i = bi.Int64()
	case KindString:
		var err error
		i, err = strconv.ParseInt(v.str, 10, 64)
		if err != nil {
			return 0, convErr(v, "integer")
		}
	default:
		return 0, convErr(v, "integer")
	}

	if i < min || i > max {
		return 0, convErr(v, "integer")
	}

	return i, nil
}

func (v Value) toUint(max uint64) (uint64, error) {
	var u uint64
	switch v.kind {
	case KindInt:
		if v.i < 0 {
			return 0, convErr(v, "unsigned integer")
		}
		u = uint64(v.i)
	case KindDecimal:
		if !v.dec.IsInteger() || v.dec.IsNegative() {
			return 0, convErr(v, "unsigned integer")
		}
		bi := v.dec.BigInt()
		if !bi.IsUint64() {
			return 0, convErr(v, "unsigned integer")
		}
		u = bi.Uint64()
	case KindString:
		var err error
		u, err = strconv.ParseUint(v.str, 10, 64)
		if err != nil {
			return 0, convErr(v, "unsigned integer")
		}
	default:
		return 0, convErr(v, "unsigned integer")
	}

	if u > max {
		return 0, convErr(v, "unsigned integer")
	}

	return u, nil
}
