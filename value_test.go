package cfgdoc

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferValue(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Value{
		"true":      BoolValue(true),
		"TRUE":      BoolValue(true),
		"False":     BoolValue(false),
		"8080":      DecimalValue(decimal.NewFromInt(8080)),
		"-42":       DecimalValue(decimal.NewFromInt(-42)),
		"3.14":      DecimalValue(decimal.RequireFromString("3.14")),
		"localhost": StringValue("localhost"),
		"1h":        StringValue("1h"),
		"null":      StringValue("null"),
		"":          StringValue(""),
	} {
		got := InferValue(in)
		assert.True(t, want.Equal(got), "%q: want %s %q, got %s %q", in, want.Kind(), want, got.Kind(), got)
	}
}

func TestNewValueSupportedSet(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		in   any
		kind Kind
	}{
		{nil, KindNull},
		{true, KindBool},
		{int(7), KindInt},
		{int8(-3), KindInt},
		{int64(1 << 40), KindInt},
		{uint16(9), KindInt},
		{uint64(math.MaxUint64), KindDecimal},
		{float32(0.5), KindDecimal},
		{float64(2.25), KindDecimal},
		{decimal.RequireFromString("10.01"), KindDecimal},
		{"hello", KindString},
		{time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), KindString},
		{BoolValue(true), KindBool},
	} {
		v, err := NewValue(tc.in)
		require.NoError(t, err, "%#v", tc.in)
		assert.Equal(t, tc.kind, v.Kind(), "%#v", tc.in)
	}
}

func TestNewValueRejectsOpenTypes(t *testing.T) {
	t.Parallel()

	for _, in := range []any{
		[]string{"a"},
		map[string]int{},
		struct{}{},
		complex(1, 2),
		&struct{}{},
	} {
		_, err := NewValue(in)
		require.ErrorIs(t, err, ErrUnsupportedType, "%#v", in)
	}
}

func TestValueString(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		v    Value
		want string
	}{
		{NullValue(), "null"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{IntValue(-12), "-12"},
		{DecimalValue(decimal.RequireFromString("3.140")), "3.14"},
		{StringValue("plain"), "plain"},
		{StringValue(""), ""},
	} {
		assert.Equal(t, tc.want, tc.v.String())
	}
}

func TestValueTimeStoredAsRFC3339(t *testing.T) {
	t.Parallel()

	v, err := NewValue(time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T10:30:00Z", v.String())
}

func TestValueEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, DecimalValue(decimal.RequireFromString("1.50")).Equal(DecimalValue(decimal.RequireFromString("1.5"))))
	assert.True(t, NullValue().Equal(NullValue()))
	assert.False(t, IntValue(1).Equal(DecimalValue(decimal.NewFromInt(1))), "kinds differ")
	assert.False(t, StringValue("true").Equal(BoolValue(true)))
}

func TestValueInterface(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NullValue().Interface())
	assert.Equal(t, int64(5), IntValue(5).Interface())
	assert.Equal(t, "x", StringValue("x").Interface())
	assert.Equal(t, true, BoolValue(true).Interface())
}
