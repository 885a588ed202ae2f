package cfgdoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOMLDecode(t *testing.T) {
	t.Parallel()

	in := `
greeting = "hi"

[server]
host = "localhost"
port = 8080
ratio = 0.5
active = true
`

	d, err := TOML{}.Decode(strings.NewReader(in))
	require.NoError(t, err)

	want := []sectSnap{
		{Name: "", Entries: []kvSnap{
			{Key: "greeting", Kind: KindString, Val: "hi"},
		}},
		{Name: "server", Entries: []kvSnap{
			{Key: "active", Kind: KindBool, Val: "true"},
			{Key: "host", Kind: KindString, Val: "localhost"},
			{Key: "port", Kind: KindInt, Val: "8080"},
			{Key: "ratio", Kind: KindDecimal, Val: "0.5"},
		}},
	}
	if diff := cmp.Diff(want, snapshot(d)); diff != "" {
		t.Errorf("decoded document mismatch (-want +got):\n%s", diff)
	}
}

func TestTOMLDecodeRejectsNesting(t *testing.T) {
	t.Parallel()

	_, err := TOML{}.Decode(strings.NewReader("[a.b]\nk = 1\n"))
	require.ErrorIs(t, err, ErrDecode)

	_, err = TOML{}.Decode(strings.NewReader("[s]\nlist = [1, 2]\n"))
	require.ErrorIs(t, err, ErrDecode)

	_, err = TOML{}.Decode(strings.NewReader("not toml ["))
	require.ErrorIs(t, err, ErrDecode)
}

func TestTOMLRoundTrip(t *testing.T) {
	t.Parallel()

	// TOML output is sorted, so build the document pre-sorted to compare
	d := New()
	top, err := NewEntry("top", "level")
	require.NoError(t, err)
	d.GetOrCreate("").Add(top)
	require.NoError(t, d.Add("aaa", "count", 3))
	require.NoError(t, d.Add("aaa", "flag", true))
	require.NoError(t, d.Add("bbb", "name", "x"))
	require.NoError(t, d.Add("bbb", "ratio", 1.25))

	var buf bytes.Buffer
	require.NoError(t, TOML{}.Encode(&buf, d))

	back, err := TOML{}.Decode(&buf)
	require.NoError(t, err)

	want := []sectSnap{
		{Name: "", Entries: []kvSnap{
			{Key: "top", Kind: KindString, Val: "level"},
		}},
		{Name: "aaa", Entries: []kvSnap{
			{Key: "count", Kind: KindInt, Val: "3"},
			{Key: "flag", Kind: KindBool, Val: "true"},
		}},
		{Name: "bbb", Entries: []kvSnap{
			{Key: "name", Kind: KindString, Val: "x"},
			{Key: "ratio", Kind: KindDecimal, Val: "1.25"},
		}},
	}
	if diff := cmp.Diff(want, snapshot(back)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTOMLEncodeNull(t *testing.T) {
	t.Parallel()

	d := New()
	require.NoError(t, d.SetKeyValue("s", "nothing", nil))

	var buf bytes.Buffer
	require.NoError(t, TOML{}.Encode(&buf, d))
	assert.Contains(t, buf.String(), `nothing = "null"`, "null has no TOML counterpart")
}
