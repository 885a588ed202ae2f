package cfgdoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLDecode(t *testing.T) {
	t.Parallel()

	in := `greeting: hi
server:
  host: localhost
  port: 8080
  ratio: 0.5
  active: true
client:
  retries: 3
`

	d, err := YAML{}.Decode(strings.NewReader(in))
	require.NoError(t, err)

	want := []sectSnap{
		{Name: "", Entries: []kvSnap{
			{Key: "greeting", Kind: KindString, Val: "hi"},
		}},
		{Name: "server", Entries: []kvSnap{
			{Key: "host", Kind: KindString, Val: "localhost"},
			{Key: "port", Kind: KindInt, Val: "8080"},
			{Key: "ratio", Kind: KindDecimal, Val: "0.5"},
			{Key: "active", Kind: KindBool, Val: "true"},
		}},
		{Name: "client", Entries: []kvSnap{
			{Key: "retries", Kind: KindInt, Val: "3"},
		}},
	}
	if diff := cmp.Diff(want, snapshot(d)); diff != "" {
		t.Errorf("decoded document mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLRoundTripKeepsOrder(t *testing.T) {
	t.Parallel()

	d := New()
	require.NoError(t, d.Add("zeta", "z", 1))
	require.NoError(t, d.Add("alpha", "last", "first"))
	require.NoError(t, d.Add("zeta", "a", 2))

	var buf bytes.Buffer
	require.NoError(t, YAML{}.Encode(&buf, d))

	back, err := YAML{}.Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"zeta", "alpha"}, back.Names(), "insertion order survives")
	keys, err := back.GetKeys("zeta")
	require.NoError(t, err)
	require.Len(t, keys, 2)
	assert.Equal(t, "z", keys[0].Name())
	assert.Equal(t, "a", keys[1].Name())
}

func TestYAMLDecodeRejectsNesting(t *testing.T) {
	t.Parallel()

	_, err := YAML{}.Decode(strings.NewReader("a:\n  b:\n    c: 1\n"))
	require.ErrorIs(t, err, ErrDecode)
}

func TestYAMLDecodeEmpty(t *testing.T) {
	t.Parallel()

	d, err := YAML{}.Decode(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
}

func TestYAMLDecodeMalformed(t *testing.T) {
	t.Parallel()

	_, err := YAML{}.Decode(strings.NewReader("- just\n- a\n- sequence\n"))
	require.ErrorIs(t, err, ErrDecode)
}
