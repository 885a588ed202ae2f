package cfgdoc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverCfg struct {
	Host  string  `cfg:"host"`
	Port  int     `cfg:"port"`
	Debug bool    `cfg:"debug"`
	Ratio float64 `cfg:"ratio"`
}

func TestScanStruct(t *testing.T) {
	t.Parallel()

	in := "[server]\nhost=localhost\nport=8080\ndebug=true\nratio=0.25\n"
	d, err := INI{}.Decode(strings.NewReader(in))
	require.NoError(t, err)

	var cfg serverCfg
	require.NoError(t, d.Scan("server", &cfg))

	assert.Equal(t, serverCfg{
		Host:  "localhost",
		Port:  8080,
		Debug: true,
		Ratio: 0.25,
	}, cfg)
}

func TestScanMap(t *testing.T) {
	t.Parallel()

	d := New()
	require.NoError(t, d.Add("s", "a", "x"))
	require.NoError(t, d.Add("s", "b", 2))

	out := map[string]string{}
	require.NoError(t, d.Scan("s", &out))
	assert.Equal(t, map[string]string{"a": "x", "b": "2"}, out)
}

func TestScanFieldNameFallback(t *testing.T) {
	t.Parallel()

	d := New()
	require.NoError(t, d.Add("s", "host", "h"))
	require.NoError(t, d.Add("s", "port", 80))

	// untagged fields match on name, case-insensitively
	var cfg struct {
		Host string
		Port int
	}
	require.NoError(t, d.Scan("s", &cfg))
	assert.Equal(t, "h", cfg.Host)
	assert.Equal(t, 80, cfg.Port)
}

func TestScanErrors(t *testing.T) {
	t.Parallel()

	d := New()
	require.NoError(t, d.Add("s", "port", "not a number"))

	require.ErrorIs(t, d.Scan("missing", &serverCfg{}), ErrNotFound)

	var cfg serverCfg
	require.Error(t, d.Scan("s", cfg), "non-pointer target")

	var nilPtr *serverCfg
	require.Error(t, d.Scan("s", nilPtr))

	require.ErrorIs(t, d.Scan("s", &cfg), ErrConversion)
}

func TestScanNonIntegralDecimalIntoInt(t *testing.T) {
	t.Parallel()

	d := New()
	require.NoError(t, d.Add("s", "port", 1.5))

	var cfg serverCfg
	require.ErrorIs(t, d.Scan("s", &cfg), ErrConversion)
}
