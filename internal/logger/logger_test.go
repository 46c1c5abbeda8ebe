package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]LogLevel{
		"debug":   DebugLevel,
		"INFO":    InfoLevel,
		"":        InfoLevel,
		"warn":    WarnLevel,
		"warning": WarnLevel,
		" error ": ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestJSONLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, InfoLevel, "json")

	log.Info("Controller", "Selected file", map[string]interface{}{"path": "/tmp/a.csv"})
	out := buf.String()
	assert.Contains(t, out, `"component":"Controller"`)
	assert.Contains(t, out, `"path":"/tmp/a.csv"`)
	assert.Contains(t, out, `"message":"Selected file"`)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, WarnLevel, "json")

	log.Debug("x", "hidden", nil)
	log.Info("x", "hidden", nil)
	assert.Empty(t, buf.String())

	log.Error("x", errors.New("boom"), nil)
	assert.Contains(t, buf.String(), `"error":"boom"`)
}

func TestNopDiscards(t *testing.T) {
	log := Nop()
	assert.NotPanics(t, func() {
		log.Info("x", "y", nil)
		log.Error("x", errors.New("z"), map[string]interface{}{"k": 1})
	})
}
