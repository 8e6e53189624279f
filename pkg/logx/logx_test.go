package logx

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"error":   LevelError,
		"off":     LevelDisabled,
		"verbose": LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestLevelFiltersOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetFormat(FormatJSON)
	SetLevel(LevelWarn)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetFormat(FormatText)
		SetLevel(LevelInfo)
	})

	Info("hidden")
	Warn("profile slot unavailable", "op", "write")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "profile slot unavailable")
	assert.Contains(t, out, "write")
}
