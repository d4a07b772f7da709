package x_log

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestStylesByName(t *testing.T) {
	for _, name := range []string{"dark", "light", "unknown"} {
		styles := DefaultStylesByName(name)
		for _, lvl := range []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel, FatalLevel} {
			_, ok := styles.Levels[lvl]
			assert.True(t, ok, "%s theme misses %s", name, lvl)
		}
		_, ok := styles.Keys["variant"]
		assert.True(t, ok)
	}
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, ColorBlue60, levelColor("info"))
	assert.Equal(t, ColorRedStrong, levelColor("panic"))
	assert.Equal(t, ColorGray60, levelColor("trace"))
}

func TestPlainConsoleWriter(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	var buf bytes.Buffer
	styles := DefaultStylesDark()
	styles.Out = &buf
	styles.NoColor = true

	logger := zerolog.New(ConsoleWriterWithStyles(styles))
	logger.Warn().Str("variant", "hashed").Msg("slow query")

	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "variant=hashed")
	assert.NotContains(t, out, "\x1b[")
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if assert.NoError(t, err) {
		defer f.Close()
		assert.False(t, IsTerminal(f))
	}
}
