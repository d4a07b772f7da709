// Package x_log configures the process-wide zerolog logger: styled console
// output, JSON output and size-rotated log files.
package x_log

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

//---------------------
// TYPES
//---------------------

type (
	Logger = zerolog.Logger
	Level  = zerolog.Level
)

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

var (
	mu      sync.Mutex
	fileOut io.WriteCloser
)

//---------------------
// INITIALIZATION
//---------------------

// Init configures the global logger from XLOG_CONFIG / ./xlog.json,
// falling back to the defaults.
func Init() {
	cfg, err := LoadConfig("")
	if err != nil {
		c := defaultConfig
		cfg = &c
	}
	InitWithConfig(cfg, "")
}

// InitWithConfig configures the global logger. module, when set, is
// attached to every line.
func InitWithConfig(cfg *Config, module string) {
	mu.Lock()
	defer mu.Unlock()

	c := *cfg
	ApplyDefaults(&c)

	zerolog.SetGlobalLevel(ParseLevel(c.Level))

	if fileOut != nil {
		_ = fileOut.Close()
		fileOut = nil
	}

	var writers []io.Writer
	if c.ToConsole {
		writers = append(writers, consoleWriter(&c, os.Stderr))
	}
	if c.ToFile {
		fileOut = &lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		}
		if c.ColoredFile {
			writers = append(writers, ConsoleWriterWithStyles(styled(&c, fileOut, false)))
		} else {
			writers = append(writers, fileOut)
		}
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp()
	if module != "" {
		ctx = ctx.Str("module", module)
	}
	log.Logger = ctx.Logger()
}

func consoleWriter(c *Config, out *os.File) io.Writer {
	if strings.EqualFold(c.Format, "json") {
		return out
	}
	return ConsoleWriterWithStyles(styled(c, out, !IsTerminal(out)))
}

func styled(c *Config, out io.Writer, noColor bool) *Styles {
	s := DefaultStylesByName(c.Style)
	s.Out = out
	s.NoColor = noColor
	return s
}

// Close flushes and releases the rotated log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if fileOut == nil {
		return nil
	}
	err := fileOut.Close()
	fileOut = nil
	return err
}

//---------------------
// SCOPED LOGGERS
//---------------------

// New returns a child of the global logger tagged with module.
func New(module string) Logger {
	return log.Logger.With().Str("module", module).Logger()
}

type ctxKey struct{}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From returns the logger stored in ctx, or the global one.
func From(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok && l != nil {
		return l
	}
	return &log.Logger
}

//---------------------
// UTILITIES
//---------------------

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}

//---------------------
// DEFAULT LOGGER SHORTCUTS
//---------------------

func Debug() *zerolog.Event { return log.Logger.Debug() }
func Info() *zerolog.Event  { return log.Logger.Info() }
func Warn() *zerolog.Event  { return log.Logger.Warn() }
func Error() *zerolog.Event { return log.Logger.Error() }
func Fatal() *zerolog.Event { return log.Logger.Fatal() }
