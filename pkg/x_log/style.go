package x_log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

//
// ---------- IBM Carbon Colors ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorBlue70    = "#0043ce"
	ColorBlueBase  = "#0f62fe"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
	ColorGray90    = "#262626"
)

//
// ---------- Styles Definition ----------

// Styles defines all formatting styles used for console output.
type Styles struct {
	Out               io.Writer                 // output target
	NoColor           bool                      // plain text, no ANSI sequences
	Timestamp         lipgloss.Style            // style for timestamps
	Levels            map[Level]lipgloss.Style  // level-to-style mapping
	Keys              map[string]lipgloss.Style // custom field keys
	Values            map[string]lipgloss.Style // custom field values
	DefaultKeyStyle   lipgloss.Style            // fallback for unknown keys
	DefaultValueStyle lipgloss.Style            // fallback for unknown values
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

//
// ---------- Theme Selectors ----------

// DefaultStylesByName returns a theme by name ("dark", "light")
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

//
// ---------- Console Formatter ----------

func levelColor(lvl string) string {
	switch lvl {
	case "debug":
		return ColorTeal40
	case "info":
		return ColorBlue60
	case "warn":
		return ColorOrange40
	case "error":
		return ColorRed60
	case "fatal", "panic":
		return ColorRedStrong
	default:
		return ColorGray60
	}
}

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter with styles.
func ConsoleWriterWithStyles(styles *Styles) zerolog.ConsoleWriter {
	if styles.NoColor {
		return zerolog.ConsoleWriter{Out: styles.Out, NoColor: true, TimeFormat: "15:04:05"}
	}
	return zerolog.ConsoleWriter{
		Out:        styles.Out,
		TimeFormat: "15:04:05",

		FormatLevel: func(i any) string {
			lvl := strings.ToLower(fmt.Sprint(i))
			short := strings.ToUpper(lvl)
			if len(short) > 3 {
				short = short[:3]
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color(levelColor(lvl))).
				Padding(0, 1).
				Render(short)
		},

		FormatTimestamp: func(i any) string {
			return styles.Timestamp.Render(fmt.Sprintf("[%s]", i))
		},

		FormatFieldName: func(i any) string {
			key := fmt.Sprint(i)
			style, ok := styles.Keys[key]
			if !ok {
				style = styles.DefaultKeyStyle
			}
			eqStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
			return style.Render(key) + eqStyle.Render("=")
		},

		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorGray10)).
				Render(fmt.Sprint(i))
		},
	}
}

//
// ---------- Themes ----------

func themeKeys(accent string) map[string]lipgloss.Style {
	keys := make(map[string]lipgloss.Style)
	for _, k := range []string{"module", "variant", "word", "op", "file", "subject", "addr"} {
		keys[k] = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
	}
	keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60))
	return keys
}

func themeValues() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"word":    lipgloss.NewStyle().Italic(true),
		"file":    lipgloss.NewStyle().Italic(true),
		"variant": lipgloss.NewStyle().Bold(true),
		"err":     lipgloss.NewStyle().Bold(true),
		"module":  lipgloss.NewStyle(),
	}
}

// DefaultStylesDark is the theme for dark terminals.
func DefaultStylesDark() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray60)),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue40)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[Level]lipgloss.Style{
			DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorTeal40)),
			InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue60)),
			WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys:   themeKeys(ColorBlue40),
		Values: themeValues(),
	}
}

// DefaultStylesLight is the theme for light terminals.
func DefaultStylesLight() *Styles {
	return &Styles{
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray90)),

		DefaultKeyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlueBase)),

		DefaultValueStyle: lipgloss.NewStyle(),

		Levels: map[Level]lipgloss.Style{
			DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
			InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue70)),
			WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorOrange40)),
			ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
			FatalLevel: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRedStrong)),
		},

		Keys:   themeKeys(ColorBlueBase),
		Values: themeValues(),
	}
}
