package bench

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rskv-p/xtrie/pkg/x_log"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(x_log.ColorBlue40)).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	bestStyle   = cellStyle.Foreground(lipgloss.Color(x_log.ColorTeal40))
)

// Summary renders rows as a table. Within each parameter group the fastest
// query time is highlighted.
func Summary(title string, param string, rows []Row) string {
	best := make(map[string]time.Duration)
	for _, r := range rows {
		if d, ok := best[r.Param]; !ok || r.Query < d {
			best[r.Param] = r.Query
		}
	}

	data := make([][]string, len(rows))
	for i, r := range rows {
		data[i] = []string{
			r.Param,
			r.Variant.String(),
			fmtDur(r.Construction),
			fmtDur(r.Query),
			fmtBytes(r.FinalSize),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(x_log.ColorGray60))).
		Headers(param, "variant", "construction", "queries", "footprint").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 3 && row >= 0 && row < len(rows) && rows[row].Query == best[rows[row].Param] {
				return bestStyle
			}
			return cellStyle
		})

	return lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(title), t.Render())
}

func fmtDur(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}

func fmtBytes(n int) string {
	const unit = 1024
	switch {
	case n >= unit*unit:
		return fmt.Sprintf("%.1f MiB", float64(n)/(unit*unit))
	case n >= unit:
		return fmt.Sprintf("%.1f KiB", float64(n)/unit)
	}
	return fmt.Sprintf("%d B", n)
}
