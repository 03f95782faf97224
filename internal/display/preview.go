package display

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gnomegl/gitfill/internal/schedule"
	"github.com/gnomegl/gitfill/internal/utils"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Preview prints a per-month breakdown of a generated schedule without
// touching any repository.
func Preview(w io.Writer, dates []time.Time) {
	if len(dates) == 0 {
		NothingToDo(w)
		return
	}

	months := schedule.Summarize(dates)

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.AppendHeader(table.Row{"Month", "Active days", "Commits"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	days := 0
	for _, m := range months {
		days += m.Days
		tbl.AppendRow(table.Row{m.Month.Format("January 2006"), m.Days, humanize.Comma(int64(m.Commits))})
	}
	tbl.AppendFooter(table.Row{"Total", days, humanize.Comma(int64(len(dates)))})

	fmt.Fprintln(w, color.BlueString("Dry run: %s commits between %s and %s",
		humanize.Comma(int64(len(dates))),
		dates[0].Format(dayFormat),
		dates[len(dates)-1].Format(dayFormat)))
	tbl.Render()

	patterns := utils.GetTimestampPatterns(dates)
	fmt.Fprintf(w, "Busiest day: %s, busiest hour: %02d:00, weekend share: %.0f%%\n",
		patterns.MostActiveDay, patterns.MostActiveHour, patterns.WeekendPercentage)
}
