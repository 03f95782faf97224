package display

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Summary is what Success reports once all commits are written.
type Summary struct {
	Commits   int
	Dir       string
	RemoteURL string
}

// Success prints the boxed completion banner.
func Success(w io.Writer, s Summary) {
	noun := "commits have"
	if s.Commits == 1 {
		noun = "commit has"
	}

	lines := []string{
		fmt.Sprintf("%s %s %s been created.", color.GreenString("Success"), humanize.Comma(int64(s.Commits)), noun),
	}
	if s.Dir != "" {
		lines = append(lines, fmt.Sprintf("History written to %s", color.CyanString(s.Dir)))
	}
	if s.RemoteURL != "" {
		lines = append(lines, fmt.Sprintf("Published at %s", color.HiBlueString(s.RemoteURL)))
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleRounded)
	tbl.Style().Color.Border = text.Colors{text.FgYellow}
	tbl.Style().Box.PaddingLeft = "   "
	tbl.Style().Box.PaddingRight = "   "
	tbl.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignCenter}})
	for _, line := range lines {
		tbl.AppendRow(table.Row{line})
	}
	tbl.Render()
}

// NothingToDo tells the user the configuration produced no commits.
func NothingToDo(w io.Writer) {
	fmt.Fprintln(w, color.YellowString("[!] No commits were scheduled for the selected dates"))
}
