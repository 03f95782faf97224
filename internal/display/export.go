package display

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

type jsonPlan struct {
	Total   int          `json:"total"`
	Commits []jsonCommit `json:"commits"`
}

type jsonCommit struct {
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// Export writes a schedule in the requested format. The text format is the
// same table Preview prints.
func Export(w io.Writer, dates []time.Time, format string) error {
	switch format {
	case "", FormatText:
		Preview(w, dates)
		return nil
	case FormatJSON:
		return exportJSON(w, dates)
	case FormatCSV:
		return exportCSV(w, dates)
	default:
		return fmt.Errorf("unknown output format %q (want text, json or csv)", format)
	}
}

func exportJSON(w io.Writer, dates []time.Time) error {
	plan := jsonPlan{Total: len(dates), Commits: make([]jsonCommit, 0, len(dates))}
	for _, d := range dates {
		plan.Commits = append(plan.Commits, jsonCommit{
			Date:    d.Format(time.RFC3339),
			Weekday: d.Weekday().String(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(plan)
}

func exportCSV(w io.Writer, dates []time.Time) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"date", "weekday"}); err != nil {
		return err
	}
	for _, d := range dates {
		if err := writer.Write([]string{d.Format(time.RFC3339), d.Weekday().String()}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
