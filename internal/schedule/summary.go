package schedule

import "time"

// MonthSummary aggregates a generated list by calendar month.
type MonthSummary struct {
	Month   time.Time // first day of the month
	Days    int       // distinct days with at least one commit
	Commits int
}

// Summarize groups dates by month. The input is expected in day order, as
// returned by Generate; months appear in the order they are first seen.
func Summarize(dates []time.Time) []MonthSummary {
	var out []MonthSummary
	var lastDay time.Time

	for _, d := range dates {
		month := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location())
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())

		if len(out) == 0 || !out[len(out)-1].Month.Equal(month) {
			out = append(out, MonthSummary{Month: month})
		}
		cur := &out[len(out)-1]
		cur.Commits++
		if !day.Equal(lastDay) {
			cur.Days++
			lastDay = day
		}
	}

	return out
}
