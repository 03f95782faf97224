package utils

import "time"

// TimestampPatterns describes when a set of commits happen.
type TimestampPatterns struct {
	Total             int
	HourDistribution  map[int]int
	DayDistribution   map[time.Weekday]int
	WeekendPercentage float64
	MostActiveHour    int
	MostActiveDay     time.Weekday
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// GetTimestampPatterns tallies commits by hour of day and weekday. Ties for
// the busiest hour or day resolve to the earliest one.
func GetTimestampPatterns(dates []time.Time) TimestampPatterns {
	patterns := TimestampPatterns{
		Total:            len(dates),
		HourDistribution: make(map[int]int),
		DayDistribution:  make(map[time.Weekday]int),
	}

	weekendCount := 0
	for _, d := range dates {
		patterns.HourDistribution[d.Hour()]++
		patterns.DayDistribution[d.Weekday()]++
		if IsWeekend(d) {
			weekendCount++
		}
	}

	if patterns.Total > 0 {
		patterns.WeekendPercentage = float64(weekendCount) / float64(patterns.Total) * 100
	}
	patterns.MostActiveHour = findMostActiveHour(patterns.HourDistribution)
	patterns.MostActiveDay = findMostActiveDay(patterns.DayDistribution)

	return patterns
}

func findMostActiveHour(hourDist map[int]int) int {
	maxCount := 0
	mostActive := 0

	for hour := 0; hour < 24; hour++ {
		if count := hourDist[hour]; count > maxCount {
			maxCount = count
			mostActive = hour
		}
	}

	return mostActive
}

func findMostActiveDay(dayDist map[time.Weekday]int) time.Weekday {
	maxCount := 0
	var mostActive time.Weekday

	for day := time.Sunday; day <= time.Saturday; day++ {
		if count := dayDist[day]; count > maxCount {
			maxCount = count
			mostActive = day
		}
	}

	return mostActive
}
