// Package schedule builds the list of synthetic commit timestamps that gitfill
// later turns into real commits.
//
// Generation walks day by day from the start date to the end date. Each
// eligible day receives a random number of commits, each stamped at a random
// time between 09:00:00 and 16:59:59, and the walk then jumps ahead by a
// random number of days drawn from the skip range. Weekend days are passed
// over when WorkdaysOnly is set but still consume a jump.
//
// A drawn jump of zero days is treated as one day, so every skip range makes
// forward progress and a range of (0, 0) simply means "every day".
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/gnomegl/gitfill/internal/utils"
)

var (
	// ErrInvalidConfiguration indicates malformed or contradictory bounds.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNonTerminatingConfiguration indicates a skip range that can never move
	// past the current day. Only reachable with StrictAdvance.
	ErrNonTerminatingConfiguration = errors.New("non-terminating configuration")

	// ErrCommitCeiling indicates the generated list grew past Options.MaxCommits.
	ErrCommitCeiling = errors.New("commit ceiling exceeded")
)

const (
	firstHour = 9
	lastHour  = 16
)

// CountRange bounds how many commits are created on an eligible day.
type CountRange struct {
	Min int
	Max int
}

// SkipRange bounds how many days the walk advances after each visited day.
type SkipRange struct {
	Min int
	Max int
}

// Options configures a single Generate call.
type Options struct {
	Start         time.Time
	End           time.Time
	CommitsPerDay CountRange
	WorkdaysOnly  bool
	Skip          SkipRange

	// Location decides calendar days and weekends. Defaults to Start's location.
	Location *time.Location

	// MaxCommits caps the size of the generated list; 0 disables the cap.
	MaxCommits int

	// StrictAdvance rejects a zero-only skip range instead of clamping
	// zero-day jumps to one day.
	StrictAdvance bool
}

// Validate checks the option bounds without generating anything.
func (o Options) Validate() error {
	if o.CommitsPerDay.Min < 0 || o.CommitsPerDay.Max < 0 {
		return fmt.Errorf("%w: commits per day must not be negative (got %d,%d)",
			ErrInvalidConfiguration, o.CommitsPerDay.Min, o.CommitsPerDay.Max)
	}
	if o.CommitsPerDay.Min > o.CommitsPerDay.Max {
		return fmt.Errorf("%w: commits per day min %d is greater than max %d",
			ErrInvalidConfiguration, o.CommitsPerDay.Min, o.CommitsPerDay.Max)
	}
	if o.Skip.Min < 0 || o.Skip.Max < 0 {
		return fmt.Errorf("%w: skip range must not be negative (got %d,%d)",
			ErrInvalidConfiguration, o.Skip.Min, o.Skip.Max)
	}
	if o.Skip.Min > o.Skip.Max {
		return fmt.Errorf("%w: skip range min %d is greater than max %d",
			ErrInvalidConfiguration, o.Skip.Min, o.Skip.Max)
	}
	if o.MaxCommits < 0 {
		return fmt.Errorf("%w: max commits must not be negative (got %d)",
			ErrInvalidConfiguration, o.MaxCommits)
	}
	if o.StrictAdvance && o.Skip.Max == 0 {
		return fmt.Errorf("%w: skip range (0,0) never advances past the start date",
			ErrNonTerminatingConfiguration)
	}
	return nil
}

// Generate returns the commit timestamps for opts in day order. Timestamps
// that share a day are not sorted relative to each other. A start date after
// the end date yields an empty list.
func Generate(opts Options, rng Source) ([]time.Time, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", ErrInvalidConfiguration)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	loc := opts.Location
	if loc == nil {
		loc = opts.Start.Location()
	}

	current := midnight(opts.Start, loc)
	last := midnight(opts.End, loc)

	var dates []time.Time
	for !current.After(last) {
		if opts.WorkdaysOnly && utils.IsWeekend(current) {
			current = advance(current, opts.Skip, rng)
			continue
		}

		count := randInclusive(rng, opts.CommitsPerDay.Min, opts.CommitsPerDay.Max)
		for i := 0; i < count; i++ {
			if opts.MaxCommits > 0 && len(dates) >= opts.MaxCommits {
				return nil, fmt.Errorf("%w: more than %d commits requested", ErrCommitCeiling, opts.MaxCommits)
			}
			dates = append(dates, stamp(current, rng))
		}

		current = advance(current, opts.Skip, rng)
	}

	return dates, nil
}

func stamp(day time.Time, rng Source) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		randInclusive(rng, firstHour, lastHour),
		randInclusive(rng, 0, 59),
		randInclusive(rng, 0, 59),
		0, day.Location())
}

func advance(day time.Time, skip SkipRange, rng Source) time.Time {
	days := randInclusive(rng, skip.Min, skip.Max)
	if days < 1 {
		days = 1
	}
	// AddDate keeps wall-clock midnight across DST changes.
	return day.AddDate(0, 0, days)
}

func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
