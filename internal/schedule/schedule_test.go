package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// maxSource always draws the top of the requested range.
type maxSource struct{}

func (maxSource) IntN(n int) int { return n - 1 }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func TestGenerate_Properties(t *testing.T) {
	opts := Options{
		Start:         day(2023, time.January, 1),
		End:           day(2023, time.June, 30),
		CommitsPerDay: CountRange{Min: 1, Max: 4},
		WorkdaysOnly:  true,
		Skip:          SkipRange{Min: 0, Max: 3},
	}

	for seed := uint64(1); seed <= 20; seed++ {
		dates, err := Generate(opts, NewSource(seed))
		require.NoError(t, err)
		require.NotEmpty(t, dates)

		perDay := map[string]int{}
		var prevDay time.Time
		for _, d := range dates {
			dayOnly := day(d.Year(), d.Month(), d.Day())
			assert.False(t, dayOnly.Before(opts.Start), "date %s before start", d)
			assert.False(t, dayOnly.After(opts.End), "date %s after end", d)
			assert.NotEqual(t, time.Saturday, d.Weekday(), "weekend date %s", d)
			assert.NotEqual(t, time.Sunday, d.Weekday(), "weekend date %s", d)

			assert.GreaterOrEqual(t, d.Hour(), 9)
			assert.LessOrEqual(t, d.Hour(), 16)
			assert.GreaterOrEqual(t, d.Minute(), 0)
			assert.LessOrEqual(t, d.Minute(), 59)
			assert.GreaterOrEqual(t, d.Second(), 0)
			assert.LessOrEqual(t, d.Second(), 59)
			assert.Zero(t, d.Nanosecond())

			assert.False(t, dayOnly.Before(prevDay), "days out of order at %s", d)
			prevDay = dayOnly
			perDay[dateKey(d)]++
		}

		for k, n := range perDay {
			assert.GreaterOrEqual(t, n, opts.CommitsPerDay.Min, "day %s", k)
			assert.LessOrEqual(t, n, opts.CommitsPerDay.Max, "day %s", k)
		}
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	opts := Options{
		Start:         day(2022, time.March, 1),
		End:           day(2023, time.March, 1),
		CommitsPerDay: CountRange{Min: 0, Max: 5},
		Skip:          SkipRange{Min: 0, Max: 2},
	}

	first, err := Generate(opts, NewSource(42))
	require.NoError(t, err)
	second, err := Generate(opts, NewSource(42))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_SingleDay(t *testing.T) {
	start := day(2023, time.January, 2)
	dates, err := Generate(Options{
		Start:         start,
		End:           start,
		CommitsPerDay: CountRange{Min: 1, Max: 1},
	}, NewRandomSource())
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, "2023-01-02", dateKey(dates[0]))
}

func TestGenerate_TwoCommitsOnMonday(t *testing.T) {
	monday := day(2023, time.January, 2)
	dates, err := Generate(Options{
		Start:         monday,
		End:           monday,
		CommitsPerDay: CountRange{Min: 2, Max: 2},
		Skip:          SkipRange{Min: 0, Max: 0},
	}, NewRandomSource())
	require.NoError(t, err)
	require.Len(t, dates, 2)
	for _, d := range dates {
		assert.Equal(t, "2023-01-02", dateKey(d))
		assert.GreaterOrEqual(t, d.Hour(), 9)
		assert.LessOrEqual(t, d.Hour(), 16)
	}
}

func TestGenerate_WeekendOnlyRangeIsEmpty(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		dates, err := Generate(Options{
			Start:         day(2023, time.January, 7),
			End:           day(2023, time.January, 8),
			CommitsPerDay: CountRange{Min: 1, Max: 3},
			WorkdaysOnly:  true,
			Skip:          SkipRange{Min: 0, Max: 1},
		}, NewSource(seed))
		require.NoError(t, err)
		assert.Empty(t, dates)
	}
}

func TestGenerate_StartAfterEnd(t *testing.T) {
	dates, err := Generate(Options{
		Start:         day(2023, time.February, 1),
		End:           day(2023, time.January, 1),
		CommitsPerDay: CountRange{Min: 1, Max: 1},
	}, NewRandomSource())
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestGenerate_ZeroSkipVisitsEveryDay(t *testing.T) {
	dates, err := Generate(Options{
		Start:         day(2023, time.January, 1),
		End:           day(2023, time.January, 10),
		CommitsPerDay: CountRange{Min: 1, Max: 1},
		Skip:          SkipRange{Min: 0, Max: 0},
	}, NewRandomSource())
	require.NoError(t, err)
	require.Len(t, dates, 10)
	for i, d := range dates {
		assert.Equal(t, i+1, d.Day())
	}
}

func TestGenerate_SkipJumpsAhead(t *testing.T) {
	dates, err := Generate(Options{
		Start:         day(2023, time.January, 1),
		End:           day(2023, time.January, 10),
		CommitsPerDay: CountRange{Min: 1, Max: 1},
		Skip:          SkipRange{Min: 0, Max: 3},
	}, maxSource{})
	require.NoError(t, err)

	var got []int
	for _, d := range dates {
		got = append(got, d.Day())
		assert.Equal(t, 16, d.Hour())
		assert.Equal(t, 59, d.Minute())
		assert.Equal(t, 59, d.Second())
	}
	assert.Equal(t, []int{1, 4, 7, 10}, got)
}

func TestGenerate_IgnoresInputTimeOfDay(t *testing.T) {
	dates, err := Generate(Options{
		Start:         time.Date(2023, time.May, 1, 23, 30, 0, 0, time.UTC),
		End:           time.Date(2023, time.May, 2, 1, 0, 0, 0, time.UTC),
		CommitsPerDay: CountRange{Min: 1, Max: 1},
	}, NewRandomSource())
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, "2023-05-01", dateKey(dates[0]))
	assert.Equal(t, "2023-05-02", dateKey(dates[1]))
}

func TestGenerate_Location(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 20:00 UTC on a Friday is already Saturday in UTC+10.
	start := time.Date(2023, time.January, 6, 20, 0, 0, 0, time.UTC)

	dates, err := Generate(Options{
		Start:         start,
		End:           start,
		CommitsPerDay: CountRange{Min: 1, Max: 1},
		WorkdaysOnly:  true,
		Location:      loc,
	}, NewRandomSource())
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestGenerate_CommitCeiling(t *testing.T) {
	_, err := Generate(Options{
		Start:         day(2023, time.January, 1),
		End:           day(2023, time.January, 10),
		CommitsPerDay: CountRange{Min: 5, Max: 5},
		MaxCommits:    20,
	}, NewRandomSource())
	assert.ErrorIs(t, err, ErrCommitCeiling)
}

func TestGenerate_InvalidOptions(t *testing.T) {
	base := Options{
		Start:         day(2023, time.January, 1),
		End:           day(2023, time.January, 2),
		CommitsPerDay: CountRange{Min: 1, Max: 2},
		Skip:          SkipRange{Min: 0, Max: 1},
	}

	tests := []struct {
		name   string
		mutate func(o *Options)
		want   error
	}{
		{"count min above max", func(o *Options) { o.CommitsPerDay = CountRange{Min: 3, Max: 1} }, ErrInvalidConfiguration},
		{"negative count", func(o *Options) { o.CommitsPerDay = CountRange{Min: -1, Max: 1} }, ErrInvalidConfiguration},
		{"skip min above max", func(o *Options) { o.Skip = SkipRange{Min: 2, Max: 1} }, ErrInvalidConfiguration},
		{"negative skip", func(o *Options) { o.Skip = SkipRange{Min: -1, Max: 1} }, ErrInvalidConfiguration},
		{"negative ceiling", func(o *Options) { o.MaxCommits = -1 }, ErrInvalidConfiguration},
		{"strict zero skip", func(o *Options) {
			o.Skip = SkipRange{}
			o.StrictAdvance = true
		}, ErrNonTerminatingConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base
			tt.mutate(&opts)
			dates, err := Generate(opts, NewRandomSource())
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, dates)
		})
	}
}

func TestGenerate_NilSource(t *testing.T) {
	_, err := Generate(Options{}, nil)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestParseCountRange(t *testing.T) {
	tests := []struct {
		in      string
		want    CountRange
		wantErr bool
	}{
		{in: "2,2", want: CountRange{Min: 2, Max: 2}},
		{in: " 0 , 3 ", want: CountRange{Min: 0, Max: 3}},
		{in: "3", wantErr: true},
		{in: "1,2,3", wantErr: true},
		{in: "a,b", wantErr: true},
		{in: "3,1", wantErr: true},
		{in: "-1,2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCountRange(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestSummarize(t *testing.T) {
	dates := []time.Time{
		time.Date(2023, time.January, 30, 10, 0, 0, 0, time.UTC),
		time.Date(2023, time.January, 30, 9, 0, 0, 0, time.UTC),
		time.Date(2023, time.January, 31, 11, 0, 0, 0, time.UTC),
		time.Date(2023, time.February, 2, 12, 0, 0, 0, time.UTC),
	}

	got := Summarize(dates)
	require.Len(t, got, 2)
	assert.Equal(t, day(2023, time.January, 1), got[0].Month)
	assert.Equal(t, 2, got[0].Days)
	assert.Equal(t, 3, got[0].Commits)
	assert.Equal(t, day(2023, time.February, 1), got[1].Month)
	assert.Equal(t, 1, got[1].Days)
	assert.Equal(t, 1, got[1].Commits)

	assert.Empty(t, Summarize(nil))
}
