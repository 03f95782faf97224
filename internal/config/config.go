// Package config turns command-line flags, environment variables and an
// optional YAML file into a validated AppConfig.
//
// Precedence, highest first: flag, environment variable, config file,
// built-in default. Default dates are computed from the parser's Now
// function so callers and tests control the clock.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnomegl/gitfill/internal/schedule"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Flag names shared with the CLI definition.
const (
	FlagCommitsPerDay = "commits-per-day"
	FlagWorkdaysOnly  = "workdays-only"
	FlagStartDate     = "start-date"
	FlagEndDate       = "end-date"
	FlagRange         = "range"
	FlagTimezone      = "timezone"
	FlagDir           = "dir"
	FlagFile          = "file"
	FlagMessage       = "message"
	FlagAuthorName    = "author-name"
	FlagAuthorEmail   = "author-email"
	FlagSeed          = "seed"
	FlagMaxCommits    = "max-commits"
	FlagDryRun        = "dry-run"
	FlagOutputFormat  = "output-format"
	FlagPush          = "push"
	FlagRepoName      = "repo-name"
	FlagPrivate       = "private"
	FlagToken         = "token"
	FlagVerbose       = "verbose"
	FlagConfig        = "config"
)

const (
	DefaultCommitsPerDay = "0,3"
	DefaultRange         = 1
	DefaultDir           = "my-history"
	DefaultMaxCommits    = 10000
)

type AppConfig struct {
	Start         time.Time
	End           time.Time
	CommitsPerDay schedule.CountRange
	WorkdaysOnly  bool
	Range         int
	Location      *time.Location

	Dir         string
	FileName    string
	Message     string
	AuthorName  string
	AuthorEmail string

	// Seed makes the schedule reproducible; 0 picks a random seed.
	Seed       uint64
	MaxCommits int

	DryRun       bool
	OutputFormat string

	Push     bool
	RepoName string
	Private  bool
	Token    string

	Verbose bool
}

// ScheduleOptions maps the configuration onto the generator's options.
func (c *AppConfig) ScheduleOptions() schedule.Options {
	return schedule.Options{
		Start:         c.Start,
		End:           c.End,
		CommitsPerDay: c.CommitsPerDay,
		WorkdaysOnly:  c.WorkdaysOnly,
		Skip:          schedule.SkipRange{Min: 0, Max: c.Range},
		Location:      c.Location,
		MaxCommits:    c.MaxCommits,
	}
}

// Source returns the random source the configuration asks for.
func (c *AppConfig) Source() schedule.Source {
	if c.Seed != 0 {
		return schedule.NewSource(c.Seed)
	}
	return schedule.NewRandomSource()
}

// fileConfig mirrors the YAML config file. Pointer fields distinguish
// "absent" from a zero value.
type fileConfig struct {
	CommitsPerDay string  `yaml:"commits_per_day"`
	WorkdaysOnly  *bool   `yaml:"workdays_only"`
	StartDate     string  `yaml:"start_date"`
	EndDate       string  `yaml:"end_date"`
	Range         *int    `yaml:"range"`
	Timezone      string  `yaml:"timezone"`
	Dir           string  `yaml:"dir"`
	File          string  `yaml:"file"`
	Message       string  `yaml:"message"`
	AuthorName    string  `yaml:"author_name"`
	AuthorEmail   string  `yaml:"author_email"`
	Seed          *uint64 `yaml:"seed"`
	MaxCommits    *int    `yaml:"max_commits"`
	Push          *bool   `yaml:"push"`
	RepoName      string  `yaml:"repo_name"`
	Private       *bool   `yaml:"private"`
}

func loadFile(path string) (*fileConfig, error) {
	fc := &fileConfig{}
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}

// Parser builds AppConfig values. The zero value uses the wall clock and the
// local timezone.
type Parser struct {
	Now func() time.Time
}

// ParseConfig parses c with the default Parser.
func ParseConfig(c *cli.Context) (*AppConfig, error) {
	return Parser{}.Parse(c)
}

func (p Parser) Parse(c *cli.Context) (*AppConfig, error) {
	fc, err := loadFile(c.String(FlagConfig))
	if err != nil {
		return nil, err
	}
	v := values{c: c}

	cfg := &AppConfig{
		WorkdaysOnly: v.boolean(FlagWorkdaysOnly, fc.WorkdaysOnly),
		Range:        v.integer(FlagRange, fc.Range),
		Dir:          v.str(FlagDir, fc.Dir),
		FileName:     v.str(FlagFile, fc.File),
		Message:      v.str(FlagMessage, fc.Message),
		AuthorName:   v.str(FlagAuthorName, fc.AuthorName),
		AuthorEmail:  v.str(FlagAuthorEmail, fc.AuthorEmail),
		Seed:         v.uinteger(FlagSeed, fc.Seed),
		MaxCommits:   v.integer(FlagMaxCommits, fc.MaxCommits),
		DryRun:       c.Bool(FlagDryRun),
		OutputFormat: strings.ToLower(c.String(FlagOutputFormat)),
		Push:         v.boolean(FlagPush, fc.Push),
		RepoName:     v.str(FlagRepoName, fc.RepoName),
		Private:      v.boolean(FlagPrivate, fc.Private),
		Token:        c.String(FlagToken),
		Verbose:      c.Bool(FlagVerbose),
	}

	cfg.Location = time.Local
	if tz := v.str(FlagTimezone, fc.Timezone); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("%w: --%s: %v", schedule.ErrInvalidConfiguration, FlagTimezone, err)
		}
		cfg.Location = loc
	}

	cfg.CommitsPerDay, err = schedule.ParseCountRange(v.str(FlagCommitsPerDay, fc.CommitsPerDay))
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", FlagCommitsPerDay, err)
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	current := now().In(cfg.Location)

	cfg.End = current
	if s := v.str(FlagEndDate, fc.EndDate); s != "" {
		if cfg.End, err = parseDate(s, cfg.Location); err != nil {
			return nil, fmt.Errorf("--%s: %w", FlagEndDate, err)
		}
	}
	cfg.Start = current.AddDate(-1, 0, 0)
	if s := v.str(FlagStartDate, fc.StartDate); s != "" {
		if cfg.Start, err = parseDate(s, cfg.Location); err != nil {
			return nil, fmt.Errorf("--%s: %w", FlagStartDate, err)
		}
	}

	if cfg.RepoName == "" {
		cfg.RepoName = filepath.Base(filepath.Clean(cfg.Dir))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks everything that does not depend on the schedule itself.
func (c *AppConfig) Validate() error {
	if c.Range < 0 {
		return fmt.Errorf("%w: --%s must not be negative (got %d)", schedule.ErrInvalidConfiguration, FlagRange, c.Range)
	}
	if c.MaxCommits < 0 {
		return fmt.Errorf("%w: --%s must not be negative (got %d)", schedule.ErrInvalidConfiguration, FlagMaxCommits, c.MaxCommits)
	}
	if strings.TrimSpace(c.Dir) == "" {
		return fmt.Errorf("%w: --%s must not be empty", schedule.ErrInvalidConfiguration, FlagDir)
	}
	if c.FileName == "" || filepath.Base(c.FileName) != c.FileName || c.FileName == ".git" {
		return fmt.Errorf("%w: --%s must be a plain file name (got %q)", schedule.ErrInvalidConfiguration, FlagFile, c.FileName)
	}
	switch c.OutputFormat {
	case "", "text", "json", "csv":
	default:
		return fmt.Errorf("%w: --%s must be text, json or csv (got %q)", schedule.ErrInvalidConfiguration, FlagOutputFormat, c.OutputFormat)
	}
	if c.Push && c.DryRun {
		return fmt.Errorf("%w: --%s cannot be combined with --%s", schedule.ErrInvalidConfiguration, FlagPush, FlagDryRun)
	}
	return c.ScheduleOptions().Validate()
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse date %q (use YYYY-MM-DD or RFC 3339)", schedule.ErrInvalidConfiguration, s)
}

// values resolves a flag against the config file: an explicitly set flag or
// environment variable wins, then the file, then the flag's default.
type values struct {
	c *cli.Context
}

func (v values) str(name, file string) string {
	if v.c.IsSet(name) || file == "" {
		return v.c.String(name)
	}
	return file
}

func (v values) boolean(name string, file *bool) bool {
	if v.c.IsSet(name) || file == nil {
		return v.c.Bool(name)
	}
	return *file
}

func (v values) integer(name string, file *int) int {
	if v.c.IsSet(name) || file == nil {
		return v.c.Int(name)
	}
	return *file
}

func (v values) uinteger(name string, file *uint64) uint64 {
	if v.c.IsSet(name) || file == nil {
		return v.c.Uint64(name)
	}
	return *file
}
