package cli

import (
	"github.com/gnomegl/gitfill/internal/config"
	"github.com/gnomegl/gitfill/internal/git"
	"github.com/gnomegl/gitfill/internal/utils"
	"github.com/urfave/cli/v2"
)

const helpTemplate = `{{.Name}} - {{.Usage}}

Usage: {{.HelpName}} [options]

Options:
   {{range .VisibleFlags}}{{.}}
   {{end}}`

// Flags returns the command-line flags understood by config.ParseConfig.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    config.FlagCommitsPerDay,
			Aliases: []string{"c"},
			Usage:   "Commits per active day as \"min,max\"",
			Value:   config.DefaultCommitsPerDay,
			EnvVars: []string{"GITFILL_COMMITS_PER_DAY"},
		},
		&cli.BoolFlag{
			Name:    config.FlagWorkdaysOnly,
			Aliases: []string{"w"},
			Usage:   "Skip Saturdays and Sundays",
			EnvVars: []string{"GITFILL_WORKDAYS_ONLY"},
		},
		&cli.StringFlag{
			Name:    config.FlagStartDate,
			Aliases: []string{"s"},
			Usage:   "First day of the history, YYYY-MM-DD (default: one year ago)",
			EnvVars: []string{"GITFILL_START_DATE"},
		},
		&cli.StringFlag{
			Name:    config.FlagEndDate,
			Aliases: []string{"e"},
			Usage:   "Last day of the history, YYYY-MM-DD (default: today)",
			EnvVars: []string{"GITFILL_END_DATE"},
		},
		&cli.IntFlag{
			Name:    config.FlagRange,
			Aliases: []string{"r"},
			Usage:   "Jump ahead up to this many days after each day, to leave gaps",
			Value:   config.DefaultRange,
			EnvVars: []string{"GITFILL_RANGE"},
		},
		&cli.StringFlag{
			Name:    config.FlagTimezone,
			Usage:   "IANA timezone used for days and weekends (default: local)",
			EnvVars: []string{"GITFILL_TIMEZONE"},
		},
		&cli.StringFlag{
			Name:    config.FlagDir,
			Aliases: []string{"d"},
			Usage:   "Directory of the repository to write commits to",
			Value:   config.DefaultDir,
			EnvVars: []string{"GITFILL_DIR"},
		},
		&cli.StringFlag{
			Name:    config.FlagFile,
			Usage:   "File rewritten for every commit",
			Value:   git.DefaultFileName,
			EnvVars: []string{"GITFILL_FILE"},
		},
		&cli.StringFlag{
			Name:    config.FlagMessage,
			Aliases: []string{"m"},
			Usage:   "Commit message",
			Value:   git.DefaultMessage,
			EnvVars: []string{"GITFILL_MESSAGE"},
		},
		&cli.StringFlag{
			Name:    config.FlagAuthorName,
			Usage:   "Override git user.name for generated commits",
			EnvVars: []string{"GITFILL_AUTHOR_NAME"},
		},
		&cli.StringFlag{
			Name:    config.FlagAuthorEmail,
			Usage:   "Override git user.email for generated commits",
			EnvVars: []string{"GITFILL_AUTHOR_EMAIL"},
		},
		&cli.Uint64Flag{
			Name:    config.FlagSeed,
			Usage:   "Seed for a reproducible schedule (0 = random)",
			EnvVars: []string{"GITFILL_SEED"},
		},
		&cli.IntFlag{
			Name:    config.FlagMaxCommits,
			Usage:   "Refuse to run when the schedule exceeds this many commits (0 = no limit)",
			Value:   config.DefaultMaxCommits,
			EnvVars: []string{"GITFILL_MAX_COMMITS"},
		},
		&cli.BoolFlag{
			Name:    config.FlagDryRun,
			Aliases: []string{"n"},
			Usage:   "Print the schedule instead of creating commits",
		},
		&cli.StringFlag{
			Name:    config.FlagOutputFormat,
			Aliases: []string{"o"},
			Usage:   "Dry-run output format (text, json, csv)",
			Value:   "text",
		},
		&cli.BoolFlag{
			Name:    config.FlagPush,
			Aliases: []string{"p"},
			Usage:   "Create the repository on GitHub and push the history",
			EnvVars: []string{"GITFILL_PUSH"},
		},
		&cli.StringFlag{
			Name:    config.FlagRepoName,
			Usage:   "GitHub repository name (default: directory name)",
			EnvVars: []string{"GITFILL_REPO_NAME"},
		},
		&cli.BoolFlag{
			Name:    config.FlagPrivate,
			Usage:   "Create the GitHub repository as private",
			EnvVars: []string{"GITFILL_PRIVATE"},
		},
		&cli.StringFlag{
			Name:    config.FlagToken,
			Aliases: []string{"t"},
			Usage:   "GitHub personal access token",
			EnvVars: []string{"GITFILL_GITHUB_TOKEN", "GITHUB_TOKEN"},
		},
		&cli.BoolFlag{
			Name:    config.FlagVerbose,
			Aliases: []string{"v"},
			Usage:   "Log every git command",
		},
		&cli.StringFlag{
			Name:    config.FlagConfig,
			Usage:   "YAML file with default option values",
			EnvVars: []string{"GITFILL_CONFIG"},
		},
	}
}

func NewApp(action cli.ActionFunc) *cli.App {
	cli.AppHelpTemplate = helpTemplate
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}

	return &cli.App{
		Name:    "gitfill",
		Usage:   "Fill a git history with backdated commits to populate your activity graph",
		Version: "v" + utils.GetVersion(),
		Flags:   Flags(),
		Action:  action,
		Authors: []*cli.Author{
			{Name: "gnomegl"},
		},
	}
}
