package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gnomegl/gitfill/internal/config"
	"github.com/gnomegl/gitfill/internal/display"
	"github.com/gnomegl/gitfill/internal/git"
	"github.com/gnomegl/gitfill/internal/github"
	"github.com/gnomegl/gitfill/internal/models"
	"github.com/gnomegl/gitfill/internal/schedule"
	"github.com/sirupsen/logrus"
)

const remoteName = "origin"

// Committer is the repository that receives the generated commits.
type Committer interface {
	Dir() string
	Ensure(ctx context.Context) (bool, error)
	Commit(ctx context.Context, date time.Time) (string, error)
	SetRemote(ctx context.Context, name, url string) error
	Push(ctx context.Context, remote, token string) error
}

// RemotePublisher creates the hosted repository a history is pushed to.
type RemotePublisher interface {
	EnsureRepository(ctx context.Context, name string, private bool) (*github.Remote, error)
}

// Deps lets callers replace the orchestrator's collaborators. Zero fields
// fall back to the real implementations.
type Deps struct {
	Repo        Committer
	Publisher   RemotePublisher
	Source      schedule.Source
	Log         logrus.FieldLogger
	Out         io.Writer
	ProgressOut io.Writer
}

type Orchestrator struct {
	config      *config.AppConfig
	repo        Committer
	publisher   RemotePublisher
	source      schedule.Source
	log         logrus.FieldLogger
	out         io.Writer
	progressOut io.Writer
}

func NewOrchestrator(cfg *config.AppConfig, deps Deps) *Orchestrator {
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ProgressOut == nil {
		deps.ProgressOut = os.Stderr
	}
	if deps.Source == nil {
		deps.Source = cfg.Source()
	}
	if deps.Repo == nil {
		deps.Repo = git.NewRepository(git.Config{
			Dir:         cfg.Dir,
			FileName:    cfg.FileName,
			Message:     cfg.Message,
			AuthorName:  cfg.AuthorName,
			AuthorEmail: cfg.AuthorEmail,
		}, deps.Log)
	}

	return &Orchestrator{
		config:      cfg,
		repo:        deps.Repo,
		publisher:   deps.Publisher,
		source:      deps.Source,
		log:         deps.Log,
		out:         deps.Out,
		progressOut: deps.ProgressOut,
	}
}

// Run generates the schedule and, unless this is a dry run, writes one
// commit per timestamp in order, then optionally publishes the result.
func (o *Orchestrator) Run(ctx context.Context) (*models.RunResult, error) {
	dates, err := schedule.Generate(o.config.ScheduleOptions(), o.source)
	if err != nil {
		return nil, err
	}
	o.log.WithFields(logrus.Fields{
		"commits": len(dates),
		"start":   o.config.Start.Format(time.DateOnly),
		"end":     o.config.End.Format(time.DateOnly),
	}).Debug("generated schedule")

	result := &models.RunResult{Planned: len(dates), DryRun: o.config.DryRun}

	if o.config.DryRun {
		return result, display.Export(o.out, dates, o.config.OutputFormat)
	}

	if len(dates) == 0 {
		display.NothingToDo(o.out)
		return result, nil
	}

	if o.config.Push && o.publisher == nil {
		return nil, github.ErrTokenRequired
	}

	created, err := o.repo.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	if created {
		color.Blue("Initialised new repository in %s", o.repo.Dir())
	} else {
		color.Blue("Adding to existing repository in %s", o.repo.Dir())
	}

	result.Commits, err = o.commitAll(ctx, dates)
	if err != nil {
		return result, err
	}

	if o.config.Push {
		url, err := o.publish(ctx)
		if err != nil {
			return result, err
		}
		result.RemoteURL = url
	}

	display.Success(o.out, display.Summary{
		Commits:   len(result.Commits),
		Dir:       o.repo.Dir(),
		RemoteURL: result.RemoteURL,
	})
	return result, nil
}

func (o *Orchestrator) commitAll(ctx context.Context, dates []time.Time) ([]models.CommitResult, error) {
	progress := display.NewProgress(len(dates), o.progressOut)
	defer progress.Finish()

	commits := make([]models.CommitResult, 0, len(dates))
	for i, date := range dates {
		if err := ctx.Err(); err != nil {
			return commits, fmt.Errorf("stopped after %d of %d commits: %w", i, len(dates), err)
		}

		progress.Describe(date)
		hash, err := o.repo.Commit(ctx, date)
		if err != nil {
			// A cancelled context kills the running git child, which then
			// reports a signal rather than the cancellation itself.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return commits, fmt.Errorf("stopped after %d of %d commits: %w", i, len(dates), ctxErr)
			}
			return commits, fmt.Errorf("commit %d of %d (%s): %w", i+1, len(dates), date.Format(time.RFC3339), err)
		}
		progress.Step()

		commits = append(commits, models.CommitResult{Date: date, Hash: hash})
	}
	return commits, nil
}

func (o *Orchestrator) publish(ctx context.Context) (string, error) {
	color.Blue("Publishing %s to GitHub...", o.config.RepoName)

	remote, err := o.publisher.EnsureRepository(ctx, o.config.RepoName, o.config.Private)
	if err != nil {
		return "", err
	}
	if remote.Created {
		color.Green("[+] Created repository %s", remote.HTMLURL)
	} else {
		color.Yellow("[!] Repository %s already exists, pushing to it", remote.HTMLURL)
	}

	if err := o.repo.SetRemote(ctx, remoteName, remote.CloneURL); err != nil {
		return "", err
	}
	if err := o.repo.Push(ctx, remoteName, o.config.Token); err != nil {
		return "", err
	}
	return remote.HTMLURL, nil
}
