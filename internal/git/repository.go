// Package git drives the git binary to turn a list of timestamps into a
// commit history. Every command runs with its working directory set to the
// target repository; the process working directory is never changed, and
// dates and credentials reach git through argv and the child environment
// rather than a shell.
package git

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DefaultFileName = "README.md"
	DefaultMessage  = "Updated README.md"
)

// Config describes the repository commits are written to.
type Config struct {
	Dir string

	// FileName is rewritten with the commit timestamp before every commit.
	FileName string
	Message  string

	// AuthorName and AuthorEmail override the user's git identity when set.
	AuthorName  string
	AuthorEmail string
}

// Repository creates dated commits in a single working tree. It is not safe
// for concurrent use; commits must be made one at a time and in order.
type Repository struct {
	cfg      Config
	executor CommandExecutor
	log      logrus.FieldLogger
}

// NewRepository returns a Repository backed by the real git binary.
func NewRepository(cfg Config, log logrus.FieldLogger) *Repository {
	return NewRepositoryWithExecutor(cfg, NewExecExecutor(log), log)
}

// NewRepositoryWithExecutor returns a Repository using executor to run git.
func NewRepositoryWithExecutor(cfg Config, executor CommandExecutor, log logrus.FieldLogger) *Repository {
	if cfg.FileName == "" {
		cfg.FileName = DefaultFileName
	}
	if cfg.Message == "" {
		cfg.Message = DefaultMessage
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Repository{
		cfg:      cfg,
		executor: executor,
		log:      log.WithField("repo", cfg.Dir),
	}
}

// Dir returns the repository's working tree.
func (r *Repository) Dir() string {
	return r.cfg.Dir
}

// Ensure creates the target directory and initialises a repository in it
// when one does not exist yet. It reports whether git init was run.
func (r *Repository) Ensure(ctx context.Context) (bool, error) {
	if r.cfg.Dir == "" {
		return false, errors.New("repository directory is required")
	}
	if err := os.MkdirAll(r.cfg.Dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", r.cfg.Dir, err)
	}

	if _, err := os.Stat(filepath.Join(r.cfg.Dir, ".git")); err == nil {
		r.log.Debug("repository already initialised")
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to inspect %s: %w", r.cfg.Dir, err)
	}

	if _, err := r.run(ctx, nil, "init", "--quiet"); err != nil {
		return false, err
	}
	r.log.Info("initialised repository")
	return true, nil
}

// Commit rewrites the tracked file with date, stages it, and records a
// commit whose author and committer dates are both pinned to date. It
// returns the new commit's hash. Repeated timestamps still produce one
// commit each, even though the file content is then unchanged.
func (r *Repository) Commit(ctx context.Context, date time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stamp := date.Format(time.RFC3339)
	path := filepath.Join(r.cfg.Dir, r.cfg.FileName)
	if err := os.WriteFile(path, []byte(stamp+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	if _, err := r.run(ctx, nil, "add", "--", r.cfg.FileName); err != nil {
		return "", err
	}

	env := []string{
		"GIT_AUTHOR_DATE=" + stamp,
		"GIT_COMMITTER_DATE=" + stamp,
	}
	if _, err := r.run(ctx, env, "-c", "commit.gpgsign=false",
		"commit", "--quiet", "--allow-empty", "--date="+stamp, "-m", r.cfg.Message); err != nil {
		return "", err
	}

	out, err := r.run(ctx, nil, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	hash := strings.TrimSpace(out)
	r.log.WithFields(logrus.Fields{"date": stamp, "hash": hash}).Debug("created commit")
	return hash, nil
}

// SetRemote points name at url, adding the remote if it does not exist.
func (r *Repository) SetRemote(ctx context.Context, name, url string) error {
	if _, err := r.run(ctx, nil, "remote", "get-url", name); err == nil {
		_, err = r.run(ctx, nil, "remote", "set-url", name, url)
		return err
	}
	_, err := r.run(ctx, nil, "remote", "add", name, url)
	return err
}

// Push pushes the current branch to remote. A non-empty token is handed to
// git as an HTTP authorization header through the environment so it never
// appears on the command line.
func (r *Repository) Push(ctx context.Context, remote, token string) error {
	var env []string
	if token != "" {
		basic := base64.StdEncoding.EncodeToString([]byte("x-access-token:" + token))
		env = []string{
			"GIT_CONFIG_COUNT=1",
			"GIT_CONFIG_KEY_0=http.extraHeader",
			"GIT_CONFIG_VALUE_0=Authorization: Basic " + basic,
			"GIT_TERMINAL_PROMPT=0",
		}
	}
	_, err := r.run(ctx, env, "push", "--quiet", "--set-upstream", remote, "HEAD")
	return err
}

func (r *Repository) run(ctx context.Context, env []string, args ...string) (string, error) {
	full := make([]string, 0, len(args)+4)
	if r.cfg.AuthorName != "" {
		full = append(full, "-c", "user.name="+r.cfg.AuthorName)
	}
	if r.cfg.AuthorEmail != "" {
		full = append(full, "-c", "user.email="+r.cfg.AuthorEmail)
	}
	full = append(full, args...)

	cmd := exec.CommandContext(ctx, "git", full...)
	cmd.Dir = r.cfg.Dir
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	return r.executor.Run(cmd)
}
