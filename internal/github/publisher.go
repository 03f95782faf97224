package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
)

const repoDescription = "Generated activity history"

// Remote identifies the GitHub repository a history is pushed to.
type Remote struct {
	Owner    string
	Name     string
	CloneURL string
	HTMLURL  string
	Created  bool
}

// Publisher creates the remote repository that receives the generated history.
type Publisher struct {
	client *github.Client
	log    logrus.FieldLogger
}

func NewPublisher(client *github.Client, log logrus.FieldLogger) *Publisher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Publisher{client: client, log: log}
}

// EnsureRepository creates name under the authenticated user, or returns the
// existing repository when GitHub reports that the name is taken.
func (p *Publisher) EnsureRepository(ctx context.Context, name string, private bool) (*Remote, error) {
	if name == "" {
		return nil, errors.New("repository name is required")
	}

	repo, _, err := p.client.Repositories.Create(ctx, "", &github.Repository{
		Name:        github.String(name),
		Private:     github.Bool(private),
		Description: github.String(repoDescription),
	})
	if err == nil {
		p.log.WithField("repo", repo.GetFullName()).Info("created remote repository")
		return remoteFrom(repo, true), nil
	}

	var ghErr *github.ErrorResponse
	if !errors.As(err, &ghErr) || ghErr.Response == nil || ghErr.Response.StatusCode != http.StatusUnprocessableEntity {
		return nil, fmt.Errorf("failed to create repository %s: %w", name, err)
	}

	user, _, err := p.client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to look up authenticated user: %w", err)
	}

	repo, _, err = p.client.Repositories.Get(ctx, user.GetLogin(), name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing repository %s/%s: %w", user.GetLogin(), name, err)
	}
	p.log.WithField("repo", repo.GetFullName()).Info("reusing existing remote repository")
	return remoteFrom(repo, false), nil
}

func remoteFrom(repo *github.Repository, created bool) *Remote {
	return &Remote{
		Owner:    repo.GetOwner().GetLogin(),
		Name:     repo.GetName(),
		CloneURL: repo.GetCloneURL(),
		HTMLURL:  repo.GetHTMLURL(),
		Created:  created,
	}
}
