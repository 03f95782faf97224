package service

import (
	"context"

	"github.com/fatih/color"
	"github.com/gnomegl/gitfill/internal/config"
	"github.com/gnomegl/gitfill/internal/github"
	"github.com/sirupsen/logrus"
)

// Authenticate resolves and validates the GitHub token for --push, storing
// the resolved token on cfg, and returns a publisher using it.
func Authenticate(ctx context.Context, cfg *config.AppConfig, log logrus.FieldLogger) (RemotePublisher, error) {
	token, savedTo := github.ResolveToken(cfg.Token)
	if savedTo != "" {
		color.Green("[+] Token saved to %s", savedTo)
	}
	if token == "" {
		color.Yellow("[!] Publishing needs a token with the repo (or public_repo) scope.")
		color.Blue("Create one at: https://github.com/settings/tokens/new?description=gitfill&scopes=repo")
		return nil, github.ErrTokenRequired
	}
	cfg.Token = token

	client := github.GetGithubClient(token)
	login, err := github.ValidateToken(ctx, client, cfg.Private)
	if err != nil {
		return nil, err
	}
	color.Green("[+] Authenticated as %s", login)

	return github.NewPublisher(client, log), nil
}
