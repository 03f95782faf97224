package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// ErrTokenRequired is returned when publishing is requested without a token.
var ErrTokenRequired = errors.New("a GitHub token is required to publish the history")

func GetGithubClient(token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return github.NewClient(tc)
}

// ResolveToken returns the given token or falls back to the previously saved
// one. A given token that differs from the saved one is written for later
// runs, and savedTo reports where; it is empty when nothing was written.
func ResolveToken(flagToken string) (token, savedTo string) {
	tokenFile := tokenPath()
	saved := readToken(tokenFile)

	token = strings.TrimSpace(flagToken)
	if token == "" {
		return saved, ""
	}
	if tokenFile == "" || token == saved {
		return token, ""
	}

	if err := os.MkdirAll(filepath.Dir(tokenFile), 0o700); err != nil {
		return token, ""
	}
	if err := os.WriteFile(tokenFile, []byte(token), 0o600); err != nil {
		return token, ""
	}
	return token, tokenFile
}

func readToken(tokenFile string) string {
	if tokenFile == "" {
		return ""
	}
	data, err := os.ReadFile(tokenFile)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func tokenPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "gitfill", "token")
}

// ValidateToken checks the token against the authenticated user endpoint and
// returns the user's login. Classic tokens must carry the repo or
// public_repo scope; fine-grained tokens report no scopes and are accepted.
func ValidateToken(ctx context.Context, client *github.Client, private bool) (string, error) {
	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return "", fmt.Errorf("invalid GitHub token")
		}
		return "", fmt.Errorf("error validating token: %w", err)
	}

	scopes := resp.Header.Get("X-OAuth-Scopes")
	if scopes == "" {
		return user.GetLogin(), nil
	}

	for _, scope := range strings.Split(scopes, ",") {
		switch strings.TrimSpace(scope) {
		case "repo":
			return user.GetLogin(), nil
		case "public_repo":
			if !private {
				return user.GetLogin(), nil
			}
		}
	}

	if private {
		return "", fmt.Errorf("token for %s lacks the repo scope needed for private repositories", user.GetLogin())
	}
	return "", fmt.Errorf("token for %s lacks the public_repo scope", user.GetLogin())
}
