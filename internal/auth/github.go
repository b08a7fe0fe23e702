package auth

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gnomegl/gitscore/internal/config"
	"github.com/gnomegl/gitscore/internal/github"
	"github.com/gnomegl/gitscore/internal/utils"
	"golang.org/x/term"
)

const (
	repoOwner = "gnomegl"
	repoName  = "gitscore"
)

// SetupGitHubClient resolves a token and builds the API client. The token
// prompt is only offered on an interactive terminal.
func SetupGitHubClient(ctx context.Context, cfg *config.AppConfig, stderr io.Writer) (*github.Client, error) {
	var (
		prompt *github.TokenPrompt
		notify io.Writer
	)
	if !cfg.Quiet {
		notify = stderr
		if term.IsTerminal(int(os.Stdin.Fd())) {
			prompt = &github.TokenPrompt{In: os.Stdin, Out: stderr}
		}
	}
	token := github.GetToken(cfg.Token, notify, prompt)

	client, err := github.NewClient(token, github.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("create GitHub client: %w", err)
	}
	if !cfg.Quiet {
		client.Progress = stderr
		checkLatestVersion(ctx, client, stderr)
	}
	return client, nil
}

type releaseSource interface {
	LatestRelease(ctx context.Context, owner, repo string) (string, error)
}

func checkLatestVersion(ctx context.Context, src releaseSource, w io.Writer) {
	latest, err := src.LatestRelease(ctx, repoOwner, repoName)
	if err != nil || latest == "" {
		return
	}

	current := utils.GetVersion()
	if latest != current {
		color.New(color.FgYellow).Fprintf(w, "A new version of gitscore is available: %s (you're running %s)\n", latest, current)
		color.New(color.FgYellow).Fprintln(w, "To update:")
		color.New(color.FgCyan).Fprintf(w, "go install github.com/%s/%s@latest\n\n", repoOwner, repoName)
	}
}
