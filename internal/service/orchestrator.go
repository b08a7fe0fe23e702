package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/gnomegl/gitscore/internal/github"
	"github.com/gnomegl/gitscore/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrAnalysisInProgress = errors.New("analysis already in progress")
	ErrEmptyHandle        = errors.New("empty username")
)

// Source is the GitHub surface an analysis needs.
type Source interface {
	FetchUser(ctx context.Context, login string) (models.UserProfile, error)
	FetchRepos(ctx context.Context, login string) ([]models.Repository, error)
	FetchEvents(ctx context.Context, login string) ([]models.PublicEvent, error)
	github.LanguageSource
}

type Options struct {
	NoEvents bool
	// Location buckets timestamps into days and periods. Nil means time.Local.
	Location *time.Location
}

// Analyzer runs one analysis at a time against a Source. A second Run while
// one is in flight fails fast with ErrAnalysisInProgress.
type Analyzer struct {
	src              Source
	maxLanguageRepos int

	// Status receives the coloured phase lines. Nil silences them.
	Status io.Writer
	// Progress receives progress bars. Nil disables them.
	Progress io.Writer
	// Clock defaults to time.Now.
	Clock func() time.Time

	mu sync.Mutex
}

func NewAnalyzer(src Source, maxLanguageRepos int) *Analyzer {
	return &Analyzer{
		src:              src,
		maxLanguageRepos: maxLanguageRepos,
		Clock:            time.Now,
	}
}

func (a *Analyzer) Run(ctx context.Context, login string, opts Options) (*models.Analysis, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, ErrEmptyHandle
	}

	if !a.mu.TryLock() {
		return nil, ErrAnalysisInProgress
	}
	defer a.mu.Unlock()

	sess := NewSession(login, a.Clock(), opts.Location)
	logrus.WithFields(logrus.Fields{
		"run":   sess.ID,
		"login": login,
	}).Debug("analysis started")

	out := a.status()
	color.New(color.FgBlue).Fprintf(out, "\nTarget Username: %s\n", login)

	color.New(color.FgYellow).Fprintln(out, "Fetching user profile...")
	user, err := a.src.FetchUser(ctx, login)
	if err != nil {
		return nil, err
	}
	color.New(color.FgGreen).Fprintf(out, "[+] User profile loaded: %s\n", user.Login)

	repos, err := a.src.FetchRepos(ctx, login)
	if err != nil {
		return nil, err
	}
	color.New(color.FgGreen).Fprintf(out, "[+] Found %d public repositories\n", len(repos))

	var events []models.PublicEvent
	if !opts.NoEvents {
		events, err = a.src.FetchEvents(ctx, login)
		switch {
		case errors.Is(err, github.ErrRateLimited):
			return nil, err
		case err != nil:
			color.New(color.FgYellow).Fprintf(out, "[!] Recent activity unavailable: %v\n", err)
			events = nil
		}
	}

	languages, err := github.AggregateLanguages(ctx, a.src, login, repos, a.maxLanguageRepos, a.Progress)
	if err != nil {
		return nil, fmt.Errorf("aggregate languages: %w", err)
	}

	analysis := sess.Build(user, repos, events, languages)
	color.New(color.FgGreen).Fprintf(out, "[+] Analysis complete: %d/100 (%s)\n", analysis.Score.Overall, analysis.Score.Level.Name)
	return analysis, nil
}

func (a *Analyzer) status() io.Writer {
	if a.Status == nil {
		return io.Discard
	}
	return a.Status
}

// UserMessage maps an analysis failure to the single message shown to the
// user.
func UserMessage(err error) string {
	var apiErr *github.APIError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, github.ErrNotFound):
		return "User not found"
	case errors.Is(err, github.ErrRateLimited):
		return "API rate limit exceeded. Please try again later."
	case errors.As(err, &apiErr):
		return fmt.Sprintf("API Error: %d", apiErr.StatusCode)
	case errors.Is(err, ErrAnalysisInProgress):
		return "An analysis is already running. Please wait for it to finish."
	case errors.Is(err, ErrEmptyHandle):
		return "Please enter a GitHub username"
	default:
		return "Failed to analyze profile. Please try again."
	}
}
