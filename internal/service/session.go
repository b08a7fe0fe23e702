package service

import (
	"time"

	"github.com/gnomegl/gitscore/internal/insights"
	"github.com/gnomegl/gitscore/internal/models"
	"github.com/gnomegl/gitscore/internal/patterns"
	"github.com/gnomegl/gitscore/internal/scoring"
	"github.com/gnomegl/gitscore/internal/stats"
	"github.com/google/uuid"
)

// Session is the state of a single run: its ID, the one clock reading every
// time-relative rule uses, and the display location. It is discarded with
// the run.
type Session struct {
	ID       string
	Login    string
	Now      time.Time
	Location *time.Location
}

func NewSession(login string, now time.Time, loc *time.Location) *Session {
	if loc == nil {
		loc = time.Local
	}
	return &Session{
		ID:       uuid.NewString(),
		Login:    login,
		Now:      now,
		Location: loc,
	}
}

// Build derives every result from the fetched snapshot. It does no I/O.
func (s *Session) Build(user models.UserProfile, repos []models.Repository, events []models.PublicEvent, languages []models.LanguageEntry) *models.Analysis {
	st := stats.Calculate(repos)

	score := scoring.Calculate(scoring.Input{
		User:      user,
		Repos:     repos,
		Stats:     st,
		Languages: languages,
		Events:    events,
		Now:       s.Now,
	})

	pat := patterns.Analyze(patterns.Input{
		Repos:          repos,
		Events:         events,
		AccountCreated: user.CreatedAt,
		Now:            s.Now,
		Location:       s.Location,
	})

	ins := insights.Generate(insights.Input{
		User:      user,
		Repos:     repos,
		Languages: languages,
		Score:     score,
		Stats:     st,
	})

	return &models.Analysis{
		ID:        s.ID,
		Now:       s.Now,
		User:      user,
		Repos:     repos,
		Events:    events,
		Stats:     st,
		Languages: languages,
		Score:     score,
		Patterns:  pat,
		Insights:  ins,
	}
}
