package github

import (
	"context"
	"fmt"
	"sort"

	"github.com/gnomegl/gitscore/internal/models"
	gh "github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
)

// FetchEvents returns the most recent public events of login, newest first,
// with unknown event kinds dropped.
func (c *Client) FetchEvents(ctx context.Context, login string) ([]models.PublicEvent, error) {
	perPage := c.cfg.EventsPerPage
	key := fmt.Sprintf("users/%s/events/public?per_page=%d", login, perPage)

	events, err := cached(c, key, func() ([]models.PublicEvent, *gh.Response, error) {
		raw, resp, err := c.api.Activity.ListEventsPerformedByUser(ctx, login, true, &gh.ListOptions{PerPage: perPage})
		if err != nil {
			return nil, resp, err
		}
		return ConvertEvents(raw), resp, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	return events, nil
}

// ConvertEvents keeps the tracked event kinds and orders them newest first.
func ConvertEvents(raw []*gh.Event) []models.PublicEvent {
	events := make([]models.PublicEvent, 0, len(raw))
	dropped := 0
	for _, e := range raw {
		kind, ok := models.ParseEventKind(e.GetType())
		if !ok {
			dropped++
			continue
		}
		ev := models.PublicEvent{
			Kind:      kind,
			Repo:      e.GetRepo().GetName(),
			CreatedAt: e.GetCreatedAt().Time,
		}
		if e.RawPayload != nil {
			ev.Payload = *e.RawPayload
		}
		events = append(events, ev)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})

	if dropped > 0 {
		logrus.WithField("dropped", dropped).Debug("skipped untracked event kinds")
	}
	return events
}
