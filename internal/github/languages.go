package github

import (
	"context"
	"io"

	"github.com/gnomegl/gitscore/internal/models"
	"github.com/gnomegl/gitscore/internal/stats"
	"github.com/sirupsen/logrus"
)

// LanguageSource fetches the language byte counts of a single repository.
type LanguageSource interface {
	FetchLanguages(ctx context.Context, owner, repo string) (map[string]int, error)
}

// AggregateLanguages looks up languages for the top limit repositories by
// stars, one request at a time and in rank order. A failed lookup is logged
// and skipped. Only context cancellation aborts the loop.
func AggregateLanguages(ctx context.Context, src LanguageSource, owner string, repos []models.Repository, limit int, progress io.Writer) ([]models.LanguageEntry, error) {
	ranked := stats.RankByStars(repos, limit)
	acc := stats.NewLanguageAccumulator()
	if len(ranked) == 0 {
		return acc.Result(), nil
	}

	bar := newBar(progress, len(ranked), "[cyan]Analyzing languages[reset]")
	defer bar.Finish()

	for _, repo := range ranked {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		repoOwner := repo.Owner
		if repoOwner == "" {
			repoOwner = owner
		}

		langs, err := src.FetchLanguages(ctx, repoOwner, repo.Name)
		bar.Add(1)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"repo":  repoOwner + "/" + repo.Name,
				"error": err,
			}).Warn("skipping language lookup")
			continue
		}
		acc.Add(langs)
	}

	return acc.Result(), nil
}
