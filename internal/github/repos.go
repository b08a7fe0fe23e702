package github

import (
	"context"
	"fmt"

	"github.com/gnomegl/gitscore/internal/models"
	gh "github.com/google/go-github/v57/github"
)

func (c *Client) FetchUser(ctx context.Context, login string) (models.UserProfile, error) {
	user, err := cached(c, "users/"+login, func() (models.UserProfile, *gh.Response, error) {
		u, resp, err := c.api.Users.Get(ctx, login)
		if err != nil {
			return models.UserProfile{}, resp, err
		}
		return ConvertUser(u), resp, nil
	})
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("fetch user: %w", err)
	}
	return user, nil
}

// FetchRepos pages through the public repositories of login, most recently
// updated first. Paging stops on a short page or once MaxRepos is reached.
func (c *Client) FetchRepos(ctx context.Context, login string) ([]models.Repository, error) {
	perPage := c.cfg.PerPage
	bar := newSpinner(c.Progress, "[cyan]Fetching repositories[reset]")
	defer bar.Finish()

	var all []models.Repository
	for page := 1; ; page++ {
		key := fmt.Sprintf("users/%s/repos?sort=updated&per_page=%d&page=%d", login, perPage, page)
		repos, err := cached(c, key, func() ([]models.Repository, *gh.Response, error) {
			opt := &gh.RepositoryListByUserOptions{
				Sort:        "updated",
				ListOptions: gh.ListOptions{PerPage: perPage, Page: page},
			}
			raw, resp, err := c.api.Repositories.ListByUser(ctx, login, opt)
			if err != nil {
				return nil, resp, err
			}
			return ConvertRepos(raw), resp, nil
		})
		if err != nil {
			return nil, fmt.Errorf("fetch repositories: %w", err)
		}

		all = append(all, repos...)
		bar.Add(len(repos))

		if len(repos) < perPage || len(all) >= c.cfg.MaxRepos {
			break
		}
	}

	if len(all) > c.cfg.MaxRepos {
		all = all[:c.cfg.MaxRepos]
	}
	return all, nil
}

// FetchLanguages returns the language byte counts of one repository.
func (c *Client) FetchLanguages(ctx context.Context, owner, repo string) (map[string]int, error) {
	key := fmt.Sprintf("repos/%s/%s/languages", owner, repo)
	langs, err := cached(c, key, func() (map[string]int, *gh.Response, error) {
		return c.api.Repositories.ListLanguages(ctx, owner, repo)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch languages: %w", err)
	}
	return langs, nil
}
