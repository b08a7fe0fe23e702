package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v57/github"
)

// LatestRelease returns the newest release tag of owner/repo without a
// leading "v".
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (string, error) {
	key := fmt.Sprintf("repos/%s/%s/releases/latest", owner, repo)
	tag, err := cached(c, key, func() (string, *gh.Response, error) {
		release, resp, err := c.api.Repositories.GetLatestRelease(ctx, owner, repo)
		if err != nil {
			return "", resp, err
		}
		return release.GetTagName(), resp, nil
	})
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(tag, "v"), nil
}
