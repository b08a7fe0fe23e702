package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/patrickmn/go-cache"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// RateInfo is the quota reported by the last API response.
type RateInfo struct {
	Remaining int
	Limit     int
	Reset     time.Time
}

// Client wraps go-github with a path-keyed result cache and a rate-limit
// side channel. Requests are issued one at a time by its callers.
type Client struct {
	api   *gh.Client
	cfg   Config
	cache *cache.Cache

	mu   sync.Mutex
	rate RateInfo
	seen bool

	// Progress receives spinners and bars. Nil disables them.
	Progress io.Writer
}

func GetHTTPClient(token string, timeout time.Duration) *http.Client {
	if token == "" {
		return &http.Client{Timeout: timeout}
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	tc.Timeout = timeout
	return tc
}

func NewClient(token string, cfg Config) (*Client, error) {
	return NewClientWithHTTP(GetHTTPClient(token, cfg.RequestTimeout), cfg)
}

func NewClientWithHTTP(httpClient *http.Client, cfg Config) (*Client, error) {
	api := gh.NewClient(httpClient)
	if cfg.BaseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", cfg.BaseURL, err)
		}
		api.BaseURL = u
	}

	return &Client{
		api:   api,
		cfg:   cfg,
		cache: cache.New(cfg.CacheTTL, cfg.CacheTTL*2),
	}, nil
}

func (c *Client) Config() Config {
	return c.cfg
}

// RateLimit returns the last observed quota and whether any response has
// carried one yet.
func (c *Client) RateLimit() (RateInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate, c.seen
}

func (c *Client) updateRateLimit(resp *gh.Response) {
	if resp == nil || resp.Rate.Limit == 0 {
		return
	}
	c.mu.Lock()
	c.rate = RateInfo{
		Remaining: resp.Rate.Remaining,
		Limit:     resp.Rate.Limit,
		Reset:     resp.Rate.Reset.Time,
	}
	c.seen = true
	c.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"remaining": resp.Rate.Remaining,
		"limit":     resp.Rate.Limit,
	}).Debug("rate limit")
}

// ClearCache drops every cached response.
func (c *Client) ClearCache() {
	c.cache.Flush()
}

// cached serves key from the cache while fresh, otherwise calls fetch and
// stores a successful result. Cached values are shared and must not be
// mutated by callers.
func cached[T any](c *Client, key string, fetch func() (T, *gh.Response, error)) (T, error) {
	if v, ok := c.cache.Get(key); ok {
		logrus.WithField("path", key).Debug("cache hit")
		return v.(T), nil
	}

	v, resp, err := fetch()
	c.updateRateLimit(resp)
	if err != nil {
		var zero T
		return zero, classify(key, resp, err)
	}

	c.cache.Set(key, v, cache.DefaultExpiration)
	return v, nil
}

func progressWriter(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

func newSpinner(w io.Writer, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWriter(progressWriter(w)),
		progressbar.OptionSetTheme(barTheme))
}

func newBar(w io.Writer, total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(20),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(progressWriter(w)),
		progressbar.OptionSetTheme(barTheme))
}

var barTheme = progressbar.Theme{
	Saucer:        "[green]#[reset]",
	SaucerHead:    "[green]>[reset]",
	SaucerPadding: "[white].[reset]",
	BarStart:      "[blue]|[reset]",
	BarEnd:        "[blue]|[reset]",
}
