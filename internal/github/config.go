package github

import "time"

// Config holds configuration for GitHub operations
type Config struct {
	PerPage          int
	MaxRepos         int
	EventsPerPage    int
	MaxLanguageRepos int
	CacheTTL         time.Duration
	RequestTimeout   time.Duration
	// BaseURL overrides the API endpoint, mostly for tests and GHES.
	BaseURL string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		PerPage:          100,
		MaxRepos:         300,
		EventsPerPage:    30,
		MaxLanguageRepos: 30,
		CacheTTL:         15 * time.Minute,
		RequestTimeout:   30 * time.Second,
	}
}
