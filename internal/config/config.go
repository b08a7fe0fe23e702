package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gnomegl/gitscore/internal/display"
	"github.com/urfave/cli/v2"
)

const (
	TimezoneEnv = "GITSCORE_TIMEZONE"
	DefaultAddr = ":8080"
)

type AppConfig struct {
	Target     string
	Token      string
	JSONPath   string
	ReportPath string
	Sort       string
	Language   string
	Location   *time.Location
	NoEvents   bool
	Quiet      bool
	Verbose    bool
	Addr       string
}

var validSorts = map[string]bool{
	display.SortStars:   true,
	display.SortForks:   true,
	display.SortUpdated: true,
	display.SortCreated: true,
}

// ParseConfig reads the analyze flags. A missing target shows help.
func ParseConfig(c *cli.Context) (*AppConfig, error) {
	if c.NArg() == 0 {
		return nil, cli.ShowAppHelp(c)
	}

	cfg, err := parseCommon(c)
	if err != nil {
		return nil, err
	}
	cfg.Target = strings.TrimSpace(c.Args().First())
	cfg.JSONPath = c.String("json")
	cfg.ReportPath = c.String("report")
	cfg.Language = c.String("language")
	cfg.NoEvents = c.Bool("no-events")

	cfg.Sort = strings.ToLower(c.String("sort"))
	if !validSorts[cfg.Sort] {
		return nil, fmt.Errorf("invalid sort %q: use stars, forks, updated or created", cfg.Sort)
	}
	return cfg, nil
}

// ParseServeConfig reads the serve flags together with the global ones.
func ParseServeConfig(c *cli.Context) (*AppConfig, error) {
	cfg, err := parseCommon(c)
	if err != nil {
		return nil, err
	}
	cfg.Addr = c.String("addr")
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	// bars and prompts make no sense behind a listener
	cfg.Quiet = true
	return cfg, nil
}

func parseCommon(c *cli.Context) (*AppConfig, error) {
	loc, err := LoadLocation(c.String("timezone"))
	if err != nil {
		return nil, err
	}
	return &AppConfig{
		Token:    c.String("token"),
		Location: loc,
		Quiet:    c.Bool("quiet"),
		Verbose:  c.Bool("verbose"),
	}, nil
}

// LoadLocation resolves an IANA zone name. Empty means the local zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}
