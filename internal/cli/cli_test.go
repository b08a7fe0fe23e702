package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnomegl/gitscore/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func parseAnalyze(t *testing.T, args ...string) (*config.AppConfig, error) {
	t.Helper()
	var cfg *config.AppConfig
	app := NewApp(func(c *cli.Context) error {
		var err error
		cfg, err = config.ParseConfig(c)
		return err
	}, nil)
	err := app.Run(append([]string{"gitscore"}, args...))
	return cfg, err
}

func TestParseAnalyzeFlags(t *testing.T) {
	t.Setenv(config.TimezoneEnv, "")

	cfg, err := parseAnalyze(t, "-s", "forks", "--timezone", "UTC", "-l", "Go", "--no-events", "-q", "-v", "-j", "-", "octocat")

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "octocat", cfg.Target)
	assert.Equal(t, "forks", cfg.Sort)
	assert.Equal(t, "Go", cfg.Language)
	assert.Equal(t, "-", cfg.JSONPath)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.True(t, cfg.NoEvents)
	assert.True(t, cfg.Quiet)
	assert.True(t, cfg.Verbose)
}

func TestParseAnalyzeDefaults(t *testing.T) {
	t.Setenv(config.TimezoneEnv, "")

	cfg, err := parseAnalyze(t, "octocat")

	require.NoError(t, err)
	assert.Equal(t, "stars", cfg.Sort)
	assert.Equal(t, time.Local, cfg.Location)
	assert.False(t, cfg.NoEvents)
	assert.Empty(t, cfg.ReportPath)
}

func TestParseAnalyzeRejectsBadInput(t *testing.T) {
	t.Setenv(config.TimezoneEnv, "")

	_, err := parseAnalyze(t, "--sort", "name", "octocat")
	assert.ErrorContains(t, err, "invalid sort")

	_, err = parseAnalyze(t, "--timezone", "Mars/Olympus", "octocat")
	assert.ErrorContains(t, err, "invalid timezone")
}

func TestParseServeFlags(t *testing.T) {
	t.Setenv(config.TimezoneEnv, "")
	var cfg *config.AppConfig
	app := NewApp(nil, func(c *cli.Context) error {
		var err error
		cfg, err = config.ParseServeConfig(c)
		return err
	})

	err := app.Run([]string{"gitscore", "--timezone", "UTC", "serve", "--addr", ":9999"})

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.True(t, cfg.Quiet)
}

func TestExportPath(t *testing.T) {
	dir := t.TempDir()
	now := time.UnixMilli(1718452800000)

	assert.Equal(t, filepath.Join(dir, "gitscore-octocat-1718452800000.json"), exportPath(dir, "octocat", "json", now))

	file := filepath.Join(dir, "out.html")
	assert.Equal(t, file, exportPath(file, "octocat", "html", now))
	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}
