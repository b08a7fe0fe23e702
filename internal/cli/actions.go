package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/gin-gonic/gin"
	"github.com/gnomegl/gitscore/internal/art"
	"github.com/gnomegl/gitscore/internal/auth"
	"github.com/gnomegl/gitscore/internal/config"
	"github.com/gnomegl/gitscore/internal/display"
	"github.com/gnomegl/gitscore/internal/export"
	"github.com/gnomegl/gitscore/internal/models"
	"github.com/gnomegl/gitscore/internal/server"
	"github.com/gnomegl/gitscore/internal/service"
	"github.com/gnomegl/gitscore/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// Run is the analyze action.
func Run(c *cli.Context) error {
	cfg, err := config.ParseConfig(c)
	if err != nil || cfg == nil {
		return err
	}
	setupLogging(cfg.Verbose, logrus.WarnLevel)
	if !cfg.Quiet {
		art.PrintLogo(os.Stderr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := auth.SetupGitHubClient(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}

	analyzer := service.NewAnalyzer(client, client.Config().MaxLanguageRepos)
	if !cfg.Quiet {
		analyzer.Status = os.Stderr
		analyzer.Progress = os.Stderr
	}

	a, err := analyzer.Run(ctx, cfg.Target, service.Options{
		NoEvents: cfg.NoEvents,
		Location: cfg.Location,
	})
	if err != nil {
		logrus.WithError(err).Debug("analysis failed")
		return cli.Exit(color.RedString("[x] %s", service.UserMessage(err)), 1)
	}

	// stdout carries the JSON document instead of the dashboard
	if cfg.JSONPath != "-" {
		display.Dashboard(os.Stdout, a, display.Options{Sort: cfg.Sort, Language: cfg.Language})
		info, seen := client.RateLimit()
		display.RateLimitFooter(os.Stdout, info, seen)
	}

	return writeExports(cfg, a, time.Now())
}

func writeExports(cfg *config.AppConfig, a *models.Analysis, now time.Time) error {
	if cfg.JSONPath == "" && cfg.ReportPath == "" {
		return nil
	}
	doc := export.BuildDocument(a, utils.GetVersion(), now)

	if cfg.JSONPath != "" {
		var buf bytes.Buffer
		if err := export.WriteJSON(&buf, doc); err != nil {
			return err
		}
		path := exportPath(cfg.JSONPath, a.User.Login, "json", now)
		if err := export.WriteFile(path, buf.Bytes()); err != nil {
			return err
		}
		if path != "-" {
			color.New(color.FgGreen).Fprintf(os.Stderr, "[+] JSON export written to %s\n", path)
		}
	}

	if cfg.ReportPath != "" {
		page, err := export.RenderHTML(doc)
		if err != nil {
			return err
		}
		path := exportPath(cfg.ReportPath, a.User.Login, "html", now)
		if err := export.WriteFile(path, page); err != nil {
			return err
		}
		if path != "-" {
			color.New(color.FgGreen).Fprintf(os.Stderr, "[+] Report written to %s\n", path)
		}
	}
	return nil
}

// exportPath puts a generated file name inside path when it is a directory.
func exportPath(path, login, ext string, now time.Time) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, export.FileName(login, ext, now))
	}
	return path
}

// Serve is the serve action.
func Serve(c *cli.Context) error {
	cfg, err := config.ParseServeConfig(c)
	if err != nil {
		return err
	}
	setupLogging(cfg.Verbose, logrus.InfoLevel)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := auth.SetupGitHubClient(ctx, cfg, os.Stderr)
	if err != nil {
		return err
	}
	analyzer := service.NewAnalyzer(client, client.Config().MaxLanguageRepos)
	h := server.NewHandler(analyzer, client, utils.GetVersion(), cfg.Location)

	color.New(color.FgBlue).Fprintf(os.Stderr, "Listening on %s\n", cfg.Addr)
	if err := server.Serve(ctx, cfg.Addr, server.NewRouter(h)); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func setupLogging(verbose bool, level logrus.Level) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}
