// Package server exposes analyses over HTTP for the serve command.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gnomegl/gitscore/internal/export"
	"github.com/gnomegl/gitscore/internal/github"
	"github.com/gnomegl/gitscore/internal/models"
	"github.com/gnomegl/gitscore/internal/service"
	"github.com/sirupsen/logrus"
)

// Runner produces one analysis per call.
type Runner interface {
	Run(ctx context.Context, login string, opts service.Options) (*models.Analysis, error)
}

type CacheClearer interface {
	ClearCache()
}

type Handler struct {
	runner   Runner
	cache    CacheClearer
	version  string
	location *time.Location
	now      func() time.Time
}

func NewHandler(runner Runner, cache CacheClearer, version string, loc *time.Location) *Handler {
	return &Handler{
		runner:   runner,
		cache:    cache,
		version:  version,
		location: loc,
		now:      time.Now,
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(accessLog())
	router.Use(gin.Recovery())

	router.GET("/healthz", h.Health)
	router.GET("/report", h.Report)

	api := router.Group("/api")
	{
		api.GET("/analysis", h.Analysis)
		api.DELETE("/cache", h.ClearCache)
	}
	return router
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Analysis handles GET /api/analysis?user=<handle>.
func (h *Handler) Analysis(c *gin.Context) {
	doc, ok := h.analyze(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Report handles GET /report?user=<handle>.
func (h *Handler) Report(c *gin.Context) {
	doc, ok := h.analyze(c)
	if !ok {
		return
	}
	page, err := export.RenderHTML(doc)
	if err != nil {
		logrus.WithError(err).Error("render report")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "render_failed", Message: "Failed to render report"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

// ClearCache handles DELETE /api/cache.
func (h *Handler) ClearCache(c *gin.Context) {
	h.cache.ClearCache()
	c.Status(http.StatusNoContent)
}

func (h *Handler) analyze(c *gin.Context) (export.Document, bool) {
	login := c.Query("user")
	if login == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing_user", Message: "Please enter a GitHub username"})
		return export.Document{}, false
	}

	a, err := h.runner.Run(c.Request.Context(), login, service.Options{Location: h.location})
	if err != nil {
		status, code := statusFor(err)
		logrus.WithFields(logrus.Fields{
			"user":   login,
			"status": status,
			"error":  err,
		}).Warn("analysis failed")
		c.JSON(status, ErrorResponse{Error: code, Message: service.UserMessage(err)})
		return export.Document{}, false
	}
	return export.BuildDocument(a, h.version, h.now()), true
}

func statusFor(err error) (int, string) {
	var apiErr *github.APIError
	switch {
	case errors.Is(err, service.ErrEmptyHandle):
		return http.StatusBadRequest, "missing_user"
	case errors.Is(err, github.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, github.ErrRateLimited):
		return http.StatusTooManyRequests, "rate_limited"
	case errors.Is(err, service.ErrAnalysisInProgress):
		return http.StatusConflict, "in_progress"
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, "api_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Info("request")
	}
}

// Serve runs router on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, router http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
