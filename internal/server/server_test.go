package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gnomegl/gitscore/internal/github"
	"github.com/gnomegl/gitscore/internal/models"
	"github.com/gnomegl/gitscore/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRunner struct {
	err    error
	logins []string
}

func (f *fakeRunner) Run(ctx context.Context, login string, opts service.Options) (*models.Analysis, error) {
	f.logins = append(f.logins, login)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Analysis{
		ID:   "run-1",
		User: models.UserProfile{Login: login},
		Score: models.Score{
			Overall: 55,
			Level:   models.Level{Name: "Junior Developer", Color: "#f59e0b"},
		},
	}, nil
}

type fakeCache struct{ cleared int }

func (f *fakeCache) ClearCache() { f.cleared++ }

func newTestRouter(runner Runner, cache CacheClearer) *gin.Engine {
	h := NewHandler(runner, cache, "1.0.0", time.UTC)
	h.now = func() time.Time { return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC) }
	return NewRouter(h)
}

func do(router http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := do(newTestRouter(&fakeRunner{}, &fakeCache{}), http.MethodGet, "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAnalysis(t *testing.T) {
	runner := &fakeRunner{}
	w := do(newTestRouter(runner, &fakeCache{}), http.MethodGet, "/api/analysis?user=octocat")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"octocat"}, runner.logins)

	var body struct {
		Metadata struct {
			Version string `json:"version"`
			RunID   string `json:"run_id"`
		} `json:"metadata"`
		Profile struct {
			Username string `json:"username"`
		} `json:"profile"`
		DeveloperScore struct {
			Overall int `json:"overall"`
		} `json:"developer_score"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "1.0.0", body.Metadata.Version)
	assert.Equal(t, "run-1", body.Metadata.RunID)
	assert.Equal(t, "octocat", body.Profile.Username)
	assert.Equal(t, 55, body.DeveloperScore.Overall)
}

func TestAnalysisErrors(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		err     error
		status  int
		message string
	}{
		{"missing user", "/api/analysis", nil, http.StatusBadRequest, "Please enter a GitHub username"},
		{"not found", "/api/analysis?user=ghost", fmt.Errorf("fetch user: %w", github.ErrNotFound), http.StatusNotFound, "User not found"},
		{"rate limited", "/api/analysis?user=octocat", github.ErrRateLimited, http.StatusTooManyRequests, "API rate limit exceeded. Please try again later."},
		{"api error", "/api/analysis?user=octocat", &github.APIError{StatusCode: 500}, http.StatusBadGateway, "API Error: 500"},
		{"busy", "/report?user=octocat", service.ErrAnalysisInProgress, http.StatusConflict, "An analysis is already running. Please wait for it to finish."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newTestRouter(&fakeRunner{err: tt.err}, &fakeCache{}), http.MethodGet, tt.target)

			assert.Equal(t, tt.status, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestReport(t *testing.T) {
	w := do(newTestRouter(&fakeRunner{}, &fakeCache{}), http.MethodGet, "/report?user=octocat")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "gitscore report - octocat")
	assert.Contains(t, w.Body.String(), "55/100")
}

func TestClearCache(t *testing.T) {
	cache := &fakeCache{}

	w := do(newTestRouter(&fakeRunner{}, cache), http.MethodDelete, "/api/cache")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 1, cache.cleared)
}
