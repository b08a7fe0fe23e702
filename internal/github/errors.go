package github

import (
	"errors"
	"fmt"
	"net/http"

	gh "github.com/google/go-github/v57/github"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrRateLimited = errors.New("API rate limit exceeded")
)

// APIError is any other non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Path       string
	Err        error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d on %s: %v", e.StatusCode, e.Path, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// classify maps a go-github failure onto the error taxonomy. Transport
// failures without a response are wrapped unchanged.
func classify(path string, resp *gh.Response, err error) error {
	if err == nil {
		return nil
	}

	var rle *gh.RateLimitError
	var abuse *gh.AbuseRateLimitError
	if errors.As(err, &rle) || errors.As(err, &abuse) {
		return fmt.Errorf("%s: %w", path, ErrRateLimited)
	}

	status := 0
	var er *gh.ErrorResponse
	if errors.As(err, &er) && er.Response != nil {
		status = er.Response.StatusCode
	} else if resp != nil && resp.Response != nil {
		status = resp.StatusCode
	}

	switch status {
	case 0:
		return fmt.Errorf("%s: %w", path, err)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	case http.StatusForbidden, http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", path, ErrRateLimited)
	default:
		return &APIError{StatusCode: status, Path: path, Err: err}
	}
}
