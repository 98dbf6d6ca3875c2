// Package github provides the upstream events API client and the shared
// rate-limit coordination state.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/forgewatch/forgewatch/pkg/models"
)

// Client errors. RateLimitError wraps ErrRateLimited with the reset time.
var (
	ErrRateLimited = errors.New("rate limited by upstream")
	ErrUpstream    = errors.New("upstream server error")
)

// RateLimitError carries the quota reset time from a 403/429 response.
type RateLimitError struct {
	Reset time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited by upstream until %s", e.Reset.Format(time.RFC3339))
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}

// Quota is the rate-limit snapshot returned in response headers.
type Quota struct {
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	Reset     time.Time `json:"reset"`
}

// PollResult is one page of the public events feed plus polling metadata.
type PollResult struct {
	Events []models.Event

	// ETag of the response, sent back as If-None-Match on the next poll.
	ETag string

	// NotModified is true on a 304; Events is empty and the quota was
	// not charged.
	NotModified bool

	// PollInterval is the server-requested minimum poll spacing
	// (X-Poll-Interval), zero if absent.
	PollInterval time.Duration

	Quota Quota
}

// Client provides HTTP access to the public events feed and repository
// metadata.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

// NewClient creates an events API client. token may be empty
// (unauthenticated, much lower rate limits).
func NewClient(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		token:      token,
		logger:     slog.Default(),
	}
}

// wireEvent is the events API response shape.
type wireEvent struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Actor struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
	} `json:"actor"`
	Repo struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"repo"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// ListPublicEvents fetches one page of the public events feed.
// etag from the previous poll enables conditional requests on page 1: a
// 304 reply costs no quota and returns NotModified. Catch-up fetches of
// deeper pages pass an empty etag.
func (c *Client) ListPublicEvents(ctx context.Context, etag string, page, perPage int) (*PollResult, error) {
	url := fmt.Sprintf("%s/events?per_page=%d&page=%d", c.baseURL, perPage, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	c.setAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	defer resp.Body.Close()

	result := &PollResult{
		ETag:         resp.Header.Get("ETag"),
		PollInterval: parsePollInterval(resp.Header),
		Quota:        parseQuota(resp.Header),
	}

	switch {
	case resp.StatusCode == http.StatusNotModified:
		result.NotModified = true
		if result.ETag == "" {
			result.ETag = etag
		}
		return result, nil

	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{Reset: result.Quota.Reset}

	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: HTTP %d", ErrUpstream, resp.StatusCode)

	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("events API returned HTTP %d", resp.StatusCode)
	}

	var wire []wireEvent
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode events response: %w", err)
	}

	result.Events = make([]models.Event, 0, len(wire))
	for _, w := range wire {
		ev := models.Event{
			ID:   w.ID,
			Type: w.Type,
			Actor: models.Actor{
				ID:    w.Actor.ID,
				Login: w.Actor.Login,
			},
			Repository: models.Repository{
				ID:       w.Repo.ID,
				FullName: w.Repo.Name,
			},
			Timestamp: w.CreatedAt.UTC(),
			Payload:   w.Payload,
			Priority:  models.PriorityFor(w.Type),
		}
		if err := ev.Validate(); err != nil {
			c.logger.Warn("Dropping corrupt upstream event", "error", err)
			continue
		}
		result.Events = append(result.Events, ev)
	}

	return result, nil
}

// RepoMetadata is the subset of repository details the contextual
// detector consumes.
type RepoMetadata struct {
	FullName        string `json:"full_name"`
	Stars           int    `json:"stargazers_count"`
	Forks           int    `json:"forks_count"`
	OpenIssues      int    `json:"open_issues_count"`
	DefaultBranch   string `json:"default_branch"`
	SecurityAndAnalysis *struct {
		AdvancedSecurity *struct {
			Status string `json:"status"`
		} `json:"advanced_security"`
	} `json:"security_and_analysis"`
}

// HasSecurityPolicy reports whether advanced security is enabled.
func (m *RepoMetadata) HasSecurityPolicy() bool {
	return m.SecurityAndAnalysis != nil &&
		m.SecurityAndAnalysis.AdvancedSecurity != nil &&
		m.SecurityAndAnalysis.AdvancedSecurity.Status == "enabled"
}

// GetRepository fetches metadata for a repository by full name
// ("owner/repo"). Missing repositories return nil without error; the
// caller scores with defaults.
func (c *Client) GetRepository(ctx context.Context, fullName string) (*RepoMetadata, error) {
	url := fmt.Sprintf("%s/repos/%s", c.baseURL, fullName)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	c.setAuthHeader(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch repository %s: %w", fullName, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil

	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{Reset: parseQuota(resp.Header).Reset}

	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: HTTP %d", ErrUpstream, resp.StatusCode)

	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("repository API returned HTTP %d for %s", resp.StatusCode, fullName)
	}

	var meta RepoMetadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return nil, fmt.Errorf("decode repository response: %w", err)
	}

	return &meta, nil
}

func (c *Client) setAuthHeader(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func parseQuota(h http.Header) Quota {
	q := Quota{}
	if v, err := strconv.Atoi(h.Get("X-RateLimit-Limit")); err == nil {
		q.Limit = v
	}
	if v, err := strconv.Atoi(h.Get("X-RateLimit-Remaining")); err == nil {
		q.Remaining = v
	}
	if v, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64); err == nil {
		q.Reset = time.Unix(v, 0).UTC()
	}
	return q
}

func parsePollInterval(h http.Header) time.Duration {
	if v, err := strconv.Atoi(h.Get("X-Poll-Interval")); err == nil && v > 0 {
		return time.Duration(v) * time.Second
	}
	return 0
}
