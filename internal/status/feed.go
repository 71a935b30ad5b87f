package status

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rileyhilliard/vigil/internal/config"
	"github.com/rileyhilliard/vigil/internal/errors"
	"github.com/rileyhilliard/vigil/internal/logger"
)

// maxResponseBodySize caps feed payloads at 1MB.
const maxResponseBodySize = 1 << 20

// Connection pooling limits. The poller only talks to one host, so these
// are modest; keep-alives avoid a fresh TLS handshake every cycle.
const (
	maxIdleConns        = 4
	maxIdleConnsPerHost = 2
	idleConnTimeout     = 90 * time.Second
)

// Feed abstracts the two status endpoints the poller consumes.
// The concrete Client talks HTTP; tests substitute a stub.
type Feed interface {
	// Components fetches and decodes the component list.
	Components(ctx context.Context) ([]FeedComponent, error)

	// UnresolvedIncidents reports whether any incidents are open.
	// Returns false when no incidents URL is configured.
	UnresolvedIncidents(ctx context.Context) (bool, error)
}

// FeedComponent is one decoded component entry, pre-filtering.
type FeedComponent struct {
	Name   string
	State  ComponentState
	Hidden bool // hidden-unless-degraded (statuspage "showcase: false")
}

// StatusCodeError reports a non-2xx response from the feed. It is wrapped
// inside an ErrFeed structured error; callers that need the numeric code
// (the poller's status line) unwrap it with errors.As.
type StatusCodeError struct {
	Code int
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("unexpected HTTP status %d", e.Code)
}

// Client fetches and decodes the remote status feeds.
type Client struct {
	httpClient    *http.Client
	componentsURL string
	incidentsURL  string
	timeout       time.Duration
	log           logger.Logger
}

// NewClient creates a feed client for the configured endpoints.
// Timeouts are applied per-request via context, not on the http.Client.
func NewClient(cfg config.FeedConfig, log logger.Logger) *Client {
	if log == nil {
		log = logger.Noop()
	}
	return &Client{
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        maxIdleConns,
				MaxIdleConnsPerHost: maxIdleConnsPerHost,
				IdleConnTimeout:     idleConnTimeout,
			},
		},
		componentsURL: cfg.ComponentsURL,
		incidentsURL:  cfg.IncidentsURL,
		timeout:       cfg.Timeout,
		log:           log,
	}
}

// componentsPayload mirrors the statuspage.io components.json shape.
type componentsPayload struct {
	Components []struct {
		Name     string `json:"name"`
		Status   string `json:"status"`
		Showcase bool   `json:"showcase"`
	} `json:"components"`
}

// incidentsPayload mirrors the statuspage.io unresolved incidents shape.
type incidentsPayload struct {
	Incidents []struct {
		Status string `json:"status"`
	} `json:"incidents"`
}

// Components fetches and decodes the component list endpoint.
func (c *Client) Components(ctx context.Context) ([]FeedComponent, error) {
	body, err := c.get(ctx, c.componentsURL)
	if err != nil {
		return nil, err
	}

	var payload componentsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.log.Debug("components decode failed correlation_id=%s: %v", uuid.NewString(), err)
		return nil, errors.WrapWithCode(err, errors.ErrDecode,
			"Malformed components payload",
			"The feed did not return valid components JSON")
	}

	out := make([]FeedComponent, 0, len(payload.Components))
	for _, pc := range payload.Components {
		out = append(out, FeedComponent{
			Name:   pc.Name,
			State:  ParseComponentState(pc.Status),
			Hidden: !pc.Showcase,
		})
	}
	return out, nil
}

// UnresolvedIncidents fetches the incidents endpoint and reports whether
// any unresolved incidents exist. With no incidents URL configured it
// reports false without a request.
func (c *Client) UnresolvedIncidents(ctx context.Context) (bool, error) {
	if c.incidentsURL == "" {
		return false, nil
	}

	body, err := c.get(ctx, c.incidentsURL)
	if err != nil {
		return false, err
	}

	var payload incidentsPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.log.Debug("incidents decode failed correlation_id=%s: %v", uuid.NewString(), err)
		return false, errors.WrapWithCode(err, errors.ErrDecode,
			"Malformed incidents payload",
			"The feed did not return valid incidents JSON")
	}

	return len(payload.Incidents) > 0, nil
}

// get performs one GET with the per-request timeout and body cap.
// Transport failures and non-2xx statuses both come back as ErrFeed;
// non-2xx additionally wraps a StatusCodeError carrying the code.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFeed,
			"Invalid feed request",
			"Check the feed URL in your config")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFeed,
			"Feed unreachable",
			"Check your network connection and the feed URL")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBodySize))
		return nil, errors.WrapWithCode(&StatusCodeError{Code: resp.StatusCode}, errors.ErrFeed,
			fmt.Sprintf("Feed returned HTTP %d", resp.StatusCode),
			"The status page may be having trouble itself; vigil retries next cycle")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFeed,
			"Failed to read feed response",
			"")
	}
	return body, nil
}
