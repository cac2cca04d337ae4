// Package roam implements the gateway to the Roam Research HTTP API.
//
// The client translates four notebook operations into authenticated calls
// against a single graph: Datalog queries go to /api/graph/{graph}/q and
// block/page mutations to /api/graph/{graph}/write. It holds no mutable
// state after construction and is safe for concurrent use.
package roam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/roamkit/roam-mcp/internal/config"
	"github.com/roamkit/roam-mcp/internal/roamerr"
)

// maxResponseBytes bounds how much of an API response is read. Roam pull
// results for a single page stay far below this.
const maxResponseBytes = 8 << 20

// Client is the Remote Notebook Gateway. Construct it with New; the zero
// value is not usable.
type Client struct {
	cfg  *config.Config
	http *http.Client
	now  func() time.Time
	uid  func() string
}

// Option configures a Client.
type Option func(*Client)

// WithTransport replaces the HTTP transport. Tests use this to stub the
// wire without a listener.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.Transport = rt
	}
}

// WithClock replaces the time source used for daily page resolution.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a gateway client for the configured graph. It fails with a
// configuration error before any network call can be made if the
// configuration is missing or invalid.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, roamerr.Configurationf("gateway configuration is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.RequestTimeout},
		now:  time.Now,
		uid:  newBlockUID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Graph returns the graph name all operations are scoped to.
func (c *Client) Graph() string {
	return c.cfg.Graph
}

func (c *Client) queryEndpoint() string {
	return "/api/graph/" + url.PathEscape(c.cfg.Graph) + "/q"
}

func (c *Client) writeEndpoint() string {
	return "/api/graph/" + url.PathEscape(c.cfg.Graph) + "/write"
}

// post issues one authenticated JSON request and decodes the response into
// out when it is non-nil and the body is non-empty. Non-success statuses
// become *roamerr.APIError; transport failures become network errors.
func (c *Client) post(ctx context.Context, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request for %s: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request for %s: %w", endpoint, err)
	}
	req.Header.Set("X-Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return roamerr.Networkf(err, "calling %s", endpoint)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return roamerr.Networkf(err, "reading response from %s", endpoint)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &roamerr.APIError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(data)),
		}
	}

	// Write actions answer with an empty body on success.
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return roamerr.Upstreamf("malformed response from %s: %v", endpoint, err)
	}
	return nil
}

type queryRequest struct {
	Query string `json:"query"`
	Args  []any  `json:"args,omitempty"`
}

type queryResponse struct {
	Result []json.RawMessage `json:"result"`
}

// runQuery executes a Datalog query against the graph.
func (c *Client) runQuery(ctx context.Context, query string, args ...any) (*queryResponse, error) {
	var out queryResponse
	if err := c.post(ctx, c.queryEndpoint(), queryRequest{Query: query, Args: args}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
