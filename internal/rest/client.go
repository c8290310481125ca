// Package rest implements the typed HTTP client for the CreatorHub platform
// API. One Client carries the base URL, the HTTP transport and the live
// token provider; the per-resource files layer typed calls on top of do.
package rest

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

	"github.com/rs/zerolog"

	"github.com/creatorhub/platform-client/internal/core/domain"
	"github.com/creatorhub/platform-client/internal/core/ports"
	"github.com/creatorhub/platform-client/internal/metrics"
)

const defaultTimeout = 15 * time.Second

// envelope is the response shape shared by every platform API endpoint.
type envelope struct {
	Success    bool               `json:"success"`
	Data       json.RawMessage    `json:"data,omitempty"`
	Token      string             `json:"token,omitempty"`
	Error      string             `json:"error,omitempty"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

// Client is the HTTP core. The Authorization header is attached per request
// from the token provider, so the session layer never mutates client state.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenProvider
	log     zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport (tests, custom timeouts).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout on the default transport.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient builds a Client for the given API base URL. tokens may be nil
// for a client that only ever calls public endpoints.
func NewClient(baseURL string, tokens ports.TokenProvider, log zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		tokens:  tokens,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do issues one request and decodes the envelope. Non-2xx responses and
// envelopes with success=false become *domain.APIError carrying the server
// message; transport and decoding failures are returned as-is. When out is
// non-nil the envelope's data payload is unmarshalled into it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("rest: encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("rest: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RequestDuration.WithLabelValues(method, "transport_error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("rest: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	env, decodeErr := decodeEnvelope(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RequestDuration.WithLabelValues(method, "api_error").Observe(time.Since(start).Seconds())
		msg := ""
		if env != nil {
			msg = env.Error
		}
		c.log.Debug().Int("status", resp.StatusCode).Str("path", path).Str("error", msg).Msg("api request rejected")
		return nil, &domain.APIError{Status: resp.StatusCode, Message: msg}
	}
	if decodeErr != nil {
		metrics.RequestDuration.WithLabelValues(method, "transport_error").Observe(time.Since(start).Seconds())
		return nil, fmt.Errorf("rest: %s %s: decode response: %w", method, path, decodeErr)
	}
	if !env.Success {
		metrics.RequestDuration.WithLabelValues(method, "api_error").Observe(time.Since(start).Seconds())
		return nil, &domain.APIError{Status: resp.StatusCode, Message: env.Error}
	}

	metrics.RequestDuration.WithLabelValues(method, "ok").Observe(time.Since(start).Seconds())

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("rest: %s %s: decode data: %w", method, path, err)
		}
	}
	return env, nil
}

func decodeEnvelope(r io.Reader) (*envelope, error) {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return nil, err
	}
	return &env, nil
}
