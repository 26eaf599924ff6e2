// Package upstream provides typed HTTP access to the game's JSON endpoints.
// Every GET is conditional: the client remembers the last ETag per
// (endpoint, server) and a 304 answer surfaces as ErrNotModified so callers
// can skip the tick cheaply. Upstream failures are never fatal — pollers log
// them and retry on the next tick.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// ErrNotModified reports that the endpoint answered 304 and the previous
// snapshot is still current.
var ErrNotModified = errors.New("upstream: not modified")

// StatusError is a non-2xx upstream answer. 5xx codes are transient
// (retried next tick); 4xx codes other than 304 are permanent and logged
// with rate limiting by the caller.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s: HTTP %d", e.Endpoint, e.Code)
}

// Transient reports whether the failure is worth retrying next tick.
func (e *StatusError) Transient() bool { return e.Code >= 500 }

// Config holds the upstream base URLs.
type Config struct {
	PanelURL   string `yaml:"panel_url"`
	AWSURL     string `yaml:"aws_url"`
	RoutingURL string `yaml:"routing_url"`
	ProfileURL string `yaml:"profile_url"`
}

// Client is the typed upstream API client.
type Client struct {
	cfg        Config
	httpClient *http.Client

	mu    sync.Mutex
	etags map[string]string // request URL -> last ETag
}

// NewClient creates an upstream client with a 5 s connect/read timeout.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				ResponseHeaderTimeout: 5 * time.Second,
				MaxIdleConnsPerHost:   8,
			},
		},
		etags: make(map[string]string),
	}
}

// envelope is the upstream response wrapper {result: bool, data: ...}.
type envelope struct {
	Result bool            `json:"result"`
	Data   json.RawMessage `json:"data"`
}

// getJSON issues a conditional GET and decodes the enveloped payload into out.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	body, err := c.get(ctx, url, "application/json")
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	if !env.Result {
		return fmt.Errorf("upstream %s: result=false", url)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", url, err)
	}
	return nil
}

// getRawJSON issues a conditional GET for endpoints without the envelope.
func (c *Client) getRawJSON(ctx context.Context, url string, out any) error {
	body, err := c.get(ctx, url, "application/json")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, url, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", accept)

	c.mu.Lock()
	if etag := c.etags[url]; etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	c.mu.Unlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotModified:
		return nil, ErrNotModified
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &StatusError{Endpoint: url, Code: resp.StatusCode}
	}

	if etag := resp.Header.Get("ETag"); etag != "" {
		c.mu.Lock()
		c.etags[url] = etag
		c.mu.Unlock()
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}
