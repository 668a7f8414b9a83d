package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"pod-dashboard/pkg/logger"
)

// Config describes how to reach the trends backend.
type Config struct {
	BaseURL    string
	APIKey     string
	Connection ConnectionConfig
}

// Client is a thin JSON passthrough over the backend's REST collections.
type Client struct {
	baseURL     string
	apiKey      string
	connManager *ConnectionManager
	log         *logger.Logger

	trends   *trendsResource
	products *productsResource
	designs  *designsResource

	totalRequests  uint64
	failedRequests uint64
}

// NewClient builds a client rooted at cfg.BaseURL, e.g. http://localhost:8000/api/v1.
func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, ErrNoBaseURL
	}

	c := &Client{
		baseURL:     base,
		apiKey:      cfg.APIKey,
		connManager: NewConnectionManager(cfg.Connection),
		log:         logger.GetLogger().WithField("component", "api_client"),
	}
	c.trends = &trendsResource{c: c}
	c.products = &productsResource{c: c}
	c.designs = &designsResource{c: c}
	return c, nil
}

func (c *Client) Trends() TrendsAPI     { return c.trends }
func (c *Client) Products() ProductsAPI { return c.products }
func (c *Client) Designs() DesignsAPI   { return c.designs }

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string { return c.baseURL }

// Stats returns request counters since start.
func (c *Client) Stats() map[string]uint64 {
	return map[string]uint64{
		"total_requests":  atomic.LoadUint64(&c.totalRequests),
		"failed_requests": atomic.LoadUint64(&c.failedRequests),
	}
}

func (c *Client) Close() {
	c.connManager.Close()
}

// do sends one request and decodes a JSON response into out. body, when not nil,
// is marshalled as the JSON request payload.
func (c *Client) do(ctx context.Context, method, path string, query []Param, body interface{}, out interface{}) error {
	atomic.AddUint64(&c.totalRequests, 1)
	start := time.Now()

	err := c.doRequest(ctx, method, path, query, body, out)

	log := c.log.WithFields(map[string]interface{}{
		"method":      method,
		"path":        path,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	if err != nil {
		atomic.AddUint64(&c.failedRequests, 1)
		log.WithError(err).Debug("API request failed")
		return err
	}
	log.Debug("API request completed")
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, query []Param, body interface{}, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.buildURL(path, query))
	req.Header.SetMethod(method)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}

	if err := c.send(ctx, req, resp); err != nil {
		return fmt.Errorf("%s %s: request failed: %w", method, path, err)
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: status,
			Body:       truncate(string(resp.Body()), 512),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%s %s: failed to decode response: %w", method, path, err)
	}
	return nil
}

// send picks the tightest of the context deadline and the configured timeout.
// fasthttp has no context support, so cancellation without a deadline is only
// observed before the request starts.
func (c *Client) send(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	client := c.connManager.GetFastHTTPClient()

	deadline, hasDeadline := ctx.Deadline()
	if timeout := c.connManager.RequestTimeout(); timeout > 0 {
		if limit := time.Now().Add(timeout); !hasDeadline || limit.Before(deadline) {
			deadline, hasDeadline = limit, true
		}
	}

	if hasDeadline {
		return client.DoDeadline(req, resp, deadline)
	}
	return client.Do(req, resp)
}

func (c *Client) buildURL(path string, query []Param) string {
	if len(query) == 0 {
		return c.baseURL + path
	}

	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	for _, p := range query {
		args.Add(p.Key, p.Value)
	}
	return c.baseURL + path + "?" + string(args.QueryString())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
