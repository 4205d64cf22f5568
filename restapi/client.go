// Package restapi is a thin client for the users API. It issues requests
// with the configured headers and hands back raw responses; interpreting
// a body is the contract package's job.
package restapi

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/servalue/reqres-contract-tests/config"
	"github.com/servalue/reqres-contract-tests/framework"
)

// Client issues requests against the users API. Each scenario constructs
// its own Client, so nothing is shared between concurrently running
// scenarios; Close releases the underlying connections.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
	logger     framework.Logger
}

// ListUsersParams are the optional pagination parameters for GetUserList.
// An unset value is omitted from the query string entirely rather than
// sent as zero.
type ListUsersParams struct {
	Page    ldvalue.OptionalInt
	PerPage ldvalue.OptionalInt
}

// Response is one raw API response: the status code plus the undecoded
// body, with the request URL kept for error reporting.
type Response struct {
	StatusCode int
	URL        string
	Body       []byte
}

// New creates a Client for the configured base URL. Every request is
// reported to the logger; the harness passes the scenario's captured
// debug logger. The transport is non-shared with keepalives disabled:
// clients are transient, one per scenario, and must not leak connections
// past the scenario's lifetime.
func New(cfg *config.Config, logger framework.Logger) *Client {
	if logger == nil {
		logger = framework.NullLogger()
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
		DisableKeepAlives:     true,
		MaxIdleConnsPerHost:   -1,
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		headers:    cfg.Headers(),
		httpClient: &http.Client{Transport: transport},
		logger:     logger,
	}
}

// Close releases any connections still held by the client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// GetUserList requests a page of the user collection.
func (c *Client) GetUserList(ctx context.Context, params ListUsersParams) (*Response, error) {
	query := url.Values{}
	if params.Page.IsDefined() {
		query.Set("page", strconv.Itoa(params.Page.IntValue()))
	}
	if params.PerPage.IsDefined() {
		query.Set("per_page", strconv.Itoa(params.PerPage.IntValue()))
	}
	target := c.baseURL + "/users"
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.get(ctx, target)
}

// GetUser requests a single user by ID.
func (c *Client) GetUser(ctx context.Context, id int) (*Response, error) {
	return c.get(ctx, fmt.Sprintf("%s/users/%d", c.baseURL, id))
}

func (c *Client) get(ctx context.Context, target string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", target, nil)
	if err != nil {
		return nil, err
	}
	for name, values := range c.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	c.logger.Printf("GET %s", target)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", target, err)
	}
	defer resp.Body.Close()
	c.logger.Printf("GET %s -> %d", target, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: reading response body: %w", target, err)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		URL:        target,
		Body:       body,
	}, nil
}
