// Package transport sends requests to the Dooray API.
//
// The Transport interface is the only seam between the client and the
// network. HTTP is the production implementation; tests substitute the
// recording fake in the mock subpackage.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-hclog"
)

// Request is a single API call.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Query  url.Values

	// Body is encoded as JSON when non-nil.
	Body any
}

// Response is what came back from the server. A Response is returned for
// every status code; interpreting the status is up to the caller.
type Response struct {
	StatusCode int
	Body       []byte
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// Transport sends a Request and returns the raw Response. An error means no
// response was received at all.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// HTTP implements Transport over net/http.
type HTTP struct {
	client *http.Client
	logger hclog.Logger
}

var _ Transport = (*HTTP)(nil)

// NewHTTP creates a new HTTP transport.
func NewHTTP(cfg *Config) (*HTTP, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transport config: %w", err)
	}

	return &HTTP{
		client: cfg.NewHTTPClient(),
		logger: cfg.Logger.Named("transport"),
	}, nil
}

// NewHTTPWithClient creates an HTTP transport around an existing client.
func NewHTTPWithClient(client *http.Client, logger hclog.Logger) *HTTP {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &HTTP{client: client, logger: logger.Named("transport")}
}

// Do sends req and reads the full response body.
func (t *HTTP) Do(ctx context.Context, req *Request) (*Response, error) {
	endpoint, err := buildURL(req.URL, req.Query)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	t.logger.Debug("sending request", "method", req.Method, "url", endpoint)

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	t.logger.Trace("received response",
		"method", req.Method,
		"url", endpoint,
		"status", resp.StatusCode,
		"bytes", len(respBody),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}

// buildURL appends query to rawURL, keeping any query already present.
func buildURL(rawURL string, query url.Values) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid request URL %q: %w", rawURL, err)
	}

	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}
