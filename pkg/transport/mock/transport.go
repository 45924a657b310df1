// Package mock provides a recording Transport for tests.
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/iizs/godooray/pkg/transport"
)

// OKEnvelope is the body returned when no response has been queued.
const OKEnvelope = `{"header":{"isSuccessful":true,"resultCode":0,"resultMessage":""}}`

// Recorded is a request as seen by the mock. Body holds the JSON encoding of
// the request body, or nil if there was none.
type Recorded struct {
	Method string
	URL    string
	Header http.Header
	Query  url.Values
	Body   []byte
}

// JSON decodes the recorded body into a generic map.
func (r *Recorded) JSON() map[string]any {
	if r.Body == nil {
		return nil
	}
	var out map[string]any
	if err := json.Unmarshal(r.Body, &out); err != nil {
		return nil
	}
	return out
}

// Transport is a mock transport.Transport. Queued responses are returned in
// order; the last one repeats once the queue is drained.
type Transport struct {
	mu        sync.Mutex
	responses []*transport.Response
	err       error
	requests  []*Recorded
}

var _ transport.Transport = (*Transport)(nil)

// New creates a mock transport that answers every request with OKEnvelope.
func New() *Transport {
	return &Transport{}
}

// WithResponse queues a raw response.
func (t *Transport) WithResponse(status int, body string) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses = append(t.responses, &transport.Response{StatusCode: status, Body: []byte(body)})
	return t
}

// WithJSON queues a response whose body is the JSON encoding of v.
func (t *Transport) WithJSON(status int, v any) *Transport {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("mock: cannot encode response: %v", err))
	}
	return t.WithResponse(status, string(b))
}

// WithError makes every request fail with err before any response.
func (t *Transport) WithError(err error) *Transport {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.err = err
	return t
}

// Do records req and returns the next queued response.
func (t *Transport) Do(ctx context.Context, req *transport.Request) (*transport.Response, error) {
	rec := &Recorded{
		Method: req.Method,
		URL:    req.URL,
		Header: req.Header.Clone(),
		Query:  cloneValues(req.Query),
	}
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		rec.Body = b
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.requests = append(t.requests, rec)

	if t.err != nil {
		return nil, t.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch len(t.responses) {
	case 0:
		return &transport.Response{StatusCode: http.StatusOK, Body: []byte(OKEnvelope)}, nil
	case 1:
		return t.responses[0], nil
	default:
		resp := t.responses[0]
		t.responses = t.responses[1:]
		return resp, nil
	}
}

// Requests returns every request seen so far.
func (t *Transport) Requests() []*Recorded {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Recorded(nil), t.requests...)
}

// LastRequest returns the most recent request, or nil.
func (t *Transport) LastRequest() *Recorded {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.requests) == 0 {
		return nil
	}
	return t.requests[len(t.requests)-1]
}

func cloneValues(v url.Values) url.Values {
	if v == nil {
		return url.Values{}
	}
	out := make(url.Values, len(v))
	for k, vs := range v {
		out[k] = append([]string(nil), vs...)
	}
	return out
}
