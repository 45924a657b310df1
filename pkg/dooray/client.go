package dooray

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"

	"github.com/iizs/godooray/pkg/doorayerr"
	"github.com/iizs/godooray/pkg/envelope"
	"github.com/iizs/godooray/pkg/models"
	"github.com/iizs/godooray/pkg/transport"
)

// AuthScheme is the Authorization scheme the API expects in front of the
// token.
const AuthScheme = "dooray-api"

// Ack is the result of endpoints that answer with a header only.
type Ack = envelope.Response[struct{}]

// Client is the entry point to the Dooray API. Directory lookups are
// methods on Client; messenger and project endpoints are grouped under the
// Messenger and Project fields. All three share one request path.
//
// A Client is safe for concurrent use.
type Client struct {
	r *requester

	allowUnfilteredMemberLookup bool

	Messenger *Messenger
	Project   *Project
}

// NewClient creates a new Client.
func NewClient(cfg Config) (*Client, error) {
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dooray client config: %w", err)
	}

	if cfg.Transport == nil {
		tr, err := transport.NewHTTP(&transport.Config{Logger: cfg.Logger})
		if err != nil {
			return nil, err
		}
		cfg.Transport = tr
	}

	r := &requester{
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		header:    requestHeader(cfg.Token, cfg.UserAgent),
		transport: cfg.Transport,
		logger:    cfg.Logger.Named("dooray"),
	}

	return &Client{
		r:                           r,
		allowUnfilteredMemberLookup: cfg.AllowUnfilteredMemberLookup,
		Messenger:                   &Messenger{r: r},
		Project:                     &Project{r: r},
	}, nil
}

// requestHeader builds the headers sent with every API call.
func requestHeader(token, userAgent string) http.Header {
	req := &http.Request{Header: make(http.Header)}
	// oauth2.Token formats the Authorization header as "<type> <token>".
	tok := &oauth2.Token{AccessToken: token, TokenType: AuthScheme}
	tok.SetAuthHeader(req)
	req.Header.Set("User-Agent", userAgent)
	return req.Header
}

// requester sends API calls and applies the status checks shared by every
// endpoint.
type requester struct {
	endpoint  string
	header    http.Header
	transport transport.Transport
	logger    hclog.Logger
}

// call sends one request and returns the parsed envelope object. Any status
// other than 200 is a BadStatusError; a 200 carrying SERVER_GENERAL_ERROR is
// a ServerGeneralError.
func (r *requester) call(ctx context.Context, method, path string, query url.Values, body any) (map[string]any, error) {
	endpoint := r.endpoint + path

	resp, err := r.transport.Do(ctx, &transport.Request{
		Method: method,
		URL:    endpoint,
		Header: r.header.Clone(),
		Query:  query,
		Body:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call %s %s: %w", method, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Debug("unexpected status", "method", method, "path", path, "status", resp.StatusCode)
		return nil, doorayerr.NewBadStatus(method, endpoint, resp.StatusCode, resp.Text())
	}
	if resp.Text() == doorayerr.ServerGeneralErrorBody {
		return nil, doorayerr.NewServerGeneral(method, endpoint)
	}

	return envelope.Parse(resp.Body)
}

func doOne[T any](ctx context.Context, r *requester, method, path string, query url.Values, body any, dec envelope.Decoder[T]) (*envelope.Response[T], error) {
	obj, err := r.call(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	return envelope.DecodeResponse(obj, dec)
}

func doList[T any](ctx context.Context, r *requester, path string, query url.Values, p envelope.Pagination, dec envelope.Decoder[T]) (*envelope.ListResponse[T], error) {
	if query == nil {
		query = url.Values{}
	}
	p.Apply(query)

	obj, err := r.call(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	return envelope.DecodeListResponse(obj, dec, p)
}

func doAck(ctx context.Context, r *requester, method, path string, body any) (*Ack, error) {
	return doOne[struct{}](ctx, r, method, path, nil, body, nil)
}

func doRelation(ctx context.Context, r *requester, path string, body any) (*envelope.Response[*models.Relation], error) {
	return doOne(ctx, r, http.MethodPost, path, nil, body, models.DecodeRelation)
}

// pathf formats an API path, escaping every argument as a path segment.
func pathf(format string, ids ...string) string {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}
