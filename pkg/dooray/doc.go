// Package dooray is a client for the Dooray! REST API.
//
// # Overview
//
// A Client wraps one API token and sends every call through a single
// request path: it adds the "dooray-api" Authorization header and the
// User-Agent, checks the HTTP status, and decodes the response envelope
// into typed models. Endpoints are grouped the way the API groups them:
//
//   - Directory lookups are methods on Client (GetMembers, GetIncomingHook)
//   - Client.Messenger holds channels and messages
//   - Client.Project holds projects, milestones, tags, templates, posts
//     and post logs
//
// # Configuration Example
//
//	client, err := dooray.NewClient(dooray.Config{
//	    Token:  os.Getenv("DOORAY_API_TOKEN"),
//	    Logger: hclog.Default(),
//	})
//
// # Errors
//
// Failures are reported with the types in package doorayerr:
//
//	Non-200 status                 -> *doorayerr.BadStatusError
//	200 with SERVER_GENERAL_ERROR  -> *doorayerr.ServerGeneralError
//	Envelope or entity mismatch    -> *doorayerr.MalformedResponseError
//	Missing or invalid argument    -> *doorayerr.InvalidArgumentError
//
// Arguments are checked before any request is sent. Project.IsCreatable is
// the only call that turns a BadStatusError into a plain false.
//
// # Pagination
//
// List calls take an envelope.Pagination. envelope.All() requests the whole
// collection; the returned ListResponse then reports Page 0 and Size equal
// to TotalCount.
//
// # Testing
//
// Config.Transport accepts any transport.Transport. The mock subpackage of
// transport records requests and replays canned responses.
package dooray
