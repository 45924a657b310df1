// Package envelope decodes the response wrapper shared by every Dooray API
// endpoint:
//
//	{
//	  "header": {"isSuccessful": true, "resultCode": 0, "resultMessage": ""},
//	  "result": ...,
//	  "totalCount": 42
//	}
//
// The header is always decoded; result is decoded with an entity decoder
// supplied by the caller; totalCount is read only for list results.
//
// A header with isSuccessful=false is returned as data. Errors are reserved
// for transport-level failures and payloads that do not match the contract.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iizs/godooray/internal/decode"
	"github.com/iizs/godooray/pkg/doorayerr"
)

// Decoder turns one JSON object into an entity.
type Decoder[T any] = decode.Func[T]

// Header is the status block of every response.
type Header struct {
	IsSuccessful  bool   `json:"isSuccessful"`
	ResultCode    int    `json:"resultCode"`
	ResultMessage string `json:"resultMessage"`
}

// Response is an envelope with at most one result.
type Response[T any] struct {
	Header Header `json:"header"`
	Result T      `json:"result"`
}

// ListResponse is an envelope whose result is a sequence.
type ListResponse[T any] struct {
	Header     Header `json:"header"`
	Result     []T    `json:"result"`
	TotalCount int    `json:"totalCount"`
	Page       int    `json:"page"`
	Size       int    `json:"size"`
}

// Parse decodes a raw response body into a JSON object. Numbers are kept as
// json.Number.
func Parse(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, doorayerr.NewMalformed("envelope", fmt.Errorf("body is not a JSON object: %w", err))
	}
	if obj == nil {
		return nil, doorayerr.NewMalformed("envelope", fmt.Errorf("body is null"))
	}
	return obj, nil
}

// DecodeHeader decodes a header object.
func DecodeHeader(obj map[string]any) (Header, error) {
	r := decode.NewReader("Header", obj)
	h := Header{
		IsSuccessful:  r.Bool("isSuccessful"),
		ResultCode:    r.Int("resultCode"),
		ResultMessage: r.String("resultMessage"),
	}
	return h, r.Err()
}

// DecodeResponse decodes a single-result envelope. When dec is nil the result
// is ignored, which is how acknowledgement-only endpoints are read.
func DecodeResponse[T any](obj map[string]any, dec Decoder[T]) (*Response[T], error) {
	r := decode.NewReader("envelope", obj)

	resp := &Response[T]{
		Header: decode.Nested(r, "header", DecodeHeader),
	}
	if dec != nil {
		resp.Result = decode.Nested(r, "result", dec)
	}

	if err := r.Err(); err != nil {
		return nil, err
	}
	return resp, nil
}

// DecodeListResponse decodes a list envelope and echoes the requested page.
// When p is unpaginated, Page is set to 0 and Size to TotalCount.
func DecodeListResponse[T any](obj map[string]any, dec Decoder[T], p Pagination) (*ListResponse[T], error) {
	r := decode.NewReader("envelope", obj)

	resp := &ListResponse[T]{
		Header:     decode.Nested(r, "header", DecodeHeader),
		Result:     decode.List(r, "result", dec),
		TotalCount: r.Int("totalCount"),
		Page:       p.Page,
		Size:       p.Size,
	}

	if err := r.Err(); err != nil {
		return nil, err
	}

	if p.Unpaginated() {
		resp.Page = 0
		resp.Size = resp.TotalCount
	}
	return resp, nil
}
