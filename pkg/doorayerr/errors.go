// Package doorayerr defines the error kinds returned by the Dooray client.
//
// Every kind is a struct type usable with errors.As, and each one also
// matches a sentinel with errors.Is:
//
//	var bad *doorayerr.BadStatusError
//	if errors.As(err, &bad) && bad.StatusCode == http.StatusNotFound {
//		...
//	}
//
//	if errors.Is(err, doorayerr.ErrMalformedResponse) {
//		...
//	}
package doorayerr

import (
	"errors"
	"fmt"
)

// ServerGeneralErrorBody is the literal body the API sends with a 200 status
// when a request fails for an unspecified reason (most often an unknown id).
const ServerGeneralErrorBody = "SERVER_GENERAL_ERROR"

var (
	ErrBadStatus         = errors.New("bad response status")
	ErrServerGeneral     = errors.New("server general error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// BadStatusError is returned when the API answers with any status other than
// 200.
type BadStatusError struct {
	StatusCode int
	Method     string
	URL        string
	Body       string // Raw response text, possibly empty
}

func (e *BadStatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

func (e *BadStatusError) Is(target error) bool {
	return target == ErrBadStatus
}

// ServerGeneralError is returned when the API answers 200 with the body
// SERVER_GENERAL_ERROR instead of an envelope.
type ServerGeneralError struct {
	Method string
	URL    string
}

func (e *ServerGeneralError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, ServerGeneralErrorBody)
}

func (e *ServerGeneralError) Is(target error) bool {
	return target == ErrServerGeneral
}

// MalformedResponseError is returned when a payload is missing a required
// field or has a field of the wrong type. Err lists every problem found.
type MalformedResponseError struct {
	Entity string // e.g. "Member", "envelope"
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s: %v", e.Entity, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// InvalidArgumentError is returned before any request is sent when a caller
// argument fails validation.
type InvalidArgumentError struct {
	Operation string
	Err       error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument: %v", e.Operation, e.Err)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewBadStatus creates a new bad status error.
func NewBadStatus(method, url string, statusCode int, body string) *BadStatusError {
	return &BadStatusError{
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
		Body:       body,
	}
}

// NewServerGeneral creates a new server general error.
func NewServerGeneral(method, url string) *ServerGeneralError {
	return &ServerGeneralError{Method: method, URL: url}
}

// NewMalformed creates a new malformed response error.
func NewMalformed(entity string, err error) *MalformedResponseError {
	return &MalformedResponseError{Entity: entity, Err: err}
}

// NewInvalidArgument creates a new invalid argument error.
func NewInvalidArgument(operation string, err error) *InvalidArgumentError {
	return &InvalidArgumentError{Operation: operation, Err: err}
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not a
// BadStatusError.
func StatusCode(err error) int {
	var bad *BadStatusError
	if errors.As(err, &bad) {
		return bad.StatusCode
	}
	return 0
}
