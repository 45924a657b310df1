package transport

import (
	"errors"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// HTTPURL accepts absolute http and https URLs. Empty values pass; combine
// with validation.Required when the field is mandatory.
var HTTPURL = validation.By(checkHTTPURL)

func checkHTTPURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an http or https URL")
	}
	return nil
}
