package transport

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

func TestHTTPURL(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"https://api.dooray.com", true},
		{"http://localhost:8080/hook", true},
		{"", true},
		{"ftp://api.dooray.com", false},
		{"https://", false},
		{"not-a-url", false},
		{"://bad", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validation.Validate(tt.value, HTTPURL)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, "must be an http or https URL")
			}
		})
	}
}
