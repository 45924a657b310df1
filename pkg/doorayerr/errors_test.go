package doorayerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds_MatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"bad status", NewBadStatus("GET", "https://api.dooray.com/x", 404, ""), ErrBadStatus},
		{"server general", NewServerGeneral("GET", "https://api.dooray.com/x"), ErrServerGeneral},
		{"malformed", NewMalformed("Member", errors.New("id is required")), ErrMalformedResponse},
		{"invalid argument", NewInvalidArgument("CreateTag", errors.New("color is required")), ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("failed to call API: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)

			for _, other := range []error{ErrBadStatus, ErrServerGeneral, ErrMalformedResponse, ErrInvalidArgument} {
				if other != tt.sentinel {
					assert.NotErrorIs(t, wrapped, other)
				}
			}
		})
	}
}

func TestBadStatusError_As(t *testing.T) {
	err := fmt.Errorf("failed to get project: %w",
		NewBadStatus(http.MethodGet, "https://api.dooray.com/project/v1/projects/1", http.StatusForbidden, "denied"))

	var bad *BadStatusError
	require.True(t, errors.As(err, &bad))
	assert.Equal(t, http.StatusForbidden, bad.StatusCode)
	assert.Equal(t, "denied", bad.Body)
	assert.Equal(t, http.StatusForbidden, StatusCode(err))
	assert.Equal(t, 0, StatusCode(errors.New("other")))
	assert.Contains(t, err.Error(), "unexpected status 403")
}

func TestMalformedResponseError_Unwrap(t *testing.T) {
	cause := errors.New("name is required")
	err := NewMalformed("Member", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "malformed Member: name is required", err.Error())
}
