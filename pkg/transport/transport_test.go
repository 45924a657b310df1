package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_Do(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messenger/v1/channels", r.URL.Path)
		assert.Equal(t, "memberId", r.URL.Query().Get("idType"))
		assert.Equal(t, "keep", r.URL.Query().Get("existing"))
		assert.Equal(t, "dooray-api secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "general", body["title"])

		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"header":{"isSuccessful":true}}`)
	}))
	defer mockServer.Close()

	tr, err := NewHTTP(&Config{Timeout: 5 * time.Second, Logger: hclog.NewNullLogger()})
	require.NoError(t, err)

	header := http.Header{}
	header.Set("Authorization", "dooray-api secret")

	resp, err := tr.Do(context.Background(), &Request{
		Method: http.MethodPost,
		URL:    mockServer.URL + "/messenger/v1/channels?existing=keep",
		Header: header,
		Query:  url.Values{"idType": {"memberId"}},
		Body:   map[string]string{"title": "general"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"header":{"isSuccessful":true}}`, resp.Text())
}

func TestHTTP_Do_NonOKStatusIsNotAnError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "boom")
	}))
	defer mockServer.Close()

	tr, err := NewHTTP(nil)
	require.NoError(t, err)

	resp, err := tr.Do(context.Background(), &Request{Method: http.MethodGet, URL: mockServer.URL})
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "boom", resp.Text())
}

func TestHTTP_Do_ContextCanceled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	tr := NewHTTPWithClient(mockServer.Client(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Do(ctx, &Request{Method: http.MethodGet, URL: mockServer.URL})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "defaults",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "zero timeout",
			config:  &Config{},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			config:  &Config{Timeout: -time.Second},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_NewHTTPClient(t *testing.T) {
	insecure := false
	cfg := &Config{Timeout: 3 * time.Second, TLSVerify: &insecure}

	client := cfg.NewHTTPClient()
	assert.Equal(t, 3*time.Second, client.Timeout)

	tr, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	require.NotNil(t, tr.TLSClientConfig)
	assert.True(t, tr.TLSClientConfig.InsecureSkipVerify)
}
