package dooray

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/iizs/godooray/internal/version"
	"github.com/iizs/godooray/pkg/transport"
)

// DefaultEndpoint is the public Dooray API.
const DefaultEndpoint = "https://api.dooray.com"

// Config contains configuration for a Client.
type Config struct {
	// Token is the personal API token (required).
	Token string `json:"-"`

	// Endpoint is the API base URL.
	// Default: https://api.dooray.com
	Endpoint string `json:"endpoint,omitempty"`

	// UserAgent is sent with every request.
	// Default: godooray/<version>
	UserAgent string `json:"userAgent,omitempty"`

	// Transport sends requests. Default: an HTTP transport with a 30s timeout.
	Transport transport.Transport `json:"-"`

	// Logger for request tracing. Default: null logger.
	Logger hclog.Logger `json:"-"`

	// AllowUnfilteredMemberLookup makes GetMembers without any filter list
	// the whole directory by sending an empty name filter. When false such
	// a call fails with an InvalidArgumentError.
	AllowUnfilteredMemberLookup bool `json:"allowUnfilteredMemberLookup,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Endpoint:  DefaultEndpoint,
		UserAgent: version.UserAgent(),
		Logger:    hclog.NewNullLogger(),
	}
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = defaults.Endpoint
	}
	if c.UserAgent == "" {
		c.UserAgent = defaults.UserAgent
	}
	if c.Logger == nil {
		c.Logger = defaults.Logger
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Token, validation.Required),
		validation.Field(&c.Endpoint, validation.Required, transport.HTTPURL),
	)
}
