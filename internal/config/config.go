// Package config loads the CLI configuration file and resolves the API
// token.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/iizs/godooray/pkg/dooray"
	"github.com/iizs/godooray/pkg/hook"
	"github.com/iizs/godooray/pkg/transport"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "DOORAY_CONFIG"

// DefaultLogLevel is used when log_level is not set.
const DefaultLogLevel = "warn"

var logLevels = []any{"trace", "debug", "info", "warn", "error", "off"}

// Config is the CLI configuration file.
type Config struct {
	// Endpoint is the API base URL.
	Endpoint string `hcl:"endpoint,optional"`

	// UserAgent overrides the default User-Agent.
	UserAgent string `hcl:"user_agent,optional"`

	// Token is the API token. Prefer the keyring (see "dooray login").
	Token string `hcl:"token,optional"`

	// LogLevel is one of trace, debug, info, warn, error or off.
	LogLevel string `hcl:"log_level,optional"`

	// ProjectID is the default project for project commands.
	ProjectID string `hcl:"project_id,optional"`

	// Hook configures "dooray hook send".
	Hook *Hook `hcl:"hook,block"`
}

// Hook is an incoming webhook.
type Hook struct {
	URL     string `hcl:"url"`
	BotName string `hcl:"bot_name,optional"`
	BotIcon string `hcl:"bot_icon,optional"`
}

// DefaultPath returns $DOORAY_CONFIG, or config.hcl in the user config
// directory.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "godooray.hcl"
	}
	return filepath.Join(dir, "godooray", "config.hcl")
}

// Load parses the config file at path on fsys.
func Load(fsys afero.Fs, path string) (*Config, error) {
	src, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %q: %w", path, err)
	}

	// hclsimple picks the syntax from the file extension.
	name := path
	if !strings.HasSuffix(name, ".hcl") && !strings.HasSuffix(name, ".json") {
		name += ".hcl"
	}

	var cfg Config
	if err := hclsimple.Decode(name, src, nil, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file %q: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields the defaults.
func LoadOrDefault(fsys afero.Fs, path string) (*Config, error) {
	cfg, err := Load(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = &Config{}
		cfg.applyDefaults()
		return cfg, nil
	}
	return cfg, err
}

func (c *Config) applyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = dooray.DefaultEndpoint
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Endpoint, validation.Required, transport.HTTPURL),
		validation.Field(&c.LogLevel, validation.In(logLevels...)),
		validation.Field(&c.Hook),
	)
}

// Validate checks the hook block.
func (h *Hook) Validate() error {
	return validation.ValidateStruct(h,
		validation.Field(&h.URL, validation.Required, transport.HTTPURL),
		validation.Field(&h.BotIcon, transport.HTTPURL),
	)
}


// ClientConfig returns the library configuration for token.
func (c *Config) ClientConfig(token string, logger hclog.Logger) dooray.Config {
	return dooray.Config{
		Token:     token,
		Endpoint:  c.Endpoint,
		UserAgent: c.UserAgent,
		Logger:    logger,
	}
}

// HookConfig returns the webhook configuration from the hook block. hookURL,
// when set, replaces the configured URL.
func (c *Config) HookConfig(hookURL, userAgent string, logger hclog.Logger) (hook.Config, error) {
	var cfg hook.Config
	if c.Hook != nil {
		cfg = hook.Config{
			URL:          c.Hook.URL,
			BotName:      c.Hook.BotName,
			BotIconImage: c.Hook.BotIcon,
		}
	}
	if hookURL != "" {
		cfg.URL = hookURL
	}
	if cfg.URL == "" {
		return cfg, errors.New("no hook URL: set -url or a hook block in the config file")
	}
	cfg.UserAgent = userAgent
	cfg.Logger = logger
	return cfg, nil
}
