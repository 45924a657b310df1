// Package base holds what every CLI command shares: the logger, the UI, the
// filesystem the config file is read from, and the common API flags.
package base

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/iizs/godooray/internal/config"
	"github.com/iizs/godooray/pkg/dooray"
	"github.com/iizs/godooray/pkg/transport"
)

// Command is embedded by every command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
	Fs  afero.Fs

	// Transport replaces the HTTP transport when set.
	Transport transport.Transport
}

// FlagSet wraps flag.FlagSet to render help text.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Parse errors are returned, not printed.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help returns the options section of a command's help.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s", fl.Name)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, "=%s", fl.DefValue)
		}
		fmt.Fprintf(&b, "\n      %s\n", fl.Usage)
	})
	return b.String()
}

// APIFlags are accepted by every command that calls the API.
type APIFlags struct {
	Config   string
	Profile  string
	Token    string
	LogLevel string
	Format   string
}

// Register adds the API flags to f.
func (a *APIFlags) Register(f *FlagSet) {
	f.StringVar(&a.Config, "config", "", "Path to the config file. Defaults to $DOORAY_CONFIG or the user config directory.")
	f.StringVar(&a.Profile, "profile", config.DefaultProfile, "Keyring profile holding the API token.")
	f.StringVar(&a.Token, "token", "", "API token. Overrides the environment, config file and keyring.")
	f.StringVar(&a.LogLevel, "log-level", "", "Log level: trace, debug, info, warn, error or off.")
	f.StringVar(&a.Format, "format", FormatTable, "Output format: table, json or yaml.")
}

// LoadConfig reads the config file named by flags. A missing default file
// is not an error; a missing explicit one is. The log level from the flags
// or the file is applied to c.Log.
func (c *Command) LoadConfig(flags *APIFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.Config != "" {
		cfg, err = config.Load(c.Fs, flags.Config)
	} else {
		cfg, err = config.LoadOrDefault(c.Fs, config.DefaultPath())
	}
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if flags.LogLevel != "" {
		level = flags.LogLevel
	}
	if l := hclog.LevelFromString(level); l != hclog.NoLevel {
		c.Log.SetLevel(l)
	}
	return cfg, nil
}

// Client loads the configuration, resolves the token and builds an API
// client.
func (c *Command) Client(flags *APIFlags) (*dooray.Client, *config.Config, error) {
	cfg, err := c.LoadConfig(flags)
	if err != nil {
		return nil, nil, err
	}

	token, source, err := config.ResolveToken(flags.Token, cfg, flags.Profile)
	if err != nil {
		return nil, nil, err
	}
	c.Log.Debug("resolved API token", "source", source, "profile", flags.Profile)

	clientCfg := cfg.ClientConfig(token, c.Log)
	clientCfg.Transport = c.Transport

	client, err := dooray.NewClient(clientCfg)
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}
