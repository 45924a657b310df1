package login

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/iizs/godooray/internal/cmd/base"
	"github.com/iizs/godooray/internal/config"
	"github.com/iizs/godooray/pkg/dooray"
)

type Command struct {
	*base.Command

	flagProfile string
	flagConfig  string
	flagVerify  bool
	flagLogout  bool
}

func (c *Command) Synopsis() string {
	return "Store an API token in the OS keyring"
}

func (c *Command) Help() string {
	return `Usage: dooray login [options]

  Prompts for a personal API token and stores it in the OS keyring under
  the given profile. Later commands read it from there when neither -token
  nor DOORAY_API_TOKEN is set.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("login", flag.ContinueOnError))

	f.StringVar(&c.flagProfile, "profile", config.DefaultProfile, "Keyring profile to store the token under.")
	f.StringVar(&c.flagConfig, "config", "", "Path to the config file, used for the endpoint when verifying.")
	f.BoolVar(&c.flagVerify, "verify", true, "Check the token against the API before storing it.")
	f.BoolVar(&c.flagLogout, "logout", false, "Remove the stored token instead.")

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagLogout {
		if err := config.DeleteToken(c.flagProfile); err != nil {
			ui.Error(err.Error())
			return 1
		}
		ui.Info(fmt.Sprintf("Removed token for profile %q", c.flagProfile))
		return 0
	}

	token, err := ui.AskSecret("Dooray API token:")
	if err != nil {
		ui.Error(fmt.Sprintf("error reading token: %v", err))
		return 1
	}
	token = strings.TrimSpace(token)
	if token == "" {
		ui.Error("token is empty")
		return 1
	}

	if c.flagVerify {
		if err := c.verify(token); err != nil {
			ui.Error(fmt.Sprintf("token rejected: %v", err))
			return 1
		}
	}

	if err := config.StoreToken(c.flagProfile, token); err != nil {
		ui.Error(err.Error())
		return 1
	}
	ui.Info(fmt.Sprintf("Stored token for profile %q", c.flagProfile))
	return 0
}

// verify makes one cheap authenticated call.
func (c *Command) verify(token string) error {
	cfg, err := c.LoadConfig(&base.APIFlags{Config: c.flagConfig})
	if err != nil {
		return err
	}

	clientCfg := cfg.ClientConfig(token, c.Log)
	clientCfg.Transport = c.Transport
	client, err := dooray.NewClient(clientCfg)
	if err != nil {
		return err
	}

	_, err = client.Messenger.GetChannels(context.Background())
	return err
}
