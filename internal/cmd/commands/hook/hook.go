package hook

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/iizs/godooray/internal/cmd/base"
	"github.com/iizs/godooray/pkg/hook"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Send messages through an incoming webhook"
}

func (c *Command) Help() string {
	return `Usage: dooray hook <subcommand> [options] [args]

  This command groups subcommands for incoming webhooks. Webhooks need no
  API token; the URL comes from -url or the hook block of the config file.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// SendCommand posts one message to a webhook.
type SendCommand struct {
	*base.Command

	flagConfig    string
	flagURL       string
	flagTitle     string
	flagTitleLink string
	flagDetail    string
	flagColor     string
}

func (c *SendCommand) Synopsis() string {
	return "Send a message through an incoming webhook"
}

func (c *SendCommand) Help() string {
	return `Usage: dooray hook send [options] <text>

  Posts text to the webhook, with one optional attachment built from the
  -title, -title-link, -detail and -color flags.` + c.Flags().Help()
}

func (c *SendCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("hook send", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to the config file.")
	f.StringVar(&c.flagURL, "url", "", "Webhook URL. Overrides the config file.")
	f.StringVar(&c.flagTitle, "title", "", "Attachment title.")
	f.StringVar(&c.flagTitleLink, "title-link", "", "Attachment title link.")
	f.StringVar(&c.flagDetail, "detail", "", "Attachment text.")
	f.StringVar(&c.flagColor, "color", "", "Attachment color.")

	return f
}

func (c *SendCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	text := strings.Join(flags.Args(), " ")
	if text == "" {
		ui.Error("message text is required")
		return 1
	}

	cfg, err := c.LoadConfig(&base.APIFlags{Config: c.flagConfig})
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	hookCfg, err := cfg.HookConfig(c.flagURL, cfg.UserAgent, c.Log)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	hookCfg.Transport = c.Transport

	h, err := hook.New(hookCfg)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	attachments := hook.NewAttachmentsBuilder().
		Add(hook.Attachment{
			Title:     c.flagTitle,
			TitleLink: c.flagTitleLink,
			Text:      c.flagDetail,
			Color:     c.flagColor,
		}).
		Create()

	ok, err := h.Send(context.Background(), text, attachments)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	if !ok {
		ui.Error("webhook rejected the message")
		return 1
	}

	ui.Info("Message sent")
	return 0
}
