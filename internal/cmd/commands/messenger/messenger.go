package messenger

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/iizs/godooray/internal/cmd/base"
	"github.com/iizs/godooray/pkg/dooray"
)

// ChannelsCommand lists channels.
type ChannelsCommand struct {
	*base.Command

	api base.APIFlags
}

func (c *ChannelsCommand) Synopsis() string {
	return "List messenger channels"
}

func (c *ChannelsCommand) Help() string {
	return `Usage: dooray channels [options]

  Lists every messenger channel the token's member belongs to.` + c.Flags().Help()
}

func (c *ChannelsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("channels", flag.ContinueOnError))
	c.api.Register(f)
	return f
}

func (c *ChannelsCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, _, err := c.Client(&c.api)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	resp, err := client.Messenger.GetChannels(context.Background())
	if err != nil {
		ui.Error(fmt.Sprintf("error listing channels: %v", err))
		return 1
	}

	err = c.Render(c.api.Format, resp, func() *base.Table {
		t := &base.Table{Header: []string{"ID", "TITLE", "TYPE", "MEMBERS", "STATUS"}}
		for _, ch := range resp.Result {
			t.Append(ch.ID, ch.Title, ch.Type, strconv.Itoa(len(ch.Users.Participants)), ch.Status)
		}
		return t
	})
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

// SendCommand sends a message to a channel or a member.
type SendCommand struct {
	*base.Command

	api base.APIFlags

	flagChannel string
	flagMember  string
}

func (c *SendCommand) Synopsis() string {
	return "Send a message to a channel or a member"
}

func (c *SendCommand) Help() string {
	return `Usage: dooray send [options] <text>

  Sends text to a channel (-channel) or as a direct message (-member).
  Exactly one of the two is required.` + c.Flags().Help()
}

func (c *SendCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("send", flag.ContinueOnError))
	c.api.Register(f)

	f.StringVar(&c.flagChannel, "channel", "", "Channel id.")
	f.StringVar(&c.flagMember, "member", "", "Organization member id for a direct message.")

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
	if (c.flagChannel == "") == (c.flagMember == "") {
		ui.Error("exactly one of -channel or -member is required")
		return 1
	}

	client, _, err := c.Client(&c.api)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	var ack *dooray.Ack
	if c.flagChannel != "" {
		ack, err = client.Messenger.SendChannelMessage(ctx, c.flagChannel, text)
	} else {
		ack, err = client.Messenger.SendDirectMessage(ctx, c.flagMember, text)
	}
	if err != nil {
		ui.Error(fmt.Sprintf("error sending message: %v", err))
		return 1
	}
	if !ack.Header.IsSuccessful {
		ui.Error(fmt.Sprintf("message not accepted: %s", ack.Header.ResultMessage))
		return 1
	}

	ui.Info("Message sent")
	return 0
}
