package members

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/iizs/godooray/internal/cmd/base"
	"github.com/iizs/godooray/pkg/dooray"
	"github.com/iizs/godooray/pkg/envelope"
)

type Command struct {
	*base.Command

	api base.APIFlags

	flagName     string
	flagUserCode string
	flagExact    bool
	flagEmails   string
	flagPage     int
	flagSize     int
}

func (c *Command) Synopsis() string {
	return "Search the organization directory"
}

func (c *Command) Help() string {
	return `Usage: dooray members [options]

  Searches organization members. At least one of -name, -user-code or
  -email is required.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("members", flag.ContinueOnError))
	c.api.Register(f)

	f.StringVar(&c.flagName, "name", "", "Member name.")
	f.StringVar(&c.flagUserCode, "user-code", "", "User code (login id).")
	f.BoolVar(&c.flagExact, "exact", false, "Match -user-code exactly.")
	f.StringVar(&c.flagEmails, "email", "", "Comma-separated external email addresses.")
	f.IntVar(&c.flagPage, "page", 0, "Zero-based page number.")
	f.IntVar(&c.flagSize, "size", envelope.DefaultPagination.Size, "Page size (max 100).")

	return f
}

func (c *Command) filter() dooray.MemberFilter {
	f := dooray.MemberFilter{Name: c.flagName}
	if c.flagExact {
		f.UserCodeExact = c.flagUserCode
	} else {
		f.UserCode = c.flagUserCode
	}
	for _, e := range strings.Split(c.flagEmails, ",") {
		if e = strings.TrimSpace(e); e != "" {
			f.ExternalEmailAddresses = append(f.ExternalEmailAddresses, e)
		}
	}
	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, _, err := c.Client(&c.api)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	resp, err := client.GetMembers(context.Background(), c.filter(), envelope.PageOf(c.flagPage, c.flagSize))
	if err != nil {
		ui.Error(fmt.Sprintf("error searching members: %v", err))
		return 1
	}

	err = c.Render(c.api.Format, resp, func() *base.Table {
		t := &base.Table{Header: []string{"ID", "NAME", "USER CODE", "EMAIL"}}
		for _, m := range resp.Result {
			t.Append(m.ID, m.Name, base.OrDash(m.UserCode), base.OrDash(m.ExternalEmailAddress))
		}
		return t
	})
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
