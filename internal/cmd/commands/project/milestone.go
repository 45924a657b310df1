package project

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mitchellh/cli"

	"github.com/iizs/godooray/internal/cmd/base"
	"github.com/iizs/godooray/pkg/envelope"
)

type MilestoneCommand struct {
	*base.Command
}

func (c *MilestoneCommand) Synopsis() string {
	return "Manage project milestones"
}

func (c *MilestoneCommand) Help() string {
	return `Usage: dooray milestone <subcommand> [options] [args]

  This command groups subcommands for project milestones.`
}

func (c *MilestoneCommand) Run(args []string) int {
	return cli.RunResultHelp
}

// MilestoneListCommand lists milestones.
type MilestoneListCommand struct {
	*base.Command

	flags projectFlags

	flagStatus string
	flagAll    bool
}

func (c *MilestoneListCommand) Synopsis() string {
	return "List milestones"
}

func (c *MilestoneListCommand) Help() string {
	return `Usage: dooray milestone list [options]` + c.Flags().Help()
}

func (c *MilestoneListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("milestone list", flag.ContinueOnError))
	c.flags.register(f)

	f.StringVar(&c.flagStatus, "status", "", "Only milestones with this status: open or closed.")
	f.BoolVar(&c.flagAll, "all", false, "Fetch every milestone instead of the first page.")

	return f
}

func (c *MilestoneListCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, projectID, err := c.flags.setup(c.Command)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	page := envelope.DefaultPagination
	if c.flagAll {
		page = envelope.All()
	}

	resp, err := client.Project.GetMilestones(context.Background(), projectID, page, c.flagStatus)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing milestones: %v", err))
		return 1
	}

	err = c.Render(c.flags.api.Format, resp, func() *base.Table {
		t := &base.Table{Header: []string{"ID", "NAME", "STATUS", "START", "END"}}
		for _, m := range resp.Result {
			t.Append(m.ID, m.Name, base.OrDash(m.Status), formatDate(m.StartedAt), formatDate(m.EndedAt))
		}
		return t
	})
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

// MilestoneCreateCommand creates a milestone.
type MilestoneCreateCommand struct {
	*base.Command

	flags projectFlags

	flagName  string
	flagStart string
	flagEnd   string
}

func (c *MilestoneCreateCommand) Synopsis() string {
	return "Create a milestone"
}

func (c *MilestoneCreateCommand) Help() string {
	return `Usage: dooray milestone create [options]

  Creates a milestone. -start and -end accept most date notations, for
  example 2026-04-01, 04/01/2026 or "April 1, 2026".` + c.Flags().Help()
}

func (c *MilestoneCreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("milestone create", flag.ContinueOnError))
	c.flags.register(f)

	f.StringVar(&c.flagName, "name", "", "(Required) Milestone name.")
	f.StringVar(&c.flagStart, "start", "", "(Required) Start date.")
	f.StringVar(&c.flagEnd, "end", "", "(Required) End date.")

	return f
}

func (c *MilestoneCreateCommand) Run(args []string) int {
	ui := c.UI

	if err := c.Flags().Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagName == "" || c.flagStart == "" || c.flagEnd == "" {
		ui.Error("-name, -start and -end are required")
		return 1
	}
	start, err := dateparse.ParseLocal(c.flagStart)
	if err != nil {
		ui.Error(fmt.Sprintf("invalid -start: %v", err))
		return 1
	}
	end, err := dateparse.ParseLocal(c.flagEnd)
	if err != nil {
		ui.Error(fmt.Sprintf("invalid -end: %v", err))
		return 1
	}

	client, projectID, err := c.flags.setup(c.Command)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	resp, err := client.Project.CreateMilestone(context.Background(), projectID, c.flagName, start, end)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating milestone: %v", err))
		return 1
	}

	ui.Output(resp.Result.ID)
	return 0
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}
