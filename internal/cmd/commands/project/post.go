package project

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/iizs/godooray/internal/cmd/base"
	"github.com/iizs/godooray/pkg/dooray"
	"github.com/iizs/godooray/pkg/envelope"
	"github.com/iizs/godooray/pkg/models"
)

type PostCommand struct {
	*base.Command
}

func (c *PostCommand) Synopsis() string {
	return "Read project posts"
}

func (c *PostCommand) Help() string {
	return `Usage: dooray post <subcommand> [options] [args]

  This command groups subcommands for project posts (tasks).`
}

func (c *PostCommand) Run(args []string) int {
	return cli.RunResultHelp
}

// PostListCommand lists posts.
type PostListCommand struct {
	*base.Command

	flags projectFlags

	flagMilestones string
	flagTags       string
	flagClasses    string
	flagTo         string
	flagOrder      string
	flagPage       int
	flagSize       int
}

func (c *PostListCommand) Synopsis() string {
	return "List posts"
}

func (c *PostListCommand) Help() string {
	return `Usage: dooray post list [options]

  Lists posts. List flags take comma-separated values.` + c.Flags().Help()
}

func (c *PostListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("post list", flag.ContinueOnError))
	c.flags.register(f)

	f.StringVar(&c.flagMilestones, "milestone", "", "Milestone ids.")
	f.StringVar(&c.flagTags, "tag", "", "Tag ids.")
	f.StringVar(&c.flagClasses, "class", "", "Workflow classes: backlog, registered, working, closed.")
	f.StringVar(&c.flagTo, "to", "", "Recipient member ids.")
	f.StringVar(&c.flagOrder, "order", "", "Sort field, '-' prefix for descending: postDueAt, postUpdatedAt, createdAt.")
	f.IntVar(&c.flagPage, "page", 0, "Zero-based page number.")
	f.IntVar(&c.flagSize, "size", envelope.DefaultPagination.Size, "Page size (max 100).")

	return f
}

func (c *PostListCommand) filter() dooray.PostFilter {
	return dooray.PostFilter{
		MilestoneIDs:        splitList(c.flagMilestones),
		TagIDs:              splitList(c.flagTags),
		PostWorkflowClasses: splitList(c.flagClasses),
		ToMemberIDs:         splitList(c.flagTo),
		Order:               c.flagOrder,
	}
}

func (c *PostListCommand) Run(args []string) int {
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

	resp, err := client.Project.GetPosts(context.Background(), projectID, c.filter(), envelope.PageOf(c.flagPage, c.flagSize))
	if err != nil {
		ui.Error(fmt.Sprintf("error listing posts: %v", err))
		return 1
	}

	err = c.Render(c.flags.api.Format, resp, func() *base.Table {
		t := &base.Table{Header: []string{"ID", "NUMBER", "SUBJECT", "WORKFLOW", "DUE"}}
		for _, p := range resp.Result {
			t.Append(p.ID, strconv.Itoa(p.Number), p.Subject, workflowName(p), formatDate(p.DueDate))
		}
		return t
	})
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

// PostGetCommand shows one post.
type PostGetCommand struct {
	*base.Command

	flags projectFlags
}

func (c *PostGetCommand) Synopsis() string {
	return "Show a post"
}

func (c *PostGetCommand) Help() string {
	return `Usage: dooray post get [options] <post-id>` + c.Flags().Help()
}

func (c *PostGetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("post get", flag.ContinueOnError))
	c.flags.register(f)
	return f
}

func (c *PostGetCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if flags.NArg() != 1 {
		ui.Error("exactly one post id is required")
		return 1
	}

	client, projectID, err := c.flags.setup(c.Command)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	resp, err := client.Project.GetPost(context.Background(), projectID, flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error getting post: %v", err))
		return 1
	}

	p := resp.Result
	err = c.Render(c.flags.api.Format, resp, func() *base.Table {
		t := &base.Table{Header: []string{"FIELD", "VALUE"}}
		t.Append("id", p.ID)
		t.Append("number", strconv.Itoa(p.Number))
		t.Append("subject", p.Subject)
		t.Append("workflow", workflowName(p))
		t.Append("priority", base.OrDash(p.Priority))
		t.Append("due", formatDate(p.DueDate))
		if p.Body != nil {
			t.Append("body", firstLine(p.Body.Content))
		}
		return t
	})
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

func workflowName(p *models.Post) string {
	switch {
	case p.Workflow != nil && p.Workflow.Name != nil:
		return *p.Workflow.Name
	case p.WorkflowClass != nil:
		return *p.WorkflowClass
	}
	return "-"
}

func splitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
