package project

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/mitchellh/cli"

	"github.com/iizs/godooray/internal/cmd/base"
	"github.com/iizs/godooray/internal/config"
	"github.com/iizs/godooray/pkg/dooray"
)

var errNoProject = errors.New("no project: pass -project or set project_id in the config file")

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Inspect a project"
}

func (c *Command) Help() string {
	return `Usage: dooray project <subcommand> [options] [args]

  This command groups subcommands for reading projects. The project is
  taken from -project, or project_id in the config file.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// projectFlags are shared by every command that works on one project.
type projectFlags struct {
	api     base.APIFlags
	project string
}

func (p *projectFlags) register(f *base.FlagSet) {
	p.api.Register(f)
	f.StringVar(&p.project, "project", "", "Project id. Defaults to project_id from the config file.")
}

// setup builds a client and picks the project id.
func (p *projectFlags) setup(c *base.Command) (*dooray.Client, string, error) {
	client, cfg, err := c.Client(&p.api)
	if err != nil {
		return nil, "", err
	}
	id := projectID(p.project, cfg)
	if id == "" {
		return nil, "", errNoProject
	}
	return client, id, nil
}

func projectID(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	return cfg.ProjectID
}

// GetCommand shows one project.
type GetCommand struct {
	*base.Command

	flags projectFlags
}

func (c *GetCommand) Synopsis() string {
	return "Show a project"
}

func (c *GetCommand) Help() string {
	return `Usage: dooray project get [options]` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("project get", flag.ContinueOnError))
	c.flags.register(f)
	return f
}

func (c *GetCommand) Run(args []string) int {
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

	resp, err := client.Project.Get(context.Background(), projectID)
	if err != nil {
		ui.Error(fmt.Sprintf("error getting project: %v", err))
		return 1
	}

	p := resp.Result
	err = c.Render(c.flags.api.Format, resp, func() *base.Table {
		t := &base.Table{Header: []string{"ID", "CODE", "SCOPE", "STATE", "DESCRIPTION"}}
		t.Append(p.ID, p.Code, base.OrDash(p.Scope), base.OrDash(p.State), base.OrDash(p.Description))
		return t
	})
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

// WorkflowsCommand lists a project's workflows.
type WorkflowsCommand struct {
	*base.Command

	flags projectFlags
}

func (c *WorkflowsCommand) Synopsis() string {
	return "List the workflows of a project"
}

func (c *WorkflowsCommand) Help() string {
	return `Usage: dooray project workflows [options]` + c.Flags().Help()
}

func (c *WorkflowsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("project workflows", flag.ContinueOnError))
	c.flags.register(f)
	return f
}

func (c *WorkflowsCommand) Run(args []string) int {
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

	resp, err := client.Project.GetWorkflows(context.Background(), projectID)
	if err != nil {
		ui.Error(fmt.Sprintf("error listing workflows: %v", err))
		return 1
	}

	err = c.Render(c.flags.api.Format, resp, func() *base.Table {
		t := &base.Table{Header: []string{"ID", "NAME", "CLASS", "ORDER"}}
		for _, w := range resp.Result {
			order := "-"
			if w.Order != nil {
				order = strconv.Itoa(*w.Order)
			}
			t.Append(w.ID, w.Name, w.Class, order)
		}
		return t
	})
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
