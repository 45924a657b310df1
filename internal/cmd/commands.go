package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/iizs/godooray/internal/cmd/base"
	"github.com/iizs/godooray/internal/cmd/commands/hook"
	"github.com/iizs/godooray/internal/cmd/commands/login"
	"github.com/iizs/godooray/internal/cmd/commands/members"
	"github.com/iizs/godooray/internal/cmd/commands/messenger"
	"github.com/iizs/godooray/internal/cmd/commands/project"
	"github.com/iizs/godooray/internal/cmd/commands/version"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	Commands = commandFactories(&base.Command{
		Log: log,
		UI:  ui,
		Fs:  afero.NewOsFs(),
	})
}

func commandFactories(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"channels": func() (cli.Command, error) {
			return &messenger.ChannelsCommand{Command: b}, nil
		},
		"hook": func() (cli.Command, error) {
			return &hook.Command{Command: b}, nil
		},
		"hook send": func() (cli.Command, error) {
			return &hook.SendCommand{Command: b}, nil
		},
		"login": func() (cli.Command, error) {
			return &login.Command{Command: b}, nil
		},
		"members": func() (cli.Command, error) {
			return &members.Command{Command: b}, nil
		},
		"milestone": func() (cli.Command, error) {
			return &project.MilestoneCommand{Command: b}, nil
		},
		"milestone create": func() (cli.Command, error) {
			return &project.MilestoneCreateCommand{Command: b}, nil
		},
		"milestone list": func() (cli.Command, error) {
			return &project.MilestoneListCommand{Command: b}, nil
		},
		"post": func() (cli.Command, error) {
			return &project.PostCommand{Command: b}, nil
		},
		"post get": func() (cli.Command, error) {
			return &project.PostGetCommand{Command: b}, nil
		},
		"post list": func() (cli.Command, error) {
			return &project.PostListCommand{Command: b}, nil
		},
		"project": func() (cli.Command, error) {
			return &project.Command{Command: b}, nil
		},
		"project get": func() (cli.Command, error) {
			return &project.GetCommand{Command: b}, nil
		},
		"project workflows": func() (cli.Command, error) {
			return &project.WorkflowsCommand{Command: b}, nil
		},
		"send": func() (cli.Command, error) {
			return &messenger.SendCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
