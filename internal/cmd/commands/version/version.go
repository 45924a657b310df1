package version

import (
	"github.com/iizs/godooray/internal/cmd/base"
	"github.com/iizs/godooray/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return `Usage: dooray version

  Prints the version and the User-Agent sent to the API.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("dooray " + version.Version)
	c.UI.Output("user agent: " + version.UserAgent())
	return 0
}
