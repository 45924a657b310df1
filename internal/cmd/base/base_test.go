package base

import (
	"flag"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagSet_Help(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	var name string
	var verbose bool
	f.StringVar(&name, "name", "kim", "Member name.")
	f.BoolVar(&verbose, "verbose", false, "Print more.")

	help := f.Help()
	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "-name=kim")
	assert.Contains(t, help, "Member name.")
	assert.Contains(t, help, "-verbose\n")
	assert.NotContains(t, help, "-verbose=false")
}

func TestFlagSet_ParseErrorIsReturned(t *testing.T) {
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	assert.Error(t, f.Parse([]string{"-nope"}))
}

type sample struct {
	ID        string `json:"id"`
	UserCode  string `json:"userCode"`
	Displayed bool   `json:"displayed"`
}

func TestRender(t *testing.T) {
	v := sample{ID: "1", UserCode: "kim", Displayed: true}
	table := func() *Table {
		tb := &Table{Header: []string{"ID", "USER CODE"}}
		tb.Append(v.ID, v.UserCode)
		return tb
	}

	tests := []struct {
		format string
		want   string
	}{
		{FormatTable, "ID  USER CODE\n1   kim"},
		{FormatJSON, "{\n  \"id\": \"1\",\n  \"userCode\": \"kim\",\n  \"displayed\": true\n}"},
		{FormatYAML, "id: \"1\"\nuserCode: kim\ndisplayed: true"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			ui := cli.NewMockUi()
			c := &Command{UI: ui}

			require.NoError(t, c.Render(tt.format, v, table))
			assert.Equal(t, tt.want+"\n", ui.OutputWriter.String())
		})
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	c := &Command{UI: cli.NewMockUi()}
	assert.Error(t, c.Render("xml", nil, nil))
}

func TestLoadConfig_AppliesLogLevel(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg.hcl", []byte(`log_level = "debug"`), 0o600))

	log := hclog.New(&hclog.LoggerOptions{Level: hclog.Warn})
	c := &Command{Log: log, UI: cli.NewMockUi(), Fs: fsys}

	_, err := c.LoadConfig(&APIFlags{Config: "/cfg.hcl"})
	require.NoError(t, err)
	assert.True(t, log.IsDebug())

	_, err = c.LoadConfig(&APIFlags{Config: "/cfg.hcl", LogLevel: "error"})
	require.NoError(t, err)
	assert.False(t, log.IsWarn())

	_, err = c.LoadConfig(&APIFlags{Config: "/missing.hcl"})
	assert.Error(t, err)
}
