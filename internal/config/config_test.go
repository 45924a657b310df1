package config

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/iizs/godooray/pkg/dooray"
)

const fullConfig = `
endpoint   = "https://api.gov-dooray.com"
user_agent = "godooray-cli"
token      = "file-token"
log_level  = "debug"
project_id = "p1"

hook {
  url      = "https://hook.dooray.com/services/1/2/abc"
  bot_name = "Deploy Bot"
  bot_icon = "https://example.com/bot.png"
}
`

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/etc/godooray/config.hcl", fullConfig)

	cfg, err := Load(fsys, "/etc/godooray/config.hcl")
	require.NoError(t, err)

	assert.Equal(t, "https://api.gov-dooray.com", cfg.Endpoint)
	assert.Equal(t, "godooray-cli", cfg.UserAgent)
	assert.Equal(t, "file-token", cfg.Token)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "p1", cfg.ProjectID)
	require.NotNil(t, cfg.Hook)
	assert.Equal(t, "Deploy Bot", cfg.Hook.BotName)
}

func TestLoad_Defaults(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/cfg.hcl", `project_id = "p1"`)

	cfg, err := Load(fsys, "/cfg.hcl")
	require.NoError(t, err)
	assert.Equal(t, dooray.DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Nil(t, cfg.Hook)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", `endpoint = `},
		{"unknown attribute", `colour = "red"`},
		{"bad log level", `log_level = "loud"`},
		{"bad endpoint", `endpoint = "api.dooray.com"`},
		{"hook without url", "hook {\n  bot_name = \"x\"\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			writeFile(t, fsys, "/cfg.hcl", tt.content)

			_, err := Load(fsys, "/cfg.hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	cfg, err := LoadOrDefault(fsys, "/nope.hcl")
	require.NoError(t, err)
	assert.Equal(t, dooray.DefaultEndpoint, cfg.Endpoint)

	_, err = Load(fsys, "/nope.hcl")
	assert.Error(t, err)
}

func TestHookConfig(t *testing.T) {
	cfg := &Config{Hook: &Hook{URL: "https://hook.dooray.com/a", BotName: "Deploy Bot"}}

	hc, err := cfg.HookConfig("", "ua/1", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://hook.dooray.com/a", hc.URL)
	assert.Equal(t, "Deploy Bot", hc.BotName)
	assert.Equal(t, "ua/1", hc.UserAgent)

	hc, err = cfg.HookConfig("https://hook.dooray.com/b", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://hook.dooray.com/b", hc.URL)

	_, err = (&Config{}).HookConfig("", "", nil)
	assert.Error(t, err)
}

func TestResolveToken_Order(t *testing.T) {
	keyring.MockInit()
	require.NoError(t, StoreToken("work", "keyring-token"))

	cfg := &Config{Token: "file-token"}

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv(EnvToken, "env-token")
		tok, src, err := ResolveToken("flag-token", cfg, "work")
		require.NoError(t, err)
		assert.Equal(t, "flag-token", tok)
		assert.Equal(t, SourceFlag, src)
	})

	t.Run("env before file", func(t *testing.T) {
		t.Setenv(EnvToken, "env-token")
		tok, src, err := ResolveToken("", cfg, "work")
		require.NoError(t, err)
		assert.Equal(t, "env-token", tok)
		assert.Equal(t, SourceEnv, src)
	})

	t.Run("file before keyring", func(t *testing.T) {
		t.Setenv(EnvToken, "")
		tok, src, err := ResolveToken("", cfg, "work")
		require.NoError(t, err)
		assert.Equal(t, "file-token", tok)
		assert.Equal(t, SourceFile, src)
	})

	t.Run("keyring last", func(t *testing.T) {
		t.Setenv(EnvToken, "")
		tok, src, err := ResolveToken("", &Config{}, "work")
		require.NoError(t, err)
		assert.Equal(t, "keyring-token", tok)
		assert.Equal(t, SourceKeyring, src)
	})

	t.Run("nothing", func(t *testing.T) {
		t.Setenv(EnvToken, "")
		_, _, err := ResolveToken("", &Config{}, "home")
		assert.ErrorIs(t, err, ErrNoToken)
	})
}

func TestResolveToken_KeyringUnavailable(t *testing.T) {
	dbusErr := errors.New("dbus: the name org.freedesktop.secrets was not provided")
	keyring.MockInitWithError(dbusErr)
	t.Cleanup(keyring.MockInit)
	t.Setenv(EnvToken, "")

	_, _, err := ResolveToken("", &Config{}, "work")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoToken)
	assert.ErrorIs(t, err, dbusErr)
	assert.Contains(t, err.Error(), "-token")
	assert.Contains(t, err.Error(), EnvToken)

	tok, src, err := ResolveToken("flag-token", &Config{}, "work")
	require.NoError(t, err)
	assert.Equal(t, "flag-token", tok)
	assert.Equal(t, SourceFlag, src)
}

func TestStoreAndDeleteToken(t *testing.T) {
	keyring.MockInit()
	t.Setenv(EnvToken, "")

	require.NoError(t, StoreToken("", "tok"))
	tok, src, err := ResolveToken("", nil, DefaultProfile)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)
	assert.Equal(t, SourceKeyring, src)

	require.NoError(t, DeleteToken(""))
	require.NoError(t, DeleteToken(""))

	_, _, err = ResolveToken("", nil, "")
	assert.ErrorIs(t, err, ErrNoToken)

	assert.Error(t, StoreToken("x", ""))
}
