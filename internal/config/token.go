package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService is the OS keyring service tokens are stored under. The
	// keyring user is the profile name.
	KeyringService = "godooray"

	// EnvToken holds an API token.
	EnvToken = "DOORAY_API_TOKEN"

	// DefaultProfile is the keyring user when no profile is given.
	DefaultProfile = "default"
)

// Token sources, as reported by ResolveToken.
const (
	SourceFlag    = "flag"
	SourceEnv     = "env"
	SourceFile    = "config"
	SourceKeyring = "keyring"
)

// ErrNoToken is returned when no source provides a token.
var ErrNoToken = errors.New(`no API token: pass -token, set ` + EnvToken + `, or run "dooray login"`)

// ResolveToken returns the first token found in: the -token flag, the
// DOORAY_API_TOKEN environment variable, the config file, and the keyring
// entry for profile. The second result names the source.
func ResolveToken(flagToken string, cfg *Config, profile string) (string, string, error) {
	if flagToken != "" {
		return flagToken, SourceFlag, nil
	}
	if tok := os.Getenv(EnvToken); tok != "" {
		return tok, SourceEnv, nil
	}
	if cfg != nil && cfg.Token != "" {
		return cfg.Token, SourceFile, nil
	}

	tok, err := keyring.Get(KeyringService, profileName(profile))
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return "", "", ErrNoToken
	case err != nil:
		// Keyring backend missing, e.g. no Secret Service on a headless host.
		return "", "", fmt.Errorf("%w (keyring unavailable: %w)", ErrNoToken, err)
	}
	return tok, SourceKeyring, nil
}

// StoreToken saves token in the keyring for profile.
func StoreToken(profile, token string) error {
	if token == "" {
		return errors.New("token is empty")
	}
	if err := keyring.Set(KeyringService, profileName(profile), token); err != nil {
		return fmt.Errorf("error writing keyring: %w", err)
	}
	return nil
}

// DeleteToken removes the keyring entry for profile. A missing entry is not
// an error.
func DeleteToken(profile string) error {
	err := keyring.Delete(KeyringService, profileName(profile))
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("error deleting keyring entry: %w", err)
	}
	return nil
}

func profileName(profile string) string {
	if profile == "" {
		return DefaultProfile
	}
	return profile
}
