package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = AppName
	keyringUser    = "backend-token"
	credFileName   = ".credentials"

	// TokenEnv overrides every stored token.
	TokenEnv = "CAMPUS_TOKEN"
)

// DataDir returns $XDG_DATA_HOME/campus-tui, falling back to
// ~/.local/share/campus-tui, and creates it if missing.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}

	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

// tokenSource yields a token or "" when it has none.
type tokenSource func(c *Config) (string, error)

// tokenSources are consulted in order; the first non-empty token wins.
var tokenSources = []tokenSource{
	func(*Config) (string, error) { return os.Getenv(TokenEnv), nil },
	func(c *Config) (string, error) { return c.Auth.Token, nil },
	func(*Config) (string, error) {
		// A missing or locked keyring reads as no token.
		token, _ := keyring.Get(keyringService, keyringUser)
		return token, nil
	},
	func(*Config) (string, error) { return readCredentialsFile() },
}

// GetToken resolves the backend bearer token from CAMPUS_TOKEN, auth.token,
// the system keyring and the credentials file, in that order.
// An empty result is not an error.
func (c *Config) GetToken() (string, error) {
	for _, source := range tokenSources {
		token, err := source(c)
		if err != nil {
			return "", err
		}
		if token = strings.TrimSpace(token); token != "" {
			return token, nil
		}
	}
	return "", nil
}

// SaveToken stores token in the system keyring, or in the credentials
// file when no keyring is available.
func SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token cannot be empty")
	}

	if keyring.Set(keyringService, keyringUser, token) == nil {
		return nil
	}

	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}

// ClearToken removes the token from the keyring and the credentials file.
func ClearToken() error {
	_ = keyring.Delete(keyringService, keyringUser)

	path, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}
	return nil
}

func readCredentialsFile() (string, error) {
	path, err := credentialsPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}
	return string(data), nil
}

func credentialsPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credFileName), nil
}
