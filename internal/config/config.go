// Package config loads application settings from the environment once per
// process.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

var (
	cfg     Config
	loadErr error
	once    sync.Once
)

// Config carries every knob the application reads from the environment.
// Command-line flags override these where both exist.
type Config struct {
	// File is the path of the encrypted vault file.
	File string `env:"AUTHVAULT_FILE"`
	// Passphrase, when set, suppresses interactive passphrase prompts.
	// Intended for scripting; prefer the prompt otherwise.
	Passphrase string `env:"AUTHVAULT_PASSPHRASE"`
	LogLevel   string `env:"AUTHVAULT_LOG_LEVEL" envDefault:"warn"`
	LogFormat  string `env:"AUTHVAULT_LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment into a Config. The outcome is cached, error
// included; later calls return the same values.
func Load() (Config, error) {
	once.Do(func() {
		var parsed Config
		if err := env.Parse(&parsed); err != nil {
			loadErr = err
			return
		}
		if parsed.File == "" {
			parsed.File = DefaultVaultPath()
		}
		cfg = parsed
	})
	if loadErr != nil {
		return Config{}, loadErr
	}
	return cfg, nil
}

// DefaultVaultPath is where the vault file lives when AUTHVAULT_FILE is not
// set: a dot directory in the user's home, alongside other key material like
// ~/.ssh. Falls back to the working directory when home cannot be resolved.
func DefaultVaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vault.enc"
	}
	return filepath.Join(home, ".authvault", "vault.enc")
}
