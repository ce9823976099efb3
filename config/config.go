package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is built once at startup and handed down to
// the components which need it, none of them reads the
// environment on its own
type Config struct {
	ClientID     string   `envconfig:"CLIENT_ID" required:"true"`
	ClientSecret string   `envconfig:"CLIENT_SECRET" required:"true"`
	RedirectURI  string   `envconfig:"REDIRECT_URI" required:"true"`
	Username     string   `envconfig:"USERNAME" required:"true"`
	PlaylistName string   `envconfig:"PLAYLIST_NAME" required:"true"`
	Extensions   []string `envconfig:"EXTENSIONS" default:"mp3"`

	// run parameters, set from the command line
	Library   string `ignored:"true"`
	ChartsDir string `ignored:"true"`
	M3UDir    string `ignored:"true"`
	Export    string `ignored:"true"`
}

// Load reads the given dotenv files into the environment (a missing
// default .env is not an issue) and validates the resulting configuration
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("env file: %w", err)
		}
	}

	cfg := &Config{ChartsDir: "."}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate makes sure no required value is blank
func (cfg *Config) Validate() error {
	for _, required := range []struct{ key, value string }{
		{"CLIENT_ID", cfg.ClientID},
		{"CLIENT_SECRET", cfg.ClientSecret},
		{"REDIRECT_URI", cfg.RedirectURI},
		{"USERNAME", cfg.Username},
		{"PLAYLIST_NAME", cfg.PlaylistName},
	} {
		if len(strings.TrimSpace(required.value)) == 0 {
			return fmt.Errorf("required key %s missing value", required.key)
		}
	}
	return nil
}
