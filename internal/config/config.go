// Package config loads the dquest tool configuration from config
// files, environment variables and .env overlays.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// AppFs is the filesystem used for config and schema file access,
// swappable in tests.
var AppFs = afero.NewOsFs()

// Config holds the tool configuration.
type Config struct {
	// Provider is the database backend: sqlite, mysql or postgresql.
	Provider string

	// DatabaseURL is the driver connection string.
	DatabaseURL string

	// SchemaPath points at the model definition file.
	SchemaPath string

	// Debug enables diagnostic logging.
	Debug bool
}

// Load reads configuration from .dquest.yaml (current directory, home
// directory or ~/.config/dquest), DQUEST_* environment variables and
// .env / .env.local overlays. DATABASE_URL from the environment wins
// over the config file.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	viper.SetConfigName(".dquest")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(home)
	viper.AddConfigPath(filepath.Join(home, ".config", "dquest"))

	viper.SetEnvPrefix("DQUEST")
	viper.AutomaticEnv()

	viper.SetDefault("provider", "sqlite")
	viper.SetDefault("schema_path", "models.dq")
	viper.SetDefault("debug", false)

	// Missing config file is fine, defaults apply.
	_ = viper.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		Provider:    viper.GetString("provider"),
		DatabaseURL: viper.GetString("database_url"),
		SchemaPath:  viper.GetString("schema_path"),
		Debug:       viper.GetBool("debug"),
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	return cfg, nil
}

// Save writes the configuration to ~/.config/dquest/.dquest.yaml.
func Save(cfg *Config) error {
	viper.Set("provider", cfg.Provider)
	viper.Set("database_url", cfg.DatabaseURL)
	viper.Set("schema_path", cfg.SchemaPath)
	viper.Set("debug", cfg.Debug)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	dir := filepath.Join(home, ".config", "dquest")
	if err := AppFs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return viper.WriteConfigAs(filepath.Join(dir, ".dquest.yaml"))
}
