// Package config handles loading and parsing application configuration.
// It supports two sources (in priority order):
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//
// The same file configures both binaries: cmd/dashboard reads the api
// section, cmd/mockapi reads the mock_api section.
package config

import (
	"flag"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	API     API     `yaml:"api"`
	MockAPI MockAPI `yaml:"mock_api"`
}

// API configures the dashboard's view of the Remote Data Service.
type API struct {
	// BaseURL is the root under which the /Students and /Courses
	// collections live, e.g. "https://xyz.mockapi.io/api/v1" or the
	// local stand-in's "http://localhost:8082".
	//
	// env-required:"true" — better to refuse to start than to point
	// the dashboard at an empty default and swallow every request.
	BaseURL string `yaml:"base_url" env:"API_BASE_URL" env-required:"true"`
}

// MockAPI configures the local Remote Data Service stand-in.
type MockAPI struct {
	// Addr is the TCP address the mock server listens on.
	Addr string `yaml:"address" env:"MOCK_API_ADDR" env-default:"localhost:8082"`

	// StoragePath is the filesystem path to the SQLite .db file.
	StoragePath string `yaml:"storage_path" env:"MOCK_API_STORAGE_PATH" env-default:"mockapi.db"`
}

// MustLoad reads, validates, and returns the application config.
//
// The name follows the Go convention: "Must" functions are allowed to
// fatal on failure, so callers do not check an error — if this returns,
// the config is valid.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "Path to the configuration YAML file")
		flag.Parse()
		configPath = *flags
	}

	if configPath == "" {
		log.Fatal("config path is not set: use --config flag or CONFIG_PATH env var")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	// cleanenv reads the YAML file, then applies env:"..." overrides
	// and enforces env-required constraints.
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err.Error())
	}

	return &cfg
}
