// Package config loads server configuration.
//
// Sources, lowest to highest precedence:
//  1. built-in defaults
//  2. a YAML file named by CONFIG_FILE (optional)
//  3. environment variables, including those loaded from .env
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Document-store backends.
const (
	StoreFirestore = "firestore"
	StoreSQLite    = "sqlite"
	StoreMemory    = "memory"
)

type Config struct {
	Port int `yaml:"port"`

	// DocStore selects the backend: firestore, sqlite or memory.
	DocStore string `yaml:"doc_store"`

	FirebaseCredentials string `yaml:"firebase_credentials"`
	FirebaseProjectID   string `yaml:"firebase_project_id"`
	SQLitePath          string `yaml:"sqlite_path"`

	CORSOrigins []string `yaml:"cors_origins"`

	// YelpAPIKey is read so startup can report it, but nothing calls the
	// business-search provider; the catalog is static.
	YelpAPIKey string `yaml:"yelp_api_key"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	ShutdownTimeout time.Duration `yaml:"-"`
	// ShutdownTimeoutRaw carries the YAML value until it is parsed.
	ShutdownTimeoutRaw string `yaml:"shutdown_timeout"`
}

func defaults() *Config {
	return &Config{
		Port:                5000,
		DocStore:            StoreFirestore,
		FirebaseCredentials: "serviceAccountKey.json",
		SQLitePath:          "data/reviews.db",
		CORSOrigins:         []string{"*"},
		LogLevel:            "info",
		LogFormat:           "text",
		ShutdownTimeoutRaw:  "30s",
	}
}

// Load builds the configuration. A missing .env file is not an error; a
// CONFIG_FILE that cannot be read or parsed is.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}

	c.DocStore = strings.ToLower(getEnv("DOC_STORE", c.DocStore))
	c.FirebaseCredentials = getEnv("FIREBASE_CREDENTIALS", c.FirebaseCredentials)
	c.FirebaseProjectID = getEnv("FIREBASE_PROJECT_ID", c.FirebaseProjectID)
	c.SQLitePath = getEnv("SQLITE_PATH", c.SQLitePath)
	c.YelpAPIKey = getEnv("YELP_API_KEY", c.YelpAPIKey)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.ShutdownTimeoutRaw = getEnv("SHUTDOWN_TIMEOUT", c.ShutdownTimeoutRaw)

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = splitList(v)
	}

	d, err := time.ParseDuration(c.ShutdownTimeoutRaw)
	if err != nil {
		return fmt.Errorf("invalid shutdown timeout %q: %w", c.ShutdownTimeoutRaw, err)
	}
	c.ShutdownTimeout = d
	return nil
}

func (c *Config) validate() error {
	switch c.DocStore {
	case StoreFirestore, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("unknown DOC_STORE %q (want firestore, sqlite or memory)", c.DocStore)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
