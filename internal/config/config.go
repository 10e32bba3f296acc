// Package config resolves tripwizard settings from defaults, an optional YAML
// file, a .env file and TRIPWIZARD_* environment variables, in that order.
// Command-line flags are applied on top by the CLI.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "tripwizard.yaml"

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "TRIPWIZARD_"

// Store backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Store      StoreConfig `yaml:"store"`
	Redis      RedisConfig `yaml:"redis"`
	SessionID  string      `yaml:"session_id"`
	Locale     string      `yaml:"locale"`
	Currency   string      `yaml:"currency"`
	CatalogDir string      `yaml:"catalog_dir"`
	LogLevel   string      `yaml:"log_level"`
}

// StoreConfig selects where wizard data lives.
type StoreConfig struct {
	// Backend holds the session store: file, redis or memory.
	// The durable store is always a file under DataDir unless Backend is memory.
	Backend string `yaml:"backend"`
	DataDir string `yaml:"data_dir"`
	// EncryptionKey is a hex-encoded 32 byte key. When set, durable values are
	// encrypted at rest.
	EncryptionKey string `yaml:"encryption_key"`
}

// RedisConfig configures the redis session store.
type RedisConfig struct {
	Addr       string        `yaml:"addr"`
	Password   string        `yaml:"password"`
	DB         int           `yaml:"db"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Backend: BackendFile,
			DataDir: ".tripwizard",
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			SessionTTL: 24 * time.Hour,
		},
		Locale:   "en-IN",
		Currency: "₹",
		LogLevel: "info",
	}
}

// Load resolves the configuration. An empty path means DefaultFile, which may
// be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := loadFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}

	// .env never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}

	applyEnv(&cfg)
	return cfg, cfg.Validate()
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Store.Backend = strings.ToLower(getEnv("STORE", cfg.Store.Backend))
	cfg.Store.DataDir = getEnv("DATA_DIR", cfg.Store.DataDir)
	cfg.Store.EncryptionKey = getEnv("ENCRYPTION_KEY", cfg.Store.EncryptionKey)
	cfg.Redis.Addr = getEnv("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.SessionTTL = getEnvAsDuration("SESSION_TTL", cfg.Redis.SessionTTL)
	cfg.SessionID = getEnv("SESSION_ID", cfg.SessionID)
	cfg.Locale = getEnv("LOCALE", cfg.Locale)
	cfg.Currency = getEnv("CURRENCY", cfg.Currency)
	cfg.CatalogDir = getEnv("CATALOG_DIR", cfg.CatalogDir)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Redis.SessionTTL < 0 {
		return fmt.Errorf("session ttl must not be negative, got %s", c.Redis.SessionTTL)
	}
	if c.Store.EncryptionKey != "" {
		if _, err := c.EncryptionKeyBytes(); err != nil {
			return err
		}
	}
	return nil
}

// EncryptionKeyBytes decodes the encryption key. It returns nil when unset.
func (c Config) EncryptionKeyBytes() ([]byte, error) {
	if c.Store.EncryptionKey == "" {
		return nil, nil
	}
	key, err := hex.DecodeString(c.Store.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("encryption key is not hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}
	return key, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(EnvPrefix + key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
