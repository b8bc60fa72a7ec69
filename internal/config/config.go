package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mikey/lead-triage/internal/core"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance. configFile, when set, replaces
// the search path lookup.
func New(configFile string) (*Config, error) {
	// .env values are exported before viper reads the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/lead-triage/")
		v.AddConfigPath("$HOME/.lead-triage")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvPrefix("LEAD_TRIAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Keyword buckets
	v.SetDefault("keywords.demo", core.DefaultDemoKeywords)
	v.SetDefault("keywords.hot", core.DefaultHotKeywords)
	v.SetDefault("keywords.warm", core.DefaultWarmKeywords)
	v.SetDefault("keywords.cold", core.DefaultColdKeywords)

	// Matching defaults
	v.SetDefault("matching.engine", "trie")

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.max_entries", 10000)

	// Input defaults
	v.SetDefault("input.sheet", "")

	// Export defaults
	v.SetDefault("export.high_priority_threshold", 50)

	// Display defaults
	v.SetDefault("display.preview_length", 100)
	v.SetDefault("display.histogram_bins", 20)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// Set overrides a value, used for command line flags
func (c *Config) Set(key string, value any) {
	c.v.Set(key, value)
}
