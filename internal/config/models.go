package config

import "github.com/mikey/lead-triage/internal/core"

// MatchingConfig represents the keyword matching configuration
type MatchingConfig struct {
	Engine string
}

// CacheConfig represents the match cache configuration
type CacheConfig struct {
	Enabled    bool
	MaxEntries int
}

// InputConfig represents the lead import configuration
type InputConfig struct {
	Sheet string
}

// ExportConfig represents the export configuration
type ExportConfig struct {
	HighPriorityThreshold int
}

// DisplayConfig represents the terminal report configuration
type DisplayConfig struct {
	PreviewLength int
	HistogramBins int
}

// LoggingConfig represents the logger configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// KeywordSets returns the keyword sets for a processing run. Each bucket
// accepts a comma-separated string or a list.
func (c *Config) KeywordSets() core.KeywordSets {
	return core.KeywordSets{
		Demo: c.keywordSet("keywords.demo"),
		Hot:  c.keywordSet("keywords.hot"),
		Warm: c.keywordSet("keywords.warm"),
		Cold: c.keywordSet("keywords.cold"),
	}
}

func (c *Config) keywordSet(key string) core.KeywordSet {
	switch c.v.Get(key).(type) {
	case []any, []string:
		return core.NormalizeKeywords(c.v.GetStringSlice(key))
	default:
		return core.ParseKeywordList(c.v.GetString(key))
	}
}

// GetMatching returns the matching configuration
func (c *Config) GetMatching() MatchingConfig {
	return MatchingConfig{
		Engine: c.GetString("matching.engine"),
	}
}

// GetCache returns the cache configuration
func (c *Config) GetCache() CacheConfig {
	return CacheConfig{
		Enabled:    c.GetBool("cache.enabled"),
		MaxEntries: c.GetInt("cache.max_entries"),
	}
}

// GetInput returns the input configuration
func (c *Config) GetInput() InputConfig {
	return InputConfig{
		Sheet: c.GetString("input.sheet"),
	}
}

// GetExport returns the export configuration
func (c *Config) GetExport() ExportConfig {
	return ExportConfig{
		HighPriorityThreshold: c.GetInt("export.high_priority_threshold"),
	}
}

// GetDisplay returns the display configuration
func (c *Config) GetDisplay() DisplayConfig {
	return DisplayConfig{
		PreviewLength: c.GetInt("display.preview_length"),
		HistogramBins: c.GetInt("display.histogram_bins"),
	}
}

// GetLogging returns the logging configuration
func (c *Config) GetLogging() LoggingConfig {
	return LoggingConfig{
		Level:  c.GetString("logging.level"),
		Format: c.GetString("logging.format"),
	}
}
