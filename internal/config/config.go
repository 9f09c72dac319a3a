// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Brreg    BrregConfig    `yaml:"brreg" mapstructure:"brreg"`
	Cache    CacheConfig    `yaml:"cache" mapstructure:"cache"`
	Batch    BatchConfig    `yaml:"batch" mapstructure:"batch"`
	CSV      CSVConfig      `yaml:"csv" mapstructure:"csv"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Taxonomy TaxonomyConfig `yaml:"taxonomy" mapstructure:"taxonomy"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// BrregConfig configures the registry API client.
type BrregConfig struct {
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	PageSize    int     `yaml:"page_size" mapstructure:"page_size"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
}

// CacheConfig configures the local lookup cache.
type CacheConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	Path     string `yaml:"path" mapstructure:"path"`
	TTLHours int    `yaml:"ttl_hours" mapstructure:"ttl_hours"`
}

// BatchConfig configures CSV batch processing.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// CSVConfig configures CSV input/output formatting.
type CSVConfig struct {
	Delimiter string `yaml:"delimiter" mapstructure:"delimiter"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// TaxonomyConfig points at an optional taxonomy override file.
type TaxonomyConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CATEGORIZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("brreg.base_url", "https://data.brreg.no/enhetsregisteret/api/enheter")
	v.SetDefault("brreg.page_size", 10)
	v.SetDefault("brreg.timeout_secs", 10)
	v.SetDefault("brreg.rate_per_sec", 5.0)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.path", "categorize.db")
	v.SetDefault("cache.ttl_hours", 24)
	v.SetDefault("batch.concurrency", 4)
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// DelimiterRune returns the configured CSV delimiter as a rune, defaulting to ','.
func (c CSVConfig) DelimiterRune() rune {
	if c.Delimiter == "" {
		return ','
	}
	return []rune(c.Delimiter)[0]
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
