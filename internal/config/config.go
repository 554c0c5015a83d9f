package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Paths      PathsConfig      `yaml:"paths" mapstructure:"paths"`
	Compliance ComplianceConfig `yaml:"compliance" mapstructure:"compliance"`
	Ledger     LedgerConfig     `yaml:"ledger" mapstructure:"ledger"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// PathsConfig holds the default input and output file locations.
type PathsConfig struct {
	RawCSV      string `yaml:"raw_csv" mapstructure:"raw_csv"`
	CleanedCSV  string `yaml:"cleaned_csv" mapstructure:"cleaned_csv"`
	EnrichedCSV string `yaml:"enriched_csv" mapstructure:"enriched_csv"`
}

// ComplianceConfig configures the blacklist cutoff rule.
type ComplianceConfig struct {
	CutoffDate string `yaml:"cutoff_date" mapstructure:"cutoff_date"`
}

// LedgerConfig configures the local batch ledger.
type LedgerConfig struct {
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
	v.SetEnvPrefix("LEADPIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("paths.raw_csv", "raw_csv/lead_data.csv")
	v.SetDefault("paths.cleaned_csv", "cleaned_csv/lead_data_filtered_clean.csv")
	v.SetDefault("paths.enriched_csv", "enriched_csv/lead_data_enriched.csv")
	v.SetDefault("compliance.cutoff_date", "2024-06-01")
	v.SetDefault("ledger.path", "leadpipe.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

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

// CutoffDate parses the configured blacklist cutoff as a UTC day boundary.
func (c *Config) CutoffDate() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", c.Compliance.CutoffDate, time.UTC)
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "config: parse cutoff date %q", c.Compliance.CutoffDate)
	}
	return t, nil
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
