//-------------------------------------------------------------------------
//
// pgEdge Retail Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-retailgen.
// Configuration is loaded from a JSON config file and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for pgedge-retailgen.
type Config struct {
	// Spark holds the legacy engine settings. Only AppName is used.
	Spark SparkConfig `mapstructure:"spark"`

	// DataGeneration controls the size and shape of the generated dataset.
	DataGeneration DataGenerationConfig `mapstructure:"data_generation"`

	// Feedback controls feedback emission.
	Feedback FeedbackConfig `mapstructure:"feedback"`

	// Database selects and configures the target store.
	Database DatabaseConfig `mapstructure:"database"`

	// TableSchemas maps table name to column definitions. Decoded from the
	// raw document so table names keep their case.
	TableSchemas map[string][]string `mapstructure:"-"`

	// Logging configures console and file logging.
	Logging LoggingConfig `mapstructure:"logging"`
}

// SparkConfig holds the "spark" section of the document.
type SparkConfig struct {
	// AppName is attached to log events.
	AppName string `mapstructure:"app_name"`

	// JDBCDriverPath is accepted for compatibility with existing config files.
	JDBCDriverPath string `mapstructure:"jdbc_driver_path"`
}

// DataGenerationConfig holds generation parameters.
type DataGenerationConfig struct {
	NumProducts  int `mapstructure:"num_products"`
	NumStores    int `mapstructure:"num_stores"`
	NumCustomers int `mapstructure:"num_customers"`
	NumYears     int `mapstructure:"num_years"`
	StartYear    int `mapstructure:"start_year"`

	// Seed seeds the random source shared by all generators.
	Seed uint64 `mapstructure:"seed"`

	// Profile is the seasonality profile name.
	Profile string `mapstructure:"profile"`
}

// FeedbackConfig holds feedback generation parameters.
type FeedbackConfig struct {
	// Chance is the probability that a transaction receives feedback.
	Chance float64 `mapstructure:"chance"`

	// Texts maps feedback text to rating. Decoded from the raw document
	// because viper folds keys to lower case and splits them on dots.
	Texts map[string]int `mapstructure:"-"`
}

// DatabaseConfig holds store settings.
type DatabaseConfig struct {
	// Path is the SQLite database file.
	Path string `mapstructure:"path"`

	// Connection is a PostgreSQL connection string. When set, it takes
	// precedence over Path.
	Connection string `mapstructure:"connection"`

	// BatchSize is the number of rows per insert batch.
	BatchSize int `mapstructure:"batch_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Path is the directory for the daily log file.
	Path string `mapstructure:"path"`

	// Level controls logging verbosity (debug, info, warn, error).
	Level string `mapstructure:"level"`
}

// DefaultFeedbackTexts returns the feedback mapping used when the config
// file does not define one.
func DefaultFeedbackTexts() map[string]int {
	return map[string]int{
		"Excellent product, highly recommend!": 5,
		"Very good, would buy again.":          4,
		"It's okay, nothing special.":          3,
		"Not satisfied with the quality.":      2,
		"Terrible, would not recommend.":       1,
	}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Spark: SparkConfig{
			AppName: "pgedge-retailgen",
		},
		DataGeneration: DataGenerationConfig{
			NumProducts:  100,
			NumStores:    10,
			NumCustomers: 1000,
			NumYears:     1,
			StartYear:    2023,
			Seed:         42,
			Profile:      "holiday-retail",
		},
		Feedback: FeedbackConfig{
			Chance: 0.10,
			Texts:  DefaultFeedbackTexts(),
		},
		Database: DatabaseConfig{
			Path:      "retail.db",
			BatchSize: 1000,
		},
		Logging: LoggingConfig{
			Path:  "logs",
			Level: "info",
		},
	}
}

// rawSections holds the free-form mappings decoded without viper.
type rawSections struct {
	Feedback struct {
		Texts map[string]int `json:"texts"`
	} `json:"feedback"`
	TableSchemas map[string][]string `json:"table_schemas"`
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./config/config.json
// 3. ./config.json
// 4. ~/.config/pgedge-retailgen/config.json
func Load(configFile string) (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("config")
	v.SetConfigType("json")

	// Add config paths
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-retailgen"))
	}

	// Use specific config file if provided
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal config file values
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if used := v.ConfigFileUsed(); used != "" {
		if err := loadRawSections(used, cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func loadRawSections(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var raw rawSections
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("error parsing config: %w", err)
	}

	if raw.Feedback.Texts != nil {
		cfg.Feedback.Texts = raw.Feedback.Texts
	}
	if raw.TableSchemas != nil {
		cfg.TableSchemas = raw.TableSchemas
	}
	return nil
}

// Validate checks that the generation parameters are usable.
func (c *Config) Validate() error {
	dg := c.DataGeneration
	if dg.NumProducts < 1 {
		return fmt.Errorf("data_generation.num_products must be at least 1")
	}
	if dg.NumStores < 1 {
		return fmt.Errorf("data_generation.num_stores must be at least 1")
	}
	if dg.NumCustomers < 2 {
		return fmt.Errorf("data_generation.num_customers must be at least 2")
	}
	if dg.NumYears < 1 {
		return fmt.Errorf("data_generation.num_years must be at least 1")
	}
	if dg.StartYear < 1 || dg.StartYear+dg.NumYears-1 > 9999 {
		return fmt.Errorf("data_generation.start_year out of range: %d", dg.StartYear)
	}
	if c.Feedback.Chance < 0 || c.Feedback.Chance > 1 {
		return fmt.Errorf("feedback.chance must be between 0 and 1")
	}
	if c.Feedback.Chance > 0 && len(c.Feedback.Texts) == 0 {
		return fmt.Errorf("feedback.texts must not be empty when feedback.chance > 0")
	}
	return nil
}

// ValidateDatabase checks configuration required to reach the store.
func (c *Config) ValidateDatabase() error {
	if c.Database.Path == "" && c.Database.Connection == "" {
		return fmt.Errorf("database.path or database.connection is required")
	}
	if c.Database.BatchSize < 1 {
		return fmt.Errorf("database.batch_size must be at least 1")
	}
	return nil
}

// ValidateLoad checks configuration required for the load command.
func (c *Config) ValidateLoad() error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.ValidateDatabase()
}
