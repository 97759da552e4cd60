package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

const (
	defaultConfigFile    = "config.yaml"
	defaultRenewalPeriod = 30 // days between renewals of a continuous treatment
)

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"pass"`
}

type EmailConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type Config struct {
	Letterhead          Letterhead  `yaml:"letterhead"`
	Catalog             string      `yaml:"catalog"`    // optional YAML medicine list
	OutputDir           string      `yaml:"output_dir"` // where PDFs are saved when not mailed
	RenewalIntervalDays int         `yaml:"renewal_interval_days"`
	LogLevel            string      `yaml:"log_level"`
	SMTP                SMTPConfig  `yaml:"smtp"`
	Email               EmailConfig `yaml:"email"`
}

// configPath returns the config file to use: $RECEITUARIO_CONFIG if set, otherwise name.
func configPath(name string) string {
	if p := os.Getenv("RECEITUARIO_CONFIG"); p != "" {
		return p
	}
	return name
}

// loadConfig reads and parses the YAML configuration file. A missing file
// named name (the default) yields the built-in defaults; any other missing
// path is an error.
func loadConfig(name, path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err) && path == name:
		// run with defaults
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// applyEnv lets the environment (or a .env file) override secrets and the log level.
func applyEnv(cfg *Config) {
	if v := os.Getenv("RECEITUARIO_SMTP_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("RECEITUARIO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func applyDefaults(cfg *Config) {
	head := &cfg.Letterhead
	if len(head.Titles) == 0 {
		head.Titles = defaultLetterhead.Titles
	}
	if head.DocumentTitle == "" {
		head.DocumentTitle = defaultLetterhead.DocumentTitle
	}
	if head.City == "" {
		head.City = defaultLetterhead.City
	}
	if head.Address == "" {
		head.Address = defaultLetterhead.Address
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.RenewalIntervalDays == 0 {
		cfg.RenewalIntervalDays = defaultRenewalPeriod
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.SMTP.Port == 0 {
		cfg.SMTP.Port = 587
	}
}

func validateConfig(cfg *Config) error {
	if _, err := parseLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	if cfg.RenewalIntervalDays < 0 {
		return fmt.Errorf("renewal_interval_days must be positive, got %d", cfg.RenewalIntervalDays)
	}
	if cfg.Email.To != "" {
		if cfg.SMTP.Host == "" {
			return fmt.Errorf("smtp host is required when email.to is set")
		}
		if cfg.Email.From == "" {
			return fmt.Errorf("email.from is required when email.to is set")
		}
	}
	return nil
}

// parseLogLevel maps a config log level onto slog.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", level)
}

// newLogger creates the text logger used by the CLI.
func newLogger(level string) *slog.Logger {
	lvl, err := parseLogLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
