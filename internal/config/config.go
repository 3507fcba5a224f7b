package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"codeguard/internal/rules"
)

const (
	DefaultMaxBytes       = 1 << 20
	DefaultMaxLines       = 50000
	DefaultTimeout        = 10 * time.Second
	DefaultAddr           = ":8080"
	DefaultRequestTimeout = 15 * time.Second
)

// Config represents the application configuration
type Config struct {
	LogLevel    string                `yaml:"log_level"`
	Limits      Limits                `yaml:"limits"`
	Secrets     SecretsConfig         `yaml:"secrets"`
	Rules       map[string]RuleConfig `yaml:"rules"`
	CustomRules []CustomRule          `yaml:"custom_rules"`
	Server      ServerConfig          `yaml:"server"`
}

// Limits are the per-analysis input ceilings. Zero disables a ceiling.
type Limits struct {
	MaxBytes int64         `yaml:"max_bytes"`
	MaxLines int           `yaml:"max_lines"`
	Timeout  time.Duration `yaml:"timeout"`
}

type SecretsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// RuleConfig represents configuration for a specific rule
type RuleConfig struct {
	Disabled bool   `yaml:"disabled"`
	Severity string `yaml:"severity"`
}

// CustomRule is a rule definition added from configuration. Language may
// name a builtin language or a new one.
type CustomRule struct {
	Language         string `yaml:"language"`
	rules.Definition `yaml:",inline"`
}

type ServerConfig struct {
	Addr           string        `yaml:"addr"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Limits: Limits{
			MaxBytes: DefaultMaxBytes,
			MaxLines: DefaultMaxLines,
			Timeout:  DefaultTimeout,
		},
		Rules: make(map[string]RuleConfig),
		Server: ServerConfig{
			Addr:           DefaultAddr,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// LoadConfig loads configuration from a YAML file over the defaults
func LoadConfig(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Rules == nil {
		config.Rules = make(map[string]RuleConfig)
	}

	return config, nil
}

// ApplyEnv overrides file values with CODEGUARD_* environment variables.
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv("CODEGUARD_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("CODEGUARD_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := os.LookupEnv("CODEGUARD_MAX_BYTES"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid CODEGUARD_MAX_BYTES: %w", err)
		}
		c.Limits.MaxBytes = n
	}
	if v, ok := os.LookupEnv("CODEGUARD_MAX_LINES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CODEGUARD_MAX_LINES: %w", err)
		}
		c.Limits.MaxLines = n
	}
	if v, ok := os.LookupEnv("CODEGUARD_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CODEGUARD_TIMEOUT: %w", err)
		}
		c.Limits.Timeout = d
	}
	if v, ok := os.LookupEnv("CODEGUARD_SECRETS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid CODEGUARD_SECRETS: %w", err)
		}
		c.Secrets.Enabled = b
	}
	return nil
}

// RuleOptions converts the rule sections into registry options.
func (c *Config) RuleOptions() rules.Options {
	opts := rules.Options{
		Overrides:      make(map[string]rules.Override, len(c.Rules)),
		IncludeSecrets: c.Secrets.Enabled,
	}
	for id, rc := range c.Rules {
		opts.Overrides[id] = rules.Override{Disabled: rc.Disabled, Severity: rc.Severity}
	}

	byLang := make(map[string]int)
	for _, cr := range c.CustomRules {
		lang := rules.NormalizeLanguage(cr.Language)
		idx, ok := byLang[lang]
		if !ok {
			idx = len(opts.Custom)
			byLang[lang] = idx
			opts.Custom = append(opts.Custom, rules.Language{ID: lang})
		}
		opts.Custom[idx].Rules = append(opts.Custom[idx].Rules, cr.Definition)
	}
	return opts
}

// Registry builds the rule registry described by the config.
func (c *Config) Registry() *rules.Registry {
	return rules.NewRegistry(rules.Builtin(), c.RuleOptions())
}

// Level returns the log level name, lower-cased.
func (c *Config) Level() string {
	return strings.ToLower(strings.TrimSpace(c.LogLevel))
}
