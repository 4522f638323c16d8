package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"openlibrary-fetcher/internal/constants"
	"openlibrary-fetcher/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// BaseURL is the base URL of the Open Library API.
	BaseURL string `mapstructure:"base_url"`
	// UserAgent is the User-Agent header sent with every request.
	// Open Library asks clients to identify themselves, ideally with contact details.
	UserAgent string `mapstructure:"user_agent"`
	// Timeout is the per-request timeout (e.g., "30s", "1m").
	Timeout string `mapstructure:"timeout"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// PerPage is the default page size for list operations.
	PerPage int64 `mapstructure:"per_page"`
	// OutputFormat selects how results are rendered ("text" or "json").
	OutputFormat string `mapstructure:"output_format"`
	// MaxLogLength caps dumped request/response bodies in debug logs (e.g., "1MB", "256KB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// ParsedTimeout is the parsed per-request timeout.
	ParsedTimeout time.Duration
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedMaxLogLength is the parsed log dump cap in bytes.
	ParsedMaxLogLength uint64
}

const (
	// OpenLibraryBaseURL is the base URL for the Open Library service.
	OpenLibraryBaseURL = "https://openlibrary.org"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".openlibrary-fetcher.yaml"

	// DefaultUserAgent identifies the tool to the Open Library servers.
	DefaultUserAgent = "openlibrary-fetcher/1.0"

	// DefaultTimeout is the default per-request timeout.
	DefaultTimeout = "30s"

	// DefaultLogLevel is the default logging verbosity.
	DefaultLogLevel = "info"

	// DefaultPerPage is the default page size for list operations.
	DefaultPerPage = 50

	// DefaultMaxLogLength is the default maximum size (in bytes) for dumped request/response data.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// OutputFormatText renders results as human-readable text.
	OutputFormatText = "text"
	// OutputFormatJSON renders results as indented JSON.
	OutputFormatJSON = "json"

	// maxPerPage is the largest page size the Open Library API accepts.
	maxPerPage = 1000
)

// Static error definitions for better error handling.
var (
	// ErrInvalidBaseURL indicates that the base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("base_url must be a valid absolute URL")
	// ErrInvalidTimeout indicates that the timeout setting is invalid.
	ErrInvalidTimeout = errors.New("timeout must be positive")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidPerPage indicates that the page size setting is invalid.
	ErrInvalidPerPage = errors.New("per_page must be a positive integer")
	// ErrUnknownOutputFormat indicates that the output format is not recognized.
	ErrUnknownOutputFormat = errors.New("unknown output format")
)

// LoadConfig loads configuration settings from a YAML file.
// A missing file is not an error: the defaults cover every setting.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}

		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity,
// fills unset fields with defaults, and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = OpenLibraryBaseURL
	}

	parsedBaseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || !parsedBaseURL.IsAbs() || parsedBaseURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	if cfg.Timeout == "" {
		cfg.Timeout = DefaultTimeout
	}

	cfg.ParsedTimeout, err = time.ParseDuration(cfg.Timeout)
	if err != nil {
		return fmt.Errorf("failed to parse timeout: %w", err)
	}

	if cfg.ParsedTimeout <= 0 {
		return ErrInvalidTimeout
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if cfg.PerPage == 0 {
		cfg.PerPage = DefaultPerPage
	}

	if cfg.PerPage < 0 || cfg.PerPage > maxPerPage {
		return fmt.Errorf("%w: must be between 1 and %d", ErrInvalidPerPage, maxPerPage)
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputFormatText
	}

	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	if cfg.OutputFormat != OutputFormatText && cfg.OutputFormat != OutputFormatJSON {
		return fmt.Errorf("%w: '%s'", ErrUnknownOutputFormat, cfg.OutputFormat)
	}

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	if maxLogLength != "" && maxLogLength != "0" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	if cfg.ParsedMaxLogLength == 0 {
		cfg.ParsedMaxLogLength = DefaultMaxLogLength
	}

	return nil
}

// defaultConfigDocument mirrors Config for YAML rendering so that
// SaveDefaultConfig writes keys in a stable, readable order.
type defaultConfigDocument struct {
	BaseURL      string `yaml:"base_url"`
	UserAgent    string `yaml:"user_agent"`
	Timeout      string `yaml:"timeout"`
	LogLevel     string `yaml:"log_level"`
	PerPage      int64  `yaml:"per_page"`
	OutputFormat string `yaml:"output_format"`
	MaxLogLength string `yaml:"max_log_length"`
}

// SaveDefaultConfig writes a configuration file populated with the defaults.
// It refuses to overwrite an existing file.
func SaveDefaultConfig(configFilename string) error {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	content, err := yaml.Marshal(&defaultConfigDocument{
		BaseURL:      OpenLibraryBaseURL,
		UserAgent:    DefaultUserAgent,
		Timeout:      DefaultTimeout,
		LogLevel:     DefaultLogLevel,
		PerPage:      DefaultPerPage,
		OutputFormat: OutputFormatText,
		MaxLogLength: humanize.IBytes(DefaultMaxLogLength),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	file, err := os.OpenFile(configFilename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	defer file.Close()

	if _, err = file.Write(content); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
