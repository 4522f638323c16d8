package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"openlibrary-fetcher/internal/config"
	"openlibrary-fetcher/internal/constants"
)

const testBaseConfigContent = `
base_url: "https://openlibrary.org"
user_agent: "test-agent/1.0"
timeout: "15s"
log_level: "info"
per_page: 20
output_format: "text"
max_log_length: "1MB"
`

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "text", cfg.OutputFormat)
				assert.Equal(t, int64(20), cfg.PerPage)
				assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
			},
		},
		{
			name: "output-format flag only - override format",
			flags: map[string]string{
				"output-format": "json",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "json", cfg.OutputFormat)
				assert.Equal(t, int64(20), cfg.PerPage)
			},
		},
		{
			name: "per-page flag only - override page size",
			flags: map[string]string{
				"per-page": "100",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "text", cfg.OutputFormat)
				assert.Equal(t, int64(100), cfg.PerPage)
			},
		},
		{
			name: "log-level flag only - override verbosity",
			flags: map[string]string{
				"log-level": "debug",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
			},
		},
		{
			name: "base-url flag only - override base URL",
			flags: map[string]string{
				"base-url": "https://openlibrary.example.com",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "https://openlibrary.example.com", cfg.BaseURL)
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]string{
				"output-format": "json",
				"per-page":      "5",
				"log-level":     "warn",
				"base-url":      "https://mirror.example.com",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "json", cfg.OutputFormat)
				assert.Equal(t, int64(5), cfg.PerPage)
				assert.Equal(t, zapcore.WarnLevel, cfg.ParsedLogLevel)
				assert.Equal(t, "https://mirror.example.com", cfg.BaseURL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary directory and config file.
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			// Load configuration.
			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			// Create a test command with the same flags as the root command.
			testCmd := &cobra.Command{
				Use: "test",
			}

			testCmd.Flags().StringP("output-format", "f", "", "output format")
			testCmd.Flags().Int64P("per-page", "n", 0, "page size")
			testCmd.Flags().String("log-level", "", "logging verbosity")
			testCmd.Flags().String("base-url", "", "base URL")

			// Set flag values.
			for flagName, flagValue := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(flagName, flagValue),
					"failed to set flag %s", flagName)
			}

			// Bind flags to config.
			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.NoError(t, err)

			// Verify expectations.
			tt.expectedConfig(t, cfg)
		})
	}
}

// TestBindFlagsToConfig_InvalidValues tests that validation errors surface through flag binding.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestBindFlagsToConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name        string
		flagName    string
		flagValue   string
		expectedErr error
	}{
		{
			name:        "unknown output format",
			flagName:    "output-format",
			flagValue:   "xml",
			expectedErr: config.ErrUnknownOutputFormat,
		},
		{
			name:        "unknown log level",
			flagName:    "log-level",
			flagValue:   "loud",
			expectedErr: config.ErrUnknownLogLevel,
		},
		{
			name:        "oversized page size",
			flagName:    "per-page",
			flagValue:   "99999",
			expectedErr: config.ErrInvalidPerPage,
		},
		{
			name:        "relative base URL",
			flagName:    "base-url",
			flagValue:   "openlibrary.org",
			expectedErr: config.ErrInvalidBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testCmd := &cobra.Command{Use: "test"}
			testCmd.Flags().StringP("output-format", "f", "", "output format")
			testCmd.Flags().Int64P("per-page", "n", 0, "page size")
			testCmd.Flags().String("log-level", "", "logging verbosity")
			testCmd.Flags().String("base-url", "", "base URL")

			require.NoError(t, testCmd.Flags().Set(tt.flagName, tt.flagValue))

			err := bindFlagsToConfig(testCmd.Flags(), &config.Config{})
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

// TestCommandRegistration tests that every subcommand is wired into the root command.
func TestCommandRegistration(t *testing.T) {
	t.Parallel()

	expected := []string{
		"book", "work", "author", "works", "isbn",
		"search", "search-authors", "subject",
		"bulk", "config", "version",
	}

	registered := make(map[string]bool, len(rootCmd.Commands()))
	for _, command := range rootCmd.Commands() {
		registered[command.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name], "command %q is not registered", name)
	}
}
