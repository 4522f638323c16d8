package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"openlibrary-fetcher/internal/config"
	"openlibrary-fetcher/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "openlibrary-fetcher",
		Short: "Fetch bibliographic records from the Open Library catalog.",
		Long: `Open Library Fetcher is a CLI tool for fetching bibliographic records
from the openlibrary.org catalog. It supports:
- Edition, work, and author lookups by Open Library ID (OLID)
- Edition lookups by ISBN, LCCN, and OCLC numbers
- Full-text search across books and authors
- Browsing works by subject heading
- Bulk fetching of mixed identifier lists

Every result is printed as readable text or as a normalized JSON envelope
with totals, items, navigation links, and pagination.`,
		PersistentPreRun: initConfig,
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags.StringP(
		"output-format",
		"f",
		"",
		"output format: text or json.")

	persistentFlags.Int64P(
		"per-page",
		"n",
		0,
		"page size for list results.")

	persistentFlags.String(
		"log-level",
		"",
		"logging verbosity: debug, info, warn, or error.")

	persistentFlags.String(
		"base-url",
		"",
		"base URL of the Open Library API.")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("output-format"); flag != nil && flag.Changed {
		cfg.OutputFormat, _ = flags.GetString("output-format")
	}

	if flag := flags.Lookup("per-page"); flag != nil && flag.Changed {
		cfg.PerPage, _ = flags.GetInt64("per-page")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("base-url"); flag != nil && flag.Changed {
		cfg.BaseURL, _ = flags.GetString("base-url")
	}

	return config.ValidateConfig(cfg)
}
