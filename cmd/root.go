// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"embedscout/internal/config"
	"embedscout/internal/log"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagFile      string
	flagFormat    string
	flagStrict    bool
	flagNoResolve bool
	flagDepth     int
	flagNoHistory bool
	flagDebug     bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "embedscout <url>",
	Short: "Extract embedded videos and their metadata from web pages",
	Long: `Embedscout reads a supported page, pulls out the videos it embeds along
with their title, description, date, counts and frame size, and follows embeds
that point at other supported pages.`,
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: loadConfig,
	RunE:              extractRun,
	SilenceUsage:      true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagFile, "file", "f", "", "Read page markup from a local file instead of fetching the URL")
	rootCmd.Flags().StringVarP(&flagFormat, "format", "o", "", "Output format: json | yaml | m3u")
	rootCmd.Flags().BoolVar(&flagStrict, "strict", false, "Fail when the comment count is missing")
	rootCmd.Flags().BoolVar(&flagNoResolve, "no-resolve", false, "Do not follow embeds that point at supported pages")
	rootCmd.Flags().IntVar(&flagDepth, "depth", -1, "How many levels of embeds to follow (0-5)")
	rootCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this extraction in the history")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(extractorsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	if flagStrict {
		cfg.Strict = true
	}
	if flagNoResolve {
		cfg.MaxDepth = 0
	} else if flagDepth >= 0 {
		cfg.MaxDepth = flagDepth
	}
	if flagNoHistory {
		cfg.History = false
	}
	if flagDebug {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log.Configure(log.Config{
		Level:   cfg.LogLevel,
		Output:  os.Stderr,
		Console: cfg.Debug,
	})

	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "embedscout %s\n", Version)
	},
}
