// Command glacierinv reads the results of Amazon S3 Glacier inventory-retrieval
// jobs and lists object-storage buckets.
//
//	glacierinv inventory demo-vault <job-id>
//	glacierinv inventory demo-vault <job-id> --output json
//	glacierinv buckets --provider minio
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/koustreak/glacier-inventory/internal/config"
	"github.com/koustreak/glacier-inventory/internal/logger"
)

var (
	log *logger.Logger
	cfg *config.Config

	configPath  string
	logLevel    string
	timeout     time.Duration
	outputStyle string
)

var rootCmd = &cobra.Command{
	Use:           "glacierinv",
	Short:         "Read Glacier inventory job results and list buckets",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to a YAML config file (default: ./glacierinv.yaml if present)")
	flags.StringVar(&logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	flags.DurationVar(&timeout, "timeout", 0, "Deadline for the whole command, e.g. 30s (default: from config, none)")
	flags.StringVarP(&outputStyle, "output", "o", "text", "Output format: text, json or yaml")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if log != nil {
			log.ErrorWith("command failed", err, nil)
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// loadConfig resolves configuration and the logger before any subcommand runs.
func loadConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = timeout
	}
	if _, err := newRenderer(outputStyle); err != nil {
		return err
	}

	log = logger.New(&cfg.Log)
	return nil
}

// commandContext applies the configured deadline, if any.
func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = log.WithContext(ctx)
	if cfg.Timeout > 0 {
		return context.WithTimeout(ctx, cfg.Timeout)
	}
	return context.WithCancel(ctx)
}
