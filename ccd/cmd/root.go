// Package cmd provides the command-line interface of ccd.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envRecordPath = "CCD_RECORD_PATH"
	envVerbose    = "CCD_VERBOSE"
)

type rootOptions struct {
	envFile string
	verbose bool
	logger  *zap.Logger
}

// NewRootCommand creates the ccd command with all its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "ccd",
		Short: "ccd finds when moving bodies collide.",
		Long: `ccd finds times of impact of moving circles by conservative ` +
			`advancement. It can answer a single query or run a scenario ` +
			`of periodic checks on a collision clock that can be paused.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env",
		"file to load environment defaults from, if it exists")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"log every event dispatch (default from "+envVerbose+")")

	rootCmd.AddCommand(newTOICommand())
	rootCmd.AddCommand(newRunCommand(opts))

	return rootCmd
}

// Execute runs the ccd command and exits. Recordings registered with atexit
// are flushed before exiting.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	err := godotenv.Load(o.envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", o.envFile, err)
	}

	if !cmd.Flags().Changed("verbose") {
		if v, ok := os.LookupEnv(envVerbose); ok {
			verbose, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s: %w", envVerbose, err)
			}

			o.verbose = verbose
		}
	}

	config := zap.NewProductionConfig()
	if o.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	o.logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}
