package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/ccd/datarecording"
	"github.com/sarchlab/ccd/scenario"
	"github.com/spf13/cobra"
)

func newRunCommand(root *rootOptions) *cobra.Command {
	var recordPath string

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a collision scenario.",
		Long: "`run` checks the pairs of a scenario periodically on a " +
			"collision clock and prints the impacts found before the horizon.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("record") {
				recordPath = os.Getenv(envRecordPath)
			}

			return runScenario(cmd, root, args[0], recordPath)
		},
	}

	cmd.Flags().StringVar(&recordPath, "record", "",
		"record events and samples into <path>.sqlite3 "+
			"(default from "+envRecordPath+")")

	return cmd
}

func runScenario(
	cmd *cobra.Command,
	root *rootOptions,
	path, recordPath string,
) (err error) {
	config, err := scenario.Load(path)
	if err != nil {
		return err
	}

	builder := scenario.MakeBuilder().WithLogger(root.logger)

	if recordPath != "" {
		recorder, recErr := datarecording.New(recordPath)
		if recErr != nil {
			return recErr
		}
		defer closeKeepingError(recorder, &err)

		builder = builder.WithRecorder(recorder)
	}

	runner, err := builder.Build(config)
	if err != nil {
		return err
	}

	report, err := runner.Run()
	if err != nil {
		return err
	}

	printReport(cmd, report)

	return nil
}

// closeKeepingError closes c and stores its error into err unless err already
// holds an earlier one.
func closeKeepingError(c io.Closer, err *error) {
	if closeErr := c.Close(); closeErr != nil && *err == nil {
		*err = fmt.Errorf("close recording: %w", closeErr)
	}
}

func printReport(cmd *cobra.Command, report *scenario.Report) {
	out := cmd.OutOrStdout()

	for _, impact := range report.Impacts {
		fmt.Fprintf(out, "impact %s at %g (exterior %g)\n",
			impact.Pair, impact.Time, impact.ExteriorTime)
	}

	fmt.Fprintf(out, "%d impacts, %d checks, stopped at %g (clock %g)\n",
		len(report.Impacts), report.Checks, report.EndTime, report.ClockTime)
}
