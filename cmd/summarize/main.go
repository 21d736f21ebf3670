package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/UnknownOlympus/rutas/internal/config"
	"github.com/UnknownOlympus/rutas/internal/logger"
	"github.com/UnknownOlympus/rutas/internal/summary"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the summarize command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newCommand(newLogger(stderr))
	cmd.SetArgs(append([]string{}, args...))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

// newLogger builds the diagnostic logger from RUTAS_ENV alone.
// An unknown env falls back to production settings without a warning.
func newLogger(w io.Writer) *slog.Logger {
	env := config.LoadEnv()
	if !logger.IsKnown(env) {
		env = logger.EnvProd
	}

	return logger.New(env, w)
}

func newCommand(log *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <csv-path>",
		Short: "Summarize a waste-collection dataset",
		Long: "Summarize reads a waste-collection CSV with the columns punto_recoleccion,\n" +
			"latitud_punto_recoleccion and longitud_punto_recoleccion, groups the rows by\n" +
			"collection point and prints counts, coordinate ranges and the first points.",
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			log.DebugContext(cmd.Context(), "Summarizing dataset", "path", path)

			report, err := summary.Summarize(path)
			if err != nil {
				return err
			}

			log.DebugContext(cmd.Context(), "Dataset summarized",
				"records", report.TotalRecords, "points", report.DistinctPoints)

			_, err = report.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
