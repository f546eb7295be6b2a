// Command roomroster combines student and room data and prints the result as
// JSON or XML.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"roomroster/internal/app"
	"roomroster/internal/config"
	apperrors "roomroster/internal/errors"
	"roomroster/internal/exporter"
	"roomroster/internal/infrastructure"
	"roomroster/pkg/contracts"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errRunFailed marks a failure that has already been reported on stdout.
var errRunFailed = errors.New("run failed")

type options struct {
	students   string
	rooms      string
	format     string
	configFile string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errRunFailed):
		return exitError
	default:
		fmt.Fprintf(stderr, "Error: %s\n", err)
		fmt.Fprint(stderr, cmd.UsageString())
		return exitUsage
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   config.AppName + " --students FILE --rooms FILE [--format json|xml]",
		Short: "Combine student and room data, export as JSON or XML.",
		Long: `roomroster reads a JSON array of students and a JSON array of rooms,
validates every record, attaches each student to the room it references and
prints the rooms with their students as JSON or XML.

Students that reference an unknown room are left out. Any invalid record
rejects the whole input.`,
		Version:       contracts.GetFullVersionString(),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := execute(cmd.Context(), opts, stdout, stderr); err != nil {
				_ = apperrors.Report(stdout, err)
				return errRunFailed
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	formats := make([]string, 0, len(exporter.Formats()))
	for _, f := range exporter.Formats() {
		formats = append(formats, f.String())
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.students, "students", "", "Path to students.json")
	flags.StringVar(&opts.rooms, "rooms", "", "Path to rooms.json")
	flags.StringVar(&opts.format, "format", "",
		fmt.Sprintf("Output format: %s (default from config, normally %s)",
			strings.Join(formats, ", "), exporter.DefaultFormat))
	flags.StringVar(&opts.configFile, "config", "", "Path to a YAML config file")
	_ = cmd.MarkFlagRequired("students")
	_ = cmd.MarkFlagRequired("rooms")

	return cmd
}

// execute loads configuration, sets up logging and tracing and runs the
// pipeline once.
func execute(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return err
	}

	logger, closeLog, err := infrastructure.NewLogger(cfg.Logging, stderr)
	if err != nil {
		return apperrors.NewConfigError("failed to initialize logger", err)
	}
	defer closeLog()

	providers, err := infrastructure.InitializeTracing(cfg.Tracing, stderr, logger)
	if err != nil {
		return apperrors.NewConfigError("failed to initialize tracing", err)
	}
	defer func() {
		if err := providers.Shutdown(context.Background()); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	application := app.NewApplication(cfg, logger, providers.Tracer, stdout)
	return application.Run(ctx, app.Request{
		StudentsSource: opts.students,
		RoomsSource:    opts.rooms,
		Format:         opts.format,
	})
}
