package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gtinkit/pkg/gtin"
	"github.com/dmitrymomot/gtinkit/pkg/logger"
	"github.com/dmitrymomot/gtinkit/pkg/sanitizer"
)

// errInvalidInput marks a run in which at least one argument was rejected.
// The offending arguments are already reported on stdout.
var errInvalidInput = errors.New("invalid input")

type commandKey struct{}

type app struct {
	log       *slog.Logger
	normalize bool
	output    string
}

// Execute runs the gtin command with os.Args and exits with a non-zero status on failure.
func Execute() {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the command tree and returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	if cfg.LogFormat != logger.FormatText && cfg.LogFormat != logger.FormatJSON {
		fmt.Fprintf(stderr, "Error: invalid %sLOG_FORMAT %q\n", envPrefix, cfg.LogFormat)
		return 2
	}

	cmd := newRootCmd(cfg, logger.New(
		logger.WithEnvironment(cfg.Env, "gtin"),
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(cfg.LogFormat),
		logger.WithOutput(stderr),
		logger.WithContextValue("command", commandKey{}),
	))
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errInvalidInput) {
			return 1
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}
	return 0
}

func newRootCmd(cfg Config, log *slog.Logger) *cobra.Command {
	a := &app{log: log}

	cmd := &cobra.Command{
		Use:           "gtin",
		Short:         "Validate and build GTIN-8/12/13/14 codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := validOutput(a.output); err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), commandKey{}, cmd.Name()))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.normalize, "normalize", "n", cfg.Normalize,
		"strip separators and fold full-width digits before processing")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", cfg.Output, "output format: text, json or yaml")

	cmd.AddCommand(
		a.validateCmd(),
		a.checkDigitCmd(),
		a.completeCmd(),
		a.inspectCmd(),
	)
	return cmd
}

// requireArgs fails with gtin.ErrNilInput when a command receives no codes.
func requireArgs(what string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%w: at least one %s is required", gtin.ErrNilInput, what)
		}
		return nil
	}
}

func (a *app) prepare(input string) string {
	if a.normalize {
		return sanitizer.NormalizeGTIN(input)
	}
	return input
}

// finish renders reports, logs a summary and reports whether any argument failed.
func (a *app) finish(cmd *cobra.Command, reports []report, line func(report) string) error {
	if err := render(cmd.OutOrStdout(), a.output, reports, line); err != nil {
		return err
	}

	failed := 0
	for _, r := range reports {
		if !r.Valid {
			failed++
		}
	}
	a.log.InfoContext(cmd.Context(), "processed codes",
		logger.Count(len(reports)),
		slog.Int("failed", failed),
	)

	if failed > 0 {
		err := fmt.Errorf("%w: %d of %d rejected", errInvalidInput, failed, len(reports))
		if a.output == outputText {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		return err
	}
	return nil
}
