// Package cli wires the generators to their command lines.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"opencv-codegen/internal/diagnostic"
	"opencv-codegen/internal/logutil"
)

// Version is reported by --version. Overridden at link time with
// -ldflags "-X opencv-codegen/internal/cli.Version=...".
var Version = "0.0.0"

// setupLogger installs the process logger on stderr and returns it.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	logger := logutil.NewLogger(cmd.ErrOrStderr(), logutil.Level(verbose))
	slog.SetDefault(logger)

	return logger
}

// report logs warnings and returns the combined error diagnostics, if any.
func report(logger *slog.Logger, diags diagnostic.Diagnostics) error {
	for _, d := range diags.Warnings {
		logger.Warn(d.Message, "code", d.Code, "input", d.Subject)
	}

	if err := diags.Error(); err != nil {
		return fmt.Errorf("validating inputs: %w", err)
	}

	return nil
}

// mustMarkRequired marks flags required; a failure is a programming error.
func mustMarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}
}
