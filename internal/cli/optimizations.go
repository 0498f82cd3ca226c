package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"opencv-codegen/internal/gen"
	"opencv-codegen/internal/simd"
)

// NewOptimizationsCommand returns the command that writes SIMD dispatch
// stubs and the matching declarations header.
func NewOptimizationsCommand() *cobra.Command {
	var (
		config  simd.Config
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "opencv-optimizations --filename NAME --outdir PATH OPT...",
		Short: "Generate OpenCV CPU dispatch stubs",
		Long: `Implements auto-generation of the CPU dispatch files for the OpenCV
build system, roughly equivalent to cmake/OpenCVCompilerOptimizations.cmake
in the OpenCV distribution. Writes <filename>.<opt>.cpp for every OPT and
<filename>.simd_declarations.hpp next to the --outdir path.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       Version,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			logger := setupLogger(cmd, verbose)

			return runOptimizations(logger, config, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&config.Filename, "filename", "", "base name of the .simd.hpp file")
	flags.StringVar(&config.OutDir, "outdir", "",
		"a filename located in the output directory (it does not need to exist)")
	flags.BoolVar(&config.Strict, "strict", false, "reject dispatch modes OpenCV does not know")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every file written")

	mustMarkRequired(cmd, "filename", "outdir")

	return cmd
}

func runOptimizations(logger *slog.Logger, config simd.Config, modes []string) error {
	registry, err := simd.LoadRegistry()
	if err != nil {
		return err
	}

	if err := report(logger, simd.Validate(modes, registry, config.Strict)); err != nil {
		return err
	}

	files, err := simd.NewGenerator(config).Generate(modes)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	logger.Debug("generated dispatch stubs", "filename", config.Filename,
		"dir", config.Dir(), "modes", simd.DispatchModesAll(modes))

	return nil
}
