package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"opencv-codegen/internal/clsrc"
	"opencv-codegen/internal/gen"
)

// NewCLMakeCommand returns the command that embeds OpenCL kernels into a
// C++ header and source pair.
func NewCLMakeCommand() *cobra.Command {
	var (
		config  clsrc.Config
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "opencv-clmake --module NAME --header PATH --source PATH CL...",
		Short: "Embed OpenCL kernel sources for the OpenCV program registry",
		Long: `Implements auto-generation of OpenCL related files for the OpenCV
build system, roughly equivalent to cmake/cl2cpp.cmake in the OpenCV
distribution. Every CL file becomes a cv::ocl::internal::ProgramEntry
named <basename>_oclsrc in namespace cv::ocl::<module>.`,
		Args:          cobra.MinimumNArgs(1),
		Version:       Version,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are valid from here on; only I/O can fail.
			cmd.SilenceUsage = true

			logger := setupLogger(cmd, verbose)

			return runCLMake(logger, config, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&config.HeaderPath, "header", "", "output header")
	flags.StringVar(&config.SourcePath, "source", "", "output source")
	flags.StringVar(&config.Module, "module", "", "opencv module")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log every kernel read and file written")

	mustMarkRequired(cmd, "header", "source", "module")

	return cmd
}

func runCLMake(logger *slog.Logger, config clsrc.Config, paths []string) error {
	kernels, err := clsrc.LoadKernels(paths)
	if err != nil {
		return err
	}

	if err := report(logger, clsrc.Validate(config, kernels)); err != nil {
		return err
	}

	files, err := clsrc.NewGenerator(config).Generate(kernels)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}

	logger.Debug("embedded kernels", "module", config.Module, "count", len(kernels))

	return nil
}
