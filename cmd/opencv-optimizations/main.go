// Command opencv-optimizations writes the per-mode translation units and the
// declarations header for OpenCV's SIMD dispatch.
package main

import (
	"github.com/spf13/cobra"

	"opencv-codegen/internal/cli"
)

func main() {
	cobra.CheckErr(cli.NewOptimizationsCommand().Execute())
}
