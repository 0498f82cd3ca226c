// Command opencv-clmake embeds OpenCL kernel sources into a C++ header and
// source pair registered with OpenCV's OpenCL program registry.
package main

import (
	"github.com/spf13/cobra"

	"opencv-codegen/internal/cli"
)

func main() {
	cobra.CheckErr(cli.NewCLMakeCommand().Execute())
}
