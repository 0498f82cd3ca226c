package clsrc

import (
	"fmt"
	"regexp"

	"opencv-codegen/internal/diagnostic"
)

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate reports inputs that would produce C++ that does not compile.
// Everything is a warning: the generated files are still written exactly as
// requested and the compiler has the final word.
func Validate(config Config, kernels []Kernel) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if !identifierRe.MatchString(config.Module) {
		diags.AddWarning(diagnostic.CodeInvalidName,
			fmt.Sprintf("module %q is not a valid C++ namespace name", config.Module), config.Module)
	}

	seen := make(map[string]string, len(kernels))

	for _, k := range kernels {
		if !identifierRe.MatchString(k.Symbol()) {
			diags.AddWarning(diagnostic.CodeInvalidName,
				fmt.Sprintf("kernel name %q does not form a valid C++ identifier", k.Name), k.Path)
		}

		if first, ok := seen[k.Name]; ok {
			diags.AddWarning(diagnostic.CodeDuplicateKernel,
				fmt.Sprintf("kernel %q is also defined by %s", k.Name, first), k.Path)

			continue
		}

		seen[k.Name] = k.Path
	}

	return diags
}
