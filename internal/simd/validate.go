package simd

import (
	"fmt"

	"opencv-codegen/internal/diagnostic"
)

// Validate checks the requested modes against the registry. Unknown modes
// are warnings unless strict is set; repeated modes are always warnings.
func Validate(modes []string, registry *Registry, strict bool) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	seen := make(map[string]bool, len(modes))

	for _, mode := range modes {
		if seen[mode] {
			diags.AddWarning(diagnostic.CodeDuplicateMode,
				"dispatch mode listed more than once", mode)

			continue
		}

		seen[mode] = true

		if _, ok := registry.Lookup(mode); ok {
			continue
		}

		msg := fmt.Sprintf("%q is not a known CPU dispatch mode", mode)
		if strict {
			diags.AddError(diagnostic.CodeUnknownMode, msg, mode)
		} else {
			diags.AddWarning(diagnostic.CodeUnknownMode, msg, mode)
		}
	}

	return diags
}
