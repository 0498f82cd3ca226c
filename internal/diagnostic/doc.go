// Package diagnostic collects warnings and errors found while validating
// generator inputs.
//
// Key capabilities:
//   - Unknown or duplicated SIMD dispatch modes
//   - Kernel names that are not usable as C++ identifiers
//   - Kernel name collisions between inputs
package diagnostic
