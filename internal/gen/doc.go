// Package gen holds the output side shared by the OpenCV code generators.
//
// Generators render every file in memory first and hand the result to
// WriteFiles, so template failures never leave half-written files behind.
// Writing itself is single-shot: files are written in order and the first
// failure aborts the run, keeping whatever was already written.
package gen
