package simd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"opencv-codegen/internal/gen"
)

// Config holds configuration for dispatch stub generation.
type Config struct {
	// Filename is the base name shared by all generated files (e.g., "arithm").
	Filename string
	// OutDir is any file path inside the output directory. Only its parent
	// directory is used and the file itself need not exist.
	OutDir string
	// Strict rejects modes missing from the registry.
	Strict bool
}

// Check returns an error if a required field is missing.
func (c Config) Check() error {
	var errs []error

	if c.Filename == "" {
		errs = append(errs, errors.New("filename is required"))
	}

	if c.OutDir == "" {
		errs = append(errs, errors.New("outdir is required"))
	}

	return errors.Join(errs...)
}

// Dir returns the directory generated files are written to.
func (c Config) Dir() string {
	return filepath.Dir(c.OutDir)
}

// StubName returns the translation unit name for a mode, e.g. "arithm.avx2.cpp".
func StubName(filename, mode string) string {
	return filename + "." + strings.ToLower(mode) + ".cpp"
}

// DeclarationsName returns the declarations header name, e.g.
// "arithm.simd_declarations.hpp".
func DeclarationsName(filename string) string {
	return filename + ".simd_declarations.hpp"
}

// DispatchModesAll returns the CV_CPU_DISPATCH_MODES_ALL value: modes in
// reverse order followed by BASELINE.
func DispatchModesAll(modes []string) string {
	all := slices.Clone(modes)
	slices.Reverse(all)

	return strings.Join(append(all, Baseline), ", ")
}

// Generator renders dispatch stubs and the declarations header.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// Generate returns one stub per mode in input order followed by the
// declarations header.
func (g *Generator) Generate(modes []string) ([]gen.GeneratedFile, error) {
	if err := g.config.Check(); err != nil {
		return nil, fmt.Errorf("checking config: %w", err)
	}

	if len(modes) == 0 {
		return nil, errors.New("no dispatch modes given")
	}

	dir := g.config.Dir()
	data := &templateData{
		Filename: g.config.Filename,
		Modes:    modes,
		ModesAll: DispatchModesAll(modes),
	}

	stub, err := render(stubTemplate, data)
	if err != nil {
		return nil, err
	}

	files := make([]gen.GeneratedFile, 0, len(modes)+1)
	for _, mode := range modes {
		files = append(files, gen.GeneratedFile{
			Path:    filepath.Join(dir, StubName(g.config.Filename, mode)),
			Content: stub,
		})
	}

	decls, err := render(declarationsTemplate, data)
	if err != nil {
		return nil, err
	}

	files = append(files, gen.GeneratedFile{
		Path:    filepath.Join(dir, DeclarationsName(g.config.Filename)),
		Content: decls,
	})

	return files, nil
}

func render(tmpl *template.Template, data *templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}

	return buf.Bytes(), nil
}
