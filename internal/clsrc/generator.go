package clsrc

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"text/template"

	"opencv-codegen/internal/gen"
)

// Config holds configuration for OpenCL source embedding.
type Config struct {
	// Module is the OpenCV module owning the kernels (e.g., "core").
	// It names the cv::ocl::<module> namespace and tags every entry.
	Module string
	// HeaderPath is where the declarations header is written.
	HeaderPath string
	// SourcePath is where the definitions translation unit is written.
	SourcePath string
}

// Check returns an error if a required field is missing.
func (c Config) Check() error {
	var errs []error

	if c.Module == "" {
		errs = append(errs, errors.New("module is required"))
	}

	if c.HeaderPath == "" {
		errs = append(errs, errors.New("header path is required"))
	}

	if c.SourcePath == "" {
		errs = append(errs, errors.New("source path is required"))
	}

	return errors.Join(errs...)
}

// Generator renders the header and source for a set of kernels.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// Generate returns the header followed by the source file.
func (g *Generator) Generate(kernels []Kernel) ([]gen.GeneratedFile, error) {
	if err := g.config.Check(); err != nil {
		return nil, fmt.Errorf("checking config: %w", err)
	}

	if len(kernels) == 0 {
		return nil, errors.New("no kernels to embed")
	}

	data := &templateData{
		Module:  g.config.Module,
		Header:  filepath.Base(g.config.HeaderPath),
		Kernels: kernels,
	}

	header, err := render(headerTemplate, data)
	if err != nil {
		return nil, err
	}

	source, err := render(sourceTemplate, data)
	if err != nil {
		return nil, err
	}

	return []gen.GeneratedFile{
		{Path: g.config.HeaderPath, Content: header},
		{Path: g.config.SourcePath, Content: source},
	}, nil
}

func render(tmpl *template.Template, data *templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}

	return buf.Bytes(), nil
}
