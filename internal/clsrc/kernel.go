package clsrc

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Kernel is one OpenCL source file prepared for embedding.
type Kernel struct {
	// Path is the input file as given on the command line.
	Path string
	// Name is the logical kernel name (base filename without extension).
	Name string
	// Hex is the Hexify encoding of the file bytes.
	Hex string
	// Digest is the lowercase hex MD5 of the file bytes.
	Digest string
	// Size is the number of bytes read.
	Size int
}

// Symbol returns the C++ variable name of the kernel's ProgramEntry.
func (k Kernel) Symbol() string {
	return k.Name + "_oclsrc"
}

// NewKernel prepares already-read kernel bytes.
func NewKernel(path string, data []byte) Kernel {
	return Kernel{
		Path:   path,
		Name:   KernelName(path),
		Hex:    Hexify(data),
		Digest: Digest(data),
		Size:   len(data),
	}
}

// LoadKernel reads the file at path and prepares it for embedding.
func LoadKernel(path string) (Kernel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Kernel{}, fmt.Errorf("reading kernel %s: %w", path, err)
	}

	k := NewKernel(path, data)
	slog.Debug("loaded kernel", "name", k.Name, "path", path, "bytes", k.Size, "md5", k.Digest)

	return k, nil
}

// LoadKernels loads every path in order, stopping at the first failure.
func LoadKernels(paths []string) ([]Kernel, error) {
	kernels := make([]Kernel, 0, len(paths))

	for _, path := range paths {
		k, err := LoadKernel(path)
		if err != nil {
			return nil, err
		}

		kernels = append(kernels, k)
	}

	return kernels, nil
}

// KernelName returns the base name of path without its last extension.
// Leading dots belong to the name, so ".cl" stays ".cl" and "a.b.cl"
// becomes "a.b".
func KernelName(path string) string {
	base := filepath.Base(path)

	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 || strings.Trim(base[:dot], ".") == "" {
		return base
	}

	return base[:dot]
}
