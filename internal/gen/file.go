package gen

// GeneratedFile represents a generated C++ header or translation unit.
type GeneratedFile struct {
	// Path is where the file is written (e.g., "out/arithm.avx2.cpp").
	Path string
	// Content is the exact file body.
	Content []byte
}

// Paths returns the output paths of files in order.
func Paths(files []GeneratedFile) []string {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}

	return paths
}
