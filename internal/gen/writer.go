package gen

import (
	"fmt"
	"log/slog"
	"os"
)

// filePerm is the permission of generated files.
const filePerm = 0o644

// WriteFiles writes all generated files in order.
// Parent directories are not created: the calling build system owns the
// output tree, and a missing directory is reported as an error.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		err := os.WriteFile(file.Path, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}

		slog.Debug("wrote file", "path", file.Path, "bytes", len(file.Content))
	}

	return nil
}
