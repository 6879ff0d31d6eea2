package remote

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExportFileName is the fixed name of the local fallback artifact, matching
// the name of the remote resource it mirrors.
const ExportFileName = "users.json"

// Exporter writes the full collection payload to a local file when the
// remote replace is unavailable.
type Exporter struct {
	dir string
}

// NewExporter exports into dir; an empty dir means the current directory.
func NewExporter(dir string) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{dir: dir}
}

// Write stores the payload and returns the file's path.
func (e *Exporter) Write(payload []byte) (string, error) {
	if err := os.MkdirAll(e.dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", e.dir, err)
	}
	path := filepath.Join(e.dir, ExportFileName)
	if err := os.WriteFile(path, payload, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
