package domain

import (
	"os"
	"path/filepath"
	"testing"

	"amalgam.dev/pkg/amalgam/internal/adapter"
	m "amalgam.dev/pkg/amalgam/internal/model"
)

// writeTree creates every file of tree under root. Keys use forward slashes.
func writeTree(t *testing.T, root string, tree map[string]string) {
	t.Helper()

	for name, content := range tree {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}

		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

func newLocalFS() adapter.SourceFSAdapter {
	return adapter.NewLocalSourceFSAdapter()
}

// wrapped renders body between the boundary markers of path. body is raw
// text and must end with a newline when not empty.
func wrapped(path m.Path, body string) string {
	return markerRule + "\n//-------begin of file: " + string(path) + "\n" + markerRule + "\n" +
		body +
		markerRule + "\n//-------end of file: " + string(path) + "\n" + markerRule + "\n"
}

func paths(files []m.File) []m.Path {
	out := make([]m.Path, 0, len(files))
	for _, file := range files {
		out = append(out, file.Path)
	}

	return out
}
