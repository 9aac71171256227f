package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// WriteCatalog creates a scripts directory under t.TempDir. files maps a
// path relative to the root ("db/backup.sh") to its contents. Scripts are
// written executable.
func WriteCatalog(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	paths := make([]string, 0, len(files))
	for rel := range files {
		paths = append(paths, rel)
	}
	sort.Strings(paths)
	for _, rel := range paths {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", filepath.Dir(full), err)
		}
		mode := os.FileMode(0o644)
		if filepath.Ext(full) == ".sh" {
			mode = 0o755
		}
		if err := os.WriteFile(full, []byte(files[rel]), mode); err != nil {
			t.Fatalf("failed to write %s: %v", full, err)
		}
	}
	return root
}

// Script returns a minimal shell script body with a leading comment.
func Script(comment string) string {
	if comment == "" {
		return "#!/usr/bin/env bash\nexit 0\n"
	}
	return "#!/usr/bin/env bash\n# " + comment + "\nexit 0\n"
}
