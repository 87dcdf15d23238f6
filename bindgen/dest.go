package bindgen

import (
	"fmt"
	"os"
	"path/filepath"
)

// Per-artifact write policies. Group files and the skip report are
// rewritten on every run; the anchor file is created once and then left
// alone.
type writePolicy int

const (
	alwaysOverwrite writePolicy = iota
	createIfAbsent
)

const (
	// anchorFile is the shared anchor referenced by every group file.
	anchorFile = "routebind.go"

	// skipReportFile lists the routes excluded from the last run.
	skipReportFile = "skipped.txt"
)

// prepareDest creates the destination directory if absent and clears it of
// previous output, keeping only the anchor file. Full clearing guarantees
// the directory never accumulates entries for routes that no longer exist.
func prepareDest(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create destination %s: %w", dir, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read destination %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == anchorFile {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return fmt.Errorf("clear destination: %w", err)
		}
	}
	return nil
}

// writeArtifact writes content to path under the given policy. Writes go
// through a temp file and rename so a crashed run never leaves a
// half-written artifact behind.
func writeArtifact(path string, content []byte, policy writePolicy) error {
	if policy == createIfAbsent {
		if _, err := os.Stat(path); err == nil {
			return nil
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat %s: %w", path, err)
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".routebind-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	_, writeErr := tmp.Write(content)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmpPath)
		if writeErr != nil {
			return fmt.Errorf("write %s: %w", path, writeErr)
		}
		return fmt.Errorf("write %s: %w", path, closeErr)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}
