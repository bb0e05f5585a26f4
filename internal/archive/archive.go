package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"codeberg.org/snonux/bulktrans/internal/export"
)

// ArchiveExports moves the export files of dir into a timestamped
// directory below dir/archive. It returns the archive path and the number
// of files moved; when there is nothing to archive the path is empty and
// no directory is created.
func ArchiveExports(dir string) (string, int, error) {
	// Check if export directory exists
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", 0, fmt.Errorf("export directory does not exist: %s", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, export.FilePrefix+"*.csv"))
	if err != nil {
		return "", 0, fmt.Errorf("failed to list export files: %w", err)
	}
	if len(files) == 0 {
		return "", 0, nil
	}

	archiveDir := filepath.Join(dir, "archive")
	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("exports-%s", timestamp))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("exports-%s", timestamp))
	}

	if err := os.MkdirAll(archivePath, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create archive directory: %w", err)
	}

	moved := 0
	for _, file := range files {
		target := filepath.Join(archivePath, filepath.Base(file))
		if err := os.Rename(file, target); err != nil {
			return archivePath, moved, fmt.Errorf("failed to archive %s: %w", filepath.Base(file), err)
		}
		moved++
	}

	return archivePath, moved, nil
}
