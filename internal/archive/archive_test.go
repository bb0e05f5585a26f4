package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/bulktrans/internal/testutil"
)

func TestArchiveExports(t *testing.T) {
	// The archive directory may already exist from an earlier run
	dir := testutil.CreateTestDirectory(t)

	exports := []string{"translated_0907_05032024.csv", "translated_2359_31122024.csv"}
	for _, name := range exports {
		testutil.CreateTestFile(t, filepath.Join(dir, name), []byte("Hallo,Welt\n"))
	}
	others := []string{"notes.csv", "translated_draft.txt"}
	for _, name := range others {
		testutil.CreateTestFile(t, filepath.Join(dir, name), []byte("keep"))
	}

	archivePath, moved, err := ArchiveExports(dir)
	if err != nil {
		t.Fatalf("ArchiveExports failed: %v", err)
	}
	if moved != len(exports) {
		t.Errorf("Expected %d files moved, got %d", len(exports), moved)
	}

	// Check archive path format
	if filepath.Dir(archivePath) != filepath.Join(dir, "archive") {
		t.Errorf("Archive not below %s: %s", filepath.Join(dir, "archive"), archivePath)
	}
	if !strings.HasPrefix(filepath.Base(archivePath), "exports-") {
		t.Errorf("Archive name has wrong prefix: %s", filepath.Base(archivePath))
	}

	for _, name := range exports {
		testutil.AssertFileNotExists(t, filepath.Join(dir, name))
		testutil.AssertFileContent(t, filepath.Join(archivePath, name), []byte("Hallo,Welt\n"))
	}
	for _, name := range others {
		testutil.AssertFileExists(t, filepath.Join(dir, name))
	}
}

func TestArchiveExports_NothingToArchive(t *testing.T) {
	dir := t.TempDir()

	archivePath, moved, err := ArchiveExports(dir)
	if err != nil {
		t.Fatalf("ArchiveExports failed: %v", err)
	}
	if archivePath != "" || moved != 0 {
		t.Errorf("Expected no archive, got %q with %d files", archivePath, moved)
	}
	if _, err := os.Stat(filepath.Join(dir, "archive")); !os.IsNotExist(err) {
		t.Error("Archive directory should not be created when nothing is archived")
	}
}

func TestArchiveExports_MissingDirectory(t *testing.T) {
	_, _, err := ArchiveExports(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Fatal("Expected error for missing directory")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Unexpected error: %v", err)
	}
}
