package input

import (
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/bulktrans/internal/testutil"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Entry
	}{
		{
			name:    "title only",
			content: "Hello World\n",
			want:    Entry{Title: "Hello World"},
		},
		{
			name:    "title and description",
			content: "Hello World\nFirst line\nSecond line\n",
			want:    Entry{Title: "Hello World", Description: "First line\nSecond line"},
		},
		{
			name:    "blank lines around",
			content: "\n\n  My Video  \n\n\nDescription\n\nwith a gap\n\n",
			want:    Entry{Title: "My Video", Description: "Description\n\nwith a gap"},
		},
		{
			name:    "windows line endings",
			content: "Titel\r\nBeschreibung\r\n",
			want:    Entry{Title: "Titel", Description: "Beschreibung"},
		},
		{
			name:    "empty",
			content: "\n \n",
			want:    Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.content))
			if err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Read() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video.txt")
	testutil.CreateTestFile(t, path, []byte("こんにちは世界\n説明\n"))

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got.Title != "こんにちは世界" || got.Description != "説明" {
		t.Errorf("Unexpected entry %+v", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}
