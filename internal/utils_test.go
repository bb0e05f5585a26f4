package internal

import (
	"strings"
	"testing"
)

func TestGenerateRunID(t *testing.T) {
	id := GenerateRunID("Hello World")

	parts := strings.Split(id, "_")
	if len(parts) != 2 {
		t.Fatalf("Expected format epochMillis_hash, got %s", id)
	}
	if len(parts[1]) != 8 {
		t.Errorf("Expected 8 char hash, got %q", parts[1])
	}

	// Same title hashes the same
	other := GenerateRunID("Hello World")
	if strings.Split(other, "_")[1] != parts[1] {
		t.Errorf("Expected stable hash for identical titles")
	}
}

func TestSnippet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdef", 3, "abc..."},
		{"multibyte", "مرحبا بالعالم", 5, "مرحبا..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Snippet(tt.in, tt.n); got != tt.want {
				t.Errorf("Snippet(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
