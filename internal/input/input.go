// Package input reads the title and description for headless runs.
package input

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Entry is one title with its description
type Entry struct {
	Title       string
	Description string
}

// Read parses r. The first non-blank line is the title, everything after
// it is the description with surrounding blank lines removed. Line breaks
// inside the description are kept.
func Read(r io.Reader) (Entry, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to read input: %w", err)
	}

	lines := splitLines(string(content))

	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i == len(lines) {
		return Entry{}, nil
	}

	entry := Entry{Title: strings.TrimSpace(lines[i])}
	rest := lines[i+1:]

	for len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
		rest = rest[1:]
	}
	for len(rest) > 0 && strings.TrimSpace(rest[len(rest)-1]) == "" {
		rest = rest[:len(rest)-1]
	}
	entry.Description = strings.Join(rest, "\n")

	return entry, nil
}

// ReadFile reads an entry from filename, "-" reads stdin
func ReadFile(filename string) (Entry, error) {
	if filename == "-" {
		return Read(os.Stdin)
	}

	f, err := os.Open(filename)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// splitLines splits s by newlines, dropping carriage returns
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.Split(s, "\n")
}
