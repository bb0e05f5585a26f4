// Package export writes translation results to a timestamped CSV file.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/snonux/bulktrans/internal/lang"
	"codeberg.org/snonux/bulktrans/internal/pipeline"
)

// FilePrefix starts every export file name
const FilePrefix = "translated_"

// ExportError is returned when the export file cannot be written
type ExportError struct {
	Dir string
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("failed to export to %s: %v", e.Dir, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Exporter writes results as headerless (title, description) rows
type Exporter struct {
	now func() time.Time
}

// NewExporter creates an exporter using the local wall clock
func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

// FileName returns the export file name for t, translated_HHMM_DDMMYYYY.csv
func FileName(t time.Time) string {
	return FilePrefix + t.Format("1504_02012006") + ".csv"
}

// Export writes one row per result whose language differs from
// inputLanguage into a new file in dir and returns its path. A blank dir
// disables the export: nothing is written and the path is empty. A file
// from the same minute is overwritten.
func (e *Exporter) Export(results []pipeline.Result, dir, inputLanguage string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", &ExportError{Dir: dir, Err: err}
	}
	if !info.IsDir() {
		return "", &ExportError{Dir: dir, Err: fmt.Errorf("not a directory")}
	}

	path := filepath.Join(dir, FileName(e.now()))
	file, err := os.Create(path)
	if err != nil {
		return "", &ExportError{Dir: dir, Err: err}
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	inputLanguage = lang.Normalize(inputLanguage)

	for _, r := range results {
		if lang.Normalize(r.Language) == inputLanguage {
			continue
		}
		if err := writer.Write([]string{r.Title, r.Description}); err != nil {
			return "", &ExportError{Dir: dir, Err: fmt.Errorf("failed to write row: %w", err)}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", &ExportError{Dir: dir, Err: err}
	}
	if err := file.Close(); err != nil {
		return "", &ExportError{Dir: dir, Err: err}
	}

	return path, nil
}
