package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
	"unicode/utf8"
)

// GenerateRunID creates an ID for a translation run based on timestamp and title.
// Format: epochMillis_md5(title)[:8]
func GenerateRunID(title string) string {
	epochMillis := time.Now().UnixNano() / 1000000

	hash := md5.Sum([]byte(title))
	hashStr := hex.EncodeToString(hash[:])[:8]

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// Snippet shortens s to at most n runes for log output, appending "..." when cut.
func Snippet(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
