// Package shared provides common utility functions used across multiple
// packages in the anonapi codebase.
package shared

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"regexp"
	"strings"
)

var windowsDrivePattern = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// IsAbsolutePath reports whether a path is absolute. Mapping files are
// shared between machines, so Windows drive and UNC paths count as
// absolute even when this process runs elsewhere.
func IsAbsolutePath(path string) bool {
	if filepath.IsAbs(path) {
		return true
	}
	if strings.HasPrefix(path, `\\`) {
		return true
	}
	return windowsDrivePattern.MatchString(path)
}

// RelativeTo returns path relative to root, or ok=false when path does
// not sit under root.
func RelativeTo(path string, root string) (string, bool) {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses,
// including the response body when one was returned.
func HTTPStatusError(status int, url string, body string) error {
	body = strings.TrimSpace(body)
	if body == "" {
		return fmt.Errorf("status=%d url=%s", status, url)
	}
	return fmt.Errorf("status=%d url=%s response=%s", status, url, body)
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}

// RandomToken returns n characters drawn from alphabet.
func RandomToken(n int, alphabet string) string {
	runes := []rune(alphabet)
	out := make([]rune, n)
	for i := range out {
		out[i] = runes[rand.Intn(len(runes))]
	}
	return string(out)
}
