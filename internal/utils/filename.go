package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	// Whitespace characters to normalize
	whitespaceChars = regexp.MustCompile(`[\r\n\t]`)
	// Multiple spaces to collapse
	multipleSpaces = regexp.MustCompile(`\s+`)
)

// SanitizeFilename removes characters that are invalid in file names and
// normalizes whitespace.
func SanitizeFilename(filename string) string {
	filename = invalidFilenameChars.ReplaceAllString(filename, "")
	filename = whitespaceChars.ReplaceAllString(filename, " ")
	filename = multipleSpaces.ReplaceAllString(filename, " ")
	filename = strings.TrimSpace(filename)

	// Limit length (most filesystems support 255, but leave room for extension)
	if len(filename) > 200 {
		filename = strings.TrimSpace(filename[:200])
	}

	if filename == "" {
		filename = "export"
	}

	return filename
}

// ResolveOutputPath picks the file an export is written to. An empty output
// means defaultPath. An existing directory gets the base name of defaultPath
// appended. Anything else is used as a file path; its parent directory is
// created if needed.
func ResolveOutputPath(output, defaultPath string) (string, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		output = defaultPath
	}

	if info, err := os.Stat(output); err == nil && info.IsDir() {
		output = filepath.Join(output, SanitizeFilename(filepath.Base(defaultPath)))
	}

	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return output, nil
}
