package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Unknown is the language id for files with no mapped extension.
const Unknown = "unknown"

// ErrTooLarge is returned when input exceeds the configured byte limit.
var ErrTooLarge = errors.New("source exceeds size limit")

var extensions = map[string]string{
	"php":  "php",
	"html": "html",
	"htm":  "html",
	"js":   "javascript",
	"py":   "python",
	"java": "java",
	"c":    "c",
	"cpp":  "cpp",
	"cs":   "csharp",
}

// LanguageForFile maps a file name to a language id by extension.
func LanguageForFile(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if lang, ok := extensions[strings.ToLower(ext)]; ok {
		return lang
	}
	return Unknown
}

// Known reports whether name has a mapped extension.
func Known(name string) bool {
	return LanguageForFile(name) != Unknown
}

// SplitLines splits text on "\n" only. An empty text yields one empty line.
func SplitLines(text string) []string {
	return strings.Split(text, "\n")
}

// ReadFile reads a source file, refusing anything over maxBytes
// (maxBytes <= 0 means unlimited).
func ReadFile(path string, maxBytes int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer f.Close()
	return ReadAll(f, maxBytes)
}

// ReadAll reads r up to maxBytes (maxBytes <= 0 means unlimited).
func ReadAll(r io.Reader, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read source: %w", err)
		}
		return nonNil(data), nil
	}
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTooLarge, maxBytes)
	}
	return nonNil(data), nil
}

// io.ReadAll returns nil for empty input; an empty file is still a source.
func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
