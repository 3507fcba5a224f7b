package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageForFile(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"index.php", "php"},
		{"page.HTM", "html"},
		{"page.html", "html"},
		{"app.js", "javascript"},
		{"tool.py", "python"},
		{"Main.java", "java"},
		{"main.c", "c"},
		{"main.cpp", "cpp"},
		{"Program.cs", "csharp"},
		{"main.go", Unknown},
		{"Makefile", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageForFile(tt.name))
		})
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{""}, SplitLines(""))
	assert.Equal(t, []string{"a", "b", ""}, SplitLines("a\nb\n"))
	assert.Equal(t, []string{"a\r", "b"}, SplitLines("a\r\nb"))
}

func TestReadAllLimit(t *testing.T) {
	data, err := ReadAll(strings.NewReader("12345"), 5)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(data))

	_, err = ReadAll(strings.NewReader("123456"), 5)
	assert.True(t, errors.Is(err, ErrTooLarge))

	data, err = ReadAll(strings.NewReader(""), 0)
	require.NoError(t, err)
	assert.NotNil(t, data)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.c")
	require.NoError(t, os.WriteFile(path, []byte("strcpy(a, b);"), 0o644))

	data, err := ReadFile(path, 0)
	require.NoError(t, err)
	assert.Equal(t, "strcpy(a, b);", string(data))

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.c"), 0)
	assert.Error(t, err)
}
