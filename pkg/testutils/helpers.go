package testutils

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// CreateTestFiles creates empty-ish files named names in dir
func CreateTestFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	files := make(map[string]string, len(names))
	for _, name := range names {
		files[name] = "content of " + name
	}
	CreateTestFilesWithContent(t, dir, files)
}

// CreateTestFilesWithDefault creates one file for each default preset
func CreateTestFilesWithDefault(t *testing.T, dir string) {
	t.Helper()
	CreateTestFiles(t, dir, "report.docx", "paper.pdf", "notes.txt", "budget.xlsx")
}

// FileNames returns the sorted names of the regular files directly in dir
func FileNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := []string{}
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// DirNames returns the sorted names of the directories directly in dir
func DirNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}
