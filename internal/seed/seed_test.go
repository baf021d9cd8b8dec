package seed

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"foldersort/internal/errors"
	"foldersort/internal/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesDefaults(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer

	res := Files(dir, nil, log.NewLogger(log.WithOutput(&buf)))

	assert.Equal(t, DefaultFiles, res.Created)
	assert.Empty(t, res.Existing)
	assert.Empty(t, res.Failed)
	for _, name := range DefaultFiles {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Contains(t, string(content), name)
	}
	assert.Contains(t, buf.String(), "Created sample file")
}

func TestFilesKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("mine"), 0644))

	res := Files(dir, []string{"keep.txt", "new.pdf"}, log.NewLogger(log.WithOutput(&bytes.Buffer{})))

	assert.Equal(t, []string{"new.pdf"}, res.Created)
	assert.Equal(t, []string{"keep.txt"}, res.Existing)
	content, err := os.ReadFile(filepath.Join(dir, "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "mine", string(content))
}

func TestFilesRejectsPaths(t *testing.T) {
	dir := t.TempDir()

	res := Files(dir, []string{filepath.Join("sub", "x.txt"), "..", "ok.txt"}, log.NewLogger(log.WithOutput(&bytes.Buffer{})))

	assert.Equal(t, []string{"ok.txt"}, res.Created)
	require.Len(t, res.Failed, 2)
	for _, err := range res.Failed {
		assert.True(t, errors.IsInvalidPath(err))
	}
}
