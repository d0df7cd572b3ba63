package testutils

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/frubino/gff-utils/internal/fileio"
	"github.com/stretchr/testify/require"
)

// WriteFile creates name with content in a temporary directory and returns
// its path. A ".gz" name is written gzip compressed.
// It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	w, err := fileio.Create(path)
	require.NoError(t, err, "Failed to create %s", path)
	_, err = io.WriteString(w, content)
	require.NoError(t, err, "Failed to write %s", path)
	require.NoError(t, w.Close(), "Failed to close %s", path)

	return path
}

// ReadFile returns the content of path, decompressing ".gz" files.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	r, err := fileio.Open(path)
	require.NoError(t, err, "Failed to open %s", path)
	defer func() { _ = r.Close() }()

	data, err := io.ReadAll(r)
	require.NoError(t, err, "Failed to read %s", path)
	return string(data)
}
