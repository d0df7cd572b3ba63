package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gff-utils.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
format: gtf
table:
  comment_char: "//"
  skip_rows: "2"
fields:
  num_ann: 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "gtf", cfg.Format)
	assert.Equal(t, "//", cfg.Table.CommentChar)
	assert.Equal(t, 2, cfg.Table.SkipRows)
	assert.Equal(t, "uid", cfg.Table.Key, "unset keys keep their default")
	assert.Equal(t, 5, cfg.Fields.NumAnn)
}

func TestLoad_Env(t *testing.T) {
	path := writeConfig(t, "format: gtf\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gtf", cfg.Format)

	t.Setenv(EnvPath, filepath.Join(t.TempDir(), "missing.yaml"))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")

	_, err = Load(writeConfig(t, "unknown_key: 1\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "fields: [1, 2\n"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	cfg := Default()
	require.NoError(t, Parse([]byte(""), &cfg))
	assert.Equal(t, Default(), cfg)
}
