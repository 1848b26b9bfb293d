package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesOriginalConstants(t *testing.T) {
	cfg := Default()
	assert.Equal(t, uint16(20), cfg.HeaderSize)
	assert.Equal(t, uint16(1), cfg.BorderSize)
	assert.Equal(t, 10, cfg.MaxWorkspaces)
	assert.Equal(t, uint32(0xFF0000), cfg.UnfocusedBorderColor)
	assert.Equal(t, uint32(0x00FF00), cfg.UnfocusedHeaderColor)
	assert.Equal(t, uint32(0x0000FF), cfg.FocusedBorderColor)
	assert.Equal(t, uint32(0x00FFFF), cfg.FocusedHeaderColor)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyPresentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`header_size = 30`+"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint16(30), cfg.HeaderSize)
	assert.Equal(t, uint16(1), cfg.BorderSize, "fields absent from the file keep their default")
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
