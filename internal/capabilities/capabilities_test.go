package capabilities

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHas_DeclaredOverrides(t *testing.T) {
	table := New(map[string]bool{"image-codec": true, "exif": false})

	assert.True(t, table.Has("image-codec"))
	assert.False(t, table.Has("exif"))
}

func TestHas_UnknownCapability(t *testing.T) {
	table := New(nil)
	assert.False(t, table.Has("quantum-entangler"))
}

func TestHas_PathLookup(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "exiftool")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\n"), 0o755))
	t.Setenv("PATH", dir)

	table := New(nil)
	assert.True(t, table.Has("exif"))
	assert.False(t, table.Has("image-codec"))
}
