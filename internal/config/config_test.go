package config

import (
	"os"
	"path/filepath"
	"testing"

	"VoxelForge/internal/vec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, [3]int{32, 4, 32}, cfg.World.SizeChunks)
	assert.Equal(t, 16, cfg.World.ChunkSize)
	assert.Equal(t, float32(1.0), cfg.World.VoxelSize)
	assert.False(t, cfg.World.GreedyMeshing)
	assert.Equal(t, int32(0), cfg.World.Seed)
	require.NoError(t, cfg.Validate())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
world:
  size_chunks: [8, 2, 8]
  seed: 1234
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, vec.New(8, 2, 8), cfg.WorldExtent())
	assert.Equal(t, int32(1234), cfg.World.Seed)
	// Unset fields keep their defaults.
	assert.Equal(t, 16, cfg.World.ChunkSize)
	assert.Equal(t, float32(1.0), cfg.World.VoxelSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "world: [not, a, mapping")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.World.SizeChunks = [3]int{0, 4, 32}
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.World.ChunkSize = 32
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.World.VoxelSize = 0
	assert.Error(t, cfg.Validate())
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := writeConfig(t, `
world:
  size_chunks: [-1, 4, 32]
`)
	_, err := Load(path)
	require.Error(t, err)
}
