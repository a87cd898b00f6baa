// Package config loads the world settings from YAML, falling back to
// the built-in defaults for anything unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"VoxelForge/internal/vec"
	"VoxelForge/internal/voxel"
)

// Config is the root configuration.
type Config struct {
	World WorldConfig `yaml:"world"`
}

// WorldConfig describes the world to build.
type WorldConfig struct {
	// SizeChunks is the world extent in chunks, x/y/z.
	SizeChunks [3]int `yaml:"size_chunks"`

	// ChunkSize is the chunk edge length in voxels. Fixed at 16 in
	// this design; any other value fails validation.
	ChunkSize int `yaml:"chunk_size"`

	// VoxelSize is the edge length of one block in render units.
	VoxelSize float32 `yaml:"voxel_size"`

	// GreedyMeshing is reserved; the mesher ignores it for now.
	GreedyMeshing bool `yaml:"greedy_meshing"`

	// Seed selects the generated world layout.
	Seed int32 `yaml:"seed"`
}

// Default returns the standard 32x4x32-chunk world.
func Default() Config {
	return Config{
		World: WorldConfig{
			SizeChunks:    [3]int{32, 4, 32},
			ChunkSize:     voxel.ChunkSize,
			VoxelSize:     1.0,
			GreedyMeshing: false,
			Seed:          0,
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the core cannot honor.
func (c Config) Validate() error {
	for i, n := range c.World.SizeChunks {
		if n <= 0 {
			return fmt.Errorf("world size_chunks[%d] must be positive, got %d", i, n)
		}
	}
	if c.World.ChunkSize != voxel.ChunkSize {
		return fmt.Errorf("chunk_size is fixed at %d, got %d", voxel.ChunkSize, c.World.ChunkSize)
	}
	if c.World.VoxelSize <= 0 {
		return fmt.Errorf("voxel_size must be positive, got %g", c.World.VoxelSize)
	}
	return nil
}

// WorldExtent returns the configured extent as a vector.
func (c Config) WorldExtent() vec.Vec3 {
	return vec.Vec3{
		X: c.World.SizeChunks[0],
		Y: c.World.SizeChunks[1],
		Z: c.World.SizeChunks[2],
	}
}
