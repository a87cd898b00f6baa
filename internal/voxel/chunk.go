package voxel

import (
	"VoxelForge/internal/vec"
)

const (
	// ChunkSize is the edge length of a chunk in voxels. The index
	// math and the persisted format both assume 16.
	ChunkSize = 16

	// ChunkVolume is the number of voxels in one chunk.
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// MeshHandle is a weak reference into the external renderer's resource
// table. The world never creates or destroys renderer resources; it only
// records which handle currently represents a chunk so a remesh can
// decide between replace and create.
type MeshHandle uint64

// NoMesh means the chunk currently has no renderable geometry.
const NoMesh MeshHandle = 0

// Chunk is a dense 16x16x16 block of voxels. It tracks whether its
// contents changed since the last mesh generation and which external
// mesh handle, if any, represents it.
type Chunk struct {
	coords vec.Vec3 // position in the chunk grid, not world units
	voxels [ChunkVolume]Type
	dirty  bool
	mesh   MeshHandle
}

// NewChunk returns an all-Air chunk at the given chunk coordinate.
// New chunks start dirty so the first mesh pass picks them up.
func NewChunk(coords vec.Vec3) *Chunk {
	return &Chunk{coords: coords, dirty: true}
}

// Coords returns the chunk's position in the chunk grid.
func (c *Chunk) Coords() vec.Vec3 {
	return c.coords
}

// Get returns the voxel at a local coordinate, each axis in [0, ChunkSize).
func (c *Chunk) Get(local vec.Vec3) Type {
	return c.voxels[voxelIndex(local.X, local.Y, local.Z)]
}

// Set writes a voxel at a local coordinate. Writing the value already
// present leaves the dirty flag untouched.
func (c *Chunk) Set(local vec.Vec3, t Type) {
	i := voxelIndex(local.X, local.Y, local.Z)
	if c.voxels[i] != t {
		c.voxels[i] = t
		c.dirty = true
	}
}

func (c *Chunk) IsDirty() bool {
	return c.dirty
}

func (c *Chunk) MarkDirty() {
	c.dirty = true
}

func (c *Chunk) ClearDirty() {
	c.dirty = false
}

// Mesh returns the external mesh handle, or NoMesh.
func (c *Chunk) Mesh() MeshHandle {
	return c.mesh
}

func (c *Chunk) SetMesh(h MeshHandle) {
	c.mesh = h
}

func (c *Chunk) ClearMesh() {
	c.mesh = NoMesh
}

// Voxels exposes the raw voxel array for serialization.
func (c *Chunk) Voxels() []Type {
	return c.voxels[:]
}

// voxelIndex flattens a local coordinate; a bijection [0,16)^3 <-> [0,4096).
func voxelIndex(x, y, z int) int {
	return x + y*ChunkSize + z*ChunkSize*ChunkSize
}

// voxelCoords inverts voxelIndex.
func voxelCoords(i int) (x, y, z int) {
	x = i % ChunkSize
	y = (i / ChunkSize) % ChunkSize
	z = i / (ChunkSize * ChunkSize)
	return
}
