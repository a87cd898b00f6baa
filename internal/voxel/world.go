package voxel

import (
	"VoxelForge/internal/vec"
)

// World owns every chunk in a fixed rectangular extent. Chunks are
// allocated once at construction and live until the world is dropped;
// edits mutate them in place. The extent is in chunks, so a 32x4x32
// world spans 512x64x512 voxels.
//
// World is not safe for concurrent mutation. Readers may run in
// parallel (the mesher does) as long as no writer touches the world
// during the read pass.
type World struct {
	size   vec.Vec3 // extent in chunks
	chunks []*Chunk // dense, indexed by chunkIndex
}

// NewWorld creates a world of sizeChunks extent with every chunk slot
// filled by an all-Air, dirty chunk.
func NewWorld(sizeChunks vec.Vec3) *World {
	w := &World{
		size:   sizeChunks,
		chunks: make([]*Chunk, sizeChunks.X*sizeChunks.Y*sizeChunks.Z),
	}
	for _, pos := range w.AllChunkPositions() {
		i, _ := w.chunkIndex(pos)
		w.chunks[i] = NewChunk(pos)
	}
	return w
}

// Size returns the world extent in chunks.
func (w *World) Size() vec.Vec3 {
	return w.size
}

// Chunk returns the chunk at a chunk coordinate. The second result is
// false when the coordinate lies outside the configured extent.
func (w *World) Chunk(c vec.Vec3) (*Chunk, bool) {
	i, ok := w.chunkIndex(c)
	if !ok {
		return nil, false
	}
	return w.chunks[i], true
}

// GetVoxel reads the voxel at a world position. The second result is
// false when the position is outside the world; callers must not treat
// that as Air.
func (w *World) GetVoxel(p vec.Vec3) (Type, bool) {
	chunk, ok := w.Chunk(WorldToChunk(p))
	if !ok {
		return Air, false
	}
	return chunk.Get(WorldToLocal(p)), true
}

// SetVoxel writes the voxel at a world position. Outside the extent it
// is a no-op. The owning chunk is marked dirty only when the value
// actually changes, and a change on a chunk face also dirties the
// neighbor chunk sharing that face, since its visible geometry depends
// on this voxel.
func (w *World) SetVoxel(p vec.Vec3, t Type) {
	chunkPos := WorldToChunk(p)
	chunk, ok := w.Chunk(chunkPos)
	if !ok {
		return
	}

	local := WorldToLocal(p)
	if chunk.Get(local) == t {
		return
	}
	chunk.Set(local, t)

	w.markNeighborDirty(local.X, chunkPos, vec.Vec3{X: 1})
	w.markNeighborDirty(local.Y, chunkPos, vec.Vec3{Y: 1})
	w.markNeighborDirty(local.Z, chunkPos, vec.Vec3{Z: 1})
}

// markNeighborDirty dirties the chunk on the far side of a shared face
// when the edited voxel sits on that face.
func (w *World) markNeighborDirty(axisLocal int, chunkPos, axis vec.Vec3) {
	var neighborPos vec.Vec3
	switch axisLocal {
	case 0:
		neighborPos = chunkPos.Sub(axis)
	case ChunkSize - 1:
		neighborPos = chunkPos.Add(axis)
	default:
		return
	}
	if neighbor, ok := w.Chunk(neighborPos); ok {
		neighbor.MarkDirty()
	}
}

// DirtyChunks returns a snapshot of the chunk coordinates currently
// flagged dirty. Edits made after the call are not reflected.
func (w *World) DirtyChunks() []vec.Vec3 {
	var dirty []vec.Vec3
	for _, chunk := range w.chunks {
		if chunk.IsDirty() {
			dirty = append(dirty, chunk.Coords())
		}
	}
	return dirty
}

// AllChunkPositions returns every chunk coordinate in the extent, x
// varying fastest, then y, then z. The codec relies on this order.
func (w *World) AllChunkPositions() []vec.Vec3 {
	positions := make([]vec.Vec3, 0, len(w.chunks))
	for z := 0; z < w.size.Z; z++ {
		for y := 0; y < w.size.Y; y++ {
			for x := 0; x < w.size.X; x++ {
				positions = append(positions, vec.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return positions
}

func (w *World) chunkIndex(c vec.Vec3) (int, bool) {
	if c.X < 0 || c.X >= w.size.X ||
		c.Y < 0 || c.Y >= w.size.Y ||
		c.Z < 0 || c.Z >= w.size.Z {
		return 0, false
	}
	return c.X + c.Y*w.size.X + c.Z*w.size.X*w.size.Y, true
}
