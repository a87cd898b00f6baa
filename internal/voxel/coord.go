package voxel

import (
	"VoxelForge/internal/vec"

	"github.com/go-gl/mathgl/mgl32"
)

// Coordinate spaces:
//   world - absolute voxel position, any sign
//   chunk - which chunk contains it (world / ChunkSize, floored)
//   local - offset inside that chunk, always in [0, ChunkSize)

// WorldToChunk returns the chunk coordinate containing world position p.
// Uses floor division so negative positions land in the right chunk.
func WorldToChunk(p vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: floorDiv(p.X, ChunkSize),
		Y: floorDiv(p.Y, ChunkSize),
		Z: floorDiv(p.Z, ChunkSize),
	}
}

// ChunkToWorld returns the world position of chunk c's origin corner.
func ChunkToWorld(c vec.Vec3) vec.Vec3 {
	return c.Scale(ChunkSize)
}

// WorldToLocal returns p's offset within its chunk, non-negative on
// every axis regardless of p's sign.
func WorldToLocal(p vec.Vec3) vec.Vec3 {
	return vec.Vec3{
		X: floorMod(p.X, ChunkSize),
		Y: floorMod(p.Y, ChunkSize),
		Z: floorMod(p.Z, ChunkSize),
	}
}

// Origin returns chunk c's corner in render units, voxelSize per block.
func Origin(c vec.Vec3, voxelSize float32) mgl32.Vec3 {
	w := ChunkToWorld(c)
	return mgl32.Vec3{
		float32(w.X) * voxelSize,
		float32(w.Y) * voxelSize,
		float32(w.Z) * voxelSize,
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return ((a % b) + b) % b
}
