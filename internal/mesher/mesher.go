// Package mesher converts chunks into triangle meshes. Only faces that
// can actually be seen are emitted: a face is culled when the adjacent
// voxel is solid, whether that neighbor lives in the same chunk or
// across a chunk boundary.
package mesher

import (
	"VoxelForge/internal/vec"
	"VoxelForge/internal/voxel"

	"github.com/go-gl/mathgl/mgl32"
)

// Face is one of the six axis-aligned sides of a voxel.
type Face uint8

const (
	FaceTop Face = iota
	FaceBottom
	FaceNorth // -z
	FaceSouth // +z
	FaceEast  // +x
	FaceWest  // -x
)

var faceDirs = [6]vec.Vec3{
	FaceTop:    {Y: 1},
	FaceBottom: {Y: -1},
	FaceNorth:  {Z: -1},
	FaceSouth:  {Z: 1},
	FaceEast:   {X: 1},
	FaceWest:   {X: -1},
}

var faceNormals = [6]mgl32.Vec3{
	FaceTop:    {0, 1, 0},
	FaceBottom: {0, -1, 0},
	FaceNorth:  {0, 0, -1},
	FaceSouth:  {0, 0, 1},
	FaceEast:   {1, 0, 0},
	FaceWest:   {-1, 0, 0},
}

// Buffer holds one chunk's mesh in chunk-local space. Positions are in
// render units; the caller places the mesh at the chunk's world origin.
type Buffer struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// Empty reports whether the buffer carries no geometry. An empty buffer
// is the valid result for a chunk with nothing visible, not an error.
func (b *Buffer) Empty() bool {
	return len(b.Indices) == 0
}

// Interleaved packs the buffer as position, UV, normal per vertex, the
// vertex layout the renderer uploads.
func (b *Buffer) Interleaved() []float32 {
	data := make([]float32, 0, len(b.Positions)*8)
	for i := range b.Positions {
		p := b.Positions[i]
		uv := b.UVs[i]
		n := b.Normals[i]
		data = append(data, p.X(), p.Y(), p.Z(), uv.X(), uv.Y(), n.X(), n.Y(), n.Z())
	}
	return data
}

// Mesher turns chunks into buffers. VoxelSize scales one block into
// render units.
type Mesher struct {
	VoxelSize float32

	// Greedy is reserved; meshing is per-face culling only and the
	// flag currently has no effect.
	Greedy bool
}

func New(voxelSize float32) *Mesher {
	return &Mesher{VoxelSize: voxelSize}
}

// Generate builds the mesh for one chunk, consulting the world for
// neighbors across chunk boundaries. Positions outside the configured
// world always count as visible, so the boundary faces at the world's
// edge are rendered.
func (m *Mesher) Generate(chunk *voxel.Chunk, w *voxel.World) *Buffer {
	buf := &Buffer{}

	for x := 0; x < voxel.ChunkSize; x++ {
		for y := 0; y < voxel.ChunkSize; y++ {
			for z := 0; z < voxel.ChunkSize; z++ {
				local := vec.Vec3{X: x, Y: y, Z: z}
				t := chunk.Get(local)
				if !t.Solid() {
					continue
				}

				for face := FaceTop; face <= FaceWest; face++ {
					if m.faceVisible(chunk, w, local, face) {
						m.addFace(buf, local, face, t)
					}
				}
			}
		}
	}

	return buf
}

// faceVisible checks the cell the face looks at. Inside the chunk the
// lookup stays local; otherwise the neighbor is resolved through the
// world at the face's world position.
func (m *Mesher) faceVisible(chunk *voxel.Chunk, w *voxel.World, local vec.Vec3, face Face) bool {
	neighbor := local.Add(faceDirs[face])

	if neighbor.X >= 0 && neighbor.X < voxel.ChunkSize &&
		neighbor.Y >= 0 && neighbor.Y < voxel.ChunkSize &&
		neighbor.Z >= 0 && neighbor.Z < voxel.ChunkSize {
		return !chunk.Get(neighbor).Solid()
	}

	worldPos := voxel.ChunkToWorld(chunk.Coords()).Add(neighbor)
	if t, ok := w.GetVoxel(worldPos); ok {
		return !t.Solid()
	}

	// Outside the configured world: render the edge face.
	return true
}

// addFace appends one quad: four vertices in the face's fixed order, a
// constant outward normal, atlas UVs, and two counter-clockwise
// triangles.
func (m *Mesher) addFace(buf *Buffer, local vec.Vec3, face Face, t voxel.Type) {
	x := float32(local.X) * m.VoxelSize
	y := float32(local.Y) * m.VoxelSize
	z := float32(local.Z) * m.VoxelSize
	s := m.VoxelSize

	var corners [4]mgl32.Vec3
	switch face {
	case FaceTop:
		corners = [4]mgl32.Vec3{{x, y + s, z + s}, {x + s, y + s, z + s}, {x + s, y + s, z}, {x, y + s, z}}
	case FaceBottom:
		corners = [4]mgl32.Vec3{{x, y, z}, {x + s, y, z}, {x + s, y, z + s}, {x, y, z + s}}
	case FaceNorth:
		corners = [4]mgl32.Vec3{{x + s, y, z}, {x, y, z}, {x, y + s, z}, {x + s, y + s, z}}
	case FaceSouth:
		corners = [4]mgl32.Vec3{{x, y, z + s}, {x + s, y, z + s}, {x + s, y + s, z + s}, {x, y + s, z + s}}
	case FaceEast:
		corners = [4]mgl32.Vec3{{x + s, y, z + s}, {x + s, y, z}, {x + s, y + s, z}, {x + s, y + s, z + s}}
	case FaceWest:
		corners = [4]mgl32.Vec3{{x, y, z}, {x, y, z + s}, {x, y + s, z + s}, {x, y + s, z}}
	}

	base := uint32(len(buf.Positions))
	normal := faceNormals[face]

	for _, c := range corners {
		buf.Positions = append(buf.Positions, c)
		buf.Normals = append(buf.Normals, normal)
	}

	uMin, uMax, vMin, vMax := tileUV(t.AtlasIndex())
	buf.UVs = append(buf.UVs,
		mgl32.Vec2{uMin, vMax},
		mgl32.Vec2{uMax, vMax},
		mgl32.Vec2{uMax, vMin},
		mgl32.Vec2{uMin, vMin},
	)

	// Counter-clockwise winding as seen from the normal side.
	buf.Indices = append(buf.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}
