// Package codec persists voxel worlds. The in-memory WorldData form
// mirrors what goes on the wire: the extent plus every chunk's voxel
// array in world traversal order. Dirty flags and mesh handles are
// derived state and are never persisted; a loaded world comes back all
// dirty so the next mesh pass rebuilds everything.
package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"VoxelForge/internal/vec"
	"VoxelForge/internal/voxel"

	"github.com/klauspost/compress/zstd"
)

const (
	worldMagic   = uint32(0x56585744) // "VXWD"
	worldVersion = uint32(1)

	// maxExtent caps each axis of a decoded extent so corrupt input
	// cannot trigger absurd allocations.
	maxExtent = 1024
)

// WorldData is the serializable form of a world. Chunks are ordered
// exactly as World.AllChunkPositions.
type WorldData struct {
	Size   vec.Vec3
	Chunks [][]voxel.Type
}

// Save flattens a world into WorldData.
func Save(w *voxel.World) *WorldData {
	positions := w.AllChunkPositions()
	data := &WorldData{
		Size:   w.Size(),
		Chunks: make([][]voxel.Type, 0, len(positions)),
	}

	for _, pos := range positions {
		chunk, _ := w.Chunk(pos)
		voxels := make([]voxel.Type, voxel.ChunkVolume)
		copy(voxels, chunk.Voxels())
		data.Chunks = append(data.Chunks, voxels)
	}

	return data
}

// Load reconstructs a world from WorldData. Every chunk comes back
// dirty; mesh handles are not part of the persisted state.
func Load(data *WorldData) (*voxel.World, error) {
	if err := validateSize(data.Size); err != nil {
		return nil, err
	}

	w := voxel.NewWorld(data.Size)
	positions := w.AllChunkPositions()
	if len(data.Chunks) != len(positions) {
		return nil, fmt.Errorf("world data has %d chunks, extent %v requires %d",
			len(data.Chunks), data.Size, len(positions))
	}

	for i, pos := range positions {
		if len(data.Chunks[i]) != voxel.ChunkVolume {
			return nil, fmt.Errorf("chunk %v has %d voxels, want %d",
				pos, len(data.Chunks[i]), voxel.ChunkVolume)
		}
		chunk, _ := w.Chunk(pos)
		copy(chunk.Voxels(), data.Chunks[i])
		chunk.MarkDirty()
	}

	return w, nil
}

// Encode writes the world as one compressed binary blob: a magic and
// version header, the extent, then each chunk's raw voxel bytes in
// traversal order, all inside a zstd stream.
func Encode(out io.Writer, w *voxel.World) error {
	zw, err := zstd.NewWriter(out)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}

	if err := binary.Write(zw, binary.LittleEndian, worldMagic); err != nil {
		return err
	}
	if err := binary.Write(zw, binary.LittleEndian, worldVersion); err != nil {
		return err
	}

	size := w.Size()
	extent := [3]int32{int32(size.X), int32(size.Y), int32(size.Z)}
	if err := binary.Write(zw, binary.LittleEndian, extent); err != nil {
		return err
	}

	buf := make([]byte, voxel.ChunkVolume)
	for _, pos := range w.AllChunkPositions() {
		chunk, _ := w.Chunk(pos)
		for i, t := range chunk.Voxels() {
			buf[i] = byte(t)
		}
		if _, err := zw.Write(buf); err != nil {
			return fmt.Errorf("failed to write chunk %v: %w", pos, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish zstd stream: %w", err)
	}
	return nil
}

// Decode reads a world written by Encode. Malformed or truncated input
// fails with a descriptive error; deciding whether to fall back to
// regeneration is the caller's business.
func Decode(in io.Reader) (*voxel.World, error) {
	zr, err := zstd.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	var magic uint32
	if err := binary.Read(zr, binary.LittleEndian, &magic); err != nil {
		return nil, fmt.Errorf("failed to read world header: %w", err)
	}
	if magic != worldMagic {
		return nil, fmt.Errorf("invalid world file magic: %#x", magic)
	}

	var version uint32
	if err := binary.Read(zr, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("failed to read world version: %w", err)
	}
	if version != worldVersion {
		return nil, fmt.Errorf("unsupported world version: %d", version)
	}

	var extent [3]int32
	if err := binary.Read(zr, binary.LittleEndian, &extent); err != nil {
		return nil, fmt.Errorf("failed to read world extent: %w", err)
	}
	size := vec.Vec3{X: int(extent[0]), Y: int(extent[1]), Z: int(extent[2])}
	if err := validateSize(size); err != nil {
		return nil, err
	}

	w := voxel.NewWorld(size)
	buf := make([]byte, voxel.ChunkVolume)
	for _, pos := range w.AllChunkPositions() {
		if _, err := io.ReadFull(zr, buf); err != nil {
			return nil, fmt.Errorf("truncated world data at chunk %v: %w", pos, err)
		}
		chunk, _ := w.Chunk(pos)
		voxels := chunk.Voxels()
		for i, b := range buf {
			voxels[i] = voxel.Type(b)
		}
		chunk.MarkDirty()
	}

	return w, nil
}

func validateSize(size vec.Vec3) error {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return fmt.Errorf("invalid world extent %v: all axes must be positive", size)
	}
	if size.X > maxExtent || size.Y > maxExtent || size.Z > maxExtent {
		return fmt.Errorf("invalid world extent %v: axis limit is %d chunks", size, maxExtent)
	}
	return nil
}
