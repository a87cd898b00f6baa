package voxel

import (
	"testing"

	"VoxelForge/internal/vec"
)

func clearAll(w *World) {
	for _, pos := range w.AllChunkPositions() {
		chunk, _ := w.Chunk(pos)
		chunk.ClearDirty()
	}
}

func TestNewWorldCreatesAllChunks(t *testing.T) {
	w := NewWorld(vec.New(2, 3, 4))

	positions := w.AllChunkPositions()
	if len(positions) != 24 {
		t.Fatalf("Expected 24 chunk positions, got %d", len(positions))
	}
	for _, pos := range positions {
		chunk, ok := w.Chunk(pos)
		if !ok || chunk == nil {
			t.Fatalf("Missing chunk at %v", pos)
		}
		if chunk.Coords() != pos {
			t.Errorf("Chunk at %v reports coords %v", pos, chunk.Coords())
		}
		if !chunk.IsDirty() {
			t.Errorf("Chunk at %v should start dirty", pos)
		}
	}
}

func TestChunkLookupMiss(t *testing.T) {
	w := NewWorld(vec.New(2, 2, 2))

	for _, pos := range []vec.Vec3{
		vec.New(-1, 0, 0), vec.New(2, 0, 0),
		vec.New(0, -1, 0), vec.New(0, 2, 0),
		vec.New(0, 0, -1), vec.New(0, 0, 2),
	} {
		if _, ok := w.Chunk(pos); ok {
			t.Errorf("Expected lookup miss for chunk %v", pos)
		}
	}
}

func TestGetVoxelOutsideWorld(t *testing.T) {
	w := NewWorld(vec.New(1, 1, 1))

	if _, ok := w.GetVoxel(vec.New(-1, 0, 0)); ok {
		t.Error("Expected miss for negative world position")
	}
	if _, ok := w.GetVoxel(vec.New(16, 0, 0)); ok {
		t.Error("Expected miss past the world edge")
	}
	if got, ok := w.GetVoxel(vec.New(0, 0, 0)); !ok || got != Air {
		t.Errorf("Expected Air inside the world, got %v (ok=%v)", got, ok)
	}
}

func TestSetVoxelDedup(t *testing.T) {
	w := NewWorld(vec.New(1, 1, 1))
	clearAll(w)

	w.SetVoxel(vec.New(5, 5, 5), Air)
	if len(w.DirtyChunks()) != 0 {
		t.Error("Setting a voxel to its current value should not dirty any chunk")
	}

	w.SetVoxel(vec.New(5, 5, 5), Rock)
	if len(w.DirtyChunks()) != 1 {
		t.Error("Changing a voxel should dirty its chunk")
	}
	if got, _ := w.GetVoxel(vec.New(5, 5, 5)); got != Rock {
		t.Errorf("Expected Rock, got %v", got)
	}
}

func TestSetVoxelOutsideWorldIsNoop(t *testing.T) {
	w := NewWorld(vec.New(1, 1, 1))
	clearAll(w)

	w.SetVoxel(vec.New(100, 0, 0), Rock)
	if len(w.DirtyChunks()) != 0 {
		t.Error("Out-of-world write should not dirty anything")
	}
}

func TestBoundaryPropagation(t *testing.T) {
	w := NewWorld(vec.New(2, 2, 2))
	clearAll(w)

	// Local x == 0 in chunk (1,0,0): both it and chunk (0,0,0) go dirty.
	w.SetVoxel(vec.New(16, 8, 8), Rock)

	dirty := make(map[vec.Vec3]bool)
	for _, pos := range w.DirtyChunks() {
		dirty[pos] = true
	}
	if len(dirty) != 2 {
		t.Fatalf("Expected 2 dirty chunks, got %d", len(dirty))
	}
	if !dirty[vec.New(1, 0, 0)] || !dirty[vec.New(0, 0, 0)] {
		t.Errorf("Expected chunks (1,0,0) and (0,0,0) dirty, got %v", w.DirtyChunks())
	}
}

func TestBoundaryPropagationHighEdge(t *testing.T) {
	w := NewWorld(vec.New(2, 1, 1))
	clearAll(w)

	// Local x == 15 in chunk (0,0,0): neighbor (1,0,0) goes dirty too.
	w.SetVoxel(vec.New(15, 5, 5), Rock)

	dirty := make(map[vec.Vec3]bool)
	for _, pos := range w.DirtyChunks() {
		dirty[pos] = true
	}
	if !dirty[vec.New(0, 0, 0)] || !dirty[vec.New(1, 0, 0)] {
		t.Errorf("Expected both chunks dirty, got %v", w.DirtyChunks())
	}
}

func TestNonBoundaryMarksOnlyOwnChunk(t *testing.T) {
	w := NewWorld(vec.New(2, 2, 2))
	clearAll(w)

	w.SetVoxel(vec.New(8, 8, 8), Rock)

	dirty := w.DirtyChunks()
	if len(dirty) != 1 || dirty[0] != vec.New(0, 0, 0) {
		t.Errorf("Expected only chunk (0,0,0) dirty, got %v", dirty)
	}
}

func TestCornerVoxelDirtiesThreeNeighbors(t *testing.T) {
	w := NewWorld(vec.New(2, 2, 2))
	clearAll(w)

	// World (15,15,15) is local (15,15,15) of chunk (0,0,0): the three
	// face-adjacent neighbor chunks all share visible geometry with it.
	w.SetVoxel(vec.New(15, 15, 15), Rock)

	dirty := make(map[vec.Vec3]bool)
	for _, pos := range w.DirtyChunks() {
		dirty[pos] = true
	}
	expected := []vec.Vec3{
		vec.New(0, 0, 0), vec.New(1, 0, 0), vec.New(0, 1, 0), vec.New(0, 0, 1),
	}
	if len(dirty) != len(expected) {
		t.Fatalf("Expected %d dirty chunks, got %d: %v", len(expected), len(dirty), w.DirtyChunks())
	}
	for _, pos := range expected {
		if !dirty[pos] {
			t.Errorf("Expected chunk %v dirty", pos)
		}
	}
}

func TestDirtyChunksIsSnapshot(t *testing.T) {
	w := NewWorld(vec.New(2, 1, 1))
	clearAll(w)

	w.SetVoxel(vec.New(1, 1, 1), Rock)
	snapshot := w.DirtyChunks()

	// A later edit must not grow the already-taken snapshot.
	w.SetVoxel(vec.New(17, 1, 1), Rock)
	if len(snapshot) != 1 {
		t.Errorf("Snapshot changed after a later edit: %v", snapshot)
	}
}

func TestAllChunkPositionsOrder(t *testing.T) {
	w := NewWorld(vec.New(2, 2, 1))

	expected := []vec.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0},
	}
	got := w.AllChunkPositions()
	if len(got) != len(expected) {
		t.Fatalf("Expected %d positions, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Position %d: expected %v, got %v", i, expected[i], got[i])
		}
	}
}
