package mesher

import (
	"runtime"

	"VoxelForge/internal/logger"
	"VoxelForge/internal/vec"
	"VoxelForge/internal/voxel"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Sink is the external renderer's mesh table. The world only holds the
// handles a sink returns; creation and destruction of the actual GPU
// resources happen behind this interface.
type Sink interface {
	Create(origin mgl32.Vec3, buf *Buffer) voxel.MeshHandle
	Replace(h voxel.MeshHandle, buf *Buffer)
	Release(h voxel.MeshHandle)
}

// RemeshDirty regenerates the mesh of every chunk currently dirty and
// pushes the results into the sink. The pass is readers-then-writer:
// the dirty set is snapshotted, all buffers are generated in parallel
// (meshing only reads the world), then handles and dirty flags are
// updated serially. The caller must not mutate the world while the
// pass runs. Returns the number of chunks remeshed.
func (m *Mesher) RemeshDirty(w *voxel.World, sink Sink, workers int) int {
	dirty := w.DirtyChunks()
	if len(dirty) == 0 {
		return 0
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	buffers := make([]*Buffer, len(dirty))

	pool := pond.NewPool(workers)
	group := pool.NewGroup()
	for i, pos := range dirty {
		i, pos := i, pos
		group.Submit(func() {
			if chunk, ok := w.Chunk(pos); ok {
				buffers[i] = m.Generate(chunk, w)
			}
		})
	}
	group.Wait()
	pool.StopAndWait()

	remeshed := 0
	for i, pos := range dirty {
		if buffers[i] == nil {
			continue
		}
		m.apply(w, sink, pos, buffers[i])
		remeshed++
	}

	logger.Log.Debug("Remesh pass complete",
		zap.Int("chunks", remeshed),
		zap.Int("workers", workers))
	return remeshed
}

// apply installs one generated buffer: empty buffers release the
// chunk's mesh, otherwise the existing handle is replaced in place or a
// new one is created at the chunk's render origin.
func (m *Mesher) apply(w *voxel.World, sink Sink, pos vec.Vec3, buf *Buffer) {
	chunk, ok := w.Chunk(pos)
	if !ok {
		return
	}
	chunk.ClearDirty()

	if buf.Empty() {
		if h := chunk.Mesh(); h != voxel.NoMesh {
			sink.Release(h)
			chunk.ClearMesh()
		}
		return
	}

	if h := chunk.Mesh(); h != voxel.NoMesh {
		sink.Replace(h, buf)
		return
	}
	chunk.SetMesh(sink.Create(voxel.Origin(pos, m.VoxelSize), buf))
}
