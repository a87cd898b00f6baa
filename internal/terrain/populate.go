package terrain

import (
	"runtime"
	"time"

	"VoxelForge/internal/logger"
	"VoxelForge/internal/voxel"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
)

// Populate fills every chunk of the world from the generator, one pool
// task per chunk. Chunks are disjoint so the tasks share nothing; the
// result is identical no matter how the pool schedules them. All chunks
// are left dirty for the first mesh pass. workers <= 0 means one per CPU.
func Populate(w *voxel.World, g *Generator, workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	pool := pond.NewPool(workers)
	group := pool.NewGroup()

	for _, pos := range w.AllChunkPositions() {
		chunk, ok := w.Chunk(pos)
		if !ok {
			continue
		}
		group.Submit(func() {
			g.FillChunk(chunk)
		})
	}

	group.Wait()
	pool.StopAndWait()

	size := w.Size()
	logger.Log.Info("World populated",
		zap.Int("chunks", size.X*size.Y*size.Z),
		zap.Int("workers", workers),
		zap.Duration("elapsed", time.Since(start)))
}
