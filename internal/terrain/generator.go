package terrain

import (
	"math"

	"VoxelForge/internal/vec"
	"VoxelForge/internal/voxel"
)

// Biome classifies a world column and drives the sub-surface material bands.
type Biome uint8

const (
	BiomeNormal Biome = iota
	BiomeSandy
	BiomeRocky
	BiomeClay
)

// Terrain height bounds in world units.
const (
	MinHeight = 1
	MaxHeight = 58
)

// Generator assigns a voxel type to every world position. It carries no
// mutable state; two generators with the same seed produce the same world.
type Generator struct {
	seed int32
}

func NewGenerator(seed int32) *Generator {
	return &Generator{seed: seed}
}

// TerrainHeight returns the surface height of the column at (x, z),
// always within [MinHeight, MaxHeight].
func (g *Generator) TerrainHeight(worldX, worldZ int) int {
	x := float64(worldX)
	z := float64(worldZ)

	// Rolling base terrain plus smaller hills on top.
	base := g.fbm(x*0.008, z*0.008, 4)*25.0 + 15.0
	hills := g.fbm(x*0.02, z*0.02, 3) * 12.0

	// Occasional peaks, gated by a sparse low-frequency mask.
	mountainMask := g.fbm(x*0.005, z*0.005, 2)
	mountains := 0.0
	if mountainMask > 0.6 {
		mountains = (mountainMask - 0.6) * 60.0
	}

	// Rivers carve where the banded noise crosses zero.
	riverNoise := math.Sin(g.fbm(x*0.015, z*0.015, 2) * 6.28)
	riverFactor := 0.0
	if math.Abs(riverNoise) < 0.15 {
		riverFactor = -8.0 * (1.0 - math.Abs(riverNoise)/0.15)
	}

	height := base + hills + mountains + riverFactor
	if height < MinHeight {
		height = MinHeight
	}
	if height > MaxHeight {
		height = MaxHeight
	}
	return int(height)
}

// BiomeAt classifies the column at (x, z). The checks are ordered:
// sandy wins below the low band, rocky and clay need the detail noise
// to agree, everything else is normal terrain.
func (g *Generator) BiomeAt(worldX, worldZ int) Biome {
	x := float64(worldX)
	z := float64(worldZ)

	biomeNoise := g.fbm(x*0.01, z*0.01, 2)
	detailNoise := g.fbm(x*0.05, z*0.05, 2)

	switch {
	case biomeNoise < 0.25:
		return BiomeSandy
	case biomeNoise > 0.75 && detailNoise > 0.5:
		return BiomeRocky
	case biomeNoise > 0.4 && biomeNoise < 0.5 && detailNoise > 0.6:
		return BiomeClay
	default:
		return BiomeNormal
	}
}

// isCave reports whether (x, y, z) falls inside the cave band. The
// caller must additionally keep caves strictly below height-3 so they
// never breach the surface crust.
func (g *Generator) isCave(worldX, worldY, worldZ int) bool {
	x := float64(worldX)
	y := float64(worldY)
	z := float64(worldZ)

	caveNoise := g.fbm(x*0.05+y*0.03, z*0.05+y*0.02, 3)
	caveThreshold := 0.65 + (y/64.0)*0.1 // rarer near the surface

	return caveNoise > caveThreshold && worldY > 2 && worldY < 45
}

// isStructureWall reports whether (x, y, z) is part of a buried ruin.
// Ruins repeat on a fixed 128-block grid: 24-block rooms with outer
// walls, inner corridor walls with doorway gaps, floor and ceiling
// planes, and pillars at corridor intersections. Purely positional, no
// noise involved.
func (g *Generator) isStructureWall(worldX, worldY, worldZ int) bool {
	const (
		spacing = 128
		size    = 24
	)

	dx := ((worldX % spacing) + spacing) % spacing
	dz := ((worldZ % spacing) + spacing) % spacing

	if dx >= size || dz >= size || worldY < 5 || worldY > 20 {
		return false
	}

	localX := dx
	localZ := dz
	localY := worldY - 5

	isOuterWall := localX == 0 || localX == size-1 ||
		localZ == 0 || localZ == size-1

	wallAtX := (localX%8 == 0 || localX%8 == 1) && localX > 0 && localX < size-1
	wallAtZ := (localZ%8 == 0 || localZ%8 == 1) && localZ > 0 && localZ < size-1

	doorwayX := (localZ >= 3 && localZ <= 5) || (localZ >= 11 && localZ <= 13) || (localZ >= 19 && localZ <= 21)
	doorwayZ := (localX >= 3 && localX <= 5) || (localX >= 11 && localX <= 13) || (localX >= 19 && localX <= 21)

	isInnerWall := (wallAtX && !doorwayX) || (wallAtZ && !doorwayZ)

	isFloor := localY == 0
	isCeiling := localY == 10

	isPillar := localX%8 <= 1 && localZ%8 <= 1 &&
		localX > 0 && localX < size-1 &&
		localZ > 0 && localZ < size-1

	return (isOuterWall || isInnerWall || isFloor || isCeiling || isPillar) && localY <= 10
}

// VoxelAt returns the voxel type at a world position. Structures are
// checked before caves before terrain; that evaluation order is part of
// the world layout and must not change.
func (g *Generator) VoxelAt(worldX, worldY, worldZ int) voxel.Type {
	height := g.TerrainHeight(worldX, worldZ)
	biome := g.BiomeAt(worldX, worldZ)
	return g.voxelInColumn(worldX, worldY, worldZ, height, biome)
}

// voxelInColumn is VoxelAt with the per-column height and biome hoisted
// out, so chunk fills only compute them once per column.
func (g *Generator) voxelInColumn(worldX, worldY, worldZ, height int, biome Biome) voxel.Type {
	if g.isStructureWall(worldX, worldY, worldZ) {
		return voxel.Rock
	}

	if g.isCave(worldX, worldY, worldZ) && worldY < height-3 {
		return voxel.Air
	}

	switch {
	case worldY > height:
		return voxel.Air
	case worldY == 0:
		return voxel.Bedrock
	case worldY <= 3:
		// Transition band: mostly bedrock with rock inclusions.
		if g.hash(int32(worldX), int32(worldZ+worldY*1000)) > 0.3 {
			return voxel.Bedrock
		}
		return voxel.Rock
	}

	depth := height - worldY

	switch biome {
	case BiomeSandy:
		switch {
		case depth <= 4:
			return voxel.Sand
		case depth <= 8:
			return voxel.SubSoil
		default:
			return voxel.Rock
		}
	case BiomeRocky:
		switch {
		case depth <= 1:
			return voxel.Rock
		case depth <= 3:
			return voxel.SubSoil
		default:
			return voxel.Rock
		}
	case BiomeClay:
		switch {
		case depth <= 2:
			return voxel.TopSoil
		case depth <= 6:
			return voxel.Clay
		case depth <= 10:
			return voxel.SubSoil
		default:
			return voxel.Rock
		}
	default:
		switch {
		case depth == 0:
			return voxel.TopSoil
		case depth <= 4:
			return voxel.SubSoil
		default:
			return voxel.Rock
		}
	}
}

// FillChunk generates every voxel of one chunk. Height and biome are
// computed once per column.
func (g *Generator) FillChunk(chunk *voxel.Chunk) {
	origin := voxel.ChunkToWorld(chunk.Coords())

	for x := 0; x < voxel.ChunkSize; x++ {
		for z := 0; z < voxel.ChunkSize; z++ {
			worldX := origin.X + x
			worldZ := origin.Z + z

			height := g.TerrainHeight(worldX, worldZ)
			biome := g.BiomeAt(worldX, worldZ)

			for y := 0; y < voxel.ChunkSize; y++ {
				worldY := origin.Y + y
				t := g.voxelInColumn(worldX, worldY, worldZ, height, biome)
				chunk.Set(vec.Vec3{X: x, Y: y, Z: z}, t)
			}
		}
	}
}
