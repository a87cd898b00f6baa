package mesher

// The texture atlas is a fixed grid of square tiles; a voxel's atlas
// index selects one tile, row-major from the top-left. The renderer
// loads the matching image with the same layout.
const (
	AtlasColumns = 4
	AtlasRows    = 4
)

// tileUV returns the UV rectangle of an atlas tile.
func tileUV(atlasIndex uint8) (uMin, uMax, vMin, vMax float32) {
	col := float32(atlasIndex % AtlasColumns)
	row := float32(atlasIndex / AtlasColumns)

	uMin = col / AtlasColumns
	uMax = (col + 1) / AtlasColumns
	vMin = row / AtlasRows
	vMax = (row + 1) / AtlasRows
	return
}
