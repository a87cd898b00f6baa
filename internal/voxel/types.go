// Package voxel implements the chunked voxel world: the block type
// table, fixed-size chunks with dirty tracking, and the world-level
// coordinate math and lookups the mesher and codec build on.
package voxel

// Type identifies a block kind. Air is the zero value and is never solid.
type Type uint8

const (
	Air Type = iota
	TopSoil
	SubSoil
	Rock
	Bedrock
	Sand
	Clay

	typeCount
)

// ToolKind is the tool class required to break a block efficiently.
type ToolKind uint8

const (
	ToolNone ToolKind = iota
	ToolShovel
	ToolPickaxe
)

// TypeInfo is the static classification of a block kind.
type TypeInfo struct {
	Name       string
	Solid      bool
	Hardness   float32 // seconds to break by hand; negative means unbreakable
	Tool       ToolKind
	AtlasIndex uint8 // tile in the texture atlas, row-major
}

// typeTable is the single canonical Type -> TypeInfo mapping. Atlas
// indices are assigned once here; the renderer's atlas layout must match.
var typeTable = [typeCount]TypeInfo{
	Air:     {Name: "Air", Solid: false, Hardness: 0, Tool: ToolNone, AtlasIndex: 0},
	TopSoil: {Name: "TopSoil", Solid: true, Hardness: 0.5, Tool: ToolShovel, AtlasIndex: 0},
	SubSoil: {Name: "SubSoil", Solid: true, Hardness: 0.75, Tool: ToolShovel, AtlasIndex: 1},
	Rock:    {Name: "Rock", Solid: true, Hardness: 2.0, Tool: ToolPickaxe, AtlasIndex: 2},
	Bedrock: {Name: "Bedrock", Solid: true, Hardness: -1, Tool: ToolNone, AtlasIndex: 3},
	Sand:    {Name: "Sand", Solid: true, Hardness: 0.5, Tool: ToolShovel, AtlasIndex: 4},
	Clay:    {Name: "Clay", Solid: true, Hardness: 0.6, Tool: ToolShovel, AtlasIndex: 5},
}

// Info returns the classification for t. Unknown values read as Air.
func Info(t Type) TypeInfo {
	if t >= typeCount {
		return typeTable[Air]
	}
	return typeTable[t]
}

// Solid reports whether the block occludes adjacent faces.
func (t Type) Solid() bool {
	return Info(t).Solid
}

// AtlasIndex returns the texture atlas tile for the block.
func (t Type) AtlasIndex() uint8 {
	return Info(t).AtlasIndex
}

func (t Type) String() string {
	return Info(t).Name
}
