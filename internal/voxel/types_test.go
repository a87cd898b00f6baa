package voxel

import "testing"

func TestAirNeverSolid(t *testing.T) {
	if Air.Solid() {
		t.Error("Air must not be solid")
	}
	if Info(Air).Hardness != 0 {
		t.Error("Air should have zero hardness")
	}
}

func TestUnknownTypeReadsAsAir(t *testing.T) {
	unknown := Type(200)
	if unknown.Solid() {
		t.Error("Unknown type should fall back to the Air row")
	}
	if unknown.String() != "Air" {
		t.Errorf("Expected Air, got %s", unknown.String())
	}
}

func TestCanonicalAtlasMapping(t *testing.T) {
	// Every solid type has exactly one atlas tile, and no two solid
	// types share one.
	seen := make(map[uint8]Type)
	for v := Type(0); v < typeCount; v++ {
		if !v.Solid() {
			continue
		}
		idx := v.AtlasIndex()
		if prev, dup := seen[idx]; dup {
			t.Errorf("Atlas index %d assigned to both %v and %v", idx, prev, v)
		}
		seen[idx] = v
	}
}

func TestTypeTableComplete(t *testing.T) {
	for v := Type(0); v < typeCount; v++ {
		if Info(v).Name == "" {
			t.Errorf("Type %d has no table entry", v)
		}
	}
}
