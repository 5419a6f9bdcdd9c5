package world

import "testing"

func TestVoxelPredicates(t *testing.T) {
	tests := []struct {
		typ         BlockType
		air         bool
		transparent bool
	}{
		{BlockTypeAir, true, true},
		{BlockTypeDirt, false, false},
		{BlockTypeStone, false, false},
	}
	for _, tt := range tests {
		v := NewVoxel(tt.typ)
		if v.IsAir() != tt.air {
			t.Errorf("%v: IsAir = %v, want %v", tt.typ, v.IsAir(), tt.air)
		}
		if v.IsTransparent() != tt.transparent {
			t.Errorf("%v: IsTransparent = %v, want %v", tt.typ, v.IsTransparent(), tt.transparent)
		}
		if v.IsTransparent() != v.IsAir() {
			t.Errorf("%v: transparency and air disagree", tt.typ)
		}
	}
}

func TestNewChunkIsAir(t *testing.T) {
	c := NewChunk(ChunkCoord{X: 2, Y: 1, Z: -3})
	if n := c.CountSolid(); n != 0 {
		t.Fatalf("new chunk has %d solid voxels", n)
	}
	if got := c.Coord(); got != (ChunkCoord{X: 2, Y: 1, Z: -3}) {
		t.Errorf("coord = %v", got)
	}
}

func TestGetBlockBounds(t *testing.T) {
	c := NewChunk(ChunkCoord{})
	outside := [][3]int{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{ChunkSize, 0, 0}, {0, ChunkSize, 0}, {0, 0, ChunkSize},
		{-100, 500, 7},
	}
	for _, p := range outside {
		if _, ok := c.GetBlock(p[0], p[1], p[2]); ok {
			t.Errorf("GetBlock%v should be absent", p)
		}
		if c.SetBlock(p[0], p[1], p[2], NewVoxel(BlockTypeStone)) {
			t.Errorf("SetBlock%v should be rejected", p)
		}
	}

	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				if _, ok := c.GetBlock(x, y, z); !ok {
					t.Fatalf("GetBlock(%d,%d,%d) absent inside chunk", x, y, z)
				}
			}
		}
	}
}

func TestSetBlockRoundTrip(t *testing.T) {
	c := NewChunk(ChunkCoord{})
	c.SetBlock(1, 2, 3, NewVoxel(BlockTypeDirt))
	c.SetBlock(3, 2, 1, NewVoxel(BlockTypeStone))

	if v, _ := c.GetBlock(1, 2, 3); v.Type != BlockTypeDirt {
		t.Errorf("(1,2,3) = %v, want dirt", v)
	}
	if v, _ := c.GetBlock(3, 2, 1); v.Type != BlockTypeStone {
		t.Errorf("(3,2,1) = %v, want stone", v)
	}
	if v, _ := c.GetBlock(2, 1, 3); !v.IsAir() {
		t.Errorf("(2,1,3) = %v, want air", v)
	}
	if n := c.CountSolid(); n != 2 {
		t.Errorf("CountSolid = %d, want 2", n)
	}
}

func TestIsFaceVisible(t *testing.T) {
	c := NewChunk(ChunkCoord{})
	c.SetBlock(5, 5, 5, NewVoxel(BlockTypeStone))
	c.SetBlock(6, 5, 5, NewVoxel(BlockTypeDirt))
	c.SetBlock(0, 5, 5, NewVoxel(BlockTypeStone))

	tests := []struct {
		name       string
		x, y, z    int
		dx, dy, dz int
		want       bool
	}{
		{"solid neighbour hides", 5, 5, 5, 1, 0, 0, false},
		{"air neighbour shows", 5, 5, 5, -1, 0, 0, true},
		{"air above shows", 5, 5, 5, 0, 1, 0, true},
		{"reverse side hidden", 6, 5, 5, -1, 0, 0, false},
		{"boundary is open", 0, 5, 5, -1, 0, 0, true},
		{"air voxel never visible", 1, 1, 1, 0, 1, 0, false},
		{"out of range voxel", -1, 5, 5, 1, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsFaceVisible(tt.x, tt.y, tt.z, tt.dx, tt.dy, tt.dz); got != tt.want {
				t.Errorf("IsFaceVisible = %v, want %v", got, tt.want)
			}
		})
	}
}

type stubLookup map[[3]int]Voxel

func (s stubLookup) BlockAt(wx, wy, wz int) (Voxel, bool) {
	v, ok := s[[3]int{wx, wy, wz}]
	return v, ok
}

func TestIsFaceVisibleWithNeighbors(t *testing.T) {
	c := NewChunk(ChunkCoord{X: 1})
	c.SetBlock(0, 3, 3, NewVoxel(BlockTypeStone))
	c.SetBlock(ChunkSize-1, 3, 3, NewVoxel(BlockTypeStone))

	lookup := stubLookup{
		{ChunkSize - 1, 3, 3}: NewVoxel(BlockTypeStone), // world x 31 is the -x neighbour of local 0
		{2 * ChunkSize, 3, 3}: NewVoxel(BlockTypeAir),
	}

	if c.IsFaceVisibleWith(0, 3, 3, -1, 0, 0, lookup) {
		t.Error("face against a solid neighbour chunk should be hidden")
	}
	if !c.IsFaceVisibleWith(ChunkSize-1, 3, 3, 1, 0, 0, lookup) {
		t.Error("face against air in the neighbour chunk should be visible")
	}
	if !c.IsFaceVisibleWith(0, 3, 3, -1, 0, 0, stubLookup{}) {
		t.Error("face against an unknown neighbour should be visible")
	}
	if !c.IsFaceVisibleWith(0, 3, 3, -1, 0, 0, nil) {
		t.Error("nil lookup should keep boundaries open")
	}
}

func TestChunkCoordHelpers(t *testing.T) {
	tests := []struct {
		wx, wy, wz int
		coord      ChunkCoord
		lx, ly, lz int
	}{
		{0, 0, 0, ChunkCoord{0, 0, 0}, 0, 0, 0},
		{31, 32, 33, ChunkCoord{0, 1, 1}, 31, 0, 1},
		{-1, -32, -33, ChunkCoord{-1, -1, -2}, 31, 0, 31},
	}
	for _, tt := range tests {
		if got := ChunkCoordOf(tt.wx, tt.wy, tt.wz); got != tt.coord {
			t.Errorf("ChunkCoordOf(%d,%d,%d) = %v, want %v", tt.wx, tt.wy, tt.wz, got, tt.coord)
		}
		lx, ly, lz := LocalOf(tt.wx, tt.wy, tt.wz)
		if lx != tt.lx || ly != tt.ly || lz != tt.lz {
			t.Errorf("LocalOf(%d,%d,%d) = (%d,%d,%d), want (%d,%d,%d)", tt.wx, tt.wy, tt.wz, lx, ly, lz, tt.lx, tt.ly, tt.lz)
		}
	}

	c := NewChunk(ChunkCoord{X: 1, Y: -1, Z: 2})
	o := c.Origin()
	if o.X() != 32 || o.Y() != -32 || o.Z() != 64 {
		t.Errorf("Origin = %v", o)
	}
}
