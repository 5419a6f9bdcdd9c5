package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Chunk edge length in blocks
	ChunkSize   = 32
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// BlockLookup resolves voxels by world block coordinates.
// It is how a chunk consults its neighbours for faces on its boundary.
type BlockLookup interface {
	BlockAt(wx, wy, wz int) (Voxel, bool)
}

// ChunkReader is the read-only view of a chunk handed to mesh extraction.
type ChunkReader interface {
	Coord() ChunkCoord
	GetBlock(x, y, z int) (Voxel, bool)
	IsFaceVisible(x, y, z, dx, dy, dz int) bool
	IsFaceVisibleWith(x, y, z, dx, dy, dz int, neighbors BlockLookup) bool
}

// Chunk is a fixed 32x32x32 grid of voxels stored in one flat slice.
type Chunk struct {
	coord  ChunkCoord
	voxels []Voxel
}

// NewChunk creates an all-air chunk at the given chunk coordinates
func NewChunk(coord ChunkCoord) *Chunk {
	// BlockTypeAir is the zero value, so a fresh slice is already empty.
	return &Chunk{
		coord:  coord,
		voxels: make([]Voxel, ChunkVolume),
	}
}

func index(x, y, z int) int {
	return x + ChunkSize*(y+ChunkSize*z)
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize
}

func (c *Chunk) Coord() ChunkCoord {
	return c.coord
}

// Origin returns the chunk's world-space placement.
func (c *Chunk) Origin() mgl32.Vec3 {
	return c.coord.Origin()
}

// GetBlock returns the voxel at local coordinates.
// The second result is false when any coordinate is outside [0, ChunkSize).
func (c *Chunk) GetBlock(x, y, z int) (Voxel, bool) {
	if !inBounds(x, y, z) {
		return Voxel{}, false
	}
	return c.voxels[index(x, y, z)], true
}

// SetBlock writes a voxel at local coordinates. Out-of-range writes are ignored.
func (c *Chunk) SetBlock(x, y, z int, v Voxel) bool {
	if !inBounds(x, y, z) {
		return false
	}
	c.voxels[index(x, y, z)] = v
	return true
}

// Fill sets every voxel of the chunk to the given type
func (c *Chunk) Fill(t BlockType) {
	v := NewVoxel(t)
	for i := range c.voxels {
		c.voxels[i] = v
	}
}

// IsFaceVisible reports whether the face of (x,y,z) facing (dx,dy,dz) should be drawn.
// Neighbours outside the chunk are treated as open, so boundary faces are always visible.
func (c *Chunk) IsFaceVisible(x, y, z, dx, dy, dz int) bool {
	return c.IsFaceVisibleWith(x, y, z, dx, dy, dz, nil)
}

// IsFaceVisibleWith is IsFaceVisible with neighbouring chunks consulted through
// neighbors for faces on the chunk boundary. A nil lookup, or a neighbour the
// lookup does not know, leaves the face visible.
func (c *Chunk) IsFaceVisibleWith(x, y, z, dx, dy, dz int, neighbors BlockLookup) bool {
	self, ok := c.GetBlock(x, y, z)
	if !ok || self.IsAir() {
		return false
	}

	nx, ny, nz := x+dx, y+dy, z+dz
	if !inBounds(nx, ny, nz) {
		if neighbors == nil {
			return true
		}
		wx := c.coord.X*ChunkSize + nx
		wy := c.coord.Y*ChunkSize + ny
		wz := c.coord.Z*ChunkSize + nz
		n, found := neighbors.BlockAt(wx, wy, wz)
		if !found {
			return true
		}
		return n.IsTransparent()
	}
	return c.voxels[index(nx, ny, nz)].IsTransparent()
}

// CountSolid returns the number of non-air voxels
func (c *Chunk) CountSolid() int {
	n := 0
	for _, v := range c.voxels {
		if !v.IsAir() {
			n++
		}
	}
	return n
}
