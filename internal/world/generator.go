package world

import (
	"math"

	"voxmesh/internal/profiling"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// HeightSource samples a 2D height field at world column coordinates.
// Implementations return values in [-1, 1] and must be deterministic.
type HeightSource interface {
	Height(worldX, worldZ int) float64
}

// NoiseHeightSource is an OpenSimplex height field.
type NoiseHeightSource struct {
	noise opensimplex.Noise
	scale float64
}

// NewNoiseHeightSource creates a seeded noise field; scale is the horizontal frequency.
func NewNoiseHeightSource(seed int64, scale float64) *NoiseHeightSource {
	return &NoiseHeightSource{
		noise: opensimplex.New(seed),
		scale: scale,
	}
}

func (s *NoiseHeightSource) Height(worldX, worldZ int) float64 {
	n := s.noise.Eval2(float64(worldX)*s.scale, float64(worldZ)*s.scale)
	return math.Max(-1, math.Min(1, n))
}

// FlatHeightSource returns the same value for every column
type FlatHeightSource float64

func (f FlatHeightSource) Height(_, _ int) float64 {
	return float64(f)
}

// Generator turns height samples into stone/dirt/air columns.
type Generator struct {
	source     HeightSource
	baseHeight float64
	amplitude  float64
}

// NewGenerator creates a generator that places the surface at
// baseHeight + sample*amplitude.
func NewGenerator(source HeightSource, baseHeight, amplitude float64) *Generator {
	return &Generator{
		source:     source,
		baseHeight: baseHeight,
		amplitude:  amplitude,
	}
}

// maxTargetHeight caps surface heights so the int conversion stays defined.
const maxTargetHeight = 1 << 30

// TargetHeight computes the surface block Y of the column at world X,Z.
// The result is within [0, maxTargetHeight]; NaN maps to 0.
func (g *Generator) TargetHeight(worldX, worldZ int) int {
	h := math.Round(g.baseHeight + g.source.Height(worldX, worldZ)*g.amplitude)
	switch {
	case !(h >= 0):
		return 0
	case h > maxTargetHeight:
		return maxTargetHeight
	}
	return int(h)
}

// BlockFor returns the block type of world height worldY in a column whose surface is at height.
func BlockFor(worldY, height int) BlockType {
	switch {
	case worldY < height:
		return BlockTypeStone
	case worldY == height:
		return BlockTypeDirt
	default:
		return BlockTypeAir
	}
}

// ColumnProfile returns the block types of world heights [minY, maxY) for a column.
func (g *Generator) ColumnProfile(worldX, worldZ, minY, maxY int) []BlockType {
	if maxY <= minY {
		return nil
	}
	height := g.TargetHeight(worldX, worldZ)
	out := make([]BlockType, 0, maxY-minY)
	for y := minY; y < maxY; y++ {
		out = append(out, BlockFor(y, height))
	}
	return out
}

// PopulateChunk fills every column of the chunk from the height field.
func (g *Generator) PopulateChunk(c *Chunk) {
	coord := c.Coord()
	chunkBaseY := coord.Y * ChunkSize
	for lx := 0; lx < ChunkSize; lx++ {
		for lz := 0; lz < ChunkSize; lz++ {
			worldX := coord.X*ChunkSize + lx
			worldZ := coord.Z*ChunkSize + lz
			height := g.TargetHeight(worldX, worldZ)
			for ly := 0; ly < ChunkSize; ly++ {
				c.SetBlock(lx, ly, lz, NewVoxel(BlockFor(chunkBaseY+ly, height)))
			}
		}
	}
}

// Extent is the size of a build area in chunks.
type Extent struct {
	X, Z         int
	HeightChunks int
}

// Build creates and populates every chunk of the extent, starting at chunk (0,0,0).
// It returns the populated coordinates in build order.
func Build(w *World, g *Generator, extent Extent) []ChunkCoord {
	defer profiling.Track("world.Build")()

	coords := make([]ChunkCoord, 0, extent.X*extent.Z*extent.HeightChunks)
	for cx := 0; cx < extent.X; cx++ {
		for cz := 0; cz < extent.Z; cz++ {
			for cy := 0; cy < extent.HeightChunks; cy++ {
				coord := ChunkCoord{X: cx, Y: cy, Z: cz}
				g.PopulateChunk(w.GetOrCreateChunk(coord))
				coords = append(coords, coord)
			}
		}
	}
	return coords
}
