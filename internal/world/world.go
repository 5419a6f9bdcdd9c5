package world

import (
	"sort"
)

// Reader is the read-only capability over a World used after population.
type Reader interface {
	BlockLookup
	Chunk(coord ChunkCoord) (ChunkReader, bool)
	Coords() []ChunkCoord
	Len() int
}

// World owns every chunk, keyed by chunk coordinate.
type World struct {
	chunks map[ChunkCoord]*Chunk
}

func New() *World {
	return &World{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// GetOrCreateChunk returns the chunk at coord, inserting an empty one on first use.
// It is the only way to obtain a mutable chunk.
func (w *World) GetOrCreateChunk(coord ChunkCoord) *Chunk {
	if c, ok := w.chunks[coord]; ok {
		return c
	}
	c := NewChunk(coord)
	w.chunks[coord] = c
	return c
}

// Reader returns a read-only view of the world.
func (w *World) Reader() Reader {
	return worldReader{w: w}
}

type worldReader struct {
	w *World
}

func (r worldReader) Chunk(coord ChunkCoord) (ChunkReader, bool) {
	c, ok := r.w.chunks[coord]
	if !ok {
		return nil, false
	}
	return c, true
}

// Coords returns every chunk coordinate ordered by X, Z, then Y.
func (r worldReader) Coords() []ChunkCoord {
	coords := make([]ChunkCoord, 0, len(r.w.chunks))
	for k := range r.w.chunks {
		coords = append(coords, k)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i].Less(coords[j]) })
	return coords
}

func (r worldReader) Len() int {
	return len(r.w.chunks)
}

// BlockAt returns the voxel at world block coordinates.
// Positions inside chunks that were never created are absent.
func (r worldReader) BlockAt(wx, wy, wz int) (Voxel, bool) {
	c, ok := r.w.chunks[ChunkCoordOf(wx, wy, wz)]
	if !ok {
		return Voxel{}, false
	}
	lx, ly, lz := LocalOf(wx, wy, wz)
	return c.GetBlock(lx, ly, lz)
}
