package meshing

import (
	"voxmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved stride of Batch.Interleaved (pos.xyz + rgba)
const FloatsPerVertex = 7

// Batch is the geometry for one face direction of one chunk.
// Indices only reference vertices of the same batch.
type Batch struct {
	Direction Direction
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec4
	Indices   []uint32
}

func (b *Batch) VertexCount() int {
	return len(b.Positions)
}

// QuadCount returns the number of unit faces in the batch
func (b *Batch) QuadCount() int {
	return len(b.Indices) / 6
}

func (b *Batch) Empty() bool {
	return len(b.Indices) == 0
}

// appendQuad adds four corners and the two triangles (v0,v1,v2) and (v0,v2,v3).
func (b *Batch) appendQuad(corners [4]mgl32.Vec3, color mgl32.Vec4) {
	base := uint32(len(b.Positions))
	b.Positions = append(b.Positions, corners[0], corners[1], corners[2], corners[3])
	b.Colors = append(b.Colors, color, color, color, color)
	b.Indices = append(b.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// Interleaved packs positions and colours as pos.xyz + rgba per vertex for GPU upload.
func (b *Batch) Interleaved() []float32 {
	out := make([]float32, 0, len(b.Positions)*FloatsPerVertex)
	for i, p := range b.Positions {
		c := b.Colors[i]
		out = append(out, p[0], p[1], p[2], c[0], c[1], c[2], c[3])
	}
	return out
}

// ChunkMesh holds the six direction batches of a chunk plus its world placement.
type ChunkMesh struct {
	Coord   world.ChunkCoord
	Origin  mgl32.Vec3
	Batches [NumDirections]Batch
}

// Batch returns the batch for direction d
func (m *ChunkMesh) Batch(d Direction) *Batch {
	return &m.Batches[d]
}

func (m *ChunkMesh) QuadCount() int {
	n := 0
	for i := range m.Batches {
		n += m.Batches[i].QuadCount()
	}
	return n
}

func (m *ChunkMesh) VertexCount() int {
	n := 0
	for i := range m.Batches {
		n += m.Batches[i].VertexCount()
	}
	return n
}

// Empty reports whether no face of the chunk is visible
func (m *ChunkMesh) Empty() bool {
	for i := range m.Batches {
		if !m.Batches[i].Empty() {
			return false
		}
	}
	return true
}

// Stats summarises quads per direction over a set of chunk meshes.
type Stats struct {
	Chunks      int
	EmptyChunks int
	Quads       [NumDirections]int
	Vertices    int
	Triangles   int
}

func Summarize(meshes []ChunkMesh) Stats {
	var s Stats
	for i := range meshes {
		m := &meshes[i]
		s.Chunks++
		if m.Empty() {
			s.EmptyChunks++
		}
		for d := range m.Batches {
			b := &m.Batches[d]
			s.Quads[d] += b.QuadCount()
			s.Vertices += b.VertexCount()
			s.Triangles += len(b.Indices) / 3
		}
	}
	return s
}

// TotalQuads returns the quad count over all directions
func (s Stats) TotalQuads() int {
	n := 0
	for _, q := range s.Quads {
		n += q
	}
	return n
}
