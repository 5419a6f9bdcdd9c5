package meshing

import (
	"log"

	"voxmesh/internal/profiling"
	"voxmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Options controls face-culling extraction. The zero value uses DefaultPalette
// and treats chunk boundaries as open.
type Options struct {
	// Palette overrides DefaultPalette when set. Any colour is allowed, including all zeros.
	Palette *Palette
	// Neighbors resolves faces on the chunk boundary. Nil means always visible.
	Neighbors world.BlockLookup
	// CullSeams makes BuildWorld use the world itself as Neighbors.
	CullSeams bool
}

// ResolvedPalette returns the colours extraction will use.
func (o Options) ResolvedPalette() Palette {
	if o.Palette == nil {
		return DefaultPalette
	}
	return *o.Palette
}

// BuildChunkMesh emits one quad per visible unit face of every solid voxel,
// partitioned into six batches by face direction. Coplanar faces are not merged.
func BuildChunkMesh(c world.ChunkReader, opts Options) ChunkMesh {
	coord := c.Coord()
	mesh := ChunkMesh{
		Coord:  coord,
		Origin: coord.Origin(),
	}
	for _, d := range Directions {
		mesh.Batches[d].Direction = d
	}
	pal := opts.ResolvedPalette()

	for x := 0; x < world.ChunkSize; x++ {
		for z := 0; z < world.ChunkSize; z++ {
			for y := 0; y < world.ChunkSize; y++ {
				v, _ := c.GetBlock(x, y, z)
				if v.IsAir() {
					continue
				}
				for _, d := range Directions {
					dx, dy, dz := d.Offset()
					if !c.IsFaceVisibleWith(x, y, z, dx, dy, dz, opts.Neighbors) {
						continue
					}
					mesh.Batches[d].appendQuad(faceCorners(d, x, y, z), pal[d])
				}
			}
		}
	}
	return mesh
}

// faceCorners returns the quad corners of the face of voxel (x,y,z) in direction d,
// in the winding order the index pattern expects.
func faceCorners(d Direction, x, y, z int) [4]mgl32.Vec3 {
	bx, by, bz := float32(x), float32(y), float32(z)
	switch d {
	case PosX:
		return [4]mgl32.Vec3{
			{bx + 1, by, bz},
			{bx + 1, by + 1, bz},
			{bx + 1, by + 1, bz + 1},
			{bx + 1, by, bz + 1},
		}
	case NegX:
		return [4]mgl32.Vec3{
			{bx, by, bz},
			{bx, by, bz + 1},
			{bx, by + 1, bz + 1},
			{bx, by + 1, bz},
		}
	case PosY:
		return [4]mgl32.Vec3{
			{bx, by + 1, bz},
			{bx, by + 1, bz + 1},
			{bx + 1, by + 1, bz + 1},
			{bx + 1, by + 1, bz},
		}
	case NegY:
		return [4]mgl32.Vec3{
			{bx, by, bz},
			{bx + 1, by, bz},
			{bx + 1, by, bz + 1},
			{bx, by, bz + 1},
		}
	case PosZ:
		return [4]mgl32.Vec3{
			{bx, by, bz + 1},
			{bx + 1, by, bz + 1},
			{bx + 1, by + 1, bz + 1},
			{bx, by + 1, bz + 1},
		}
	default: // NegZ
		return [4]mgl32.Vec3{
			{bx, by, bz},
			{bx, by + 1, bz},
			{bx + 1, by + 1, bz},
			{bx + 1, by, bz},
		}
	}
}

// BuildWorld extracts every chunk of the world in r.Coords() order.
func BuildWorld(r world.Reader, opts Options) []ChunkMesh {
	defer profiling.Track("meshing.BuildWorld")()

	if opts.CullSeams && opts.Neighbors == nil {
		opts.Neighbors = r
	}
	coords := r.Coords()
	meshes := make([]ChunkMesh, 0, len(coords))
	for _, coord := range coords {
		c, ok := r.Chunk(coord)
		if !ok {
			continue
		}
		meshes = append(meshes, BuildChunkMesh(c, opts))
	}
	s := Summarize(meshes)
	log.Printf("[mesh] extracted %d chunks (%d empty): %d quads, %d triangles",
		s.Chunks, s.EmptyChunks, s.TotalQuads(), s.Triangles)
	return meshes
}
