package export

import (
	"fmt"
	"log"

	"voxmesh/internal/meshing"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// BuildDocument converts chunk meshes into a glTF document.
// Each direction gets its own material so the six-way split survives in the file:
// one mesh per non-empty chunk, one primitive per non-empty batch, one node per
// chunk translated to the chunk origin.
func BuildDocument(meshes []meshing.ChunkMesh, palette meshing.Palette) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "voxmesh"

	for _, d := range meshing.Directions {
		c := palette[d]
		doc.Materials = append(doc.Materials, &gltf.Material{
			Name: "face" + d.String(),
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float32{c[0], c[1], c[2], c[3]},
				MetallicFactor:  gltf.Float(0),
			},
		})
	}

	for i := range meshes {
		m := &meshes[i]
		if m.Empty() {
			continue
		}
		mesh := &gltf.Mesh{Name: chunkName(m)}
		for _, d := range meshing.Directions {
			b := m.Batch(d)
			if b.Empty() {
				continue
			}
			positions := make([][3]float32, len(b.Positions))
			for j, p := range b.Positions {
				positions[j] = [3]float32(p)
			}
			colors := make([][4]uint8, len(b.Colors))
			for j, c := range b.Colors {
				colors[j] = [4]uint8{unorm(c[0]), unorm(c[1]), unorm(c[2]), unorm(c[3])}
			}
			mesh.Primitives = append(mesh.Primitives, &gltf.Primitive{
				Indices: gltf.Index(modeler.WriteIndices(doc, b.Indices)),
				Attributes: map[string]uint32{
					gltf.POSITION: modeler.WritePosition(doc, positions),
					gltf.COLOR_0:  modeler.WriteColor(doc, colors),
				},
				Material: gltf.Index(uint32(d)),
			})
		}
		doc.Meshes = append(doc.Meshes, mesh)
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name:        mesh.Name,
			Mesh:        gltf.Index(uint32(len(doc.Meshes) - 1)),
			Translation: [3]float32(m.Origin),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc
}

// WriteGLB writes the meshes as a binary glTF file.
func WriteGLB(path string, meshes []meshing.ChunkMesh, palette meshing.Palette) error {
	doc := BuildDocument(meshes, palette)
	if err := gltf.SaveBinary(doc, path); err != nil {
		return errors.Wrapf(err, "write glb %s", path)
	}
	log.Printf("[export] wrote %s: %d meshes, %d accessors", path, len(doc.Meshes), len(doc.Accessors))
	return nil
}

func chunkName(m *meshing.ChunkMesh) string {
	return fmt.Sprintf("chunk_%d_%d_%d", m.Coord.X, m.Coord.Y, m.Coord.Z)
}

func unorm(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
