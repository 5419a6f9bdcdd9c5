package graphics

import (
	"voxmesh/internal/config"
	"voxmesh/internal/meshing"
	"voxmesh/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// gpuBatch is one direction batch uploaded to the GPU
type gpuBatch struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

type gpuChunk struct {
	origin  mgl32.Vec3
	model   mgl32.Mat4
	center  mgl32.Vec3
	batches []gpuBatch
}

// ChunkRenderer owns the GPU copies of chunk meshes.
// Each direction batch keeps its own buffers, so the six-way split is preserved on the GPU.
type ChunkRenderer struct {
	shader *Shader
	chunks []gpuChunk
}

func NewChunkRenderer() (*ChunkRenderer, error) {
	shader, err := NewChunkShader()
	if err != nil {
		return nil, err
	}
	return &ChunkRenderer{shader: shader}, nil
}

// Upload copies the meshes into vertex/index buffers. Empty batches are skipped.
func (r *ChunkRenderer) Upload(meshes []meshing.ChunkMesh) {
	half := float32(world.ChunkSize) / 2
	for i := range meshes {
		m := &meshes[i]
		if m.Empty() {
			continue
		}
		gc := gpuChunk{
			origin: m.Origin,
			model:  mgl32.Translate3D(m.Origin.X(), m.Origin.Y(), m.Origin.Z()),
			center: m.Origin.Add(mgl32.Vec3{half, half, half}),
		}
		for _, d := range meshing.Directions {
			b := m.Batch(d)
			if b.Empty() {
				continue
			}
			gc.batches = append(gc.batches, uploadBatch(b))
		}
		r.chunks = append(r.chunks, gc)
	}
}

func uploadBatch(b *meshing.Batch) gpuBatch {
	var gb gpuBatch
	vertices := b.Interleaved()
	stride := int32(meshing.FloatsPerVertex * 4)

	gl.GenVertexArrays(1, &gb.vao)
	gl.BindVertexArray(gb.vao)

	gl.GenBuffers(1, &gb.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gb.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gb.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gb.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, gl.Ptr(b.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)
	gb.indexCount = int32(len(b.Indices))
	return gb
}

// Render draws every uploaded chunk whose centre lies within the render distance
// of the camera and whose bounds touch the view frustum.
func (r *ChunkRenderer) Render(cam *Camera) {
	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	settings := config.CurrentRenderState()
	wireframe := settings.Wireframe
	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	r.shader.Use()
	r.shader.SetBool("wireframe", wireframe)
	projection := cam.ProjectionMatrix()
	view := cam.ViewMatrix()
	r.shader.SetMatrix4("projection", &projection[0])
	r.shader.SetMatrix4("view", &view[0])

	frustum := NewFrustum(projection.Mul4(view))
	maxDist := float32(settings.Distance * world.ChunkSize)
	for i := range r.chunks {
		c := &r.chunks[i]
		if c.center.Sub(cam.Position).Len() > maxDist {
			continue
		}
		if !frustum.ChunkVisible(c.origin, world.ChunkSize) {
			continue
		}
		r.shader.SetMatrix4("model", &c.model[0])
		for _, b := range c.batches {
			gl.BindVertexArray(b.vao)
			gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
		}
	}
	gl.BindVertexArray(0)
}

// Delete releases every GPU buffer and the shader program
func (r *ChunkRenderer) Delete() {
	for _, c := range r.chunks {
		for _, b := range c.batches {
			gl.DeleteBuffers(1, &b.vbo)
			gl.DeleteBuffers(1, &b.ebo)
			gl.DeleteVertexArrays(1, &b.vao)
		}
	}
	r.chunks = nil
	r.shader.Delete()
}
