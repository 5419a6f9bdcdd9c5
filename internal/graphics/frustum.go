package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// chunkMargin inflates chunk bounds before the frustum test, in blocks
const chunkMargin float32 = 1.0

type plane struct {
	a, b, c, d float32
}

// Frustum is the set of six clip planes of a projection*view matrix
type Frustum [6]plane

// NewFrustum extracts planes in order: left, right, bottom, top, near, far.
func NewFrustum(clip mgl32.Mat4) Frustum {
	// mgl32 matrices are column-major
	row := func(i int) plane {
		return plane{clip[i], clip[4+i], clip[8+i], clip[12+i]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)
	add := func(p, q plane) plane { return plane{p.a + q.a, p.b + q.b, p.c + q.c, p.d + q.d} }
	sub := func(p, q plane) plane { return plane{p.a - q.a, p.b - q.b, p.c - q.c, p.d - q.d} }

	return Frustum{
		normalizePlane(add(r3, r0)),
		normalizePlane(sub(r3, r0)),
		normalizePlane(add(r3, r1)),
		normalizePlane(sub(r3, r1)),
		normalizePlane(add(r3, r2)),
		normalizePlane(sub(r3, r2)),
	}
}

func normalizePlane(p plane) plane {
	l := float32(math.Sqrt(float64(p.a*p.a + p.b*p.b + p.c*p.c)))
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// IntersectsAABB reports whether the box touches the frustum.
// Conservative: boxes near a corner may pass.
func (f *Frustum) IntersectsAABB(min, max mgl32.Vec3) bool {
	for _, p := range f {
		// positive vertex for this plane normal
		px := max.X()
		if p.a < 0 {
			px = min.X()
		}
		py := max.Y()
		if p.b < 0 {
			py = min.Y()
		}
		pz := max.Z()
		if p.c < 0 {
			pz = min.Z()
		}
		if p.a*px+p.b*py+p.c*pz+p.d < 0 {
			return false
		}
	}
	return true
}

// ChunkVisible tests the chunk whose minimum corner is origin.
func (f *Frustum) ChunkVisible(origin mgl32.Vec3, size float32) bool {
	m := mgl32.Vec3{chunkMargin, chunkMargin, chunkMargin}
	return f.IntersectsAABB(origin.Sub(m), origin.Add(mgl32.Vec3{size, size, size}).Add(m))
}
