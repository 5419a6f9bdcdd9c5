package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFrustumChunkVisibility(t *testing.T) {
	cam := NewCamera(900, 600, 60)
	cam.Position = mgl32.Vec3{0, 0, 0}
	cam.LookAt(mgl32.Vec3{1, 0, 0}) // looking down +X

	f := NewFrustum(cam.ProjectionMatrix().Mul4(cam.ViewMatrix()))

	tests := []struct {
		name   string
		origin mgl32.Vec3
		want   bool
	}{
		{"ahead", mgl32.Vec3{64, -16, -16}, true},
		{"behind", mgl32.Vec3{-96, -16, -16}, false},
		{"far left", mgl32.Vec3{32, -16, -400}, false},
		{"beyond far plane", mgl32.Vec3{2000, -16, -16}, false},
		{"containing camera", mgl32.Vec3{-16, -16, -16}, true},
	}
	for _, tt := range tests {
		if got := f.ChunkVisible(tt.origin, 32); got != tt.want {
			t.Errorf("%s: ChunkVisible(%v) = %v, want %v", tt.name, tt.origin, got, tt.want)
		}
	}
}
