package graphics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestCameraLookAt(t *testing.T) {
	cam := NewCamera(900, 600, 60)
	cam.Position = mgl32.Vec3{0, 10, 0}
	cam.LookAt(mgl32.Vec3{10, 10, 10})

	f := cam.Front()
	want := mgl32.Vec3{1, 0, 1}.Normalize()
	if !approx(f.X(), want.X()) || !approx(f.Y(), want.Y()) || !approx(f.Z(), want.Z()) {
		t.Fatalf("front %v, want %v", f, want)
	}
}

func TestCameraMoveIgnoresPitch(t *testing.T) {
	cam := NewCamera(900, 600, 60)
	cam.Pitch = 60
	cam.Move(5, 0, 0)
	if !approx(cam.Position.Y(), 0) {
		t.Errorf("forward movement changed height: %v", cam.Position)
	}
	if !approx(cam.Position.X(), 5) {
		t.Errorf("expected to move 5 along +X, got %v", cam.Position)
	}

	cam.Move(0, 0, 2)
	if !approx(cam.Position.Y(), 2) {
		t.Errorf("up movement: got %v", cam.Position)
	}
}

func TestMouseMovementClampsPitch(t *testing.T) {
	cam := NewCamera(900, 600, 60)
	cam.HandleMouseMovement(100, 100) // first sample only records the position
	if cam.Yaw != 0 || cam.Pitch != 0 {
		t.Fatalf("first sample moved the camera: yaw %v pitch %v", cam.Yaw, cam.Pitch)
	}
	cam.HandleMouseMovement(110, -5000)
	if cam.Pitch != 89 {
		t.Errorf("pitch %v, want clamped to 89", cam.Pitch)
	}
	if !approx(float32(cam.Yaw), 1) {
		t.Errorf("yaw %v, want 1", cam.Yaw)
	}
}
