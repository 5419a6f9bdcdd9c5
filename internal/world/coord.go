package world

import "github.com/go-gl/mathgl/mgl32"

// ChunkCoord addresses a chunk in chunk units
type ChunkCoord struct {
	X, Y, Z int
}

// Origin returns the world-space position of the chunk's (0,0,0) corner.
func (c ChunkCoord) Origin() mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.X * ChunkSize),
		float32(c.Y * ChunkSize),
		float32(c.Z * ChunkSize),
	}
}

// Less orders coordinates by X, then Z, then Y, matching the build pass.
func (c ChunkCoord) Less(o ChunkCoord) bool {
	if c.X != o.X {
		return c.X < o.X
	}
	if c.Z != o.Z {
		return c.Z < o.Z
	}
	return c.Y < o.Y
}

// ChunkCoordOf returns the coordinate of the chunk containing the world block position.
func ChunkCoordOf(wx, wy, wz int) ChunkCoord {
	return ChunkCoord{
		X: floorDiv(wx, ChunkSize),
		Y: floorDiv(wy, ChunkSize),
		Z: floorDiv(wz, ChunkSize),
	}
}

// LocalOf converts world block coordinates into in-chunk offsets.
func LocalOf(wx, wy, wz int) (int, int, int) {
	return floorMod(wx, ChunkSize), floorMod(wy, ChunkSize), floorMod(wz, ChunkSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
