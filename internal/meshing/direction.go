package meshing

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is one of the six cardinal face orientations.
// Its value is also the batch index inside a ChunkMesh.
type Direction int

const (
	PosX Direction = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ

	NumDirections = 6
)

// Directions lists every face direction in extraction order
var Directions = [NumDirections]Direction{PosX, NegX, PosY, NegY, PosZ, NegZ}

var directionOffsets = [NumDirections][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Offset returns the unit step towards the neighbour this face looks at.
func (d Direction) Offset() (dx, dy, dz int) {
	o := directionOffsets[d]
	return o[0], o[1], o[2]
}

// Normal returns the outward face normal
func (d Direction) Normal() mgl32.Vec3 {
	dx, dy, dz := d.Offset()
	return mgl32.Vec3{float32(dx), float32(dy), float32(dz)}
}

func (d Direction) String() string {
	switch d {
	case PosX:
		return "+x"
	case NegX:
		return "-x"
	case PosY:
		return "+y"
	case NegY:
		return "-y"
	case PosZ:
		return "+z"
	case NegZ:
		return "-z"
	default:
		return "?"
	}
}

// Palette assigns one flat RGBA colour per face direction.
type Palette [NumDirections]mgl32.Vec4

// DefaultPalette is the per-direction debug colouring.
var DefaultPalette = Palette{
	PosX: {1.0, 0.0, 0.0, 1.0}, // red
	NegX: {1.0, 1.0, 0.0, 1.0}, // yellow
	PosY: {0.0, 1.0, 0.0, 1.0}, // green
	NegY: {0.0, 0.0, 1.0, 1.0}, // blue
	PosZ: {1.0, 0.5, 0.0, 1.0}, // orange
	NegZ: {0.5, 0.0, 0.5, 1.0}, // purple
}
