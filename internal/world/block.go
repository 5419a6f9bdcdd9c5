package world

type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeDirt
	BlockTypeStone
)

func (b BlockType) String() string {
	switch b {
	case BlockTypeAir:
		return "air"
	case BlockTypeDirt:
		return "dirt"
	case BlockTypeStone:
		return "stone"
	default:
		return "unknown"
	}
}

// Voxel is a single typed cell of a chunk.
type Voxel struct {
	Type BlockType
}

// NewVoxel creates a voxel of the given block type
func NewVoxel(t BlockType) Voxel {
	return Voxel{Type: t}
}

// IsAir reports whether the voxel is empty
func (v Voxel) IsAir() bool {
	return v.Type == BlockTypeAir
}

// IsTransparent reports whether faces behind this voxel can be seen.
// Air is the only transparent type.
func (v Voxel) IsTransparent() bool {
	return v.IsAir()
}

func (v Voxel) String() string {
	return v.Type.String()
}
