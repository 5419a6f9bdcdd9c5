package config

import (
	"math/rand"
	"time"

	"voxmesh/internal/meshing"
	"voxmesh/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Extent converts the build area into world units
func (w WorldConfig) Extent() world.Extent {
	return world.Extent{X: w.ExtentX, Z: w.ExtentZ, HeightChunks: w.HeightChunks}
}

// ResolveSeed returns the configured seed, or a fresh random one when it is 0.
func (t TerrainConfig) ResolveSeed() int64 {
	if t.Seed != 0 {
		return t.Seed
	}
	seed := rand.New(rand.NewSource(time.Now().UnixNano())).Int63()
	if seed == 0 {
		seed = 1
	}
	return seed
}

// NewGenerator builds the noise terrain generator for seed.
func (t TerrainConfig) NewGenerator(seed int64) *world.Generator {
	return world.NewGenerator(world.NewNoiseHeightSource(seed, t.NoiseScale), t.BaseHeight, t.Amplitude)
}

// Options converts the mesh section into extraction options.
func (m MeshConfig) Options() meshing.Options {
	var pal meshing.Palette
	for i := range pal {
		if i < len(m.Palette) {
			pal[i] = mgl32.Vec4(m.Palette[i])
		}
	}
	return meshing.Options{
		Palette:   &pal,
		CullSeams: m.CullChunkSeams,
	}
}
