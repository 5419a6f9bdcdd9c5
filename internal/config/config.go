package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds everything the build pass and the viewer read at startup.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Terrain TerrainConfig `yaml:"terrain"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Viewer  ViewerConfig  `yaml:"viewer"`
}

// WorldConfig is the build area, in chunks
type WorldConfig struct {
	ExtentX      int `yaml:"extent_x"`
	ExtentZ      int `yaml:"extent_z"`
	HeightChunks int `yaml:"height_chunks"`
}

// TerrainConfig drives the height field.
// Seed 0 means a random seed is picked at startup.
type TerrainConfig struct {
	Seed       int64   `yaml:"seed"`
	BaseHeight float64 `yaml:"base_height"`
	Amplitude  float64 `yaml:"amplitude"`
	NoiseScale float64 `yaml:"noise_scale"`
}

type MeshConfig struct {
	CullChunkSeams bool         `yaml:"cull_chunk_seams"`
	Palette        [][4]float32 `yaml:"palette"`
}

type ViewerConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	FOV            float32 `yaml:"fov"`
	RenderDistance int     `yaml:"render_distance"`
}

// Default returns the reference build: 5x5 chunks, 128 blocks tall.
func Default() Config {
	return Config{
		World: WorldConfig{
			ExtentX:      5,
			ExtentZ:      5,
			HeightChunks: 4,
		},
		Terrain: TerrainConfig{
			BaseHeight: 50,
			Amplitude:  10,
			NoiseScale: 0.05,
		},
		Mesh: MeshConfig{
			Palette: [][4]float32{
				{1.0, 0.0, 0.0, 1.0},
				{1.0, 1.0, 0.0, 1.0},
				{0.0, 1.0, 0.0, 1.0},
				{0.0, 0.0, 1.0, 1.0},
				{1.0, 0.5, 0.0, 1.0},
				{0.5, 0.0, 0.5, 1.0},
			},
		},
		Viewer: ViewerConfig{
			Width:          900,
			Height:         600,
			FOV:            60,
			RenderDistance: 8,
		},
	}
}

// Load reads a YAML file on top of Default. Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Default and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the build pass cannot use.
func (c Config) Validate() error {
	switch {
	case c.World.ExtentX <= 0 || c.World.ExtentZ <= 0:
		return errors.Errorf("world extent must be positive, got %dx%d", c.World.ExtentX, c.World.ExtentZ)
	case c.World.HeightChunks <= 0:
		return errors.Errorf("world.height_chunks must be positive, got %d", c.World.HeightChunks)
	case !finite(c.Terrain.BaseHeight) || c.Terrain.BaseHeight < 0:
		return errors.Errorf("terrain.base_height must be finite and not negative, got %g", c.Terrain.BaseHeight)
	case !finite(c.Terrain.Amplitude):
		return errors.Errorf("terrain.amplitude must be finite, got %g", c.Terrain.Amplitude)
	case !finite(c.Terrain.NoiseScale) || c.Terrain.NoiseScale == 0:
		return errors.Errorf("terrain.noise_scale must be finite and non-zero, got %g", c.Terrain.NoiseScale)
	case len(c.Mesh.Palette) != 6:
		return errors.Errorf("mesh.palette needs 6 colours, got %d", len(c.Mesh.Palette))
	case c.Viewer.Width <= 0 || c.Viewer.Height <= 0:
		return errors.Errorf("viewer size must be positive, got %dx%d", c.Viewer.Width, c.Viewer.Height)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
