package main

import (
	"flag"
	"log"
	"os"
	"sync"

	"voxmesh/internal/config"
	"voxmesh/internal/export"
	"voxmesh/internal/meshing"
	"voxmesh/internal/profiling"
	"voxmesh/internal/world"

	"github.com/pkg/errors"
	"github.com/xlab/closer"
)

var (
	configPath     = flag.String("config", "", "YAML config file (defaults are used when empty)")
	seed           = flag.Int64("seed", 0, "terrain seed, overrides the config (0 keeps the config value)")
	cullSeams      = flag.Bool("cull-seams", false, "hide faces between adjacent chunks")
	glbPath        = flag.String("glb", "", "write the meshes as binary glTF")
	heightmapPath  = flag.String("heightmap", "", "write a PNG preview of the height field")
	heightmapScale = flag.Int("heightmap-scale", 4, "pixels per column in the heightmap preview")
	profile        = flag.Bool("profile", false, "log the slowest build stages on exit")
)

// pending tracks an export that is still being written so an interrupt can remove it
var pending struct {
	sync.Mutex
	path string
}

func setPending(path string) {
	pending.Lock()
	pending.path = path
	pending.Unlock()
}

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime)

	closer.Bind(cleanup)
	defer closer.Close()

	if err := run(); err != nil {
		closer.Fatalf("[voxmesh] %+v", err)
	}
}

func cleanup() {
	pending.Lock()
	if pending.path != "" {
		os.Remove(pending.path)
		log.Printf("[voxmesh] removed partial output %s", pending.path)
	}
	pending.Unlock()
	if *profile {
		log.Printf("[voxmesh] profile: %s", profiling.TopN(5))
	}
}

func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	if *seed != 0 {
		cfg.Terrain.Seed = *seed
	}
	if *cullSeams {
		cfg.Mesh.CullChunkSeams = true
	}
	return cfg, cfg.Validate()
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	terrainSeed := cfg.Terrain.ResolveSeed()
	gen := cfg.Terrain.NewGenerator(terrainSeed)
	extent := cfg.World.Extent()

	w := world.New()
	coords := world.Build(w, gen, extent)
	log.Printf("[world] seed %d: built %d chunks (%dx%dx%d)",
		terrainSeed, len(coords), extent.X, extent.Z, extent.HeightChunks)

	opts := cfg.Mesh.Options()
	meshes := meshing.BuildWorld(w.Reader(), opts)
	logDirections(meshing.Summarize(meshes))

	if *glbPath != "" {
		setPending(*glbPath)
		if err := export.WriteGLB(*glbPath, meshes, opts.ResolvedPalette()); err != nil {
			return err
		}
		setPending("")
	}
	if *heightmapPath != "" {
		if err := writeHeightmap(*heightmapPath, gen, extent); err != nil {
			return err
		}
	}
	return nil
}

func writeHeightmap(path string, gen *world.Generator, extent world.Extent) error {
	setPending(path)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create heightmap")
	}
	if err := export.WriteHeightmapPNG(f, gen, extent, *heightmapScale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close heightmap")
	}
	setPending("")
	log.Printf("[export] wrote heightmap %s", path)
	return nil
}

func logDirections(s meshing.Stats) {
	for _, d := range meshing.Directions {
		log.Printf("[mesh] %s: %d quads", d, s.Quads[d])
	}
}
