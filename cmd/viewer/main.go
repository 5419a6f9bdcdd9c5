package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"voxmesh/internal/config"
	"voxmesh/internal/graphics"
	"voxmesh/internal/meshing"
	"voxmesh/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	configPath = flag.String("config", "", "YAML config file (defaults are used when empty)")
	seed       = flag.Int64("seed", 0, "terrain seed, overrides the config (0 keeps the config value)")
	cullSeams  = flag.Bool("cull-seams", false, "hide faces between adjacent chunks")
)

const moveSpeed = 20.0 // blocks per second

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("[viewer] %v", err)
		}
	}
	if *seed != 0 {
		cfg.Terrain.Seed = *seed
	}
	if *cullSeams {
		cfg.Mesh.CullChunkSeams = true
	}
	config.SetRenderDistance(cfg.Viewer.RenderDistance)

	terrainSeed := cfg.Terrain.ResolveSeed()
	extent := cfg.World.Extent()
	w := world.New()
	world.Build(w, cfg.Terrain.NewGenerator(terrainSeed), extent)
	meshes := meshing.BuildWorld(w.Reader(), cfg.Mesh.Options())

	if err := glfw.Init(); err != nil {
		log.Fatalf("[viewer] glfw: %v", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Viewer, terrainSeed)
	if err != nil {
		log.Fatalf("[viewer] %v", err)
	}

	r, err := graphics.NewChunkRenderer()
	if err != nil {
		log.Fatalf("[viewer] %v", err)
	}
	defer r.Delete()
	r.Upload(meshes)

	cam := graphics.NewCamera(cfg.Viewer.Width, cfg.Viewer.Height, cfg.Viewer.FOV)
	placeCamera(cam, extent, cfg.Terrain.BaseHeight)
	setupInputHandlers(window, cam)

	runLoop(window, r, cam, terrainSeed)
}

func setupWindow(vc config.ViewerConfig, terrainSeed int64) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(vc.Width, vc.Height, windowTitle(terrainSeed, -1), nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, err
	}

	glfw.SwapInterval(1)
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	gl.Enable(gl.DEPTH_TEST)

	return window, nil
}

// placeCamera puts the camera above one corner of the build area, looking at its centre.
func placeCamera(cam *graphics.Camera, extent world.Extent, baseHeight float64) {
	sx := float32(extent.X * world.ChunkSize)
	sz := float32(extent.Z * world.ChunkSize)
	ground := float32(baseHeight)
	cam.Position = mgl32.Vec3{-sx * 0.25, ground + sx*0.5, -sz * 0.25}
	cam.LookAt(mgl32.Vec3{sx / 2, ground, sz / 2})
}

func setupInputHandlers(window *glfw.Window, cam *graphics.Camera) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		cam.HandleMouseMovement(xpos, ypos)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyF:
			log.Printf("[viewer] wireframe %v", config.ToggleWireframe())
		case glfw.KeyEqual, glfw.KeyKPAdd:
			log.Printf("[viewer] render distance %d", config.AdjustRenderDistance(1))
		case glfw.KeyMinus, glfw.KeyKPSubtract:
			log.Printf("[viewer] render distance %d", config.AdjustRenderDistance(-1))
		}
	})
}

// windowTitle formats the title bar; fps < 0 means no measurement yet.
func windowTitle(terrainSeed int64, fps int) string {
	if fps < 0 {
		return fmt.Sprintf("voxmesh (seed %d)", terrainSeed)
	}
	return fmt.Sprintf("voxmesh (seed %d) | FPS: %d", terrainSeed, fps)
}

func runLoop(window *glfw.Window, r *graphics.ChunkRenderer, cam *graphics.Camera, terrainSeed int64) {
	lastTime := time.Now()
	lastFPSCheck := lastTime
	frames := 0

	for !window.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		glfw.PollEvents()
		handleMovement(window, cam, dt)
		r.Render(cam)
		window.SwapBuffers()

		frames++
		if now.Sub(lastFPSCheck) >= time.Second {
			window.SetTitle(windowTitle(terrainSeed, frames))
			frames = 0
			lastFPSCheck = now
		}
	}
}

func handleMovement(window *glfw.Window, cam *graphics.Camera, dt float32) {
	var forward, right, up float32
	if window.GetKey(glfw.KeyW) == glfw.Press {
		forward++
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		forward--
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		right++
	}
	if window.GetKey(glfw.KeyA) == glfw.Press {
		right--
	}
	if window.GetKey(glfw.KeySpace) == glfw.Press {
		up++
	}
	if window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		up--
	}
	step := moveSpeed * dt
	cam.Move(forward*step, right*step, up*step)
}
