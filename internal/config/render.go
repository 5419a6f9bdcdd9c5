package config

import "sync"

const (
	minRenderDistance = 1
	maxRenderDistance = 32
)

// RenderState is what the viewer reads once per frame.
type RenderState struct {
	Distance  int // chunks
	Wireframe bool
}

// viewerSettings is shared between the draw loop and GLFW input callbacks.
type viewerSettings struct {
	mu    sync.RWMutex
	state RenderState
}

var viewer = &viewerSettings{
	state: RenderState{Distance: 8},
}

func clampDistance(d int) int {
	return max(minRenderDistance, min(d, maxRenderDistance))
}

// CurrentRenderState returns a consistent copy of the runtime render settings.
func CurrentRenderState() RenderState {
	viewer.mu.RLock()
	defer viewer.mu.RUnlock()
	return viewer.state
}

// SetRenderDistance replaces the render distance, clamped to [1, 32] chunks.
func SetRenderDistance(distance int) {
	viewer.mu.Lock()
	viewer.state.Distance = clampDistance(distance)
	viewer.mu.Unlock()
}

// AdjustRenderDistance adds delta under one lock and returns the clamped result.
func AdjustRenderDistance(delta int) int {
	viewer.mu.Lock()
	defer viewer.mu.Unlock()
	viewer.state.Distance = clampDistance(viewer.state.Distance + delta)
	return viewer.state.Distance
}

// ToggleWireframe flips wireframe mode and returns the new value
func ToggleWireframe() bool {
	viewer.mu.Lock()
	defer viewer.mu.Unlock()
	viewer.state.Wireframe = !viewer.state.Wireframe
	return viewer.state.Wireframe
}
