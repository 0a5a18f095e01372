package config

import (
	"sync"
	"time"
)

// Settings holds the tunables shared by the demos
type Settings struct {
	mu             sync.RWMutex
	windowWidth    int
	windowHeight   int
	terrainWidth   int // cells per side
	fpsLimit       int // 0 disables the limiter
	minZoom        float32
	maxZoom        float32
	zoomStep       float32
	rotationStep   float32
	slowFrame      time.Duration
	streamInterval time.Duration
}

const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 800
	DefaultTerrainWidth = 90
	DefaultFPSLimit     = 120

	MinTerrainWidth = 8
	MaxTerrainWidth = 256
)

var globalSettings = newSettings()

func newSettings() *Settings {
	return &Settings{
		windowWidth:    DefaultWindowWidth,
		windowHeight:   DefaultWindowHeight,
		terrainWidth:   DefaultTerrainWidth,
		fpsLimit:       DefaultFPSLimit,
		minZoom:        2,
		maxZoom:        40,
		zoomStep:       0.3,
		rotationStep:   0.1,
		slowFrame:      16 * time.Millisecond,
		streamInterval: 100 * time.Millisecond,
	}
}

// Reset restores every setting to its default
func Reset() {
	fresh := newSettings()
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.windowWidth = fresh.windowWidth
	globalSettings.windowHeight = fresh.windowHeight
	globalSettings.terrainWidth = fresh.terrainWidth
	globalSettings.fpsLimit = fresh.fpsLimit
	globalSettings.minZoom = fresh.minZoom
	globalSettings.maxZoom = fresh.maxZoom
	globalSettings.zoomStep = fresh.zoomStep
	globalSettings.rotationStep = fresh.rotationStep
	globalSettings.slowFrame = fresh.slowFrame
	globalSettings.streamInterval = fresh.streamInterval
}

// GetWindowSize returns the framebuffer size the window is created with
func GetWindowSize() (int, int) {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.windowWidth, globalSettings.windowHeight
}

// SetWindowSize sets the initial window size; non-positive values keep the default
func SetWindowSize(width, height int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if width <= 0 {
		width = DefaultWindowWidth
	}
	if height <= 0 {
		height = DefaultWindowHeight
	}
	globalSettings.windowWidth = width
	globalSettings.windowHeight = height
}

// GetTerrainWidth returns the heightmap side length in cells
func GetTerrainWidth() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.terrainWidth
}

func SetTerrainWidth(width int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	// Clamp to something the per-cell draw loop can keep up with
	if width < MinTerrainWidth {
		width = MinTerrainWidth
	}
	if width > MaxTerrainWidth {
		width = MaxTerrainWidth
	}

	globalSettings.terrainWidth = width
}

// GetFPSLimit returns the frame cap, 0 means unlimited
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

func SetFPSLimit(fps int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if fps < 0 {
		fps = 0
	}
	globalSettings.fpsLimit = fps
}

// GetZoomBounds returns the closest and farthest orbit distance
func GetZoomBounds() (float32, float32) {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.minZoom, globalSettings.maxZoom
}

// SetZoomBounds swaps the arguments when given in the wrong order
func SetZoomBounds(min, max float32) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if min > max {
		min, max = max, min
	}
	if min <= 0 {
		min = 0.1
	}
	if max < min {
		max = min
	}
	globalSettings.minZoom = min
	globalSettings.maxZoom = max
}

// GetZoomStep returns the orbit distance change per frame while zooming
func GetZoomStep() float32 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.zoomStep
}

func SetZoomStep(step float32) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if step <= 0 {
		step = 0.3
	}
	globalSettings.zoomStep = step
}

// GetRotationStep returns the orbit angle change in radians per frame
func GetRotationStep() float32 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.rotationStep
}

func SetRotationStep(step float32) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if step <= 0 {
		step = 0.1
	}
	globalSettings.rotationStep = step
}

// GetSlowFrameThreshold returns the frame time above which the loop logs a breakdown
func GetSlowFrameThreshold() time.Duration {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.slowFrame
}

func SetSlowFrameThreshold(d time.Duration) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()
	globalSettings.slowFrame = d
}

// GetStreamInterval returns the minimum time between two published snapshots
func GetStreamInterval() time.Duration {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.streamInterval
}

// SetStreamInterval keeps the stream at 10 Hz or slower
func SetStreamInterval(d time.Duration) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if d < 100*time.Millisecond {
		d = 100 * time.Millisecond
	}
	globalSettings.streamInterval = d
}
