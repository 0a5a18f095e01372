package config

import "sync"

// FieldGenSettings holds the heightmap generation parameters
type FieldGenSettings struct {
	mu          sync.RWMutex
	mirrorRatio float32 // mirror row as a fraction of the width
	repetitions float32 // crests per unit of radius
	heroRow     int
	heroCol     int
	heroRadius  int
}

var globalFieldGenSettings = newFieldGenSettings()

func newFieldGenSettings() *FieldGenSettings {
	return &FieldGenSettings{
		mirrorRatio: 0.9,
		repetitions: 4,
		heroRow:     10,
		heroCol:     20,
		heroRadius:  5,
	}
}

// ResetFieldGen restores the generation defaults
func ResetFieldGen() {
	fresh := newFieldGenSettings()
	globalFieldGenSettings.mu.Lock()
	defer globalFieldGenSettings.mu.Unlock()
	globalFieldGenSettings.mirrorRatio = fresh.mirrorRatio
	globalFieldGenSettings.repetitions = fresh.repetitions
	globalFieldGenSettings.heroRow = fresh.heroRow
	globalFieldGenSettings.heroCol = fresh.heroCol
	globalFieldGenSettings.heroRadius = fresh.heroRadius
}

// GetMirrorRatio returns where the reflecting wall sits, 0..1 of the width
func GetMirrorRatio() float32 {
	globalFieldGenSettings.mu.RLock()
	defer globalFieldGenSettings.mu.RUnlock()
	return globalFieldGenSettings.mirrorRatio
}

// SetMirrorRatio sets the wall position; values are clamped to [0.5, 1]
func SetMirrorRatio(r float32) {
	globalFieldGenSettings.mu.Lock()
	defer globalFieldGenSettings.mu.Unlock()

	if r < 0.5 {
		r = 0.5
	}
	if r > 1 {
		r = 1
	}
	globalFieldGenSettings.mirrorRatio = r
}

// GetRepetitions returns how many crests fit in a unit radius
func GetRepetitions() float32 {
	globalFieldGenSettings.mu.RLock()
	defer globalFieldGenSettings.mu.RUnlock()
	return globalFieldGenSettings.repetitions
}

func SetRepetitions(n float32) {
	globalFieldGenSettings.mu.Lock()
	defer globalFieldGenSettings.mu.Unlock()

	if n <= 0 {
		n = 4
	}
	globalFieldGenSettings.repetitions = n
}

// GetHero returns the plateau center cell and its radius in cells
func GetHero() (row, col, radius int) {
	globalFieldGenSettings.mu.RLock()
	defer globalFieldGenSettings.mu.RUnlock()
	return globalFieldGenSettings.heroRow, globalFieldGenSettings.heroCol, globalFieldGenSettings.heroRadius
}

// SetHero moves the plateau; a radius of 0 removes it
func SetHero(row, col, radius int) {
	globalFieldGenSettings.mu.Lock()
	defer globalFieldGenSettings.mu.Unlock()

	if radius < 0 {
		radius = 0
	}
	globalFieldGenSettings.heroRow = row
	globalFieldGenSettings.heroCol = col
	globalFieldGenSettings.heroRadius = radius
}
