package sim

import (
	"math"
	"wavelab/internal/config"
	"wavelab/internal/profiling"
	"wavelab/pkg/vmath"
)

// MaxWaves caps how many waves the field keeps; adding past it drops the oldest
const MaxWaves = 100

// MaxWaveSize bounds the amplitude set while dragging
const MaxWaveSize = 0.8

// Wave is a circular ripple started at (X, Y) in normalized field
// coordinates: X along columns, Y along rows.
type Wave struct {
	X, Y  float32
	Speed float32
	Size  float32
	Time  float32 // seconds since release
}

// WaveState drives adding a wave with a mouse drag
type WaveState int

const (
	WaveSimulate   WaveState = iota
	WaveAdd                  // button went down, a wave is placed this frame
	WaveAdding               // button held, size follows the cursor
	WaveDoneAdding           // button released, speed is set this frame
)

func (s WaveState) String() string {
	switch s {
	case WaveAdd:
		return "add"
	case WaveAdding:
		return "adding"
	case WaveDoneAdding:
		return "done-adding"
	default:
		return "simulate"
	}
}

// NextWaveState advances the drag state machine by one frame
func NextWaveState(s WaveState, mouseDown bool) WaveState {
	switch s {
	case WaveAdd:
		s = WaveAdding
	case WaveDoneAdding:
		s = WaveSimulate
	}

	if mouseDown {
		if s == WaveSimulate {
			s = WaveAdd
		}
	} else if s == WaveAdding {
		s = WaveDoneAdding
	}
	return s
}

// ReleaseSpeed turns a dragged size into the ripple speed: bigger waves
// travel faster, troughs travel inward.
func ReleaseSpeed(size float32) float32 {
	speed := 5 * float32(math.Pow(math.Abs(float64(size)), 1.5))
	if size < 0 {
		speed = -speed
	}
	return speed
}

// DragSize measures how far the cursor ray has been pulled above or
// below the anchor, along the vertical, and clamps it to MaxWaveSize.
func DragSize(eye, anchor vmath.Vec3, rayNormal vmath.Vec3) float32 {
	length := eye.Sub(anchor).Dot(rayNormal) / vmath.WorldUp.Dot(rayNormal)
	return vmath.Clamp(length, -MaxWaveSize, MaxWaveSize)
}

// Height returns the contribution of w at a field point given in
// normalized row and column coordinates.
func (w Wave) Height(rowNorm, colNorm, repetitions float32) float32 {
	dx := float64(colNorm - w.X)
	dy := float64(rowNorm - w.Y)
	r := float32(math.Sqrt(dx*dx + dy*dy))

	place := r*vmath.Pi*repetitions - w.Time*w.Speed

	// one crest and its trailing trough
	if place < -0.5*vmath.Pi || place > 1.5*vmath.Pi {
		return 0
	}

	c := float32(math.Cos(float64(place)))
	if place > vmath.Pi || place < 0 {
		c = c * c * c
	}
	if c < 0 {
		c /= 6
	}
	return w.Size * c
}

// FieldParams shape the generated heightmap
type FieldParams struct {
	MirrorRow   int
	Repetitions float32
	HeroRow     int
	HeroCol     int
	HeroRadius  int
}

// DefaultFieldParams reads the generation settings for a field of the given width
func DefaultFieldParams(width int) FieldParams {
	heroRow, heroCol, heroRadius := config.GetHero()
	return FieldParams{
		MirrorRow:   int(config.GetMirrorRatio() * float32(width)),
		Repetitions: config.GetRepetitions(),
		HeroRow:     heroRow,
		HeroCol:     heroCol,
		HeroRadius:  heroRadius,
	}
}

func (p FieldParams) onHero(row, col int) bool {
	dr, dc := p.HeroRow-row, p.HeroCol-col
	return dr*dr+dc*dc < p.HeroRadius*p.HeroRadius
}

// Generate fills hm from the waves. Rows past the mirror row stay flat;
// every wave also contributes through its reflection in the mirror row.
// The hero plateau is pinned at height 1.
func Generate(hm *Heightmap, waves []Wave, p FieldParams) {
	defer profiling.Track("sim.Generate")()
	hm.Clear()

	mirror := min(p.MirrorRow, hm.Width)
	for row := 0; row < mirror; row++ {
		rowNorm := hm.norm(row)
		mirroredNorm := hm.norm(2*p.MirrorRow - row)

		for col := 0; col < hm.Width; col++ {
			if p.onHero(row, col) {
				hm.Set(row, col, 1)
				continue
			}

			colNorm := hm.norm(col)
			var acc float32
			for _, w := range waves {
				acc += w.Height(rowNorm, colNorm, p.Repetitions)
				acc += w.Height(mirroredNorm, colNorm, p.Repetitions)
			}
			hm.Set(row, col, acc)
		}
	}
}

// GenerateFlat raises every row before the mirror row to height 1
func GenerateFlat(hm *Heightmap, p FieldParams) {
	defer profiling.Track("sim.GenerateFlat")()
	hm.Clear()

	mirror := min(p.MirrorRow, hm.Width)
	for row := 0; row < mirror; row++ {
		for col := 0; col < hm.Width; col++ {
			hm.Set(row, col, 1)
		}
	}
}
