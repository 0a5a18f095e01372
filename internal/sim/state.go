package sim

import (
	"math"
	"slices"
	"wavelab/internal/config"
	"wavelab/internal/profiling"
	"wavelab/pkg/vmath"
)

// Mode selects what the field does
type Mode int

const (
	ModeWaves Mode = iota // mouse-dragged ripples, mirror wall, stars
	ModeFlat              // raised block before the mirror row, picking only
)

func (m Mode) String() string {
	if m == ModeFlat {
		return "flat"
	}
	return "waves"
}

// FrameInput is everything Advance needs from the outside world for one frame
type FrameInput struct {
	Dt     float32 // seconds since the previous frame
	Aspect float32
	Cursor vmath.Vec2 // NDC, y pointing down

	MouseDown bool

	// true on the frame the key went down
	ToggleDebug   bool
	ToggleOverlay bool
	Reset         bool

	// true while held
	ZoomIn      bool
	ZoomOut     bool
	RotateLeft  bool
	RotateRight bool
}

// State is the whole simulation for one frame. It holds no GL
// resources; renderers read it after Advance.
type State struct {
	Mode   Mode
	Orbit  Orbit
	Params FieldParams

	Heightmap *Heightmap
	Waves     []Wave
	WaveState WaveState

	// cell and height a wave being dragged was started from
	Anchor       Cell
	AnchorHeight float32

	Debug   bool
	Overlay bool

	Picked    Cell
	PickScore float32
	HasPick   bool

	Stars [NumStars]bool

	View vmath.Mat4
	Proj vmath.Mat4
	Ray  Ray

	Time  float32
	Frame uint64
}

// NewState returns the initial state for a field of the given width
func NewState(mode Mode, width int) State {
	return State{
		Mode:      mode,
		Orbit:     DefaultOrbit(),
		Params:    DefaultFieldParams(width),
		Heightmap: NewHeightmap(width),
		WaveState: WaveSimulate,
		Picked:    Cell{Row: -1, Col: -1},
		View:      vmath.Identity(),
		Proj:      vmath.Identity(),
	}
}

// Advance steps the simulation by one frame. s is left untouched; the
// returned state owns fresh copies of the heightmap and waves.
func Advance(s State, in FrameInput) State {
	defer profiling.Track("sim.Advance")()

	out := s
	out.Heightmap = s.Heightmap.Clone()
	out.Waves = slices.Clone(s.Waves)
	out.Frame++
	out.Time += in.Dt

	if in.ToggleDebug {
		out.Debug = !out.Debug
	}
	if in.ToggleOverlay {
		out.Overlay = !out.Overlay
	}
	if in.Reset {
		out.Waves = out.Waves[:0]
		out.Stars = [NumStars]bool{}
		out.WaveState = WaveSimulate
	}

	if out.Mode == ModeWaves {
		out.WaveState = NextWaveState(out.WaveState, in.MouseDown)
	}

	out.Orbit = advanceOrbit(out.Orbit, in)
	out.View, out.Proj = Camera(out.Orbit, in.Aspect)
	out.Ray = MouseRay(out.View, out.Proj, in.Cursor)
	eye := out.Orbit.Eye()

	switch out.Mode {
	case ModeFlat:
		GenerateFlat(out.Heightmap, out.Params)
	default:
		Generate(out.Heightmap, out.Waves, out.Params)
		for i := range out.Waves {
			out.Waves[i].Time += in.Dt
		}
	}

	out.Picked, out.PickScore, out.HasPick = Pick(out.Heightmap, eye, out.Ray.Dir)

	if out.Mode == ModeWaves {
		out.Stars = CollectStars(out.Heightmap, out.Stars)
		advanceDrag(&out, eye)
	}

	return out
}

func advanceOrbit(o Orbit, in FrameInput) Orbit {
	var zoom float32
	if in.ZoomIn {
		zoom = -config.GetZoomStep()
	} else if in.ZoomOut {
		zoom = config.GetZoomStep()
	}
	o = o.Zoom(zoom)

	if in.RotateLeft {
		o = o.Rotate(config.GetRotationStep())
	} else if in.RotateRight {
		o = o.Rotate(-config.GetRotationStep())
	}
	return o
}

// advanceDrag places, sizes and releases the wave under the cursor
func advanceDrag(s *State, eye vmath.Vec3) {
	switch s.WaveState {
	case WaveAdd:
		if !s.HasPick {
			s.WaveState = WaveSimulate
			return
		}
		if len(s.Waves) >= MaxWaves {
			s.Waves = slices.Delete(s.Waves, 0, 1)
		}
		s.Waves = append(s.Waves, Wave{
			X: s.Heightmap.norm(s.Picked.Col),
			Y: s.Heightmap.norm(s.Picked.Row),
		})
		s.Anchor = s.Picked
		s.AnchorHeight = s.Heightmap.At(s.Picked.Row, s.Picked.Col)

	case WaveAdding:
		if len(s.Waves) == 0 {
			return
		}
		anchor := s.Heightmap.PositionAt(s.Anchor, s.AnchorHeight)
		size := DragSize(eye, anchor, s.Ray.Normal)
		// ray parallel to the drag plane
		if !math.IsNaN(float64(size)) {
			s.Waves[len(s.Waves)-1].Size = size
		}

	case WaveDoneAdding:
		if len(s.Waves) == 0 {
			return
		}
		last := &s.Waves[len(s.Waves)-1]
		last.Speed = ReleaseSpeed(last.Size)
		last.Time = 0
	}
}
