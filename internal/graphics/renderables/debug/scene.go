package debug

import (
	"math"
	"wavelab/internal/sim"
	"wavelab/pkg/vmath"
)

// LineThickness is the side of the box a debug line is drawn as
const LineThickness = 0.01

var (
	ScoreColor  = vmath.V3(0.8, 0.9, 0.6)
	MirrorColor = vmath.V3(1, 0, 0)
	HeroColor   = vmath.V3(1, 0.5, 0.5)
	SpokeColor  = vmath.V3(1, 1, 1)
	ShadowColor = vmath.V3(0, 0, 0)
	StarColor   = vmath.V3(0.8, 0.8, 0)
)

// Line is one colored segment of the debug scene
type Line struct {
	From  vmath.Vec3
	To    vmath.Vec3
	Color vmath.Vec3
}

// StarDirections are the 26 offsets from the center of a 3x3x3 grid to its other points
func StarDirections() [26]vmath.Vec3 {
	var dirs [26]vmath.Vec3
	n := 0
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			for k := -1; k <= 1; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				dirs[n] = vmath.V3(float32(i), float32(j), float32(k))
				n++
			}
		}
	}
	return dirs
}

// AppendStar appends a star of 26 spikes of length scale around p
func AppendStar(lines []Line, p vmath.Vec3, scale float32, color vmath.Vec3) []Line {
	for _, d := range StarDirections() {
		lines = append(lines, Line{From: p, To: p.Add(d.Mul(scale)), Color: color})
	}
	return lines
}

// ScoreBarHeight sharpens a pick score so only cells very near the ray stand out
func ScoreBarHeight(score float32) float32 {
	if score <= 0 {
		return 0
	}
	return float32(math.Pow(float64(score), 500))
}

// Scene builds the debug lines for s. Score bars only appear with the
// debug view on; the mirror wall, hero and star ring belong to the waves
// field.
func Scene(s *sim.State) []Line {
	hm := s.Heightmap
	var lines []Line

	if s.Debug {
		eye := s.Orbit.Eye()
		for row := 0; row < hm.Width; row++ {
			for col := 0; col < hm.Width; col++ {
				p := hm.CellPosition(sim.Cell{Row: row, Col: col})
				h := ScoreBarHeight(sim.CellScore(p, eye, s.Ray.Dir))
				lines = append(lines, Line{From: p, To: p.Add(vmath.V3(0, h, 0)), Color: ScoreColor})
			}
		}
	}

	if s.Mode != sim.ModeWaves {
		return lines
	}

	for col := 0; col < hm.Width; col++ {
		p := hm.PositionAt(sim.Cell{Row: s.Params.MirrorRow, Col: col}, 0)
		lines = append(lines, Line{From: p, To: p.Add(vmath.V3(0, 2, 0)), Color: MirrorColor})
	}

	hero := hm.PositionAt(sim.Cell{Row: s.Params.HeroRow, Col: s.Params.HeroCol}, 0.3)
	lines = AppendStar(lines, hero, 0.1, HeroColor)
	lines = AppendStar(lines, hero.Sub(vmath.V3(0, 0.3, 0)), 0.1, HeroColor)

	center := sim.RingCenter()
	for i := 0; i < sim.NumStars; i++ {
		spoke := sim.RingDir(i).Mul(sim.RingRadius)
		lines = append(lines,
			Line{From: center, To: center.Add(spoke), Color: SpokeColor},
			Line{From: vmath.Zero3, To: spoke, Color: ShadowColor},
		)
		if s.Stars[i] {
			continue
		}
		star := sim.StarPosition(i)
		lines = AppendStar(lines, star, 0.03, StarColor)
		star.Y = 0
		lines = AppendStar(lines, star, 0.1, ShadowColor)
	}
	return lines
}
