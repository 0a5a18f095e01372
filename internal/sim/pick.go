package sim

import (
	"wavelab/internal/profiling"
	"wavelab/pkg/vmath"
)

// CellScore is the cosine between the ray and the line from eye to
// pos; 1 means pos is dead center under the cursor.
func CellScore(pos, eye, dir vmath.Vec3) float32 {
	return pos.Sub(eye).Normalize().Dot(dir)
}

// Pick returns the cell whose top is closest in angle to the ray. ok is
// false only for an empty heightmap.
func Pick(hm *Heightmap, eye, dir vmath.Vec3) (best Cell, score float32, ok bool) {
	defer profiling.Track("sim.Pick")()

	best = Cell{Row: -1, Col: -1}
	score = -1
	for row := 0; row < hm.Width; row++ {
		for col := 0; col < hm.Width; col++ {
			c := Cell{Row: row, Col: col}
			if s := CellScore(hm.CellPosition(c), eye, dir); s > score {
				score = s
				best = c
				ok = true
			}
		}
	}
	return best, score, ok
}
