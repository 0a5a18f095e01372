package sim

import (
	"math"
	"wavelab/pkg/vmath"
)

const (
	NumStars   = 15
	RingRadius = 2
)

var (
	ringCenter = vmath.V3(0, 0.5, 0)
	starLift   = vmath.V3(0, 0.3, 0)
)

// RingDir is the horizontal direction of spoke i
func RingDir(i int) vmath.Vec3 {
	t := 2 * math.Pi * float64(i) / NumStars
	return vmath.V3(float32(math.Cos(t)), 0, float32(math.Sin(t)))
}

// RingCenter is where the spokes start
func RingCenter() vmath.Vec3 {
	return ringCenter
}

// StarPosition is where star i floats: above its spoke, at 0.7 of the ring radius
func StarPosition(i int) vmath.Vec3 {
	return ringCenter.Add(starLift).Add(RingDir(i).Mul(0.7 * RingRadius))
}

// CollectStars marks every star whose cell has risen above it. Stars
// outside the field are never collected.
func CollectStars(hm *Heightmap, collected [NumStars]bool) [NumStars]bool {
	for i := range collected {
		if collected[i] {
			continue
		}
		p := StarPosition(i)
		c, ok := hm.CellUnder(p.X, p.Z)
		if ok && hm.At(c.Row, c.Col) > p.Y {
			collected[i] = true
		}
	}
	return collected
}

// CountCollected returns how many stars are collected
func CountCollected(collected [NumStars]bool) int {
	n := 0
	for _, c := range collected {
		if c {
			n++
		}
	}
	return n
}
