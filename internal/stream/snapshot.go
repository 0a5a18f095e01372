package stream

import (
	"slices"
	"wavelab/internal/sim"
)

// WaveInfo is one active wave as sent to clients
type WaveInfo struct {
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Speed float32 `json:"speed"`
	Size  float32 `json:"size"`
	Time  float32 `json:"time"`
}

// Snapshot is the JSON message broadcast for one frame. Heights are
// row-major, Width x Width.
type Snapshot struct {
	Width     int        `json:"width"`
	Heights   []float32  `json:"heights"`
	Waves     []WaveInfo `json:"waves"`
	Collected []bool     `json:"collected"`
	Frame     uint64     `json:"frame"`
}

// NewSnapshot copies what clients need out of s
func NewSnapshot(s *sim.State) Snapshot {
	waves := make([]WaveInfo, len(s.Waves))
	for i, w := range s.Waves {
		waves[i] = WaveInfo{X: w.X, Y: w.Y, Speed: w.Speed, Size: w.Size, Time: w.Time}
	}
	return Snapshot{
		Width:     s.Heightmap.Width,
		Heights:   slices.Clone(s.Heightmap.Vals),
		Waves:     waves,
		Collected: slices.Clone(s.Stars[:]),
		Frame:     s.Frame,
	}
}
