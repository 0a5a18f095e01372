package overlay

import (
	"strings"
	"testing"
	"wavelab/internal/sim"
)

func TestQuadVertices(t *testing.T) {
	v := QuadVertices()
	if len(v) != 16 {
		t.Fatalf("expected 4 corners of 4 floats, got %d floats", len(v))
	}

	for i := 0; i < len(v); i += 4 {
		x, y, u, tv := v[i], v[i+1], v[i+2], v[i+3]
		if x < -1 || x > -1+Extent+1e-6 || y > 1 || y < 1-Extent-1e-6 {
			t.Errorf("corner (%v, %v) outside the top-left region", x, y)
		}
		// top edge samples the first image row
		if (y == 1) != (tv == 0) {
			t.Errorf("corner (%v, %v) has v=%v", x, y, tv)
		}
		if (x == -1) != (u == 0) {
			t.Errorf("corner (%v, %v) has u=%v", x, y, u)
		}
	}
}

func TestLabel(t *testing.T) {
	s := sim.NewState(sim.ModeWaves, 10)
	s.Heightmap.Set(1, 1, 1)
	s.Stars[3] = true

	got := Label(&s)
	for _, want := range []string{"0.00..1.00", "waves 0", "stars 1/15"} {
		if !strings.Contains(got, want) {
			t.Errorf("label %q is missing %q", got, want)
		}
	}

	flat := sim.NewState(sim.ModeFlat, 10)
	if got := Label(&flat); strings.Contains(got, "stars") {
		t.Errorf("flat label should not mention stars: %q", got)
	}
}
