package sim

import (
	"math"
	"testing"
	"wavelab/pkg/vmath"
)

func TestNextWaveState(t *testing.T) {
	tests := []struct {
		prev  WaveState
		mouse bool
		want  WaveState
	}{
		{WaveSimulate, false, WaveSimulate},
		{WaveSimulate, true, WaveAdd},
		{WaveAdd, true, WaveAdding},
		{WaveAdding, true, WaveAdding},
		{WaveAdding, false, WaveDoneAdding},
		{WaveDoneAdding, false, WaveSimulate},
		{WaveDoneAdding, true, WaveAdd},
		// released before the first drag frame: straight to DoneAdding
		{WaveAdd, false, WaveDoneAdding},
	}

	for _, c := range tests {
		if got := NextWaveState(c.prev, c.mouse); got != c.want {
			t.Errorf("NextWaveState(%v, %v): expected %v, got %v", c.prev, c.mouse, c.want, got)
		}
	}
}

func TestReleaseSpeed(t *testing.T) {
	want := float32(5 * math.Pow(0.8, 1.5))

	if got := ReleaseSpeed(0.8); !vmath.NearlyEqual(got, want, 1e-5) {
		t.Errorf("ReleaseSpeed(0.8): expected %v, got %v", want, got)
	}
	if got := ReleaseSpeed(-0.8); !vmath.NearlyEqual(got, -want, 1e-5) {
		t.Errorf("ReleaseSpeed(-0.8): expected %v, got %v", -want, got)
	}
	if got := ReleaseSpeed(0); got != 0 {
		t.Errorf("ReleaseSpeed(0): expected 0, got %v", got)
	}
}

func TestDragSize(t *testing.T) {
	tests := []struct {
		eyeY float32
		want float32
	}{
		{0.5, 0.5},
		{3, MaxWaveSize},
		{-3, -MaxWaveSize},
	}

	for _, c := range tests {
		got := DragSize(vmath.V3(1, c.eyeY, 1), vmath.Zero3, vmath.UnitY)
		if !vmath.NearlyEqual(got, c.want, 1e-6) {
			t.Errorf("DragSize(eye y=%v): expected %v, got %v", c.eyeY, c.want, got)
		}
	}
}

func TestWave_Height(t *testing.T) {
	w := Wave{X: 0.5, Y: 0.5, Size: 1}

	tests := []struct {
		name string
		r    float32
		want float32
	}{
		{"crest", 0, 1},
		{"zero crossing", 0.125, 0},
		{"trough", 0.25, -1.0 / 6},
		{"cubed tail", 0.3, float32(math.Pow(math.Cos(1.2*math.Pi), 3) / 6)},
		{"outside", 0.4, 0},
	}

	for _, c := range tests {
		got := w.Height(0.5+c.r, 0.5, 4)
		if math.Abs(float64(got-c.want)) > 1e-4 {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

func TestWave_HeightTravels(t *testing.T) {
	w := Wave{X: 0.5, Y: 0.5, Size: 1, Speed: math.Pi, Time: 1}

	// after moving by pi the crest sits a quarter radius out
	if got := w.Height(0.75, 0.5, 4); math.Abs(float64(got-1)) > 1e-4 {
		t.Errorf("crest after travel: expected 1, got %v", got)
	}
	if got := w.Height(0.5, 0.5, 4); got != 0 {
		t.Errorf("center behind the wave should be flat, got %v", got)
	}
}

func testParams(width int) FieldParams {
	return FieldParams{
		MirrorRow:   int(0.9 * float32(width)),
		Repetitions: 4,
		HeroRow:     10,
		HeroCol:     20,
		HeroRadius:  5,
	}
}

func TestGenerate_HeroPlateau(t *testing.T) {
	hm := NewHeightmap(90)
	Generate(hm, nil, testParams(90))

	tests := []struct {
		cell Cell
		want float32
	}{
		{Cell{10, 20}, 1},
		{Cell{10, 24}, 1},
		{Cell{13, 23}, 1}, // 9+9 < 25
		{Cell{10, 25}, 0}, // exactly on the radius is outside
		{Cell{14, 24}, 0}, // 16+16
		{Cell{50, 50}, 0},
	}

	for _, c := range tests {
		if got := hm.At(c.cell.Row, c.cell.Col); got != c.want {
			t.Errorf("cell %v: expected %v, got %v", c.cell, c.want, got)
		}
	}
}

func TestGenerate_BeyondMirrorIsFlat(t *testing.T) {
	hm := NewHeightmap(90)
	p := testParams(90)
	waves := []Wave{{X: 0.5, Y: 0.85, Size: 0.8}}

	Generate(hm, waves, p)

	for row := p.MirrorRow; row < hm.Width; row++ {
		for col := 0; col < hm.Width; col++ {
			if v := hm.At(row, col); v != 0 {
				t.Fatalf("cell (%d, %d) past the mirror row: expected 0, got %v", row, col, v)
			}
		}
	}
	if hm.At(p.MirrorRow-5, 45) == 0 {
		t.Error("expected the wave to raise cells before the mirror row")
	}
}

func TestGenerate_MirrorSymmetry(t *testing.T) {
	width := 64
	p := testParams(width)
	p.HeroRadius = 0
	mirror := float32(p.MirrorRow) / float32(width)

	a := NewHeightmap(width)
	b := NewHeightmap(width)

	// a wave and its reflection in the mirror row raise the same field
	y := float32(0.7)
	Generate(a, []Wave{{X: 0.4, Y: y, Size: 0.5}}, p)
	Generate(b, []Wave{{X: 0.4, Y: 2*mirror - y, Size: 0.5}}, p)

	for i := range a.Vals {
		if math.Abs(float64(a.Vals[i]-b.Vals[i])) > 1e-3 {
			t.Fatalf("index %d: %v vs %v", i, a.Vals[i], b.Vals[i])
		}
	}
}

func TestGenerateFlat(t *testing.T) {
	hm := NewHeightmap(20)
	p := testParams(20)
	GenerateFlat(hm, p)

	for row := 0; row < hm.Width; row++ {
		want := float32(0)
		if row < p.MirrorRow {
			want = 1
		}
		if got := hm.At(row, 7); got != want {
			t.Errorf("row %d: expected %v, got %v", row, want, got)
		}
	}
}

func BenchmarkGenerate(b *testing.B) {
	hm := NewHeightmap(90)
	p := testParams(90)
	waves := make([]Wave, 20)
	for i := range waves {
		waves[i] = Wave{X: float32(i) / 20, Y: 0.3, Size: 0.4, Speed: 2, Time: 0.1}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Generate(hm, waves, p)
	}
}
