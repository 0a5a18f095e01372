package config

import (
	"testing"
	"time"
)

func TestSetTerrainWidth_Clamps(t *testing.T) {
	defer Reset()

	tests := []struct {
		in, want int
	}{
		{90, 90},
		{1, MinTerrainWidth},
		{10000, MaxTerrainWidth},
	}
	for _, c := range tests {
		SetTerrainWidth(c.in)
		if got := GetTerrainWidth(); got != c.want {
			t.Errorf("SetTerrainWidth(%d): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestSetFPSLimit(t *testing.T) {
	defer Reset()

	SetFPSLimit(-5)
	if GetFPSLimit() != 0 {
		t.Errorf("negative limit should disable the limiter, got %d", GetFPSLimit())
	}
	SetFPSLimit(60)
	if GetFPSLimit() != 60 {
		t.Errorf("expected 60, got %d", GetFPSLimit())
	}
}

func TestSetZoomBounds_Order(t *testing.T) {
	defer Reset()

	SetZoomBounds(30, 3)
	lo, hi := GetZoomBounds()
	if lo != 3 || hi != 30 {
		t.Errorf("expected (3, 30), got (%v, %v)", lo, hi)
	}
}

func TestSetStreamInterval_Floor(t *testing.T) {
	defer Reset()

	SetStreamInterval(time.Millisecond)
	if got := GetStreamInterval(); got != 100*time.Millisecond {
		t.Errorf("stream interval should not go below 100ms, got %v", got)
	}
}

func TestDefaults(t *testing.T) {
	Reset()
	ResetFieldGen()

	if w, h := GetWindowSize(); w != 800 || h != 800 {
		t.Errorf("window size: got %dx%d", w, h)
	}
	if GetTerrainWidth() != 90 {
		t.Errorf("terrain width: got %d", GetTerrainWidth())
	}
	if GetMirrorRatio() != 0.9 {
		t.Errorf("mirror ratio: got %v", GetMirrorRatio())
	}
	if row, col, r := GetHero(); row != 10 || col != 20 || r != 5 {
		t.Errorf("hero: got (%d, %d, %d)", row, col, r)
	}
}
