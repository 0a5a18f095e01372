package graphics

import "testing"

func TestViewport(t *testing.T) {
	v := NewViewport(800, 400)
	if got := v.Aspect(); got != 2 {
		t.Errorf("expected aspect 2, got %v", got)
	}

	// minimized windows report a zero framebuffer
	v.Resize(0, 0)
	if v.Width != 800 || v.Height != 400 {
		t.Errorf("zero resize should keep 800x400, got %dx%d", v.Width, v.Height)
	}

	ndc := v.CursorNDC(400, 200)
	if ndc.X != 0 || ndc.Y != 0 {
		t.Errorf("center of the window: expected (0, 0), got %v", ndc)
	}
}
