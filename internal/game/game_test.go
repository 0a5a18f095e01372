package game

import (
	"strings"
	"testing"
	"time"
	"wavelab/internal/input"
	"wavelab/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestBuildFrameInput(t *testing.T) {
	im := input.NewManager()
	im.HandleKeyEvent(glfw.KeyG, glfw.Press)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleMouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	im.HandleCursorEvent(600, 100)
	im.Poll()

	in := BuildFrameInput(im, 0.016, 1.5, 800, 400)

	if !in.ToggleDebug || !in.ZoomIn || !in.MouseDown {
		t.Errorf("expected debug toggle, zoom in and mouse down, got %+v", in)
	}
	if in.ToggleOverlay || in.Reset || in.ZoomOut || in.RotateLeft || in.RotateRight {
		t.Errorf("unexpected actions in %+v", in)
	}
	if in.Cursor.X != 0.5 || in.Cursor.Y != -0.5 {
		t.Errorf("expected cursor (0.5, -0.5), got %v", in.Cursor)
	}
	if in.Dt != 0.016 || in.Aspect != 1.5 {
		t.Errorf("expected dt 0.016 and aspect 1.5, got %v and %v", in.Dt, in.Aspect)
	}

	// toggles fire once, held keys keep going
	im.Poll()
	in = BuildFrameInput(im, 0.016, 1.5, 800, 400)
	if in.ToggleDebug {
		t.Error("toggle should only fire on the first frame")
	}
	if !in.ZoomIn {
		t.Error("zoom should stay active while held")
	}
}

func TestFPSLimiter(t *testing.T) {
	f := NewFPSLimiter()

	start := time.Now()
	f.wait(0)
	if time.Since(start) > 5*time.Millisecond {
		t.Error("an unlimited frame rate should not wait")
	}

	start = time.Now()
	for i := 0; i < 5; i++ {
		f.wait(200)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("5 frames at 200 FPS took %v, expected at least 20ms", elapsed)
	}
}

func TestSlowFrameReport(t *testing.T) {
	profiling.ResetFrame()
	stop := profiling.Track("renderer.Render")
	time.Sleep(2 * time.Millisecond)
	stop()

	got := slowFrameReport(40 * time.Millisecond)
	if !strings.HasPrefix(got, "Slow frame: 40ms (sim 0s, render ") {
		t.Errorf("unexpected report %q", got)
	}
	if strings.Contains(got, "render 0s") {
		t.Errorf("render time should include the tracked renderer entry, got %q", got)
	}
	if !strings.Contains(got, "Top tasks: renderer.Render:") {
		t.Errorf("expected the renderer entry in the top tasks, got %q", got)
	}
}
