package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestProbe(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "gray.png")

	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 3, 4))); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(good, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if !probe(&out, good) {
		t.Fatalf("expected %s to be readable: %s", good, out.String())
	}
	for _, want := range []string{"3x4", "gray", "8-bit", "1 pass(es)", "not interlaced"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report %q is missing %q", out.String(), want)
		}
	}

	out.Reset()
	if probe(&out, filepath.Join(dir, "missing.png")) {
		t.Error("expected a missing file to fail")
	}
	if !strings.Contains(out.String(), "1x1 default") {
		t.Errorf("expected the fallback to be reported, got %q", out.String())
	}
}
