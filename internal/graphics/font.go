package graphics

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultLabelPixels is the glyph size used for overlay labels
const DefaultLabelPixels = 13

// LoadFontFace parses a TrueType or OpenType font file into a face of the given pixel size
func LoadFontFace(fontPath string, fontPixels int) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return parseFace(fontBytes, fontPixels)
}

func parseFace(fontBytes []byte, fontPixels int) (font.Face, error) {
	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(fontPixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// LabelFace returns the face for overlay labels: fontPath when given,
// the bundled Go Regular otherwise, and the fixed 7x13 bitmap face if
// neither can be loaded.
func LabelFace(fontPath string, fontPixels int) font.Face {
	if fontPath != "" {
		face, err := LoadFontFace(fontPath, fontPixels)
		if err == nil {
			return face
		}
		log.Printf("label font %s: %v", fontPath, err)
	}

	face, err := parseFace(goregular.TTF, fontPixels)
	if err != nil {
		log.Printf("label font: %v, falling back to 7x13", err)
		return basicfont.Face7x13
	}
	return face
}

// DrawLabel draws text with its top-left corner at (x, y)
func DrawLabel(dst *image.RGBA, face font.Face, x, y int, text string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// MeasureLabel returns the width and line height of text in pixels
func MeasureLabel(face font.Face, text string) (int, int) {
	m := face.Metrics()
	return font.MeasureString(face, text).Ceil(), (m.Ascent + m.Descent).Ceil()
}
