package graphics

import (
	"image"
	"image/color"
	"wavelab/internal/profiling"
	"wavelab/internal/sim"
	"wavelab/pkg/vmath"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// HeightGray maps a height to the overlay gray level: (v+0.5)/3, clamped to [0, 1]
func HeightGray(v float32) uint8 {
	g := vmath.Clamp((v+0.5)/3, 0, 1)
	return uint8(g*255 + 0.5)
}

// HeightmapImage renders hm one pixel per cell, row r on image line r
func HeightmapImage(hm *sim.Heightmap) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, hm.Width, hm.Width))
	for row := 0; row < hm.Width; row++ {
		line := img.Pix[row*img.Stride : row*img.Stride+hm.Width]
		for col := range line {
			line[col] = HeightGray(hm.At(row, col))
		}
	}
	return img
}

// OverlayImage scales the heightmap up to size x size and, when face is
// non-nil, stamps label in the top-left corner.
func OverlayImage(hm *sim.Heightmap, size int, face font.Face, label string) *image.RGBA {
	defer profiling.Track("graphics.OverlayImage")()

	if size < hm.Width {
		size = hm.Width
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	src := HeightmapImage(hm)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	if face != nil && label != "" {
		w, h := MeasureLabel(face, label)
		bg := image.Rect(0, 0, w+4, h+4).Intersect(dst.Bounds())
		draw.Draw(dst, bg, image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)
		DrawLabel(dst, face, 2, 2, label, color.RGBA{R: 255, G: 255, A: 255})
	}
	return dst
}
