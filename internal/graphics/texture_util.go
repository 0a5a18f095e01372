package graphics

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// ErrBadPNG is returned for data that does not start with a PNG header
var ErrBadPNG = errors.New("bad png format")

// PNG color types as stored in the IHDR chunk
const (
	ColorGray      = 0
	ColorRGB       = 2
	ColorPalette   = 3
	ColorGrayAlpha = 4
	ColorRGBA      = 6
)

// PNGInfo is the header of a PNG file together with its decoded pixels
type PNGInfo struct {
	Width      int
	Height     int
	ColorType  uint8
	BitDepth   uint8
	Interlaced bool
	Image      image.Image
}

// Passes is the number of interlace passes, 7 for Adam7 and 1 otherwise
func (p *PNGInfo) Passes() int {
	if p.Interlaced {
		return 7
	}
	return 1
}

func (p *PNGInfo) ColorTypeName() string {
	switch p.ColorType {
	case ColorGray:
		return "gray"
	case ColorRGB:
		return "rgb"
	case ColorPalette:
		return "palette"
	case ColorGrayAlpha:
		return "gray+alpha"
	case ColorRGBA:
		return "rgba"
	default:
		return fmt.Sprintf("unknown(%d)", p.ColorType)
	}
}

// ReadPNG reads and decodes a PNG file, keeping the header fields the
// image package does not expose
func ReadPNG(path string) (*PNGInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	info, err := DecodePNG(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return info, nil
}

// DecodePNG decodes a PNG stream. The IHDR chunk must directly follow
// the signature.
func DecodePNG(r io.Reader) (*PNGInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// signature, chunk length, "IHDR", then 13 bytes of header data
	if len(data) < 8+8+13 || !bytes.Equal(data[:8], pngSignature) || string(data[12:16]) != "IHDR" {
		return nil, ErrBadPNG
	}
	ihdr := data[16:29]

	info := &PNGInfo{
		Width:      int(binary.BigEndian.Uint32(ihdr[0:4])),
		Height:     int(binary.BigEndian.Uint32(ihdr[4:8])),
		BitDepth:   ihdr[8],
		ColorType:  ihdr[9],
		Interlaced: ihdr[12] == 1,
	}

	info.Image, err = png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return info, nil
}

// ToRGBA converts any image to tightly packed RGBA, origin at (0, 0)
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// DefaultImage is the 1x1 stand-in used when a texture cannot be read
func DefaultImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 0, B: 255, A: 255})
	return img
}

// LoadTexture loads a 2D texture from a file
func LoadTexture(path string) (uint32, int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	rgba := ToRGBA(img)
	return UploadTexture(rgba), rgba.Rect.Dx(), rgba.Rect.Dy(), nil
}

// UploadTexture creates a nearest-filtered, edge-clamped texture from rgba
func UploadTexture(rgba *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	UpdateTexture(texture, rgba)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// UpdateTexture replaces the pixels of an existing texture
func UpdateTexture(texture uint32, rgba *image.RGBA) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Dx()),
		int32(rgba.Rect.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
}
