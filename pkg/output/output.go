// Package output converts a linear-RGB frame buffer into the final 8-bit
// sRGB PNG: an optional tonemapping curve (linear pass-through or ACES)
// followed by gamma/sRGB encoding and quantization.
package output

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Tonemap names a supported HDR-to-display curve.
type Tonemap int

const (
	// Linear passes the color through unchanged (only clamped downstream).
	Linear Tonemap = iota
	// ACES applies the Narkowicz fit used as a fast approximation to the
	// ACES filmic curve.
	ACES
)

// Apply runs the tonemap curve on a linear-RGB color. Both curves leave
// black at black; ACES is monotone per channel and saturates toward 1 as
// the input grows without bound.
func (t Tonemap) Apply(c vec3.Color) vec3.Color {
	switch t {
	case ACES:
		return vec3.Color{X: acesChannel(c.X), Y: acesChannel(c.Y), Z: acesChannel(c.Z)}
	default:
		return c
	}
}

func acesChannel(x float64) float64 {
	const a, b, cc, d, e = 2.51, 0.03, 2.43, 0.59, 0.14
	if math.IsInf(x, 1) {
		return 1
	}
	v := (x * (a*x + b)) / (x*(cc*x+d) + e)
	return math.Max(0, math.Min(1, v))
}

// Frame is a linear-RGB image buffer, one Color per pixel, row-major from
// the top-left corner (matching pkg/camera's pixel(0,0) convention).
type Frame struct {
	Width, Height int
	Pixels        []vec3.Color
}

// NewFrame allocates a black frame of the given dimensions.
func NewFrame(width, height int) *Frame {
	return &Frame{Width: width, Height: height, Pixels: make([]vec3.Color, width*height)}
}

// Set writes the color for pixel (x,y). Each cell is written by at most one
// render worker; Frame itself does no synchronization.
func (f *Frame) Set(x, y int, c vec3.Color) {
	f.Pixels[y*f.Width+x] = c
}

// At reads the color at pixel (x,y).
func (f *Frame) At(x, y int) vec3.Color {
	return f.Pixels[y*f.Width+x]
}

// Encode tonemaps and sRGB-encodes the frame into an 8-bit RGB image.
func (f *Frame) Encode(tm Tonemap) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			if !c.IsFinite() {
				c = vec3.Color{}
			}
			c = tm.Apply(c).Clamp(0, 1)
			img.SetRGBA(x, y, color.RGBA{
				R: encodeChannel(c.X),
				G: encodeChannel(c.Y),
				B: encodeChannel(c.Z),
				A: 255,
			})
		}
	}
	return img
}

// encodeChannel applies the sRGB transfer function (piecewise, gamma~2.4)
// to a linear [0,1] channel and quantizes to 8 bits.
func encodeChannel(linear float64) uint8 {
	var srgb float64
	if linear <= 0.0031308 {
		srgb = linear * 12.92
	} else {
		srgb = 1.055*math.Pow(linear, 1/2.4) - 0.055
	}
	return uint8(math.Round(math.Max(0, math.Min(1, srgb)) * 255))
}

// WritePNG encodes the frame and writes it as a PNG to w.
func (f *Frame) WritePNG(w io.Writer, tm Tonemap) error {
	return png.Encode(w, f.Encode(tm))
}
