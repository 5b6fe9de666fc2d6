package texture

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Image samples a decoded raster. LDR sources are sRGB-decoded to linear on
// load unless Raw is set (used for normal maps); HDR sources are assumed
// already linear. Decoding itself is handled by pkg/loaders; this type only
// consumes an image.Image.
type Image struct {
	pixels   image.Image
	width    int
	height   int
	bilinear bool
}

// NewImage wraps a decoded image. raw disables sRGB decoding (the caller
// passes true for HDR/EXR sources, which arrive already linear, and for
// normal maps, which must not be gamma-transformed).
func NewImage(img image.Image, raw, bilinear bool) *Image {
	b := img.Bounds()
	t := &Image{pixels: img, width: b.Dx(), height: b.Dy(), bilinear: bilinear}
	if !raw {
		t.pixels = decodeSRGB(img)
	}
	return t
}

func (t *Image) Value(u, v float64, p vec3.Point3) vec3.Color {
	if t.width <= 0 || t.height <= 0 {
		return vec3.Color{} // magenta-free fallback: black signals a missing asset upstream
	}
	// Flip v: image row 0 is the top of the texture, but v=0 is
	// conventionally the bottom in this renderer's UV convention.
	u = vec3.NewInterval(0, 1).Clamp(u)
	v = 1 - vec3.NewInterval(0, 1).Clamp(v)

	fx := u * float64(t.width)
	fy := v * float64(t.height)

	if !t.bilinear {
		return t.texel(int(fx), int(fy))
	}

	x0, y0 := int(math.Floor(fx-0.5)), int(math.Floor(fy-0.5))
	tx, ty := fx-0.5-float64(x0), fy-0.5-float64(y0)
	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)
	top := vec3.Lerp(c00, c10, tx)
	bottom := vec3.Lerp(c01, c11, tx)
	return vec3.Lerp(top, bottom, ty)
}

func (t *Image) texel(x, y int) vec3.Color {
	x = clampInt(x, 0, t.width-1)
	y = clampInt(y, 0, t.height-1)
	r, g, b, _ := t.pixels.At(x+t.pixels.Bounds().Min.X, y+t.pixels.Bounds().Min.Y).RGBA()
	const max = 65535.0
	return vec3.Color{X: float64(r) / max, Y: float64(g) / max, Z: float64(b) / max}
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// decodeSRGB wraps img so RGBA() reads come back sRGB-decoded to linear.
// Implemented lazily (a view, not a copy) so large textures aren't
// double-buffered.
func decodeSRGB(img image.Image) image.Image {
	return &srgbView{inner: img}
}

type srgbView struct{ inner image.Image }

func (s *srgbView) ColorModel() color.Model  { return s.inner.ColorModel() }
func (s *srgbView) Bounds() image.Rectangle  { return s.inner.Bounds() }
func (s *srgbView) At(x, y int) color.Color {
	r, g, b, a := s.inner.At(x, y).RGBA()
	const max = 65535.0
	lr, lg, lb := srgbToLinear(float64(r)/max), srgbToLinear(float64(g)/max), srgbToLinear(float64(b)/max)
	return color.NRGBA64{
		R: uint16(lr * max), G: uint16(lg * max), B: uint16(lb * max), A: uint16(a),
	}
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
