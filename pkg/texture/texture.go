// Package texture implements the Texture interface consumed by materials:
// a solid color, a 3-D checker, an (optionally sRGB-decoded) image lookup,
// and a Perlin-noise turbulence pattern.
package texture

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Solid always returns the same color, independent of (u,v,p).
type Solid struct {
	Color vec3.Color
}

func NewSolid(c vec3.Color) *Solid { return &Solid{Color: c} }

func (s *Solid) Value(u, v float64, p vec3.Point3) vec3.Color { return s.Color }

// Checker alternates between two sub-textures by the parity of
// floor(x/scale)+floor(y/scale)+floor(z/scale), with InvScale = 1/scale.
type Checker struct {
	InvScale  float64
	Even, Odd core.Texture
}

// NewChecker builds a checker pattern whose cells are scale units wide.
func NewChecker(scale float64, even, odd core.Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors is a convenience constructor taking solid colors.
func NewCheckerColors(scale float64, even, odd vec3.Color) *Checker {
	return NewChecker(scale, NewSolid(even), NewSolid(odd))
}

func (c *Checker) Value(u, v float64, p vec3.Point3) vec3.Color {
	x := int(math.Floor(c.InvScale * p.X))
	y := int(math.Floor(c.InvScale * p.Y))
	z := int(math.Floor(c.InvScale * p.Z))
	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}

// Perlin is a turbulence pattern built from octaves of gradient noise. It
// is backed by aquilax/go-perlin rather than a hand-rolled permutation
// table: the library's 2-D gradient noise is sampled on three orthogonal
// planes and summed, the standard way to fake 3-D turbulence out of a 2-D
// generator.
type Perlin struct {
	noise *perlin.Perlin
	Scale float64
}

// NewPerlin builds a turbulence texture. seed makes the pattern
// reproducible across renders of the same scene.
func NewPerlin(scale float64, seed int64) *Perlin {
	// alpha=2, beta=2, n=3 octaves matches the library's own example usage.
	return &Perlin{noise: perlin.NewPerlin(2, 2, 3, seed), Scale: scale}
}

func (p *Perlin) Value(u, v float64, point vec3.Point3) vec3.Color {
	turb := p.turbulence(point.Scale(p.Scale), 7)
	gray := 0.5 * (1 + math.Sin(p.Scale*point.Z+10*turb))
	return vec3.Color{X: gray, Y: gray, Z: gray}
}

func (p *Perlin) turbulence(point vec3.Point3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	x, y, z := point.X, point.Y, point.Z
	for i := 0; i < depth; i++ {
		accum += weight * average3(
			p.noise.Noise2D(x, y),
			p.noise.Noise2D(y, z),
			p.noise.Noise2D(z, x),
		)
		weight *= 0.5
		x, y, z = x*2, y*2, z*2
	}
	return math.Abs(accum)
}

func average3(a, b, c float64) float64 { return (a + b + c) / 3 }
