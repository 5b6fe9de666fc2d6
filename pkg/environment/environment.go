// Package environment evaluates background radiance for rays that escape
// the scene without hitting anything, by mapping the ray direction onto a
// core.Texture the same way pkg/texture/image.go maps surface points.
package environment

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Sky queries Source at the spherical-map UV of the ray direction. A solid
// core.Texture (one that ignores u, v) degenerates this to a constant
// background color.
type Sky struct {
	Source core.Texture
}

// NewSky wraps source as an Environment.
func NewSky(source core.Texture) *Sky {
	return &Sky{Source: source}
}

func (s *Sky) Emit(direction vec3.Vec3) vec3.Color {
	unit, ok := vec3.Normalize(direction)
	if !ok {
		return s.Source.Value(0, 0, vec3.Point3{})
	}
	u, v := directionUV(unit)
	return s.Source.Value(u, v, vec3.Point3{})
}

// directionUV maps a unit direction to the spherical (u, v) used for
// environment lookups: u wraps around the Y axis, v runs from the -Y pole
// (v=0) to the +Y pole (v=1).
func directionUV(d vec3.UnitVec3) (u, v float64) {
	u = (math.Atan2(-d.Z(), d.X()) + math.Pi) / (2 * math.Pi)
	v = math.Acos(-d.Y()) / math.Pi
	return u, v
}

// Gradient is a simple two-color vertical gradient background, blended by
// the direction's Y component, for scenes without an environment texture.
type Gradient struct {
	Bottom, Top vec3.Color
}

// NewGradient builds a Bottom-to-Top vertical gradient background.
func NewGradient(bottom, top vec3.Color) *Gradient {
	return &Gradient{Bottom: bottom, Top: top}
}

func (g *Gradient) Emit(direction vec3.Vec3) vec3.Color {
	unit, ok := vec3.Normalize(direction)
	if !ok {
		return g.Bottom
	}
	t := 0.5 * (unit.Y() + 1.0)
	return g.Bottom.Scale(1 - t).Add(g.Top.Scale(t))
}
