package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Transparent passes the ray straight through unattenuated, from a new
// origin just past the hit point. It's used as an alpha cutout, typically
// mixed with an opaque material by Mix using an image alpha channel.
type Transparent struct{}

func NewTransparent() *Transparent { return &Transparent{} }

func (t *Transparent) Scatter(rIn vec3.Ray, rec core.HitRecord, src *rng.Source) (core.ScatterRecord, bool) {
	return core.ScatterRecord{
		Specular:    true,
		SpecularRay: vec3.NewRayAt(rec.P, rIn.Direction, rIn.Time),
		Attenuation: vec3.Color{X: 1, Y: 1, Z: 1},
	}, true
}

func (t *Transparent) Emitted(rIn vec3.Ray, rec core.HitRecord) vec3.Color { return vec3.Color{} }
