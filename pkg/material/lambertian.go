// Package material implements the Material/BSDF contract from pkg/core:
// Lambert, Metal, Dielectric, DiffuseLight, Isotropic, Transparent, Mix,
// Portal, and the full Disney principled BSDF.
package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/texture"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Lambertian is a perfectly diffuse material: scattering is described by a
// cosine-weighted PDF around the shading normal, textured by Albedo.
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian builds a Lambertian with a solid albedo color.
func NewLambertian(albedo vec3.Color) *Lambertian {
	return &Lambertian{Albedo: texture.NewSolid(albedo)}
}

// NewLambertianTexture builds a Lambertian backed by an arbitrary texture.
func NewLambertianTexture(tex core.Texture) *Lambertian {
	return &Lambertian{Albedo: tex}
}

func (l *Lambertian) Scatter(rIn vec3.Ray, rec core.HitRecord, src *rng.Source) (core.ScatterRecord, bool) {
	albedo := l.Albedo.Value(rec.U, rec.V, rec.P)
	return core.ScatterRecord{PDF: pdf.NewCosine(albedo, rec.Normal)}, true
}

func (l *Lambertian) Emitted(rIn vec3.Ray, rec core.HitRecord) vec3.Color { return vec3.Color{} }
