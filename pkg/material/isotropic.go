package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/texture"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Isotropic is the phase function used by ConstantMedium: it scatters
// uniformly over the full sphere, density 1/(4*pi) everywhere.
type Isotropic struct {
	Albedo core.Texture
}

func NewIsotropic(albedo vec3.Color) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolid(albedo)}
}

func NewIsotropicTexture(tex core.Texture) *Isotropic {
	return &Isotropic{Albedo: tex}
}

func (i *Isotropic) Scatter(rIn vec3.Ray, rec core.HitRecord, src *rng.Source) (core.ScatterRecord, bool) {
	albedo := i.Albedo.Value(rec.U, rec.V, rec.P)
	return core.ScatterRecord{PDF: &pdf.Sphere{Albedo: albedo}}, true
}

func (i *Isotropic) Emitted(rIn vec3.Ray, rec core.HitRecord) vec3.Color { return vec3.Color{} }
