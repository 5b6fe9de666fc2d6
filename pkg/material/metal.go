package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Metal is a deterministic (specular) reflector: the scattered direction is
// a perfect reflection perturbed by Fuzz, attenuated by Albedo. No PDF is
// involved, so the integrator skips MIS for this bounce.
type Metal struct {
	Albedo vec3.Color
	Fuzz   float64
}

// NewMetal clamps fuzz to [0,1]: 0 is a perfect mirror, 1 is very rough.
func NewMetal(albedo vec3.Color, fuzz float64) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

func (m *Metal) Scatter(rIn vec3.Ray, rec core.HitRecord, src *rng.Source) (core.ScatterRecord, bool) {
	unitDir, ok := vec3.Normalize(rIn.Direction)
	if !ok {
		return core.ScatterRecord{}, false
	}
	// Reflecting a unit vector about a unit normal yields a unit vector, so
	// no renormalization is needed before adding the fuzz perturbation.
	reflected := rec.Normal.Reflect(unitDir.Vec())
	if m.Fuzz > 0 {
		reflected = reflected.Add(vec3.RandomUnitVector(src).Vec().Scale(m.Fuzz))
	}
	if reflected.Dot(rec.Normal.Vec()) <= 0 {
		return core.ScatterRecord{}, false
	}
	scattered := vec3.NewRayAt(rec.P, reflected, rIn.Time)
	return core.ScatterRecord{
		Specular:    true,
		SpecularRay: scattered,
		Attenuation: m.Albedo,
	}, true
}

func (m *Metal) Emitted(rIn vec3.Ray, rec core.HitRecord) vec3.Color { return vec3.Color{} }
