package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Dielectric is a deterministic (specular) refractive material: glass,
// water, diamond. The scattered ray is either a reflection or a refraction,
// chosen by checking total-internal-reflection first and then a
// Schlick-reflectance coin flip.
type Dielectric struct {
	RefractionIndex float64
}

func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

func (d *Dielectric) Scatter(rIn vec3.Ray, rec core.HitRecord, src *rng.Source) (core.ScatterRecord, bool) {
	ri := d.RefractionIndex
	if rec.FrontFace {
		ri = 1.0 / d.RefractionIndex
	}

	unitDir, ok := vec3.Normalize(rIn.Direction)
	if !ok {
		return core.ScatterRecord{}, false
	}

	cosTheta := math.Min(unitDir.Neg().Dot(rec.Normal.Vec()), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	cannotRefract := ri*sinTheta > 1.0

	var direction vec3.Vec3
	if cannotRefract || reflectance(cosTheta, ri) > src.Float64() {
		direction = rec.Normal.Reflect(unitDir.Vec())
	} else {
		refracted, ok := unitDir.Refract(rec.Normal, ri)
		if !ok {
			// Numerically inconsistent with the TIR check above; fall back
			// to reflection rather than propagate a NaN ray.
			direction = rec.Normal.Reflect(unitDir.Vec())
		} else {
			direction = refracted.Vec()
		}
	}

	return core.ScatterRecord{
		Specular:    true,
		SpecularRay: vec3.NewRayAt(rec.P, direction, rIn.Time),
		Attenuation: vec3.Color{X: 1, Y: 1, Z: 1},
	}, true
}

func (d *Dielectric) Emitted(rIn vec3.Ray, rec core.HitRecord) vec3.Color { return vec3.Color{} }

// reflectance is the Schlick approximation to the Fresnel reflectance.
func reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
