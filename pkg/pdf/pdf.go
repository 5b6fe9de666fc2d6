// Package pdf implements the concrete PDF (sampling-density) strategies
// mixed together by the integrator's multiple importance sampling: a
// cosine-weighted surface PDF, a uniform-sphere PDF (for the Isotropic
// phase function), an area-light PDF delegating to any Sampleable Hittable,
// and a 50/50 mixture of two PDFs.
package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Cosine samples directions around Normal with density cos(theta)/pi.
// Value's attenuation is the full cosine-weighted Lambertian term
// Albedo*cos(theta)/pi, so attenuation/density is exactly Albedo when
// sampling from this PDF alone, and remains the correct integrand when the
// density comes from a Mixture instead. Both are 0 outside the hemisphere.
type Cosine struct {
	Albedo vec3.Color
	Normal vec3.UnitVec3
	basis  vec3.OrthonormalBasis
}

// NewCosine builds a Cosine PDF around normal for the given albedo.
func NewCosine(albedo vec3.Color, normal vec3.UnitVec3) *Cosine {
	return &Cosine{Albedo: albedo, Normal: normal, basis: vec3.NewOrthonormalBasis(normal)}
}

func (c *Cosine) Value(direction vec3.Vec3) (vec3.Color, float64) {
	unit, ok := vec3.Normalize(direction)
	if !ok {
		return vec3.Color{}, 0
	}
	cosTheta := unit.Dot(c.Normal.Vec())
	if cosTheta <= 0 {
		return vec3.Color{}, 0
	}
	density := cosTheta / math.Pi
	return c.Albedo.Scale(density), density
}

func (c *Cosine) Generate(src *rng.Source) (vec3.UnitVec3, bool) {
	local := vec3.RandomCosineDirection(src)
	return vec3.Normalize(c.basis.Transform(local.Vec()))
}

// Sphere samples directions uniformly over the unit sphere (the Isotropic
// volume phase function), density 1/(4*pi) everywhere. As with Cosine, the
// attenuation folds the phase function in (Albedo/(4*pi)), keeping
// attenuation/density equal to Albedo under pure phase sampling.
type Sphere struct {
	Albedo vec3.Color
}

func (s *Sphere) Value(direction vec3.Vec3) (vec3.Color, float64) {
	const density = 1.0 / (4.0 * math.Pi)
	return s.Albedo.Scale(density), density
}

func (s *Sphere) Generate(src *rng.Source) (vec3.UnitVec3, bool) {
	return vec3.RandomUnitVector(src), true
}

// Hittable importance-samples toward a light shape, delegating to its
// Sampleable implementation. Attenuation is always white: the light PDF
// carries no color information of its own, only direction.
type Hittable struct {
	Light  core.Sampleable
	Origin vec3.Point3
}

// NewHittable builds a light-sampling PDF anchored at origin.
func NewHittable(light core.Sampleable, origin vec3.Point3) *Hittable {
	return &Hittable{Light: light, Origin: origin}
}

func (h *Hittable) Value(direction vec3.Vec3) (vec3.Color, float64) {
	return vec3.Color{X: 1, Y: 1, Z: 1}, h.Light.PDFValue(h.Origin, direction)
}

func (h *Hittable) Generate(src *rng.Source) (vec3.UnitVec3, bool) {
	return h.Light.Random(src, h.Origin)
}

// Mixture combines two PDFs with equal selection probability: Generate
// flips a coin to pick which PDF to sample from, and Value averages the two
// densities. The returned attenuation is P0's: the integrator always puts
// the material's PDF first, so P0 carries the cosine-weighted scattering
// term being estimated, while P1 (a direction-only light strategy such as
// Hittable) contributes density but no physics of its own. Dividing P0's
// attenuation by the mixed density and multiplying by the recursive
// radiance is then the balance-heuristic MIS estimator.
type Mixture struct {
	P0, P1 core.PDF
}

// NewMixture builds a 50/50 mixture of p0 and p1.
func NewMixture(p0, p1 core.PDF) *Mixture {
	return &Mixture{P0: p0, P1: p1}
}

func (m *Mixture) Value(direction vec3.Vec3) (vec3.Color, float64) {
	att0, d0 := m.P0.Value(direction)
	_, d1 := m.P1.Value(direction)
	return att0, 0.5*d0 + 0.5*d1
}

func (m *Mixture) Generate(src *rng.Source) (vec3.UnitVec3, bool) {
	if src.Float64() < 0.5 {
		return m.P0.Generate(src)
	}
	return m.P1.Generate(src)
}
