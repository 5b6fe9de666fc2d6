// Package integrator implements the recursive Monte Carlo radiance
// estimator: at each bounce it evaluates emission, asks the hit material to
// scatter, and either follows a specular ray directly or builds a mixture
// of the material's PDF and a light-sampling PDF to apply multiple
// importance sampling between the two strategies.
package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// minT defeats shadow-acne self-intersection at the ray's origin.
const minT = 0.001

// PathTracer walks a ray through World, importance-sampling Lights when
// present, until it escapes to Background or hits MaxDepth.
type PathTracer struct {
	World      core.Hittable
	Lights     core.Sampleable // optional; nil disables light-sampling MIS
	Background core.Environment
	MaxDepth   int
}

// New builds a PathTracer. lights may be nil.
func New(world core.Hittable, lights core.Sampleable, background core.Environment, maxDepth int) *PathTracer {
	return &PathTracer{World: world, Lights: lights, Background: background, MaxDepth: maxDepth}
}

// RayColor estimates the radiance arriving along ray.
func (pt *PathTracer) RayColor(ray vec3.Ray, src *rng.Source) vec3.Color {
	return pt.rayColor(ray, pt.MaxDepth, src)
}

func (pt *PathTracer) rayColor(ray vec3.Ray, depth int, src *rng.Source) vec3.Color {
	if depth <= 0 {
		return vec3.Color{}
	}

	rec, hit := pt.World.Hit(ray, vec3.NewInterval(minT, math.Inf(1)))
	if !hit {
		return pt.Background.Emit(ray.Direction)
	}

	emitted := rec.Mat.Emitted(ray, rec)

	scatter, didScatter := rec.Mat.Scatter(ray, rec, src)
	if !didScatter {
		return emitted
	}

	if scatter.Specular {
		incoming := pt.rayColor(scatter.SpecularRay, depth-1, src)
		return emitted.Add(scatter.Attenuation.Mul(incoming))
	}

	return emitted.Add(pt.sampleFromPDF(scatter.PDF, ray, rec, depth, src))
}

// sampleFromPDF draws a direction from scatter.PDF, mixed with a
// light-sampling PDF when Lights is set, and returns its weighted
// contribution. Every material PDF folds the full cosine-weighted
// scattering term into its attenuation (albedo*cos/pi for the cosine lobe,
// albedo/(4*pi) for the isotropic phase, |cos|*BSDF for Disney), so
// dividing by the mixed density and multiplying by the recursive sample is
// the complete, unbiased estimator; no separate scattering-pdf factor is
// applied here.
func (pt *PathTracer) sampleFromPDF(matPDF core.PDF, ray vec3.Ray, rec core.HitRecord, depth int, src *rng.Source) vec3.Color {
	var mix core.PDF = matPDF
	if pt.Lights != nil {
		mix = pdf.NewMixture(matPDF, pdf.NewHittable(pt.Lights, rec.P))
	}

	dir, ok := mix.Generate(src)
	if !ok {
		return vec3.Color{}
	}

	att, p := mix.Value(dir.Vec())
	if p <= 0 {
		return vec3.Color{}
	}

	next := vec3.NewRayAt(rec.P, dir.Vec(), ray.Time)
	sample := pt.rayColor(next, depth-1, src)
	return att.Mul(sample).Scale(1 / p)
}
