// Package core defines the capability interfaces that tie the renderer
// together: Hittable (anything a ray can query), Material (the BSDF
// contract), and PDF (the sampling abstraction used for multiple importance
// sampling). Concrete implementations live in pkg/primitives, pkg/material,
// and pkg/pdf; this package only names the contract so those packages (and
// pkg/integrator, which consumes all three) don't have to import each
// other.
package core

import (
	"github.com/df07/go-pathtracer/pkg/aabb"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// HitRecord describes a ray-primitive intersection. Mat is a non-owning
// reference valid for the lifetime of the Hittable tree it came from.
type HitRecord struct {
	P         vec3.Point3
	Normal    vec3.UnitVec3
	Mat       Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal orients Normal against the incoming ray direction and
// records which side of the surface the ray approached from. outwardNormal
// must already be unit length (geometric normals are always constructed
// that way).
func (h *HitRecord) SetFaceNormal(rayDirection vec3.Vec3, outwardNormal vec3.UnitVec3) {
	h.FrontFace = rayDirection.Dot(outwardNormal.Vec()) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// Hittable is the contract for anything a ray can query: primitives, the
// BVH, and the composite wrappers (Translate/Transform/List).
type Hittable interface {
	// Hit returns the closest intersection with ray parameter inside
	// tInterval, or false if none exists.
	Hit(r vec3.Ray, tInterval vec3.Interval) (HitRecord, bool)

	// BoundingBox returns a world-space box valid for the whole [0,1]
	// shutter interval.
	BoundingBox() aabb.AABB
}

// Sampleable is implemented by Hittables that can act as an area light:
// PDFValue gives the solid-angle density of having sampled direction via
// Random, and Random samples a direction from origin toward the shape. A
// Hittable with no Sampleable implementation is not usable as a light; the
// integrator only type-asserts for this when building the light PDF.
type Sampleable interface {
	PDFValue(origin vec3.Point3, direction vec3.Vec3) float64
	Random(src *rng.Source, origin vec3.Point3) (vec3.UnitVec3, bool)
}

// PDF is the unified sampling interface used to implement MIS between a
// cosine-weighted surface PDF, a light-area PDF, and material-specific
// PDFs. Value returns (attenuation, density): density is strictly 0 when
// direction is outside the lobe's support, and attenuation carries the
// full |cos(theta)|-weighted scattering term for that direction: the
// cosine lobe returns albedo*cos(theta)/pi, the uniform-sphere phase
// returns albedo/(4*pi), Disney returns |cos(theta)| * BSDF. That keeps
// the integrator's contract uniform and unbiased under any mixture of
// densities: contribution = attenuation / pdf * recursive_radiance.
type PDF interface {
	Value(direction vec3.Vec3) (vec3.Color, float64)
	Generate(src *rng.Source) (vec3.UnitVec3, bool)
}

// ScatterRecord is the tagged result of Material.Scatter. When Specular is
// true, the integrator uses SpecularRay directly with Attenuation and skips
// MIS (perfect mirror / dielectric / portal). When false, PDF describes the
// scattering distribution and the integrator must draw a direction from it.
type ScatterRecord struct {
	Specular    bool
	SpecularRay vec3.Ray
	Attenuation vec3.Color
	PDF         PDF
}

// Material is the BSDF contract: Scatter proposes how a ray continues (or
// reports that the material doesn't scatter, e.g. a pure light), Emitted
// returns self-emission at the hit point.
type Material interface {
	Scatter(rIn vec3.Ray, rec HitRecord, src *rng.Source) (ScatterRecord, bool)
	Emitted(rIn vec3.Ray, rec HitRecord) vec3.Color
}

// Texture is the interface returning an RGB value for a surface point.
type Texture interface {
	Value(u, v float64, p vec3.Point3) vec3.Color
}

// Environment evaluates directional background radiance for rays that
// escape the scene.
type Environment interface {
	Emit(direction vec3.Vec3) vec3.Color
}
