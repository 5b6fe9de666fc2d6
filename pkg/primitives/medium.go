package primitives

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/aabb"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// ConstantMedium wraps a convex boundary Hittable as a participating volume
// of uniform density: a ray entering the boundary scatters at an
// exponentially-distributed free-flight distance, with an Isotropic phase
// function standing in for the material at the scatter point. The boundary
// is assumed convex; for a non-convex boundary the entry/exit pairing
// degrades silently.
type ConstantMedium struct {
	Boundary      core.Hittable
	NegInvDensity float64
	Phase         core.Material
}

// NewConstantMedium builds a medium of the given density with an Isotropic
// phase function sampling albedo.
func NewConstantMedium(boundary core.Hittable, density float64, albedo vec3.Color) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		Phase:         material.NewIsotropic(albedo),
	}
}

// Hit satisfies core.Hittable. The Hittable contract carries no rng.Source
// through to this depth, so the free-flight distance draws from the
// package-level math/rand generator (internally mutex-guarded, safe to call
// from concurrent render workers) rather than a per-pixel Source. This is the one
// spot in the tracer that falls back to a process-wide RNG.
func (m *ConstantMedium) Hit(r vec3.Ray, tInterval vec3.Interval) (core.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(r, vec3.Universe)
	if !ok {
		return core.HitRecord{}, false
	}
	rec2, ok := m.Boundary.Hit(r, vec3.NewInterval(rec1.T+0.0001, math.Inf(1)))
	if !ok {
		return core.HitRecord{}, false
	}

	if rec1.T < tInterval.Min {
		rec1.T = tInterval.Min
	}
	if rec2.T > tInterval.Max {
		rec2.T = tInterval.Max
	}
	if rec1.T >= rec2.T {
		return core.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := m.NegInvDensity * math.Log(rand.Float64())

	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	t := rec1.T + hitDistance/rayLength
	return core.HitRecord{
		T: t, P: r.At(t), Mat: m.Phase,
		Normal: vec3.NewUnitRaw(vec3.Vec3{X: 1, Y: 0, Z: 0}), // arbitrary: volumes have no surface
		FrontFace: true,
	}, true
}

func (m *ConstantMedium) BoundingBox() aabb.AABB { return m.Boundary.BoundingBox() }
