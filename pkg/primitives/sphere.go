// Package primitives implements the concrete Hittable shapes: spheres,
// quads/triangles, the instance wrappers (Translate, Instance), a
// constant-density participating medium, and the flat Hittable list that
// composes them before BVH construction.
package primitives

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/aabb"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Sphere is a (possibly moving) sphere. Center is expressed as a Ray so a
// linear center(time) = origin + time*direction expresses motion blur; a
// stationary sphere has a zero direction.
type Sphere struct {
	Center vec3.Ray
	Radius float64
	Mat    core.Material
}

// NewSphere builds a stationary sphere. Radius is clamped to >= 0.
func NewSphere(center vec3.Point3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: vec3.NewRay(center, vec3.Zero), Radius: math.Max(0, radius), Mat: mat}
}

// NewMovingSphere builds a sphere whose center travels linearly from
// centerStart (time 0) to centerEnd (time 1).
func NewMovingSphere(centerStart, centerEnd vec3.Point3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: vec3.NewRay(centerStart, centerEnd.Sub(centerStart)), Radius: math.Max(0, radius), Mat: mat}
}

func (s *Sphere) centerAt(time float64) vec3.Point3 { return s.Center.At(time) }

func (s *Sphere) Hit(r vec3.Ray, tInterval vec3.Interval) (core.HitRecord, bool) {
	center := s.centerAt(r.Time)
	oc := center.Sub(r.Origin)
	a := r.Direction.LengthSquared()
	halfB := r.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (halfB - sqrtD) / a
	if !tInterval.Contains(root) {
		root = (halfB + sqrtD) / a
		if !tInterval.Contains(root) {
			return core.HitRecord{}, false
		}
	}

	point := r.At(root)
	outward, ok := vec3.Normalize(point.Sub(center).Scale(1 / s.Radius))
	if !ok {
		return core.HitRecord{}, false
	}
	u, v := sphereUV(outward)

	rec := core.HitRecord{T: root, P: point, Mat: s.Mat, U: u, V: v}
	rec.SetFaceNormal(r.Direction, outward)
	return rec, true
}

// sphereUV maps a unit outward normal to spherical (u,v): u = (atan2(-z,x)+pi)/2pi, v = acos(-y)/pi.
func sphereUV(n vec3.UnitVec3) (u, v float64) {
	theta := math.Acos(-n.Y())
	phi := math.Atan2(-n.Z(), n.X()) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func (s *Sphere) BoundingBox() aabb.AABB {
	rvec := vec3.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	start := aabb.FromPoints(s.Center.Origin.Sub(rvec), s.Center.Origin.Add(rvec))
	if s.Center.Direction == vec3.Zero {
		return start
	}
	end := s.Center.At(1)
	return start.Union(aabb.FromPoints(end.Sub(rvec), end.Add(rvec)))
}

// PDFValue gives the solid-angle density of sampling direction via Random,
// using the cone-sampling formula for a static sphere viewed from origin.
// Moving spheres are not valid light sources and return 0.
func (s *Sphere) PDFValue(origin vec3.Point3, direction vec3.Vec3) float64 {
	if s.Center.Direction != vec3.Zero {
		return 0
	}
	r := vec3.NewRay(origin, direction)
	if _, hit := s.Hit(r, vec3.NewInterval(0.001, math.Inf(1))); !hit {
		return 0
	}
	distSq := s.Center.Origin.Sub(origin).LengthSquared()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSq))
	return 1 / (2 * math.Pi * (1 - cosThetaMax))
}

// Random samples a direction from origin uniformly within the cone
// subtended by the sphere.
func (s *Sphere) Random(src *rng.Source, origin vec3.Point3) (vec3.UnitVec3, bool) {
	direction := s.Center.Origin.Sub(origin)
	distSq := direction.LengthSquared()
	basisW, ok := vec3.Normalize(direction)
	if !ok {
		return vec3.UnitVec3{}, false
	}
	basis := vec3.NewOrthonormalBasis(basisW)

	r1, r2 := src.Float64(), src.Float64()
	cosThetaMax := math.Sqrt(math.Max(0, 1-s.Radius*s.Radius/distSq))
	cosTheta := 1 + r2*(cosThetaMax-1)
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * r1

	local := vec3.Vec3{X: math.Cos(phi) * sinTheta, Y: math.Sin(phi) * sinTheta, Z: cosTheta}
	return vec3.Normalize(basis.Transform(local))
}
