package vec3

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/rng"
)

// UnitVec3 is a Vec3 with the invariant that its length is approximately 1.
// The only ways to produce one are Normalize (which fails on a zero or
// non-finite source) and NewUnitRaw, which the caller must only use after an
// operation that preserves unit length by construction (cross of two
// orthogonal units, sign flip, quaternion rotation, a sampled spherical
// direction).
type UnitVec3 struct {
	v Vec3
}

// Normalize attempts to build a UnitVec3 from v. It reports false when v is
// the zero vector or contains a non-finite component.
func Normalize(v Vec3) (UnitVec3, bool) {
	length := v.Length()
	if length == 0 {
		return UnitVec3{}, false
	}
	u := v.Scale(1 / length)
	if !u.IsFinite() {
		return UnitVec3{}, false
	}
	return UnitVec3{v: u}, true
}

// NewUnitRaw wraps v as a UnitVec3 without renormalizing. The caller
// guarantees v already has unit length.
func NewUnitRaw(v Vec3) UnitVec3 { return UnitVec3{v: v} }

// Vec returns the underlying Vec3.
func (u UnitVec3) Vec() Vec3 { return u.v }

func (u UnitVec3) X() float64 { return u.v.X }
func (u UnitVec3) Y() float64 { return u.v.Y }
func (u UnitVec3) Z() float64 { return u.v.Z }

// Neg preserves the unit-length invariant.
func (u UnitVec3) Neg() UnitVec3 { return UnitVec3{v: u.v.Neg()} }

func (u UnitVec3) Dot(o Vec3) float64 { return u.v.Dot(o) }

// Reflect reflects v about this unit normal: v - 2*dot(v,n)*n.
func (u UnitVec3) Reflect(v Vec3) Vec3 {
	return v.Sub(u.v.Scale(2 * v.Dot(u.v)))
}

// Refract refracts the unit direction u (pointing toward the surface)
// through a unit normal using Snell's law, with relativeEta = n_in/n_out. It
// reports false on total internal reflection.
func (u UnitVec3) Refract(normal UnitVec3, relativeEta float64) (UnitVec3, bool) {
	cosTheta := math.Min(u.Neg().Dot(normal.v), 1.0)
	outPerp := normal.v.Scale(cosTheta).Add(u.v).Scale(relativeEta)
	parallelLenSq := 1.0 - outPerp.LengthSquared()
	if parallelLenSq < 0 {
		return UnitVec3{}, false
	}
	outParallel := normal.v.Scale(-math.Sqrt(parallelLenSq))
	return NewUnitRaw(outPerp.Add(outParallel)), true
}

// RandomUnitVector samples a direction uniformly over the unit sphere.
func RandomUnitVector(r *rng.Source) UnitVec3 {
	r1 := r.Float64()
	r2 := r.Float64()
	x := math.Cos(2*math.Pi*r1) * 2 * math.Sqrt(r2*(1-r2))
	y := math.Sin(2*math.Pi*r1) * 2 * math.Sqrt(r2*(1-r2))
	z := 1 - 2*r2
	return NewUnitRaw(Vec3{x, y, z})
}

// RandomOnHemisphere samples uniformly over the hemisphere around normal.
func RandomOnHemisphere(r *rng.Source, normal UnitVec3) UnitVec3 {
	u := RandomUnitVector(r)
	if u.Dot(normal.v) > 0 {
		return u
	}
	return u.Neg()
}

// RandomCosineDirection samples a direction in the local +Z hemisphere with
// density cos(theta)/pi, for cosine-weighted (Lambertian) importance
// sampling. The direction is expressed in the caller's local frame; rotate
// by an OrthonormalBasis to place it around an arbitrary normal.
func RandomCosineDirection(r *rng.Source) UnitVec3 {
	r1 := r.Float64()
	r2 := r.Float64()
	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	z := math.Sqrt(1 - r2)
	return NewUnitRaw(Vec3{x, y, z})
}
