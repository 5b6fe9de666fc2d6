// Package vec3 provides the numeric primitives shared by every other
// package in the tracer: 3-vectors, validated unit vectors, time-stamped
// rays, closed intervals, and the rotation helpers used by instance
// transforms.
package vec3

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/rng"
)

// Vec3 is a triple of IEEE-754 doubles. Point3 and Color are semantic
// aliases: a Point3 is a position, a Color is linear-RGB radiance or
// albedo and may exceed 1.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a position in world space.
type Point3 = Vec3

// Color is linear-RGB radiance or albedo. Components may exceed 1.0.
type Color = Vec3

// Zero is the additive identity.
var Zero = Vec3{}

// New builds a Vec3 from components.
func New(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(o Vec3) Vec3      { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) LengthSquared() float64 { return v.Dot(v) }
func (v Vec3) Length() float64        { return math.Sqrt(v.LengthSquared()) }

// NearZero reports whether every component is within 1e-8 of zero, used to
// detect degenerate scatter directions (e.g. a Lambertian bounce that
// exactly cancels the normal).
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s && math.Abs(v.Z) < s
}

// IsFinite reports whether all components are finite (no NaN or Inf);
// callers on critical paths (attenuation, pdf) assert this before using a
// value downstream.
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}

// Equals compares two vectors within an absolute tolerance.
func (v Vec3) Equals(o Vec3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}

// Clamp clamps each component to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	clamp := func(x float64) float64 { return math.Max(lo, math.Min(hi, x)) }
	return Vec3{clamp(v.X), clamp(v.Y), clamp(v.Z)}
}

// Lerp linearly interpolates between a and b by t in [0,1].
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Random returns a vector with each component drawn uniformly from [0,1).
func Random(r *rng.Source) Vec3 {
	return Vec3{r.Float64(), r.Float64(), r.Float64()}
}

// RandomRange returns a vector with each component drawn uniformly from
// [lo,hi).
func RandomRange(r *rng.Source, lo, hi float64) Vec3 {
	return Vec3{r.Range(lo, hi), r.Range(lo, hi), r.Range(lo, hi)}
}

// RandomInUnitDisk samples a point uniformly on the unit disk in the XY
// plane (z=0), used by the camera's thin-lens defocus sampling.
func RandomInUnitDisk(r *rng.Source) Vec3 {
	theta := r.Range(0, 2*math.Pi)
	rad := math.Sqrt(r.Float64())
	return Vec3{rad * math.Cos(theta), rad * math.Sin(theta), 0}
}
