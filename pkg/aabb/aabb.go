// Package aabb implements the axis-aligned bounding box used by every
// primitive's BoundingBox() and by the BVH.
package aabb

import (
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// minPad is the minimum size enforced on every axis interval so an
// axis-aligned primitive (a flat Quad, say) never degenerates to a
// zero-thickness box that breaks the slab test.
const minPad = 1e-4

// AABB is three per-axis closed intervals.
type AABB struct {
	X, Y, Z vec3.Interval
}

// New builds an AABB from three intervals, padding each to minPad.
func New(x, y, z vec3.Interval) AABB {
	return AABB{x, y, z}.padded()
}

// FromPoints builds the AABB spanning two opposite corners.
func FromPoints(a, b vec3.Point3) AABB {
	return AABB{
		X: vec3.NewInterval(a.X, b.X),
		Y: vec3.NewInterval(a.Y, b.Y),
		Z: vec3.NewInterval(a.Z, b.Z),
	}.padded()
}

func (b AABB) padded() AABB {
	pad := func(i vec3.Interval) vec3.Interval {
		if i.Size() < minPad {
			return i.Expand(minPad)
		}
		return i
	}
	return AABB{X: pad(b.X), Y: pad(b.Y), Z: pad(b.Z)}
}

// Empty and Universe mirror the Interval constants, used as BVH fold seeds.
var (
	Empty    = AABB{X: vec3.Empty, Y: vec3.Empty, Z: vec3.Empty}
	Universe = AABB{X: vec3.Universe, Y: vec3.Universe, Z: vec3.Universe}
)

// Axis returns the interval for axis n (0=x, 1=y, 2=z). Any other index is
// a programmer error and panics.
func (b AABB) Axis(n int) vec3.Interval {
	switch n {
	case 0:
		return b.X
	case 1:
		return b.Y
	case 2:
		return b.Z
	default:
		panic("aabb: axis index out of range")
	}
}

// LongestAxis returns the index (0,1,2) of the box's longest dimension.
func (b AABB) LongestAxis() int {
	lx, ly, lz := b.X.Size(), b.Y.Size(), b.Z.Size()
	if lx > ly {
		if lx > lz {
			return 0
		}
		return 2
	}
	if ly > lz {
		return 1
	}
	return 2
}

// Union returns the smallest AABB containing both boxes.
func (b AABB) Union(o AABB) AABB {
	return AABB{X: b.X.Union(o.X), Y: b.Y.Union(o.Y), Z: b.Z.Union(o.Z)}
}

// Contains reports whether p lies within the box on all three axes.
func (b AABB) Contains(p vec3.Point3) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.Z.Contains(p.Z)
}

// Hit runs the slab test: for each axis, compute the t-range where the ray
// is within that axis's slab, then fold those ranges together with the
// caller's interval via intersection. A division by a zero direction
// component yields +-Inf, which Interval's min/max handle correctly without
// a special case.
func (b AABB) Hit(origin, direction vec3.Vec3, rayT vec3.Interval) bool {
	result := rayT
	for axis := 0; axis < 3; axis++ {
		ax := b.Axis(axis)
		o, d := component(origin, axis), component(direction, axis)
		adinv := 1 / d
		t0 := (ax.Min - o) * adinv
		t1 := (ax.Max - o) * adinv
		slab := vec3.NewInterval(t0, t1)
		next, ok := result.Intersect(slab)
		if !ok {
			return false
		}
		result = next
	}
	return true
}

func component(v vec3.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
