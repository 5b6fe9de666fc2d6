package primitives

import (
	"github.com/df07/go-pathtracer/pkg/aabb"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// List is a flat collection of Hittables, evaluated linearly (the BVH is
// built from a List's children, but a List is also useful standalone for
// small groups, e.g. a light set). Hit keeps the closest intersection;
// PDFValue/Random average/dispatch uniformly across children.
type List struct {
	Objects []core.Hittable
	box     aabb.AABB
}

// NewList builds a list and precomputes the union bounding box.
func NewList(objects ...core.Hittable) *List {
	l := &List{Objects: objects, box: aabb.Empty}
	for _, o := range objects {
		l.box = l.box.Union(o.BoundingBox())
	}
	return l
}

// Add appends a child and extends the cached bounding box.
func (l *List) Add(o core.Hittable) {
	l.Objects = append(l.Objects, o)
	l.box = l.box.Union(o.BoundingBox())
}

func (l *List) Hit(r vec3.Ray, tInterval vec3.Interval) (core.HitRecord, bool) {
	var best core.HitRecord
	hitAnything := false
	closest := tInterval.Max

	for _, o := range l.Objects {
		if rec, ok := o.Hit(r, vec3.NewInterval(tInterval.Min, closest)); ok {
			hitAnything = true
			closest = rec.T
			best = rec
		}
	}
	return best, hitAnything
}

func (l *List) BoundingBox() aabb.AABB { return l.box }

// PDFValue averages each child's PDFValue (children that don't implement
// Sampleable contribute 0).
func (l *List) PDFValue(origin vec3.Point3, direction vec3.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}
	sum := 0.0
	for _, o := range l.Objects {
		if s, ok := o.(core.Sampleable); ok {
			sum += s.PDFValue(origin, direction)
		}
	}
	return sum / float64(len(l.Objects))
}

// Random picks a uniformly-random child and forwards to its Random.
func (l *List) Random(src *rng.Source, origin vec3.Point3) (vec3.UnitVec3, bool) {
	if len(l.Objects) == 0 {
		return vec3.UnitVec3{}, false
	}
	idx := src.IntRange(0, len(l.Objects))
	if s, ok := l.Objects[idx].(core.Sampleable); ok {
		return s.Random(src, origin)
	}
	return vec3.RandomUnitVector(src), true
}
