package primitives

import (
	"github.com/df07/go-pathtracer/pkg/aabb"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Translate wraps an inner Hittable with a constant world-space offset: rays
// are brought into the object's local frame by subtracting the offset from
// the origin, and the returned hit point is shifted back.
type Translate struct {
	Inner  core.Hittable
	Offset vec3.Vec3
	box    aabb.AABB
}

// NewTranslate builds a Translate wrapper and precomputes the shifted box.
func NewTranslate(inner core.Hittable, offset vec3.Vec3) *Translate {
	innerBox := inner.BoundingBox()
	return &Translate{
		Inner: inner, Offset: offset,
		box: aabb.FromPoints(
			vec3.Vec3{X: innerBox.X.Min, Y: innerBox.Y.Min, Z: innerBox.Z.Min}.Add(offset),
			vec3.Vec3{X: innerBox.X.Max, Y: innerBox.Y.Max, Z: innerBox.Z.Max}.Add(offset),
		),
	}
}

func (t *Translate) Hit(r vec3.Ray, tInterval vec3.Interval) (core.HitRecord, bool) {
	localRay := vec3.NewRayAt(r.Origin.Sub(t.Offset), r.Direction, r.Time)
	rec, ok := t.Inner.Hit(localRay, tInterval)
	if !ok {
		return core.HitRecord{}, false
	}
	rec.P = rec.P.Add(t.Offset)
	return rec, true
}

func (t *Translate) BoundingBox() aabb.AABB { return t.box }

// Instance wraps an inner Hittable with a general affine transform (scale,
// quaternion rotation, translation). Incoming rays are pulled into the
// object's local frame with the inverse transform; hits (point and normal)
// are pushed back to world space.
type Instance struct {
	Inner     core.Hittable
	Transform vec3.Transform
	box       aabb.AABB
}

// NewInstance builds an Instance and recomputes its world-space bounding box
// by transforming the inner box's 8 corners and taking their axis-aligned
// hull.
func NewInstance(inner core.Hittable, transform vec3.Transform) *Instance {
	inst := &Instance{Inner: inner, Transform: transform}
	inst.box = inst.computeBoundingBox()
	return inst
}

func (i *Instance) computeBoundingBox() aabb.AABB {
	inner := i.Inner.BoundingBox()
	box := aabb.Empty
	for _, x := range []float64{inner.X.Min, inner.X.Max} {
		for _, y := range []float64{inner.Y.Min, inner.Y.Max} {
			for _, z := range []float64{inner.Z.Min, inner.Z.Max} {
				corner := i.Transform.Point(vec3.Vec3{X: x, Y: y, Z: z})
				box = box.Union(aabb.FromPoints(corner, corner))
			}
		}
	}
	return box
}

func (i *Instance) Hit(r vec3.Ray, tInterval vec3.Interval) (core.HitRecord, bool) {
	localOrigin := i.Transform.InversePoint(r.Origin)
	localDirection := i.Transform.InverseDirection(r.Direction)
	localRay := vec3.NewRayAt(localOrigin, localDirection, r.Time)

	rec, ok := i.Inner.Hit(localRay, tInterval)
	if !ok {
		return core.HitRecord{}, false
	}

	// The inner hit already oriented Normal against localRay; the transform
	// (assumed orientation-preserving: no mirroring scale) carries that same
	// orientation to world space, so FrontFace is reused as-is.
	worldNormal, normOk := vec3.Normalize(i.Transform.InverseTransposeDirection(rec.Normal.Vec()))
	if !normOk {
		return core.HitRecord{}, false
	}
	rec.P = i.Transform.Point(rec.P)
	rec.Normal = worldNormal
	return rec, true
}

func (i *Instance) BoundingBox() aabb.AABB { return i.box }

// NewRotateY is the common case of Instance: a pure rotation about the Y
// axis by angleDegrees, no scale or translation.
func NewRotateY(inner core.Hittable, angleDegrees float64) *Instance {
	rot := vec3.QuaternionFromAxisAngle(vec3.Vec3{X: 0, Y: 1, Z: 0}, angleDegrees)
	transform := vec3.NewTransform(vec3.Vec3{X: 1, Y: 1, Z: 1}, rot, vec3.Zero)
	return NewInstance(inner, transform)
}
