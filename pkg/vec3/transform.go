package vec3

import "github.com/go-gl/mathgl/mgl64"

// Transform is a composed scale -> rotate -> translate affine map, backed by
// mgl64's 4x4 matrix so the instance-transform primitive (pkg/primitives)
// only has to carry a matrix and its inverse instead of re-deriving the
// composition order by hand on every ray.
type Transform struct {
	forward mgl64.Mat4
	inverse mgl64.Mat4
}

// NewTransform composes the given scale, rotation and translation into a
// single affine map. Scale of zero on any axis is accepted (degenerate
// shapes are the caller's concern; flattening a primitive to a disc via a
// zero Z-scale is a legitimate use).
func NewTransform(scale Vec3, rot Quaternion, translate Vec3) Transform {
	s := mgl64.Scale3D(scale.X, scale.Y, scale.Z)
	r := mgl64.Quat{W: rot.W, V: mgl64.Vec3{rot.X, rot.Y, rot.Z}}.Mat4()
	t := mgl64.Translate3D(translate.X, translate.Y, translate.Z)
	forward := t.Mul4(r).Mul4(s)
	inverse := forward.Inv()
	return Transform{forward: forward, inverse: inverse}
}

// Identity is the no-op transform.
func Identity() Transform {
	return Transform{forward: mgl64.Ident4(), inverse: mgl64.Ident4()}
}

// Point applies the transform to a position (translation included).
func (t Transform) Point(p Point3) Point3 {
	v := t.forward.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{v[0], v[1], v[2]}
}

// InversePoint applies the inverse transform to a position.
func (t Transform) InversePoint(p Point3) Point3 {
	v := t.inverse.Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{v[0], v[1], v[2]}
}

// Direction applies the transform to a direction (no translation).
func (t Transform) Direction(d Vec3) Vec3 {
	v := t.forward.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{v[0], v[1], v[2]}
}

// InverseDirection applies the inverse transform to a direction.
func (t Transform) InverseDirection(d Vec3) Vec3 {
	v := t.inverse.Mul4x1(mgl64.Vec4{d.X, d.Y, d.Z, 0})
	return Vec3{v[0], v[1], v[2]}
}

// InverseTransposeDirection maps a normal by the inverse-transpose of the
// linear part, the standard trick for keeping normals perpendicular to
// their surface under non-uniform scale.
func (t Transform) InverseTransposeDirection(n Vec3) Vec3 {
	it := t.inverse.Transpose()
	v := it.Mul4x1(mgl64.Vec4{n.X, n.Y, n.Z, 0})
	return Vec3{v[0], v[1], v[2]}
}
