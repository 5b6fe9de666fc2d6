package primitives

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/aabb"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// planarShape is the shared representation and intersection math for Quad
// and Triangle: a plane defined by anchor Q and edge vectors U, V, with the
// child type only differing in its (alpha,beta) acceptance test and area.
type planarShape struct {
	Q, U, V  vec3.Vec3
	Mat      core.Material
	normal   vec3.UnitVec3
	d        float64
	w        vec3.Vec3 // n / |n|^2, used to recover planar coordinates
	area     float64
	triangle bool
}

func newPlanarShape(q, u, v vec3.Vec3, mat core.Material, triangle bool) *planarShape {
	n := u.Cross(v)
	unitN, ok := vec3.Normalize(n)
	if !ok {
		// Degenerate (zero-area) shape; normal is arbitrary, area is zero so
		// it can never be hit or sampled meaningfully.
		unitN = vec3.NewUnitRaw(vec3.Vec3{X: 0, Y: 1, Z: 0})
	}
	area := n.Length()
	if triangle {
		area /= 2
	}
	return &planarShape{
		Q: q, U: u, V: v, Mat: mat,
		normal: unitN, d: unitN.Dot(q),
		w: n.Scale(1 / n.LengthSquared()), area: area, triangle: triangle,
	}
}

func (p *planarShape) hit(r vec3.Ray, tInterval vec3.Interval) (core.HitRecord, bool) {
	denom := p.normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-8 {
		return core.HitRecord{}, false
	}
	t := (p.d - p.normal.Dot(r.Origin)) / denom
	if !tInterval.Contains(t) {
		return core.HitRecord{}, false
	}

	point := r.At(t)
	hp := point.Sub(p.Q)
	alpha := p.w.Dot(hp.Cross(p.V))
	beta := p.w.Dot(p.U.Cross(hp))
	if !p.accepts(alpha, beta) {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{T: t, P: point, Mat: p.Mat, U: alpha, V: beta}
	rec.SetFaceNormal(r.Direction, p.normal)
	return rec, true
}

func (p *planarShape) accepts(alpha, beta float64) bool {
	unit := vec3.NewInterval(0, 1)
	if p.triangle {
		return alpha >= 0 && beta >= 0 && alpha+beta <= 1
	}
	return unit.Contains(alpha) && unit.Contains(beta)
}

func (p *planarShape) boundingBox() aabb.AABB {
	a := aabb.FromPoints(p.Q, p.Q.Add(p.U).Add(p.V))
	b := aabb.FromPoints(p.Q.Add(p.U), p.Q.Add(p.V))
	return a.Union(b)
}

// pdfValue is the area-light density for a hit at distance t along a unit
// direction: t^2 * |dir|^2 / (|cos(theta)| * area).
func (p *planarShape) pdfValue(origin vec3.Point3, direction vec3.Vec3) float64 {
	r := vec3.NewRay(origin, direction)
	rec, hit := p.hit(r, vec3.NewInterval(0.001, math.Inf(1)))
	if !hit {
		return 0
	}
	distSq := rec.T * rec.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(rec.Normal.Vec()) / direction.Length())
	if cosine < 1e-8 {
		return 0
	}
	return distSq / (cosine * p.area)
}

// randomPoint samples a point uniformly in the shape's local parameter
// space (alpha,beta) and maps it back to world space.
func (p *planarShape) randomPoint(src *rng.Source) vec3.Point3 {
	a, b := src.Float64(), src.Float64()
	if p.triangle && a+b > 1 {
		a, b = 1-a, 1-b
	}
	return p.Q.Add(p.U.Scale(a)).Add(p.V.Scale(b))
}

func (p *planarShape) random(src *rng.Source, origin vec3.Point3) (vec3.UnitVec3, bool) {
	target := p.randomPoint(src)
	return vec3.Normalize(target.Sub(origin))
}

// Quad is a parallelogram with anchor Q and edges U, V.
type Quad struct{ *planarShape }

// NewQuad builds a quad from an anchor and two edge vectors.
func NewQuad(q, u, v vec3.Vec3, mat core.Material) *Quad {
	return &Quad{planarShape: newPlanarShape(q, u, v, mat, false)}
}

func (q *Quad) Hit(r vec3.Ray, tInterval vec3.Interval) (core.HitRecord, bool) {
	return q.hit(r, tInterval)
}
func (q *Quad) BoundingBox() aabb.AABB { return q.boundingBox() }
func (q *Quad) PDFValue(origin vec3.Point3, direction vec3.Vec3) float64 {
	return q.pdfValue(origin, direction)
}
func (q *Quad) Random(src *rng.Source, origin vec3.Point3) (vec3.UnitVec3, bool) {
	return q.random(src, origin)
}

// Triangle is defined the same way as Quad but accepts only the
// (alpha>=0, beta>=0, alpha+beta<=1) half of the parallelogram.
type Triangle struct{ *planarShape }

// NewTriangle builds a triangle from an anchor and two edge vectors.
func NewTriangle(q, u, v vec3.Vec3, mat core.Material) *Triangle {
	return &Triangle{planarShape: newPlanarShape(q, u, v, mat, true)}
}

func (t *Triangle) Hit(r vec3.Ray, tInterval vec3.Interval) (core.HitRecord, bool) {
	return t.hit(r, tInterval)
}
func (t *Triangle) BoundingBox() aabb.AABB { return t.boundingBox() }
func (t *Triangle) PDFValue(origin vec3.Point3, direction vec3.Vec3) float64 {
	return t.pdfValue(origin, direction)
}
func (t *Triangle) Random(src *rng.Source, origin vec3.Point3) (vec3.UnitVec3, bool) {
	return t.random(src, origin)
}

// NewBox returns the six quads of an axis-aligned box spanning corners a
// and b, all sharing mat.
func NewBox(a, b vec3.Point3, mat core.Material) []core.Hittable {
	min := vec3.Vec3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
	max := vec3.Vec3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}

	dx := vec3.Vec3{X: max.X - min.X, Y: 0, Z: 0}
	dy := vec3.Vec3{X: 0, Y: max.Y - min.Y, Z: 0}
	dz := vec3.Vec3{X: 0, Y: 0, Z: max.Z - min.Z}

	return []core.Hittable{
		NewQuad(vec3.Vec3{X: min.X, Y: min.Y, Z: max.Z}, dx, dy, mat),                                  // front
		NewQuad(vec3.Vec3{X: max.X, Y: min.Y, Z: max.Z}, dz.Scale(-1), dy, mat),                        // right
		NewQuad(vec3.Vec3{X: max.X, Y: min.Y, Z: min.Z}, dx.Scale(-1), dy, mat),                        // back
		NewQuad(vec3.Vec3{X: min.X, Y: min.Y, Z: min.Z}, dz, dy, mat),                                  // left
		NewQuad(vec3.Vec3{X: min.X, Y: max.Y, Z: max.Z}, dx, dz.Scale(-1), mat),                        // top
		NewQuad(vec3.Vec3{X: min.X, Y: min.Y, Z: min.Z}, dx, dz, mat),                                  // bottom
	}
}
