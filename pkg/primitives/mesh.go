package primitives

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/aabb"
	"github.com/df07/go-pathtracer/pkg/bvh"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// SmoothTriangle is a Triangle that additionally carries a per-vertex
// normal and UV for each corner, Phong-interpolated across the face by the
// same barycentric (alpha,beta) the flat Triangle uses for its acceptance
// test. Front/back orientation still follows the flat geometric normal;
// only the returned shading normal is smoothed.
type SmoothTriangle struct {
	Q, U, V       vec3.Vec3
	N0, N1, N2    vec3.UnitVec3
	UV0, UV1, UV2 [2]float64
	Mat           core.Material

	flatNormal vec3.UnitVec3
	d          float64
	w          vec3.Vec3
	area       float64
}

// NewSmoothTriangle builds a triangle V0,V1,V2 (Q=V0, U=V1-V0, V=V2-V0)
// with a per-vertex normal and UV at each corner.
func NewSmoothTriangle(v0, v1, v2 vec3.Point3, n0, n1, n2 vec3.UnitVec3, uv0, uv1, uv2 [2]float64, mat core.Material) *SmoothTriangle {
	u := v1.Sub(v0)
	v := v2.Sub(v0)
	n := u.Cross(v)
	flat, ok := vec3.Normalize(n)
	if !ok {
		flat = n0 // degenerate triangle: fall back to the first vertex normal
	}
	return &SmoothTriangle{
		Q: v0, U: u, V: v,
		N0: n0, N1: n1, N2: n2,
		UV0: uv0, UV1: uv1, UV2: uv2,
		Mat: mat, flatNormal: flat, d: flat.Dot(v0),
		w: n.Scale(1 / n.LengthSquared()), area: n.Length() / 2,
	}
}

func (t *SmoothTriangle) Hit(r vec3.Ray, tInterval vec3.Interval) (core.HitRecord, bool) {
	denom := t.flatNormal.Dot(r.Direction)
	if math.Abs(denom) < 1e-8 {
		return core.HitRecord{}, false
	}
	ray := (t.d - t.flatNormal.Dot(r.Origin)) / denom
	if !tInterval.Contains(ray) {
		return core.HitRecord{}, false
	}

	point := r.At(ray)
	hp := point.Sub(t.Q)
	alpha := t.w.Dot(hp.Cross(t.V))
	beta := t.w.Dot(t.U.Cross(hp))
	if alpha < 0 || beta < 0 || alpha+beta > 1 {
		return core.HitRecord{}, false
	}
	w0 := 1 - alpha - beta

	shading, ok := vec3.Normalize(
		t.N0.Vec().Scale(w0).Add(t.N1.Vec().Scale(alpha)).Add(t.N2.Vec().Scale(beta)),
	)
	if !ok {
		shading = t.flatNormal
	}

	u := w0*t.UV0[0] + alpha*t.UV1[0] + beta*t.UV2[0]
	v := w0*t.UV0[1] + alpha*t.UV1[1] + beta*t.UV2[1]

	rec := core.HitRecord{T: ray, P: point, Mat: t.Mat, U: u, V: v}
	rec.FrontFace = t.flatNormal.Dot(r.Direction) < 0
	if rec.FrontFace {
		rec.Normal = shading
	} else {
		rec.Normal = shading.Neg()
	}
	return rec, true
}

func (t *SmoothTriangle) BoundingBox() aabb.AABB {
	a := aabb.FromPoints(t.Q, t.Q.Add(t.U))
	b := aabb.FromPoints(t.Q.Add(t.V), t.Q.Add(t.V))
	return a.Union(b)
}

// Mesh is the Hittable wrapper a loaded triangle mesh is exposed as: a BVH
// built over its faces. Face data (positions, optional per-vertex normals
// and UVs, per-face materials) is supplied pre-parsed by pkg/loaders; this
// package never touches the Wavefront text format itself.
type Mesh struct {
	hittable core.Hittable
	box      aabb.AABB
}

// Face is one triangular face of a mesh, already resolved to world-space
// vertex data by the loader.
type Face struct {
	V0, V1, V2    vec3.Point3
	HasNormals    bool
	N0, N1, N2    vec3.UnitVec3
	HasUVs        bool
	UV0, UV1, UV2 [2]float64
	Mat           core.Material
}

// NewMesh builds a Mesh's acceleration structure from a flat face list. A
// face without explicit normals gets the flat per-face geometric normal at
// all three corners (so SmoothTriangle's interpolation degenerates to the
// flat Triangle behavior); a face without UVs gets (alpha,beta) passed
// through unchanged, the same UV convention the planar shapes use.
func NewMesh(faces []Face) *Mesh {
	tris := make([]core.Hittable, 0, len(faces))
	for _, f := range faces {
		n0, n1, n2 := f.N0, f.N1, f.N2
		if !f.HasNormals {
			flat, ok := vec3.Normalize(f.V1.Sub(f.V0).Cross(f.V2.Sub(f.V0)))
			if !ok {
				continue // degenerate (zero-area) face, dropped
			}
			n0, n1, n2 = flat, flat, flat
		}
		uv0, uv1, uv2 := f.UV0, f.UV1, f.UV2
		if !f.HasUVs {
			uv0, uv1, uv2 = [2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1}
		}
		tris = append(tris, NewSmoothTriangle(f.V0, f.V1, f.V2, n0, n1, n2, uv0, uv1, uv2, f.Mat))
	}

	list := NewList(tris...)
	return &Mesh{hittable: bvh.New(tris), box: list.BoundingBox()}
}

func (m *Mesh) Hit(r vec3.Ray, tInterval vec3.Interval) (core.HitRecord, bool) {
	return m.hittable.Hit(r, tInterval)
}

func (m *Mesh) BoundingBox() aabb.AABB { return m.box }
