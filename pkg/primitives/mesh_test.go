package primitives

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/vec3"
)

func TestNewMesh_FlatFaceGetsGeometricNormalAtAllCorners(t *testing.T) {
	face := Face{
		V0: vec3.New(0, 0, 0), V1: vec3.New(1, 0, 0), V2: vec3.New(0, 1, 0),
	}
	mesh := NewMesh([]Face{face})

	r := vec3.NewRay(vec3.New(0.2, 0.2, 1), vec3.New(0, 0, -1))
	rec, hit := mesh.Hit(r, vec3.NewInterval(0.001, 1000))
	if !hit {
		t.Fatal("expected a hit on the mesh triangle")
	}
	want, _ := vec3.Normalize(vec3.New(0, 0, 1))
	if !rec.Normal.Vec().Equals(want.Vec(), 1e-9) {
		t.Errorf("normal = %v, want %v", rec.Normal.Vec(), want.Vec())
	}
}

func TestNewMesh_DropsDegenerateFaces(t *testing.T) {
	degenerate := Face{V0: vec3.New(0, 0, 0), V1: vec3.New(0, 0, 0), V2: vec3.New(0, 0, 0)}
	good := Face{V0: vec3.New(0, 0, 0), V1: vec3.New(1, 0, 0), V2: vec3.New(0, 1, 0)}
	mesh := NewMesh([]Face{degenerate, good})

	r := vec3.NewRay(vec3.New(0.2, 0.2, 1), vec3.New(0, 0, -1))
	if _, hit := mesh.Hit(r, vec3.NewInterval(0.001, 1000)); !hit {
		t.Fatal("expected the valid face to still be hit after dropping the degenerate one")
	}
}

func TestNewSmoothTriangle_InterpolatesVertexNormals(t *testing.T) {
	up, _ := vec3.Normalize(vec3.New(0, 0, 1))
	tilted, _ := vec3.Normalize(vec3.New(0.3, 0, 1))
	tri := NewSmoothTriangle(
		vec3.New(0, 0, 0), vec3.New(1, 0, 0), vec3.New(0, 1, 0),
		up, tilted, tilted,
		[2]float64{0, 0}, [2]float64{1, 0}, [2]float64{0, 1},
		nil,
	)

	// Hitting near V0 should give a normal close to 'up'; near the V1-V2
	// edge it should lean toward 'tilted'.
	rNearV0 := vec3.NewRay(vec3.New(0.05, 0.05, 1), vec3.New(0, 0, -1))
	rec, hit := tri.Hit(rNearV0, vec3.NewInterval(0.001, 1000))
	if !hit {
		t.Fatal("expected a hit near V0")
	}
	if rec.Normal.Dot(up.Vec()) < rec.Normal.Dot(tilted.Vec()) {
		t.Error("normal near V0 should lean toward the V0 normal, not the tilted one")
	}
}
