package primitives

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/vec3"
)

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(vec3.New(0, 0, 0), 1.0, nil)

	tests := []struct {
		name       string
		origin     vec3.Point3
		direction  vec3.Vec3
		wantT      float64
		wantFront  bool
		wantNormal vec3.Vec3
	}{
		{"front face", vec3.New(0, 0, 2), vec3.New(0, 0, -1), 1, true, vec3.New(0, 0, 1)},
		{"back face (ray from inside)", vec3.New(0, 0, 0), vec3.New(0, 0, 1), 1, false, vec3.New(0, 0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := vec3.NewRay(tt.origin, tt.direction)
			rec, hit := sphere.Hit(r, vec3.NewInterval(0.001, 1000))
			if !hit {
				t.Fatal("expected a hit")
			}
			if math.Abs(rec.T-tt.wantT) > 1e-9 {
				t.Errorf("T = %f, want %f", rec.T, tt.wantT)
			}
			if rec.FrontFace != tt.wantFront {
				t.Errorf("FrontFace = %v, want %v", rec.FrontFace, tt.wantFront)
			}
			if !rec.Normal.Vec().Equals(tt.wantNormal, 1e-9) {
				t.Errorf("Normal = %v, want %v", rec.Normal.Vec(), tt.wantNormal)
			}
		})
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(vec3.New(0, 0, 0), 1.0, nil)
	r := vec3.NewRay(vec3.New(5, 0, 0), vec3.New(0, 1, 0))
	if _, hit := sphere.Hit(r, vec3.NewInterval(0.001, 1000)); hit {
		t.Error("expected a miss")
	}
}

func TestSphere_Hit_RespectsTInterval(t *testing.T) {
	sphere := NewSphere(vec3.New(0, 0, -5), 1.0, nil)
	r := vec3.NewRay(vec3.New(0, 0, 0), vec3.New(0, 0, -1))
	// The sphere spans t in [4, 6]; a window ending before that must miss.
	if _, hit := sphere.Hit(r, vec3.NewInterval(0.001, 2)); hit {
		t.Error("expected a miss when the interval excludes the sphere")
	}
	if _, hit := sphere.Hit(r, vec3.NewInterval(0.001, 10)); !hit {
		t.Error("expected a hit when the interval includes the sphere")
	}
}

func TestSphere_BoundingBox_MovingSphereCoversBothEndpoints(t *testing.T) {
	s := NewMovingSphere(vec3.New(0, 0, 0), vec3.New(10, 0, 0), 1, nil)
	box := s.BoundingBox()
	if !box.Contains(vec3.New(0, 0, 0)) {
		t.Error("bounding box doesn't contain the start center")
	}
	if !box.Contains(vec3.New(10, 0, 0)) {
		t.Error("bounding box doesn't contain the end center")
	}
}
