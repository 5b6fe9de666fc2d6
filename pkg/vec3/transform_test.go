package vec3

import (
	"math"
	"testing"
)

func TestTransform_Identity_IsNoOp(t *testing.T) {
	id := Identity()
	p := New(1, 2, 3)
	if got := id.Point(p); !got.Equals(p, 1e-9) {
		t.Errorf("Identity().Point(%v) = %v, want unchanged", p, got)
	}
}

func TestTransform_TranslateOnly_MovesPointsNotDirections(t *testing.T) {
	tr := NewTransform(New(1, 1, 1), Quaternion{W: 1}, New(5, 0, 0))
	p := New(0, 0, 0)
	if got := tr.Point(p); !got.Equals(New(5, 0, 0), 1e-9) {
		t.Errorf("Point(origin) = %v, want (5,0,0)", got)
	}
	d := New(1, 0, 0)
	if got := tr.Direction(d); !got.Equals(d, 1e-9) {
		t.Errorf("Direction(%v) = %v, want unchanged by translation", d, got)
	}
}

func TestTransform_ScaleOnly_ScalesPointsAndDirections(t *testing.T) {
	tr := NewTransform(New(2, 3, 4), Quaternion{W: 1}, Zero)
	p := New(1, 1, 1)
	want := New(2, 3, 4)
	if got := tr.Point(p); !got.Equals(want, 1e-9) {
		t.Errorf("Point(%v) = %v, want %v", p, got, want)
	}
	d := New(1, 1, 1)
	if got := tr.Direction(d); !got.Equals(want, 1e-9) {
		t.Errorf("Direction(%v) = %v, want %v", d, got, want)
	}
}

func TestTransform_PointRoundTripsThroughInverse(t *testing.T) {
	tr := NewTransform(New(2, 0.5, 3), Quaternion{W: 1}, New(1, -2, 5))
	p := New(4, 5, 6)
	forward := tr.Point(p)
	back := tr.InversePoint(forward)
	if !back.Equals(p, 1e-9) {
		t.Errorf("InversePoint(Point(%v)) = %v, want %v", p, back, p)
	}
}

func TestTransform_InverseTransposeDirection_PreservesPerpendicularityUnderUniformScale(t *testing.T) {
	// Under a uniform scale + rotation (no shear, no non-uniform scale),
	// the inverse-transpose normal map should still preserve the angle
	// between a normal and any tangent vector, i.e. leave perpendicularity
	// intact. As a simple check: a normal transformed this way, dotted with
	// the forward-transformed tangent it was originally perpendicular to,
	// should remain ~0.
	tr := NewTransform(New(2, 2, 2), Quaternion{W: 1}, New(1, 1, 1))
	normal := New(0, 1, 0)
	tangent := New(1, 0, 0)
	if math.Abs(normal.Dot(tangent)) > 1e-9 {
		t.Fatal("test setup invariant violated: normal and tangent must start perpendicular")
	}

	mappedNormal := tr.InverseTransposeDirection(normal)
	mappedTangent := tr.Direction(tangent)
	if math.Abs(mappedNormal.Dot(mappedTangent)) > 1e-9 {
		t.Errorf("perpendicularity not preserved: dot = %f", mappedNormal.Dot(mappedTangent))
	}
}
