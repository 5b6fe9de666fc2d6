package texture

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/vec3"
)

func TestSolid_AlwaysReturnsSameColor(t *testing.T) {
	c := vec3.Color{X: 0.2, Y: 0.4, Z: 0.6}
	s := NewSolid(c)
	if got := s.Value(0.1, 0.9, vec3.New(5, 5, 5)); got != c {
		t.Errorf("Solid.Value = %v, want %v", got, c)
	}
}

func TestChecker_AlternatesByCellParity(t *testing.T) {
	even := vec3.Color{X: 1, Y: 1, Z: 1}
	odd := vec3.Color{X: 0, Y: 0, Z: 0}
	c := NewCheckerColors(1.0, even, odd)

	if got := c.Value(0, 0, vec3.New(0.5, 0.5, 0.5)); got != even {
		t.Errorf("cell (0,0,0) = %v, want even %v", got, even)
	}
	if got := c.Value(0, 0, vec3.New(1.5, 0.5, 0.5)); got != odd {
		t.Errorf("cell (1,0,0) = %v, want odd %v", got, odd)
	}
	if got := c.Value(0, 0, vec3.New(1.5, 1.5, 0.5)); got != even {
		t.Errorf("cell (1,1,0) = %v, want even %v", got, even)
	}
}

func TestPerlin_ValueStaysInUnitRange(t *testing.T) {
	p := NewPerlin(1.0, 42)
	for i := 0; i < 20; i++ {
		pt := vec3.New(float64(i)*0.37, float64(i)*-0.11, float64(i)*0.08)
		got := p.Value(0, 0, pt)
		if got.X < 0 || got.X > 1 {
			t.Errorf("Perlin.Value(%v).X = %f, want in [0,1]", pt, got.X)
		}
		if got.X != got.Y || got.Y != got.Z {
			t.Errorf("Perlin.Value(%v) = %v, want a gray (equal channels)", pt, got)
		}
	}
}

func TestPerlin_SameSeedIsDeterministic(t *testing.T) {
	a := NewPerlin(2.0, 7)
	b := NewPerlin(2.0, 7)
	pt := vec3.New(1.2, 3.4, -5.6)
	if a.Value(0, 0, pt) != b.Value(0, 0, pt) {
		t.Error("two Perlin textures built from the same seed should agree")
	}
}
