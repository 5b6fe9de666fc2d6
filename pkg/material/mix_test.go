package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

func TestMix_Scatter_RatioZeroAlwaysPicksA(t *testing.T) {
	a := NewMetal(vec3.New(1, 0, 0), 0)
	b := NewMetal(vec3.New(0, 1, 0), 0)
	mix := NewMix(a, b, 0)

	normal, _ := vec3.Normalize(vec3.New(0, 1, 0))
	rec := core.HitRecord{P: vec3.New(0, 0, 0), Normal: normal}
	rIn := vec3.NewRay(vec3.New(0, 1, -1), vec3.New(0, -1, 1))
	src := rng.NewSeeded(1)

	for i := 0; i < 20; i++ {
		scatter, ok := mix.Scatter(rIn, rec, src)
		if !ok {
			t.Fatal("expected a scatter")
		}
		if scatter.Attenuation != a.Albedo {
			t.Errorf("ratio=0 should always dispatch to A, got attenuation %v", scatter.Attenuation)
		}
	}
}

func TestMix_Scatter_RatioOneAlwaysPicksB(t *testing.T) {
	a := NewMetal(vec3.New(1, 0, 0), 0)
	b := NewMetal(vec3.New(0, 1, 0), 0)
	mix := NewMix(a, b, 1)

	normal, _ := vec3.Normalize(vec3.New(0, 1, 0))
	rec := core.HitRecord{P: vec3.New(0, 0, 0), Normal: normal}
	rIn := vec3.NewRay(vec3.New(0, 1, -1), vec3.New(0, -1, 1))
	src := rng.NewSeeded(2)

	scatter, ok := mix.Scatter(rIn, rec, src)
	if !ok {
		t.Fatal("expected a scatter")
	}
	if scatter.Attenuation != b.Albedo {
		t.Errorf("ratio=1 should always dispatch to B, got attenuation %v", scatter.Attenuation)
	}
}

func TestMix_Emitted_BlendsLinearlyByRatio(t *testing.T) {
	a := NewDiffuseLight(vec3.New(1, 0, 0))
	b := NewDiffuseLight(vec3.New(0, 1, 0))
	mix := NewMix(a, b, 0.25)

	rec := core.HitRecord{FrontFace: true}
	got := mix.Emitted(vec3.Ray{}, rec)
	want := vec3.New(0.75, 0.25, 0)
	if !got.Equals(want, 1e-9) {
		t.Errorf("Emitted = %v, want %v", got, want)
	}
}
