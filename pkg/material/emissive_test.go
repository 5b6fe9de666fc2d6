package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

func TestDiffuseLight_Emitted_OnlyOnFrontFace(t *testing.T) {
	light := NewDiffuseLight(vec3.New(4, 4, 4))

	front := core.HitRecord{FrontFace: true}
	if got := light.Emitted(vec3.Ray{}, front); got != light.Emit.Value(0, 0, vec3.Point3{}) {
		t.Errorf("front-face Emitted = %v, want the light color", got)
	}

	back := core.HitRecord{FrontFace: false}
	if got := light.Emitted(vec3.Ray{}, back); got != (vec3.Color{}) {
		t.Errorf("back-face Emitted = %v, want zero", got)
	}
}

func TestDiffuseLight_Scatter_RefusesWithoutReflective(t *testing.T) {
	light := NewDiffuseLight(vec3.New(4, 4, 4))
	if _, ok := light.Scatter(vec3.Ray{}, core.HitRecord{}, rng.NewSeeded(1)); ok {
		t.Error("a plain light with no Reflective material should refuse to scatter")
	}
}

func TestDiffuseLight_Scatter_DelegatesToReflective(t *testing.T) {
	reflective := NewLambertian(vec3.New(0.5, 0.5, 0.5))
	light := NewDiffuseLightWithReflection(vec3.New(4, 4, 4), reflective)

	normal, _ := vec3.Normalize(vec3.New(0, 1, 0))
	rec := core.HitRecord{P: vec3.New(0, 0, 0), Normal: normal}
	scatter, ok := light.Scatter(vec3.NewRay(vec3.New(0, 1, 0), vec3.New(0, -1, 0)), rec, rng.NewSeeded(1))
	if !ok {
		t.Fatal("expected the reflective sub-material to scatter")
	}
	if scatter.PDF == nil {
		t.Error("expected the Lambertian's cosine PDF to come through")
	}
}
