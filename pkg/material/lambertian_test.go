package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

func TestLambertian_Scatter_ReturnsCosinePDFNeverSpecular(t *testing.T) {
	l := NewLambertian(vec3.New(0.5, 0.6, 0.7))
	normal, _ := vec3.Normalize(vec3.New(0, 1, 0))
	rec := core.HitRecord{P: vec3.New(0, 0, 0), Normal: normal}
	rIn := vec3.NewRay(vec3.New(0, 1, 0), vec3.New(0, -1, 0))

	src := rng.NewSeeded(1)
	scatter, ok := l.Scatter(rIn, rec, src)
	if !ok {
		t.Fatal("Lambertian.Scatter should always succeed")
	}
	if scatter.Specular {
		t.Fatal("Lambertian is never specular")
	}
	if scatter.PDF == nil {
		t.Fatal("expected a non-nil PDF")
	}

	dir, ok := scatter.PDF.Generate(src)
	if !ok {
		t.Fatal("cosine PDF should always be able to generate a direction")
	}
	if dir.Dot(normal.Vec()) < 0 {
		t.Error("generated direction should stay in the same hemisphere as the normal")
	}
}

func TestLambertian_Emitted_IsAlwaysBlack(t *testing.T) {
	l := NewLambertian(vec3.New(1, 1, 1))
	rec := core.HitRecord{}
	if got := l.Emitted(vec3.Ray{}, rec); got != (vec3.Color{}) {
		t.Errorf("Emitted = %v, want zero", got)
	}
}
