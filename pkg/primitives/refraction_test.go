package primitives

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

func TestDielectricSphere_RayThroughCenterExitsParallel(t *testing.T) {
	// A ray aimed through a glass sphere's center meets both surfaces at
	// normal incidence, so a refract-refract path must exit with the
	// incoming direction unchanged. Each surface still runs the Schlick
	// reflectance coin flip (~4% at normal incidence for ior 1.5), so a
	// handful of seeds is enough to see the straight-through path at least
	// once; every path, reflected or refracted, must stay on the axis.
	glass := material.NewDielectric(1.5)
	sphere := NewSphere(vec3.New(0, 0, 0), 1, glass)
	incoming := vec3.New(0, 0, 1)

	exitedStraight := false
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		src := rng.NewSeeded(seed)
		ray := vec3.NewRay(vec3.New(0, 0, -3), incoming)

		for bounce := 0; bounce < 2; bounce++ {
			rec, hit := sphere.Hit(ray, vec3.NewInterval(0.001, math.Inf(1)))
			if !hit {
				break
			}
			scatter, ok := glass.Scatter(ray, rec, src)
			if !ok || !scatter.Specular {
				t.Fatalf("seed %d bounce %d: dielectric must always scatter specularly", seed, bounce)
			}
			ray = scatter.SpecularRay
			if math.Abs(ray.Direction.X) > 1e-9 || math.Abs(ray.Direction.Y) > 1e-9 {
				t.Fatalf("seed %d bounce %d: direction %v left the axis at normal incidence", seed, bounce, ray.Direction)
			}
		}
		if ray.Direction.Equals(incoming, 1e-6) && ray.Origin.Z > 0.99 {
			exitedStraight = true
		}
	}
	if !exitedStraight {
		t.Error("no seed produced a refract-refract path whose exit direction matches the incoming ray")
	}
}
