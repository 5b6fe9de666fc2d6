// Package scene builds the compiled-in demo scenes the CLI renders. There
// is no general-purpose scene file format, only Go-literal scenes; the
// camera can still be overridden from JSON via pkg/sceneconfig.
package scene

import (
	"github.com/df07/go-pathtracer/pkg/bvh"
	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/environment"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/primitives"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Scene bundles everything the renderer needs: the accelerated world, an
// optional light set for MIS, a background, and the camera configuration.
type Scene struct {
	World      core.Hittable
	Lights     core.Sampleable // nil disables light-sampling MIS
	Background core.Environment
	Camera     camera.Config
	MaxDepth   int
}

// NewTwoSphereScene is a small Lambertian sphere over a large Lambertian
// "ground" sphere, lit only by a sky gradient (no explicit lights, no
// MIS).
func NewTwoSphereScene() *Scene {
	ground := material.NewLambertian(vec3.New(0.8, 0.8, 0.0))
	center := material.NewLambertian(vec3.New(0.5, 0.5, 0.5))

	world := primitives.NewList(
		primitives.NewSphere(vec3.New(0, -100.5, -1), 100, ground),
		primitives.NewSphere(vec3.New(0, 0, -1), 0.5, center),
	)

	return &Scene{
		World: bvh.New(world.Objects),
		Background: environment.NewGradient(
			vec3.New(1.0, 1.0, 1.0),
			vec3.New(0.5, 0.7, 1.0),
		),
		Camera: camera.Config{
			Center:          vec3.New(0, 0, 0),
			LookAt:          vec3.New(0, 0, -1),
			Up:              vec3.New(0, 1, 0),
			Width:           400,
			AspectRatio:     16.0 / 9.0,
			VFov:            90,
			SamplesPerPixel: 16,
		},
		MaxDepth: 5,
	}
}

// NewCornellBoxScene is the classic Cornell box: five quads forming an
// open box (left red, right green, floor/ceiling/back white) plus one quad
// light near the ceiling, with Lights set to the light quad so the
// integrator runs MIS against it.
func NewCornellBoxScene() *Scene {
	red := material.NewLambertian(vec3.New(0.65, 0.05, 0.05))
	white := material.NewLambertian(vec3.New(0.73, 0.73, 0.73))
	green := material.NewLambertian(vec3.New(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(vec3.New(15, 15, 15))

	list := primitives.NewList(
		primitives.NewQuad(vec3.New(555, 0, 0), vec3.New(0, 555, 0), vec3.New(0, 0, 555), green),
		primitives.NewQuad(vec3.New(0, 0, 0), vec3.New(0, 555, 0), vec3.New(0, 0, 555), red),
		primitives.NewQuad(vec3.New(0, 0, 0), vec3.New(555, 0, 0), vec3.New(0, 0, 555), white),
		primitives.NewQuad(vec3.New(555, 555, 555), vec3.New(-555, 0, 0), vec3.New(0, 0, -555), white),
		primitives.NewQuad(vec3.New(0, 0, 555), vec3.New(555, 0, 0), vec3.New(0, 555, 0), white),
	)
	lightQuad := primitives.NewQuad(vec3.New(213, 554, 227), vec3.New(130, 0, 0), vec3.New(0, 0, 105), light)
	list.Add(lightQuad)

	lights := primitives.NewList(lightQuad)

	return &Scene{
		World:      bvh.New(list.Objects),
		Lights:     lights,
		Background: environment.NewGradient(vec3.Color{}, vec3.Color{}),
		Camera: camera.Config{
			Center:          vec3.New(278, 278, -800),
			LookAt:          vec3.New(278, 278, 0),
			Up:              vec3.New(0, 1, 0),
			Width:           300,
			AspectRatio:     1,
			VFov:            40,
			SamplesPerPixel: 64,
		},
		MaxDepth: 10,
	}
}
