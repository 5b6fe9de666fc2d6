package scene

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/render"
)

func TestNewTwoSphereScene_HasNoLights(t *testing.T) {
	s := NewTwoSphereScene()
	if s.World == nil {
		t.Fatal("expected a non-nil World")
	}
	if s.Lights != nil {
		t.Error("the two-sphere scene has no area lights; Lights should be nil")
	}
	if s.Camera.SamplesPerPixel <= 0 {
		t.Error("expected a positive SamplesPerPixel")
	}
}

func TestNewCornellBoxScene_HasLights(t *testing.T) {
	s := NewCornellBoxScene()
	if s.World == nil {
		t.Fatal("expected a non-nil World")
	}
	if s.Lights == nil {
		t.Error("the Cornell box scene has an area light; Lights should be set for MIS")
	}
	if s.Camera.AspectRatio != 1 {
		t.Errorf("AspectRatio = %f, want 1 (square Cornell box render)", s.Camera.AspectRatio)
	}
}

func TestNewCornellBoxScene_RenderSmoke(t *testing.T) {
	// A scaled-down Cornell render driven through the full MIS pipeline:
	// every pixel must come out finite, the brightest pixel must be the
	// (15,15,15) ceiling light itself (seen directly, near the top of the
	// frame), and the indirect lighting must land in a sane luminance
	// band rather than a blown-out or black image.
	sc := NewCornellBoxScene()
	sc.Camera.Width = 40
	sc.Camera.SamplesPerPixel = 4

	cam := camera.New(sc.Camera)
	tracer := integrator.New(sc.World, sc.Lights, sc.Background, 4)
	frame := render.Render(cam, tracer, render.Options{NumWorkers: 2, Deterministic: true, Seed: 11})

	maxLum, maxX, maxY := 0.0, 0, 0
	sum := 0.0
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.At(x, y)
			if !c.IsFinite() {
				t.Fatalf("pixel (%d,%d) is not finite: %v", x, y, c)
			}
			lum := (c.X + c.Y + c.Z) / 3
			sum += lum
			if lum > maxLum {
				maxLum, maxX, maxY = lum, x, y
			}
		}
	}
	if maxLum < 5 {
		t.Errorf("brightest pixel luminance = %f, want the light's direct emission to dominate", maxLum)
	}
	if maxY >= frame.Height/3 {
		t.Errorf("brightest pixel at (%d,%d) of %dx%d, want it in the ceiling's upper rows",
			maxX, maxY, frame.Width, frame.Height)
	}
	mean := sum / float64(frame.Width*frame.Height)
	if mean <= 0.01 || mean >= 5 {
		t.Errorf("mean luminance = %f, want indirect lighting in a sane band", mean)
	}
}
