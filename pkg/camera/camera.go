// Package camera turns a Config into per-sample rays: it owns the
// projection math (basis vectors, viewport, pixel grid, defocus disk) and
// the stratified-jitter + motion-blur sampling described for ray
// generation.
package camera

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Config is the camera's public, JSON-serializable configuration.
type Config struct {
	Center          vec3.Point3 // look_from
	LookAt          vec3.Point3
	Up              vec3.Vec3
	Width           int
	AspectRatio     float64
	VFov            float64 // vertical field of view, degrees
	DefocusAngle    float64 // degrees; 0 disables depth of field
	FocusDistance   float64 // 0 means auto: |Center - LookAt|
	SamplesPerPixel int
}

// Camera lazily derives its projection geometry from Config on first use and
// caches it; rendering never reconstructs it per-pixel.
type Camera struct {
	cfg Config

	imageWidth, imageHeight int
	sqrtSPP                 int
	pixelSampleScale        float64

	pixel00       vec3.Point3
	pixelDeltaU   vec3.Vec3
	pixelDeltaV   vec3.Vec3
	center        vec3.Point3
	defocusDiskU  vec3.Vec3
	defocusDiskV  vec3.Vec3
	defocusRadius float64
	initialized   bool
}

// New builds a Camera from cfg; geometry is computed on first use.
func New(cfg Config) *Camera {
	return &Camera{cfg: cfg}
}

func (c *Camera) ImageWidth() int  { c.ensureInit(); return c.imageWidth }
func (c *Camera) ImageHeight() int { c.ensureInit(); return c.imageHeight }

func (c *Camera) ensureInit() {
	if c.initialized {
		return
	}
	c.initialized = true

	cfg := c.cfg
	c.imageWidth = cfg.Width
	c.imageHeight = int(math.Max(1, float64(cfg.Width)/cfg.AspectRatio))

	sqrtSPP := int(math.Floor(math.Sqrt(float64(cfg.SamplesPerPixel))))
	if sqrtSPP < 1 {
		sqrtSPP = 1
	}
	c.sqrtSPP = sqrtSPP
	c.pixelSampleScale = 1.0 / float64(sqrtSPP*sqrtSPP)

	focusDistance := cfg.FocusDistance
	if focusDistance <= 0 {
		focusDistance = cfg.Center.Sub(cfg.LookAt).Length()
	}

	w, ok := vec3.Normalize(cfg.Center.Sub(cfg.LookAt))
	if !ok {
		w = vec3.NewUnitRaw(vec3.Vec3{X: 0, Y: 0, Z: 1})
	}
	u, ok := vec3.Normalize(cfg.Up.Cross(w.Vec()))
	if !ok {
		u = vec3.NewUnitRaw(vec3.Vec3{X: 1, Y: 0, Z: 0})
	}
	v := vec3.NewUnitRaw(w.Vec().Cross(u.Vec()))

	theta := cfg.VFov * math.Pi / 180
	viewportHeight := 2 * math.Tan(theta/2) * focusDistance
	viewportWidth := viewportHeight * (float64(c.imageWidth) / float64(c.imageHeight))

	viewportU := u.Vec().Scale(viewportWidth)
	viewportV := v.Vec().Neg().Scale(viewportHeight)

	c.pixelDeltaU = viewportU.Scale(1 / float64(c.imageWidth))
	c.pixelDeltaV = viewportV.Scale(1 / float64(c.imageHeight))

	viewportUpperLeft := cfg.Center.
		Sub(w.Vec().Scale(focusDistance)).
		Sub(viewportU.Scale(0.5)).
		Sub(viewportV.Scale(0.5))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Scale(0.5))

	c.center = cfg.Center
	c.defocusRadius = focusDistance * math.Tan(cfg.DefocusAngle/2*math.Pi/180)
	c.defocusDiskU = u.Vec().Scale(c.defocusRadius)
	c.defocusDiskV = v.Vec().Scale(c.defocusRadius)
}

// Ray generates one stratified sample ray for pixel (i,j), sub-cell (sI,sJ)
// out of a sqrtSPP x sqrtSPP grid.
func (c *Camera) Ray(i, j, sI, sJ int, src *rng.Source) vec3.Ray {
	c.ensureInit()

	offset := c.sampleSquareStratified(sI, sJ, src)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Scale(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Scale(float64(j) + offset.Y))

	origin := c.center
	if c.cfg.DefocusAngle > 0 {
		origin = c.defocusDiskSample(src)
	}
	direction := pixelSample.Sub(origin)
	time := src.Float64()
	return vec3.NewRayAt(origin, direction, time)
}

// PixelSampleScale is 1/sqrtSPP^2, the per-sample weight when accumulating
// samples_per_pixel samples into a pixel average.
func (c *Camera) PixelSampleScale() float64 { c.ensureInit(); return c.pixelSampleScale }

// SqrtSamplesPerPixel is the stratification grid's side length.
func (c *Camera) SqrtSamplesPerPixel() int { c.ensureInit(); return c.sqrtSPP }

func (c *Camera) sampleSquareStratified(sI, sJ int, src *rng.Source) vec3.Vec3 {
	n := float64(c.sqrtSPP)
	px := (float64(sI)+src.Float64())/n - 0.5
	py := (float64(sJ)+src.Float64())/n - 0.5
	return vec3.Vec3{X: px, Y: py}
}

func (c *Camera) defocusDiskSample(src *rng.Source) vec3.Point3 {
	p := vec3.RandomInUnitDisk(src)
	return c.center.Add(c.defocusDiskU.Scale(p.X)).Add(c.defocusDiskV.Scale(p.Y))
}
