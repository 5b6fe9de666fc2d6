// Package sceneconfig decodes a pkg/camera.Config from an external JSON
// document. Unlike the render path (which never returns an error), this is
// scene-construction-time code and surfaces structural problems to its
// caller before a render begins.
package sceneconfig

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/df07/go-pathtracer/pkg/camera"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// document is the on-disk JSON shape; fields map onto camera.Config.
type document struct {
	LookFrom        [3]float64 `json:"lookFrom"`
	LookAt          [3]float64 `json:"lookAt"`
	Up              [3]float64 `json:"up"`
	Width           int        `json:"width"`
	AspectRatio     float64    `json:"aspectRatio"`
	VFov            float64    `json:"vfov"`
	DefocusAngle    float64    `json:"defocusAngle"`
	FocusDistance   float64    `json:"focusDistance"`
	SamplesPerPixel int        `json:"samplesPerPixel"`
}

// Load reads and decodes a camera.Config from the JSON file at path.
func Load(path string) (camera.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return camera.Config{}, fmt.Errorf("sceneconfig: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads and decodes a camera.Config from r.
func Decode(r io.Reader) (camera.Config, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return camera.Config{}, fmt.Errorf("sceneconfig: decode: %w", err)
	}

	up := doc.Up
	if up == ([3]float64{}) {
		up = [3]float64{0, 1, 0}
	}

	cfg := camera.Config{
		Center:          vec3.New(doc.LookFrom[0], doc.LookFrom[1], doc.LookFrom[2]),
		LookAt:          vec3.New(doc.LookAt[0], doc.LookAt[1], doc.LookAt[2]),
		Up:              vec3.New(up[0], up[1], up[2]),
		Width:           doc.Width,
		AspectRatio:     doc.AspectRatio,
		VFov:            doc.VFov,
		DefocusAngle:    doc.DefocusAngle,
		FocusDistance:   doc.FocusDistance,
		SamplesPerPixel: doc.SamplesPerPixel,
	}
	if err := validate(cfg); err != nil {
		return camera.Config{}, err
	}
	return cfg, nil
}

// validate rejects out-of-range fields before a render begins.
func validate(cfg camera.Config) error {
	if cfg.Width <= 0 {
		return fmt.Errorf("sceneconfig: width must be positive, got %d", cfg.Width)
	}
	if cfg.AspectRatio <= 0 {
		return fmt.Errorf("sceneconfig: aspectRatio must be positive, got %g", cfg.AspectRatio)
	}
	if cfg.VFov <= 0 || cfg.VFov >= 180 {
		return fmt.Errorf("sceneconfig: vfov must be in (0,180), got %g", cfg.VFov)
	}
	if cfg.SamplesPerPixel <= 0 {
		return fmt.Errorf("sceneconfig: samplesPerPixel must be positive, got %d", cfg.SamplesPerPixel)
	}
	if cfg.DefocusAngle < 0 {
		return fmt.Errorf("sceneconfig: defocusAngle must be non-negative, got %g", cfg.DefocusAngle)
	}
	return nil
}
