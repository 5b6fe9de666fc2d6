package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/texture"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// DiffuseLight is a purely emissive material: Scatter always fails and
// Emitted returns the texture lookup on the front face only (black on the
// back, so a one-sided light doesn't leak through its own geometry).
type DiffuseLight struct {
	Emit       core.Texture
	Reflective core.Material // optional: a light that is also shiny
}

func NewDiffuseLight(color vec3.Color) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolid(color)}
}

func NewDiffuseLightTexture(tex core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: tex}
}

// NewDiffuseLightWithReflection builds a light that also scatters rays via
// reflective, so the same surface can both emit and bounce light.
func NewDiffuseLightWithReflection(color vec3.Color, reflective core.Material) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolid(color), Reflective: reflective}
}

// NewDiffuseLightTextureWithReflection is the textured-emission variant of
// NewDiffuseLightWithReflection (the OBJ loader's map_Ke binding).
func NewDiffuseLightTextureWithReflection(tex core.Texture, reflective core.Material) *DiffuseLight {
	return &DiffuseLight{Emit: tex, Reflective: reflective}
}

func (d *DiffuseLight) Scatter(rIn vec3.Ray, rec core.HitRecord, src *rng.Source) (core.ScatterRecord, bool) {
	if d.Reflective == nil {
		return core.ScatterRecord{}, false
	}
	return d.Reflective.Scatter(rIn, rec, src)
}

func (d *DiffuseLight) Emitted(rIn vec3.Ray, rec core.HitRecord) vec3.Color {
	if !rec.FrontFace {
		return vec3.Color{}
	}
	return d.Emit.Value(rec.U, rec.V, rec.P)
}
