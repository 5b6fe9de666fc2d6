package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Portal is a deterministic "teleport" material: it applies a fixed
// offset + rotation to the incoming ray and re-emits it from the
// transformed position with the rotated direction, constant attenuation.
type Portal struct {
	Offset      vec3.Vec3
	Rotation    vec3.Quaternion
	Attenuation vec3.Color
}

// NewPortal builds a portal with a white attenuation.
func NewPortal(offset vec3.Vec3, rotation vec3.Quaternion) *Portal {
	return &Portal{Offset: offset, Rotation: rotation, Attenuation: vec3.Color{X: 1, Y: 1, Z: 1}}
}

func (p *Portal) Scatter(rIn vec3.Ray, rec core.HitRecord, src *rng.Source) (core.ScatterRecord, bool) {
	newOrigin := rec.P.Add(p.Offset)
	newDirection := p.Rotation.RotateVector(rIn.Direction)
	return core.ScatterRecord{
		Specular:    true,
		SpecularRay: vec3.NewRayAt(newOrigin, newDirection, rIn.Time),
		Attenuation: p.Attenuation,
	}, true
}

func (p *Portal) Emitted(rIn vec3.Ray, rec core.HitRecord) vec3.Color { return vec3.Color{} }
