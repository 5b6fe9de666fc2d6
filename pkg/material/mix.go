package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Mix owns two sub-materials and dispatches scatter to one of them
// probabilistically, either by a fixed ratio or by an alpha texture (e.g.
// a cutout mask). Emission is a linear blend of both sub-materials' Emitted.
type Mix struct {
	A, B  core.Material
	Ratio core.Texture // evaluated at (u,v,p); value is P(choose B)
}

// NewMix splits by a constant ratio in [0,1] giving the probability of B.
func NewMix(a, b core.Material, ratio float64) *Mix {
	return &Mix{A: a, B: b, Ratio: constantRatio(ratio)}
}

// NewMixTexture splits by a per-point ratio texture (e.g. alpha channel).
func NewMixTexture(a, b core.Material, ratio core.Texture) *Mix {
	return &Mix{A: a, B: b, Ratio: ratio}
}

type constantRatio float64

func (c constantRatio) Value(u, v float64, p vec3.Point3) vec3.Color {
	return vec3.Color{X: float64(c), Y: float64(c), Z: float64(c)}
}

func (m *Mix) Scatter(rIn vec3.Ray, rec core.HitRecord, src *rng.Source) (core.ScatterRecord, bool) {
	ratio := m.Ratio.Value(rec.U, rec.V, rec.P).X
	if src.Float64() < ratio {
		return m.B.Scatter(rIn, rec, src)
	}
	return m.A.Scatter(rIn, rec, src)
}

func (m *Mix) Emitted(rIn vec3.Ray, rec core.HitRecord) vec3.Color {
	ratio := m.Ratio.Value(rec.U, rec.V, rec.P).X
	return vec3.Lerp(m.A.Emitted(rIn, rec), m.B.Emitted(rIn, rec), ratio)
}
