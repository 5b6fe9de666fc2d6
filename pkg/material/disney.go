package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// Disney is the full Disney "principled" BSDF: a mixture of a
// metallic/specular GGX lobe, a GTR1 clearcoat, a Burley diffuse lobe
// (with an optional thin-surface sheen approximation), and a specular
// transmission lobe. scatter always returns a PDF(DisneyPDF); the
// attenuation/pdf contract is documented on DisneyPDF.
type Disney struct {
	BaseColor vec3.Color
	// BaseColorTexture, when set, overrides BaseColor per hit point (the
	// OBJ loader's map_Kd binding).
	BaseColorTexture core.Texture
	Roughness        float64
	Anisotropic      float64
	Sheen            float64
	SheenTint        float64
	Clearcoat        float64
	ClearcoatGloss   float64
	SpecularTint     float64
	Metallic         float64
	IOR              float64
	Flatness         float64
	SpecTrans        float64
	DiffTrans        float64
	Thin             bool
}

// NewDisney returns a Disney material with the documented defaults: a grey
// base color, medium roughness, ior 1.45, every other lobe disabled.
func NewDisney(baseColor vec3.Color) *Disney {
	return &Disney{
		BaseColor: baseColor,
		Roughness: 0.5,
		IOR:       1.45,
	}
}

func (d *Disney) Scatter(rIn vec3.Ray, rec core.HitRecord, src *rng.Source) (core.ScatterRecord, bool) {
	outgoing := rIn.Direction.Neg()
	unitOut, ok := vec3.Normalize(outgoing)
	if !ok {
		return core.ScatterRecord{}, false
	}
	mat := d
	if d.BaseColorTexture != nil {
		resolved := *d
		resolved.BaseColor = d.BaseColorTexture.Value(rec.U, rec.V, rec.P)
		mat = &resolved
	}
	sampler := newDisneyPDF(mat, rec.Normal, unitOut)
	return core.ScatterRecord{PDF: sampler}, true
}

func (d *Disney) Emitted(rIn vec3.Ray, rec core.HitRecord) vec3.Color { return vec3.Color{} }

// anisotropicAlphas derives (alphaX, alphaY) from roughness/anisotropic.
func (d *Disney) anisotropicAlphas() (ax, ay float64) {
	aspect := math.Sqrt(1 - 0.9*d.Anisotropic)
	a2 := d.Roughness * d.Roughness
	ax = math.Max(0.001, a2/aspect)
	ay = math.Max(0.001, a2*aspect)
	return ax, ay
}

func (d *Disney) clearcoatAlpha() float64 {
	return lerp(0.1, 0.001, d.ClearcoatGloss)
}

func lerp(a, b, t float64) float64 { return a*(1-t) + b*t }

// tint extracts the hue/saturation of baseColor with luminance normalized
// out, used to tint the specular/sheen Fresnel terms.
func (d *Disney) tint() vec3.Color {
	luminance := vec3.Color{X: 0.3, Y: 0.6, Z: 1.0}.Dot(d.BaseColor)
	if luminance > 0 {
		return d.BaseColor.Scale(1 / luminance)
	}
	return vec3.Color{X: 1, Y: 1, Z: 1}
}

// gtr1 is the GTR1 distribution used by the clearcoat lobe.
func gtr1(cosThetaH, a float64) float64 {
	if a >= 1 {
		return 1 / math.Pi
	}
	a2 := a * a
	denom := math.Pi * math.Log(a2) * (1 + (a2-1)*cosThetaH*cosThetaH)
	return (a2 - 1) / denom
}

// gtr2Aniso is the anisotropic GGX (GTR2) distribution evaluated in the
// local shading frame (Z is the surface normal, matching OrthonormalBasis).
func gtr2Aniso(h vec3.Vec3, ax, ay float64) float64 {
	denom := (h.X*h.X)/(ax*ax) + (h.Y*h.Y)/(ay*ay) + h.Z*h.Z
	return 1 / (math.Pi * ax * ay * denom * denom)
}

// smithGAniso is the separable anisotropic Smith masking term for a single
// direction w (local frame, Z is the normal).
func smithGAniso(w vec3.Vec3, ax, ay float64) float64 {
	ndotw := w.Z
	denom := ndotw + math.Sqrt(w.X*w.X*ax*ax+w.Y*w.Y*ay*ay+ndotw*ndotw)
	if denom <= 0 {
		return 0
	}
	return 1 / denom
}

// smithG1 is the isotropic separable Smith masking term, used by the
// clearcoat lobe (fixed alpha=0.25).
func smithG1(ndotw, a float64) float64 {
	a2 := a * a
	return 2 / (1 + math.Sqrt(a2+(1-a2)*ndotw*ndotw))
}
