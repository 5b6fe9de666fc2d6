package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/rng"
	"github.com/df07/go-pathtracer/pkg/vec3"
)

// disneyPDF samples and evaluates the Disney BSDF as a single compound PDF.
// It works in the local shading frame of an OrthonormalBasis, where +Z is
// the surface normal (matching vec3.OrthonormalBasis and
// vec3.RandomCosineDirection); Value and Generate transform to/from world
// space at their boundaries. Value's returned attenuation already folds in
// |cos(theta)| * BSDF, so the integrator must not apply a separate cosine
// or scattering-pdf factor for this material.
type disneyPDF struct {
	mat      *Disney
	normal   vec3.UnitVec3
	basis    vec3.OrthonormalBasis
	outLocal vec3.Vec3 // outgoing (toward viewer) direction, local frame

	probDiffuse, probBRDF, probClearcoat, probTrans float64
}

func newDisneyPDF(mat *Disney, normal vec3.UnitVec3, outgoing vec3.UnitVec3) *disneyPDF {
	basis := vec3.NewOrthonormalBasis(normal)
	outLocal := basis.TransformToLocal(outgoing.Vec())

	diffuseWeight := (1 - mat.Metallic) * (1 - mat.SpecTrans)
	specWeight := mat.Metallic + (1-mat.Metallic)*(1-mat.SpecTrans)
	clearcoatWeight := mat.Clearcoat
	transWeight := (1 - mat.Metallic) * mat.SpecTrans

	total := specWeight + diffuseWeight + clearcoatWeight + transWeight
	if total <= 0 {
		total = 1
	}

	return &disneyPDF{
		mat: mat, normal: normal, basis: basis, outLocal: outLocal,
		probDiffuse:   diffuseWeight / total,
		probBRDF:      specWeight / total,
		probClearcoat: clearcoatWeight / total,
		probTrans:     transWeight / total,
	}
}

// Value evaluates the full mixture for a world-space scattered direction,
// returning (|cos(theta)| * BSDF, mixture pdf).
func (p *disneyPDF) Value(direction vec3.Vec3) (vec3.Color, float64) {
	inUnit, ok := vec3.Normalize(direction)
	if !ok {
		return vec3.Color{}, 0
	}
	in := p.basis.TransformToLocal(inUnit.Vec())
	out := p.outLocal

	if in.Z <= 0 && p.mat.SpecTrans <= 0 && p.mat.DiffTrans <= 0 {
		return vec3.Color{}, 0
	}

	var half vec3.Vec3
	if in.Z*out.Z > 0 {
		half = in.Add(out)
	} else {
		eta := p.relativeIOR(out.Z)
		half = in.Scale(eta).Add(out)
	}
	hLen := half.Length()
	if hLen == 0 {
		return vec3.Color{}, 0
	}
	half = half.Scale(1 / hLen)
	if half.Z < 0 {
		half = half.Scale(-1)
	}

	diffuse := p.evaluateDiffuse(in, out, half)
	sheen := p.evaluateSheen(in, half)
	specular, specPdf := p.evaluateSpecular(in, out, half)
	clearcoat, ccPdf := p.evaluateClearcoat(in, out, half)
	trans, transPdf := p.evaluateTransmission(in, out, half)

	diffuseWeight := (1 - p.mat.Metallic) * (1 - p.mat.SpecTrans)
	transWeight := (1 - p.mat.Metallic) * p.mat.SpecTrans

	color := diffuse.Add(sheen).Scale(diffuseWeight).
		Add(specular).
		Add(clearcoat.Scale(0.25 * p.mat.Clearcoat)).
		Add(trans.Scale(transWeight))

	pdf := p.probDiffuse*p.diffusePDF(in.Z) +
		p.probBRDF*specPdf +
		p.probClearcoat*ccPdf +
		p.probTrans*transPdf

	return color.Scale(math.Abs(in.Z)), pdf
}

func cosineHemispherePDF(cosTheta float64) float64 {
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

// diffusePDF is the density of the diffuse lobe's sampler, which flips to
// the lower hemisphere with probability DiffTrans (diffuse transmission
// through a thin surface).
func (p *disneyPDF) diffusePDF(cosTheta float64) float64 {
	if cosTheta >= 0 {
		return (1 - p.mat.DiffTrans) * cosineHemispherePDF(cosTheta)
	}
	return p.mat.DiffTrans * cosineHemispherePDF(-cosTheta)
}

// relativeIOR returns n_in/n_out for a half-vector computation, given the
// side of the surface the outgoing direction sits on.
func (p *disneyPDF) relativeIOR(outZ float64) float64 {
	if outZ > 0 {
		return 1.0 / p.mat.IOR
	}
	return p.mat.IOR
}

func (p *disneyPDF) evaluateDiffuse(in, out, half vec3.Vec3) vec3.Color {
	if in.Z <= 0 {
		// Diffuse transmission through a thin surface: a flat Lambertian
		// lobe on the far side, weighted by DiffTrans.
		if p.mat.DiffTrans <= 0 {
			return vec3.Color{}
		}
		return p.mat.BaseColor.Scale(p.mat.DiffTrans / math.Pi)
	}
	dotHL := half.Dot(in)
	fl := schlickWeight(in.Z)
	fv := schlickWeight(out.Z)
	fd90 := 0.5 + 2*p.mat.Roughness*dotHL*dotHL
	fd := lerp(1, fd90, fl) * lerp(1, fd90, fv)
	if p.mat.Thin && p.mat.Flatness > 0 {
		// Hanrahan-Krueger subsurface approximation, blended in by
		// Flatness for thin surfaces.
		fss90 := dotHL * dotHL * p.mat.Roughness
		fss := lerp(1, fss90, fl) * lerp(1, fss90, fv)
		ss := 1.25 * (fss*(1/(in.Z+out.Z)-0.5) + 0.5)
		fd = lerp(fd, ss, p.mat.Flatness)
	}
	return p.mat.BaseColor.Scale((1 - p.mat.DiffTrans) * fd / math.Pi)
}

func (p *disneyPDF) evaluateSheen(in, half vec3.Vec3) vec3.Color {
	if p.mat.Sheen <= 0 {
		return vec3.Color{}
	}
	dotHL := math.Abs(half.Dot(in))
	tint := p.mat.tint()
	white := vec3.Color{X: 1, Y: 1, Z: 1}
	return vec3.Lerp(white, tint, p.mat.SheenTint).Scale(p.mat.Sheen * schlickWeight(dotHL))
}

func (p *disneyPDF) evaluateSpecular(in, out, half vec3.Vec3) (vec3.Color, float64) {
	if in.Z <= 0 || out.Z <= 0 {
		return vec3.Color{}, 0
	}
	ax, ay := p.mat.anisotropicAlphas()
	d := gtr2Aniso(half, ax, ay)
	g := smithGAniso(in, ax, ay) * smithGAniso(out, ax, ay)

	r0 := schlickR0FromRelativeIOR(p.mat.IOR)
	tint := p.mat.tint()
	white := vec3.Color{X: 1, Y: 1, Z: 1}
	cSpec0 := vec3.Lerp(vec3.Lerp(white, tint, p.mat.SpecularTint).Scale(r0), p.mat.BaseColor, p.mat.Metallic)
	f := schlickColor(cSpec0, half.Dot(out))

	value := f.Scale(d * g / (4 * in.Z * out.Z))
	pdf := d * g * half.Z / (4 * out.Dot(half))
	if pdf < 0 {
		pdf = 0
	}
	return value, pdf
}

func (p *disneyPDF) evaluateClearcoat(in, out, half vec3.Vec3) (vec3.Color, float64) {
	if p.mat.Clearcoat <= 0 || in.Z <= 0 || out.Z <= 0 {
		return vec3.Color{}, 0
	}
	d := gtr1(half.Z, p.mat.clearcoatAlpha())
	f := lerp(1, 0.04, schlickWeight(half.Dot(out)))
	g := smithG1(in.Z, 0.25) * smithG1(out.Z, 0.25)
	value := d * f * g / (4 * in.Z * out.Z)
	pdf := d * half.Z / (4 * math.Abs(half.Dot(out)))
	return vec3.Color{X: value, Y: value, Z: value}, pdf
}

func (p *disneyPDF) evaluateTransmission(in, out, half vec3.Vec3) (vec3.Color, float64) {
	if p.mat.SpecTrans <= 0 || in.Z*out.Z > 0 {
		return vec3.Color{}, 0
	}
	ax, ay := p.mat.anisotropicAlphas()
	d := gtr2Aniso(half, ax, ay)
	g := smithGAniso(in, ax, ay) * smithGAniso(out, ax, ay)
	fr := dielectricReflectance(out.Z, 1.0, p.mat.IOR)

	color := p.mat.BaseColor
	if p.mat.Thin {
		color = vec3.Color{X: math.Sqrt(color.X), Y: math.Sqrt(color.Y), Z: math.Sqrt(color.Z)}
	}
	value := color.Scale((1 - fr) * d * g / math.Abs(4*in.Z*out.Z))
	pdf := d * g / (4 * math.Abs(out.Z))
	return value, pdf
}

// Generate samples a direction from the mixture by picking a lobe via
// cumulative probability and sampling its local distribution, then
// transforming the result to world space. It rejects samples whose world
// cosine is zero (grazing, numerically degenerate) and samples to which
// Value assigns no density (e.g. a reflection that lands below the surface).
func (p *disneyPDF) Generate(src *rng.Source) (vec3.UnitVec3, bool) {
	u := src.Float64()
	out := p.outLocal

	var local vec3.Vec3
	switch {
	case u < p.probDiffuse:
		local = vec3.RandomCosineDirection(src).Vec()
		if p.mat.DiffTrans > 0 && src.Float64() < p.mat.DiffTrans {
			local.Z = -local.Z
		}
	case u < p.probDiffuse+p.probBRDF:
		ax, ay := p.mat.anisotropicAlphas()
		half := sampleGGXVNDF(out, ax, ay, src)
		local = reflectLocal(out, half)
	case u < p.probDiffuse+p.probBRDF+p.probClearcoat:
		half := sampleGTR1(p.mat.clearcoatAlpha(), src)
		local = reflectLocal(out, half)
	default:
		ax, ay := p.mat.anisotropicAlphas()
		half := sampleGGXVNDF(out, ax, ay, src)
		eta := p.relativeIOR(out.Z)
		refracted, ok := refractLocal(out, half, eta)
		if ok {
			local = refracted
		} else {
			local = reflectLocal(out, half)
		}
	}

	world, ok := vec3.Normalize(p.basis.Transform(local))
	if !ok || world.Dot(p.normal.Vec()) == 0 {
		return vec3.UnitVec3{}, false
	}
	if _, density := p.Value(world.Vec()); density <= 0 {
		return vec3.UnitVec3{}, false
	}
	return world, true
}

// reflectLocal reflects out about half, both expressed in the local frame.
func reflectLocal(out, half vec3.Vec3) vec3.Vec3 {
	return half.Scale(2 * out.Dot(half)).Sub(out)
}

// refractLocal refracts out (pointing away from the surface, toward the
// viewer) through half with relative IOR eta = n_out/n_in, local frame.
func refractLocal(out, half vec3.Vec3, eta float64) (vec3.Vec3, bool) {
	cosThetaI := out.Dot(half)
	sin2ThetaT := eta * eta * math.Max(0, 1-cosThetaI*cosThetaI)
	if sin2ThetaT >= 1 {
		return vec3.Vec3{}, false
	}
	cosThetaT := math.Sqrt(1 - sin2ThetaT)
	sign := 1.0
	if cosThetaI > 0 {
		sign = -1.0
	}
	return half.Scale(eta*cosThetaI + sign*cosThetaT).Sub(out.Scale(eta)), true
}

// sampleGTR1 samples a half-vector from the GTR1 (clearcoat) distribution,
// local frame with Z as the normal.
func sampleGTR1(a float64, src *rng.Source) vec3.Vec3 {
	a2 := math.Max(a*a, 1e-8)
	cosTheta := math.Sqrt(math.Max(0, (1-math.Pow(a2, 1-src.Float64()))/(1-a2)))
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * src.Float64()
	return vec3.Vec3{X: sinTheta * math.Cos(phi), Y: sinTheta * math.Sin(phi), Z: cosTheta}
}

// sampleGGXVNDF samples a half-vector from the distribution of visible
// normals for anisotropic GGX (Heitz, "Sampling the GGX Distribution of
// Visible Normals", 2018), local frame with Z as the normal.
func sampleGGXVNDF(ve vec3.Vec3, alphaX, alphaY float64, src *rng.Source) vec3.Vec3 {
	vh, ok := vec3.Normalize(vec3.Vec3{X: alphaX * ve.X, Y: alphaY * ve.Y, Z: ve.Z})
	var vhv vec3.Vec3
	if ok {
		vhv = vh.Vec()
	} else {
		vhv = vec3.Vec3{X: 0, Y: 0, Z: 1}
	}

	lensq := vhv.X*vhv.X + vhv.Y*vhv.Y
	var t1 vec3.Vec3
	if lensq > 0 {
		inv := 1 / math.Sqrt(lensq)
		t1 = vec3.Vec3{X: -vhv.Y * inv, Y: vhv.X * inv, Z: 0}
	} else {
		t1 = vec3.Vec3{X: 1, Y: 0, Z: 0}
	}
	t2 := vhv.Cross(t1)

	u1, u2 := src.Float64(), src.Float64()
	r := math.Sqrt(u1)
	phi := 2 * math.Pi * u2
	p1 := r * math.Cos(phi)
	p2 := r * math.Sin(phi)
	s := 0.5 * (1 + vhv.Z)
	p2 = (1-s)*math.Sqrt(math.Max(0, 1-p1*p1)) + s*p2

	nh := t1.Scale(p1).Add(t2.Scale(p2)).Add(vhv.Scale(math.Sqrt(math.Max(0, 1-p1*p1-p2*p2))))
	ne, ok := vec3.Normalize(vec3.Vec3{X: alphaX * nh.X, Y: alphaY * nh.Y, Z: math.Max(0, nh.Z)})
	if !ok {
		return vec3.Vec3{X: 0, Y: 0, Z: 1}
	}
	return ne.Vec()
}
