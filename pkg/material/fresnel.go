package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/vec3"
)

// schlickWeight is (1-cos(theta))^5, the monotone factor in the Schlick
// approximation, reused across the Disney lobes.
func schlickWeight(cosTheta float64) float64 {
	m := math.Max(0, math.Min(1, 1-cosTheta))
	m2 := m * m
	return m2 * m2 * m
}

// schlickColor blends r0 toward white by schlickWeight(cosTheta).
func schlickColor(r0 vec3.Color, cosTheta float64) vec3.Color {
	weight := schlickWeight(cosTheta)
	white := vec3.Color{X: 1, Y: 1, Z: 1}
	return vec3.Lerp(r0, white, weight)
}

// schlickR0FromRelativeIOR converts a relative index of refraction into the
// normal-incidence reflectance used as Schlick's r0.
func schlickR0FromRelativeIOR(eta float64) float64 {
	v := (eta - 1) / (eta + 1)
	return v * v
}

// dielectricReflectance is the exact (unpolarized) Fresnel reflectance for a
// dielectric interface. Used by the Disney specular transmission lobe as a
// more accurate alternative to Schlick at grazing angles.
func dielectricReflectance(cosThetaIn, nIn, nOut float64) float64 {
	cosThetaIn = math.Max(-1, math.Min(1, cosThetaIn))
	if cosThetaIn < 0 {
		nIn, nOut = nOut, nIn
		cosThetaIn = -cosThetaIn
	}

	sinThetaIn := math.Sqrt(math.Max(0, 1-cosThetaIn*cosThetaIn))
	sinThetaOut := nIn / nOut * sinThetaIn
	if sinThetaOut >= 1 {
		return 1
	}
	cosThetaOut := math.Sqrt(math.Max(0, 1-sinThetaOut*sinThetaOut))

	rParallel := (nOut*cosThetaIn - nIn*cosThetaOut) / (nOut*cosThetaIn + nIn*cosThetaOut)
	rPerp := (nIn*cosThetaIn - nOut*cosThetaOut) / (nIn*cosThetaIn + nOut*cosThetaOut)
	return (rParallel*rParallel + rPerp*rPerp) / 2
}
