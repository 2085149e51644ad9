// Package material holds surface materials, procedural patterns and the
// noise sources that perturb them.
package material

import "github.com/castlight/go-whitted-raytracer/pkg/color"

// Refractive indices of common media
const (
	RefractiveVacuum  = 1.0
	RefractiveAir     = 1.00029
	RefractiveWater   = 1.333
	RefractiveGlass   = 1.52
	RefractiveDiamond = 2.417
)

// Material describes how a surface responds to light under the Phong
// model, plus its reflective and refractive behavior.
type Material struct {
	Pattern         Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Default returns a plain white material with the standard Phong coefficients
func Default() Material {
	return Material{
		Pattern:         NewPlain(color.White),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: RefractiveVacuum,
	}
}

// Glass returns a fully transparent, highly refractive material
func Glass() Material {
	m := Default()
	m.Transparency = 1
	m.RefractiveIndex = RefractiveGlass
	return m
}
