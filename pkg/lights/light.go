// Package lights defines the light sources a world can hold.
package lights

import (
	"github.com/castlight/go-whitted-raytracer/pkg/color"
	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

// PointLight is an idealized light source with a position and no size
type PointLight struct {
	Position  linalg.Tuple
	Intensity color.Color
}

// NewPointLight creates a point light at the given position
func NewPointLight(position linalg.Tuple, intensity color.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
