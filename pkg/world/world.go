// Package world ties lights and elements together and implements the
// recursive Whitted shading loop.
package world

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/color"
	"github.com/castlight/go-whitted-raytracer/pkg/geometry"
	"github.com/castlight/go-whitted-raytracer/pkg/lights"
	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
	"github.com/castlight/go-whitted-raytracer/pkg/material"
)

// DefaultFuel bounds the reflection and refraction recursion. Every
// bounce consumes one unit; rays with no fuel left shade to black.
const DefaultFuel = 5

// World is a scene: a set of lights and a set of elements to render
type World struct {
	Lights   []lights.PointLight
	Elements []geometry.Element
}

// NewDefault returns the two-sphere reference world used throughout
// the shading tests: an outer sphere with a soft green material and a
// half-size plain sphere inside it, lit from the upper left.
func NewDefault() *World {
	return NewDefaultWith(geometry.NewBuilder())
}

// NewDefaultWith builds the reference world with the caller's shape
// builder, so further elements can be added under the same id sequence.
func NewDefaultWith(b *geometry.Builder) *World {
	light := lights.NewPointLight(linalg.NewPoint(-10, 10, -10), color.White)

	args1 := geometry.DefaultArgs()
	args1.Material.Pattern = material.NewPlain(color.New(0.8, 1.0, 0.6))
	args1.Material.Diffuse = 0.7
	args1.Material.Specular = 0.2

	args2 := geometry.DefaultArgs()
	args2.Transform = linalg.Scaling(0.5, 0.5, 0.5)

	return &World{
		Lights:   []lights.PointLight{light},
		Elements: []geometry.Element{b.Sphere(args1), b.Sphere(args2)},
	}
}

// Intersect clears the ledger and records the hits of every element
func (w *World) Intersect(ray geometry.Ray, xs *geometry.Intersections) {
	xs.Clear()
	for _, element := range w.Elements {
		element.Intersect(ray, xs)
	}
}

// IsShadowed reports whether a shadow-casting element blocks the
// segment between the point and the light.
func (w *World) IsShadowed(light lights.PointLight, point linalg.Tuple, xs *geometry.Intersections) bool {
	vector := light.Position.Sub(point)
	distance := vector.Magnitude()

	ray := geometry.NewRay(point, vector.Normalize())
	w.Intersect(ray, xs)
	xs.Sort()

	if hit, ok := xs.Hit(); ok {
		return hit.Shape.CastsShadow && hit.T < distance
	}
	return false
}

// ShadeHit computes the color at a prepared hit: the Phong surface
// term per light, plus the reflected and refracted contributions. For
// materials that are both reflective and transparent the two
// contributions are blended by the Fresnel reflectance.
func (w *World) ShadeHit(state geometry.State, fuel int, xs *geometry.Intersections) color.Color {
	result := color.Black

	for _, light := range w.Lights {
		shadowed := w.IsShadowed(light, state.OverPoint, xs)

		surface := state.Shape.Lighting(light, state.OverPoint, state.Eye, state.Normal, shadowed)
		reflected := w.ReflectedColor(state, fuel, xs)
		refracted := w.RefractedColor(state, fuel, xs)

		mat := state.Shape.Material
		if mat.Reflective > 0 && mat.Transparency > 0 {
			result = result.Add(surface).
				Add(reflected.Mul(state.Reflectance)).
				Add(refracted.Mul(1 - state.Reflectance))
		} else {
			result = result.Add(surface).Add(reflected).Add(refracted)
		}
	}

	return result
}

// ReflectedColor follows the reflection ray, spending one unit of fuel
func (w *World) ReflectedColor(state geometry.State, fuel int, xs *geometry.Intersections) color.Color {
	if fuel <= 0 || state.Shape.Material.Reflective == 0 {
		return color.Black
	}

	ray := geometry.NewRay(state.OverPoint, state.Reflect)
	return w.ColorAt(ray, fuel-1, xs).Mul(state.Shape.Material.Reflective)
}

// RefractedColor follows the refraction ray computed by Snell's law,
// spending one unit of fuel. Total internal reflection refracts to
// black.
func (w *World) RefractedColor(state geometry.State, fuel int, xs *geometry.Intersections) color.Color {
	if fuel <= 0 || state.Shape.Material.Transparency == 0 {
		return color.Black
	}

	nRatio := state.N1 / state.N2
	cosI := state.Eye.Dot(state.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)

	if sin2T > 1 {
		return color.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := state.Normal.Mul(nRatio*cosI - cosT).Sub(state.Eye.Mul(nRatio))

	ray := geometry.NewRay(state.UnderPoint, direction)
	return w.ColorAt(ray, fuel-1, xs).Mul(state.Shape.Material.Transparency)
}

// ColorAt traces a ray into the world and shades the nearest hit, or
// returns black when the ray escapes.
func (w *World) ColorAt(ray geometry.Ray, fuel int, xs *geometry.Intersections) color.Color {
	w.Intersect(ray, xs)
	xs.Sort()

	hit, ok := xs.Hit()
	if !ok {
		return color.Black
	}

	state := hit.PrepareState(ray, xs)
	return w.ShadeHit(state, fuel, xs)
}
