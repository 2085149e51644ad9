// Package geometry implements the ray tracer's primitives: rays, bounding
// boxes, the seven unit geometries, placed shapes, and composite groups
// with constructive solid geometry.
package geometry

import "github.com/castlight/go-whitted-raytracer/pkg/linalg"

// Ray is a half-line with an origin point and a direction vector
type Ray struct {
	Origin    linalg.Tuple
	Direction linalg.Tuple
}

// NewRay creates a ray from an origin and a direction
func NewRay(origin, direction linalg.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point t units along the ray
func (r Ray) Position(t float64) linalg.Tuple {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform returns the ray mapped through the given matrix
func (r Ray) Transform(m linalg.Matrix) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
