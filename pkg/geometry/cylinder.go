package geometry

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

// Cylinder is the unit-radius cylinder around the y axis, truncated to
// Min < y < Max and optionally closed with end caps.
type Cylinder struct {
	Min    float64
	Max    float64
	Closed bool
}

// intersectsCap reports whether the ray at t falls within the cap radius
func intersectsCap(ray Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

// intersectCaps records hits on the two end caps. Cones pass different
// radii for the two caps since their cross-section grows with |y|.
func intersectCaps(shape *Shape, ray Ray, min, max, minRadius, maxRadius float64, closed bool, xs *Intersections) {
	if !closed || math.Abs(ray.Direction.Y) < linalg.Epsilon {
		return
	}

	t := (min - ray.Origin.Y) / ray.Direction.Y
	if intersectsCap(ray, t, minRadius) {
		xs.Insert(Intersection{T: t, Shape: shape})
	}

	t = (max - ray.Origin.Y) / ray.Direction.Y
	if intersectsCap(ray, t, maxRadius) {
		xs.Insert(Intersection{T: t, Shape: shape})
	}
}

func (c Cylinder) intersect(shape *Shape, ray Ray, xs *Intersections) {
	o := ray.Origin
	d := ray.Direction

	a := d.X*d.X + d.Z*d.Z

	// A ray parallel to the y axis can only hit the caps.
	if math.Abs(a) >= linalg.Epsilon {
		b := 2*o.X*d.X + 2*o.Z*d.Z
		cc := o.X*o.X + o.Z*o.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)

			t0 := (-b - sqrtD) / (2 * a)
			if y0 := o.Y + t0*d.Y; c.Min < y0 && y0 < c.Max {
				xs.Insert(Intersection{T: t0, Shape: shape})
			}

			t1 := (-b + sqrtD) / (2 * a)
			if y1 := o.Y + t1*d.Y; c.Min < y1 && y1 < c.Max {
				xs.Insert(Intersection{T: t1, Shape: shape})
			}
		}
	}

	intersectCaps(shape, ray, c.Min, c.Max, 1, 1, c.Closed, xs)
}

func (c Cylinder) normal(point linalg.Tuple, _ *Intersection) linalg.Tuple {
	distance := point.X*point.X + point.Z*point.Z

	switch {
	case distance < 1 && point.Y >= c.Max-linalg.Epsilon:
		return linalg.NewVector(0, 1, 0)
	case distance < 1 && point.Y <= c.Min+linalg.Epsilon:
		return linalg.NewVector(0, -1, 0)
	default:
		return linalg.NewVector(point.X, 0, point.Z)
	}
}

func (c Cylinder) bbox() BoundingBox {
	if c.Closed {
		return NewBoundingBox(linalg.NewPoint(-1, c.Min, -1), linalg.NewPoint(1, c.Max, 1))
	}
	return NewBoundingBox(
		linalg.NewPoint(-1, math.Inf(-1), -1),
		linalg.NewPoint(1, math.Inf(1), 1),
	)
}
