package geometry

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

// Cone is the double-napped cone around the y axis whose radius equals
// |y|, truncated to Min < y < Max and optionally closed with end caps.
type Cone struct {
	Min    float64
	Max    float64
	Closed bool
}

func (c Cone) intersect(shape *Shape, ray Ray, xs *Intersections) {
	o := ray.Origin
	d := ray.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z

	aZero := math.Abs(a) < linalg.Epsilon
	bZero := math.Abs(b) < linalg.Epsilon

	if !aZero || !bZero {
		cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z
		if !aZero {
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
		} else {
			// The ray is parallel to one half of the cone and
			// pierces the other half exactly once.
			xs.Insert(Intersection{T: -cc / (2 * b), Shape: shape})
		}
	}

	intersectCaps(shape, ray, c.Min, c.Max, c.Min, c.Max, c.Closed, xs)
}

func (c Cone) normal(point linalg.Tuple, _ *Intersection) linalg.Tuple {
	distance := point.X*point.X + point.Z*point.Z

	switch {
	case distance < 1 && point.Y >= c.Max-linalg.Epsilon:
		return linalg.NewVector(0, 1, 0)
	case distance < 1 && point.Y <= c.Min+linalg.Epsilon:
		return linalg.NewVector(0, -1, 0)
	default:
		y := math.Sqrt(distance)
		if point.Y > 0 {
			y = -y
		}
		return linalg.NewVector(point.X, y, point.Z)
	}
}

func (c Cone) bbox() BoundingBox {
	if c.Closed {
		limit := math.Max(math.Abs(c.Min), math.Abs(c.Max))
		return NewBoundingBox(
			linalg.NewPoint(-limit, c.Min, -limit),
			linalg.NewPoint(limit, c.Max, limit),
		)
	}
	return NewBoundingBox(
		linalg.NewPoint(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
		linalg.NewPoint(math.Inf(1), math.Inf(1), math.Inf(1)),
	)
}
