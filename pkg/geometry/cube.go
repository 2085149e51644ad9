package geometry

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

// Cube is the axis-aligned cube spanning -1..1 on every axis
type Cube struct{}

func (Cube) intersect(shape *Shape, ray Ray, xs *Intersections) {
	xTMin, xTMax := checkAxis(ray.Origin.X, ray.Direction.X, -1, 1)
	yTMin, yTMax := checkAxis(ray.Origin.Y, ray.Direction.Y, -1, 1)
	zTMin, zTMax := checkAxis(ray.Origin.Z, ray.Direction.Z, -1, 1)

	tMin := math.Max(xTMin, math.Max(yTMin, zTMin))
	tMax := math.Min(xTMax, math.Min(yTMax, zTMax))

	if tMin <= tMax {
		xs.Insert(Intersection{T: tMin, Shape: shape})
		xs.Insert(Intersection{T: tMax, Shape: shape})
	}
}

// normal picks the axis with the largest absolute coordinate, so
// points on an edge or corner resolve to one face deterministically.
func (Cube) normal(point linalg.Tuple, _ *Intersection) linalg.Tuple {
	xAbs := math.Abs(point.X)
	yAbs := math.Abs(point.Y)
	zAbs := math.Abs(point.Z)

	max := math.Max(xAbs, math.Max(yAbs, zAbs))
	switch {
	case max == xAbs:
		return linalg.NewVector(point.X, 0, 0)
	case max == yAbs:
		return linalg.NewVector(0, point.Y, 0)
	default:
		return linalg.NewVector(0, 0, point.Z)
	}
}

func (Cube) bbox() BoundingBox {
	return NewBoundingBox(linalg.NewPoint(-1, -1, -1), linalg.NewPoint(1, 1, 1))
}
