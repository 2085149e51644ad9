package geometry

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

// Plane is the infinite xz plane at y = 0
type Plane struct{}

func (Plane) intersect(shape *Shape, ray Ray, xs *Intersections) {
	if math.Abs(ray.Direction.Y) < linalg.Epsilon {
		return
	}
	xs.Insert(Intersection{T: -ray.Origin.Y / ray.Direction.Y, Shape: shape})
}

func (Plane) normal(linalg.Tuple, *Intersection) linalg.Tuple {
	return linalg.NewVector(0, 1, 0)
}

func (Plane) bbox() BoundingBox {
	return NewBoundingBox(
		linalg.NewPoint(math.Inf(-1), 0, math.Inf(-1)),
		linalg.NewPoint(math.Inf(1), 0, math.Inf(1)),
	)
}
