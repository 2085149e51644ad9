package geometry

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

// Sphere is the unit sphere centered on the origin
type Sphere struct{}

func (Sphere) intersect(shape *Shape, ray Ray, xs *Intersections) {
	sphereToRay := ray.Origin.Sub(linalg.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return
	}

	sqrtD := math.Sqrt(discriminant)
	xs.Insert(Intersection{T: (-b - sqrtD) / (2 * a), Shape: shape})
	xs.Insert(Intersection{T: (-b + sqrtD) / (2 * a), Shape: shape})
}

func (Sphere) normal(point linalg.Tuple, _ *Intersection) linalg.Tuple {
	return linalg.NewVector(point.X, point.Y, point.Z)
}

func (Sphere) bbox() BoundingBox {
	return NewBoundingBox(linalg.NewPoint(-1, -1, -1), linalg.NewPoint(1, 1, 1))
}
