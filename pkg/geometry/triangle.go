package geometry

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

// Triangle is a flat triangle with a constant normal. The edge vectors
// and normal are precomputed at construction.
type Triangle struct {
	P1, P2, P3 linalg.Tuple
	E1, E2     linalg.Tuple
	N          linalg.Tuple
}

// SmoothTriangle is a triangle with per-vertex normals, interpolated
// at the hit point using its barycentric coordinates.
type SmoothTriangle struct {
	P1, P2, P3 linalg.Tuple
	E1, E2     linalg.Tuple
	N1, N2, N3 linalg.Tuple
}

// intersectTriangle is the Moller-Trumbore test shared by both
// triangle kinds. Hits record the barycentric u and v for normal
// interpolation.
func intersectTriangle(shape *Shape, ray Ray, p1, e1, e2 linalg.Tuple, xs *Intersections) {
	dirCrossE2 := ray.Direction.Cross(e2)
	determinant := e1.Dot(dirCrossE2)

	if math.Abs(determinant) < linalg.Epsilon {
		return
	}

	f := 1 / determinant
	p1ToOrigin := ray.Origin.Sub(p1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return
	}

	xs.Insert(Intersection{
		T:     f * e2.Dot(originCrossE1),
		Shape: shape,
		U:     u,
		V:     v,
		HasUV: true,
	})
}

func triangleBBox(p1, p2, p3 linalg.Tuple) BoundingBox {
	return EmptyBox().Insert(p1).Insert(p2).Insert(p3)
}

func (t Triangle) intersect(shape *Shape, ray Ray, xs *Intersections) {
	intersectTriangle(shape, ray, t.P1, t.E1, t.E2, xs)
}

func (t Triangle) normal(linalg.Tuple, *Intersection) linalg.Tuple {
	return t.N
}

func (t Triangle) bbox() BoundingBox {
	return triangleBBox(t.P1, t.P2, t.P3)
}

func (t SmoothTriangle) intersect(shape *Shape, ray Ray, xs *Intersections) {
	intersectTriangle(shape, ray, t.P1, t.E1, t.E2, xs)
}

func (t SmoothTriangle) normal(_ linalg.Tuple, hit *Intersection) linalg.Tuple {
	if hit == nil || !hit.HasUV {
		panic("geometry: smooth triangle normal requires a hit with barycentric coordinates")
	}
	return t.N2.Mul(hit.U).
		Add(t.N3.Mul(hit.V)).
		Add(t.N1.Mul(1 - hit.U - hit.V))
}

func (t SmoothTriangle) bbox() BoundingBox {
	return triangleBBox(t.P1, t.P2, t.P3)
}
