package geometry

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

// BoundingBox is an axis-aligned box in world space. An empty box has
// +Inf minima and -Inf maxima so that inserting any point defines it.
type BoundingBox struct {
	Min linalg.Tuple
	Max linalg.Tuple
}

// EmptyBox returns a box that contains nothing
func EmptyBox() BoundingBox {
	return BoundingBox{
		Min: linalg.NewPoint(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: linalg.NewPoint(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// NewBoundingBox creates a box from its two extreme corners
func NewBoundingBox(min, max linalg.Tuple) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// minNum and maxNum ignore NaN operands, unlike math.Min/math.Max.
// Transforming a box with infinite extents produces 0*Inf = NaN corner
// components; dropping them keeps the box usable for pruning instead
// of poisoning every comparison.
func minNum(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Min(a, b)
}

func maxNum(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Max(a, b)
}

// Insert returns the box grown to contain the given point. NaN
// components are skipped so the remaining axes stay meaningful.
func (b BoundingBox) Insert(point linalg.Tuple) BoundingBox {
	return BoundingBox{
		Min: linalg.NewPoint(
			minNum(b.Min.X, point.X),
			minNum(b.Min.Y, point.Y),
			minNum(b.Min.Z, point.Z),
		),
		Max: linalg.NewPoint(
			maxNum(b.Max.X, point.X),
			maxNum(b.Max.Y, point.Y),
			maxNum(b.Max.Z, point.Z),
		),
	}
}

// Union returns the smallest box containing both boxes
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return b.Insert(other.Min).Insert(other.Max)
}

// Contains reports whether the point lies inside the box
func (b BoundingBox) Contains(point linalg.Tuple) bool {
	return b.Min.X <= point.X && point.X <= b.Max.X &&
		b.Min.Y <= point.Y && point.Y <= b.Max.Y &&
		b.Min.Z <= point.Z && point.Z <= b.Max.Z
}

// Encloses reports whether the other box lies entirely inside this one
func (b BoundingBox) Encloses(other BoundingBox) bool {
	return b.Contains(other.Min) && b.Contains(other.Max)
}

// Transform maps all eight corners through the matrix and returns the
// axis-aligned box around the result.
func (b BoundingBox) Transform(m linalg.Matrix) BoundingBox {
	corners := [8]linalg.Tuple{
		b.Min,
		linalg.NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		linalg.NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		linalg.NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		linalg.NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		linalg.NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		linalg.NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		b.Max,
	}

	box := EmptyBox()
	for _, corner := range corners {
		box = box.Insert(m.MulTuple(corner))
	}
	return box
}

// checkAxis computes the entry and exit distances along one slab,
// multiplying by infinity instead of dividing when the ray runs
// parallel to the slab so that IEEE semantics keep the signs right.
func checkAxis(origin, direction, min, max float64) (float64, float64) {
	tMinNumerator := min - origin
	tMaxNumerator := max - origin

	var tMin, tMax float64
	if math.Abs(direction) >= linalg.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		return tMax, tMin
	}
	return tMin, tMax
}

// Intersects reports whether the ray passes through the box
func (b BoundingBox) Intersects(ray Ray) bool {
	xTMin, xTMax := checkAxis(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	yTMin, yTMax := checkAxis(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	zTMin, zTMax := checkAxis(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)

	tMin := math.Max(xTMin, math.Max(yTMin, zTMin))
	tMax := math.Min(xTMax, math.Min(yTMax, zTMax))

	return tMin <= tMax
}

// ApproxEqual reports whether two boxes are equal within epsilon
func (b BoundingBox) ApproxEqual(other BoundingBox) bool {
	return approxOrBothInf(b.Min.X, other.Min.X) &&
		approxOrBothInf(b.Min.Y, other.Min.Y) &&
		approxOrBothInf(b.Min.Z, other.Min.Z) &&
		approxOrBothInf(b.Max.X, other.Max.X) &&
		approxOrBothInf(b.Max.Y, other.Max.Y) &&
		approxOrBothInf(b.Max.Z, other.Max.Z)
}

func approxOrBothInf(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(a, -1) || math.IsInf(b, 1) || math.IsInf(b, -1) {
		return a == b
	}
	return linalg.Approx(a, b)
}
