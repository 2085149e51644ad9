package linalg

import "math"

// Epsilon is the geometric tolerance used for all approximate comparisons
// against zero throughout the ray tracer.
const Epsilon = 1e-4

// Tuple is a homogeneous coordinate: a point when W == 1, a direction when W == 0.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a position tuple (w = 1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a direction tuple (w = 0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// Add returns the component-wise sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Sub returns the component-wise difference of two tuples
func (t Tuple) Sub(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Mul returns the tuple scaled by a scalar
func (t Tuple) Mul(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Neg returns the negation of the tuple
func (t Tuple) Neg() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Dot returns the dot product of two tuples
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two direction tuples
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Magnitude returns the length of the tuple
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction
func (t Tuple) Normalize() Tuple {
	magnitude := t.Magnitude()
	if magnitude == 0 {
		return Tuple{}
	}
	return Tuple{t.X / magnitude, t.Y / magnitude, t.Z / magnitude, t.W / magnitude}
}

// Reflect returns the tuple reflected about the given normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Sub(normal.Mul(2 * t.Dot(normal)))
}

// ApproxEqual reports whether two tuples are equal within Epsilon
func (t Tuple) ApproxEqual(other Tuple) bool {
	return Approx(t.X, other.X) &&
		Approx(t.Y, other.Y) &&
		Approx(t.Z, other.Z) &&
		Approx(t.W, other.W)
}

// Approx reports whether two floats are equal within Epsilon
func Approx(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
