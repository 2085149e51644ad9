// Package color provides RGB color arithmetic for the ray tracer.
// Channels are open-range floats during shading and are only clamped
// to 8-bit values when a canvas is written out.
package color

import "math"

// Color represents an RGB color with float64 components
type Color struct {
	R, G, B float64
}

// New creates a color from its three channels
func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Sub returns the component-wise difference of two colors
func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Mul returns the color scaled by a scalar
func (c Color) Mul(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// ApproxEqual reports whether two colors are equal within epsilon
func (c Color) ApproxEqual(other Color) bool {
	const epsilon = 1e-4
	return math.Abs(c.R-other.R) < epsilon &&
		math.Abs(c.G-other.G) < epsilon &&
		math.Abs(c.B-other.B) < epsilon
}

// Clamp8 converts a single channel to an 8-bit value, clamping to [0, 1] first
func Clamp8(x float64) uint8 {
	return uint8(math.Round(math.Min(1, math.Max(0, x)) * 255))
}
