package material

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/color"
	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

// Pattern computes a surface color from a point in pattern space.
// Shapes convert world points into pattern space before calling ColorAt.
type Pattern interface {
	ColorAt(point linalg.Tuple) color.Color
}

// Plain is a single constant color
type Plain struct {
	Color color.Color
}

// NewPlain creates a constant-color pattern
func NewPlain(c color.Color) Plain {
	return Plain{Color: c}
}

// ColorAt returns the constant color
func (p Plain) ColorAt(linalg.Tuple) color.Color {
	return p.Color
}

// Debug maps a point's coordinates directly to color channels,
// which makes pattern-space transforms visible in tests.
type Debug struct{}

// ColorAt returns (x, y, z) as (r, g, b)
func (Debug) ColorAt(point linalg.Tuple) color.Color {
	return color.New(point.X, point.Y, point.Z)
}

// JitterKind selects what a Jitter pattern perturbs
type JitterKind int

// Jitter kinds
const (
	JitterColor JitterKind = iota
	JitterPoint
)

// Jitter perturbs either the looked-up color or the lookup point
// of an inner pattern using a noise source.
type Jitter struct {
	Kind    JitterKind
	Noise   Noise
	Pattern Pattern
}

// NewColorJitter perturbs the inner pattern's resulting color
func NewColorJitter(noise Noise, pattern Pattern) Jitter {
	return Jitter{Kind: JitterColor, Noise: noise, Pattern: pattern}
}

// NewPointJitter perturbs the lookup point before delegating
func NewPointJitter(noise Noise, pattern Pattern) Jitter {
	return Jitter{Kind: JitterPoint, Noise: noise, Pattern: pattern}
}

// ColorAt evaluates the inner pattern with the configured perturbation
func (j Jitter) ColorAt(point linalg.Tuple) color.Color {
	switch j.Kind {
	case JitterColor:
		c := j.Pattern.ColorAt(point)
		r, g, b := j.Noise.Jitter3D(c.R, c.G, c.B)
		return color.New(r, g, b)
	default:
		x, y, z := j.Noise.Jitter3D(point.X, point.Y, point.Z)
		return j.Pattern.ColorAt(linalg.NewPoint(x, y, z))
	}
}

// MixtureKind selects how a Mixture combines its two sub-patterns
type MixtureKind int

// Mixture kinds
const (
	MixBlend MixtureKind = iota
	MixCheckers
	MixRingGradient
	MixRing
	MixGradient
	MixStripes
)

// Mixture combines two sub-patterns. The point is first mapped through
// the mixture's inverse transform, so patterns can be rotated, scaled
// and translated independently of the shape that carries them.
type Mixture struct {
	Kind         MixtureKind
	TransformInv linalg.Matrix
	Left, Right  Pattern
}

func newMixture(kind MixtureKind, transform linalg.Matrix, left, right Pattern) Mixture {
	return Mixture{Kind: kind, TransformInv: transform.Inverse(), Left: left, Right: right}
}

// NewBlend averages the two sub-patterns
func NewBlend(transform linalg.Matrix, left, right Pattern) Mixture {
	return newMixture(MixBlend, transform, left, right)
}

// NewCheckers alternates sub-patterns in a 3D checker grid
func NewCheckers(transform linalg.Matrix, left, right Pattern) Mixture {
	return newMixture(MixCheckers, transform, left, right)
}

// NewRingGradient interpolates between sub-patterns by distance from the origin
func NewRingGradient(transform linalg.Matrix, left, right Pattern) Mixture {
	return newMixture(MixRingGradient, transform, left, right)
}

// NewRing alternates sub-patterns in concentric rings in the xz plane
func NewRing(transform linalg.Matrix, left, right Pattern) Mixture {
	return newMixture(MixRing, transform, left, right)
}

// NewGradient interpolates between sub-patterns along x
func NewGradient(transform linalg.Matrix, left, right Pattern) Mixture {
	return newMixture(MixGradient, transform, left, right)
}

// NewStripes alternates sub-patterns in unit-wide stripes along x
func NewStripes(transform linalg.Matrix, left, right Pattern) Mixture {
	return newMixture(MixStripes, transform, left, right)
}

// ColorAt combines the sub-patterns at the transformed point
func (m Mixture) ColorAt(point linalg.Tuple) color.Color {
	p := m.TransformInv.MulTuple(point)

	switch m.Kind {
	case MixBlend:
		return m.Left.ColorAt(p).Add(m.Right.ColorAt(p)).Mul(0.5)
	case MixCheckers:
		sum := int(math.Floor(p.X)) + int(math.Floor(p.Y)) + int(math.Floor(p.Z))
		if sum%2 == 0 {
			return m.Left.ColorAt(p)
		}
		return m.Right.ColorAt(p)
	case MixRingGradient:
		distance := p.Sub(linalg.NewPoint(0, 0, 0)).Magnitude()
		fraction := distance - math.Floor(distance)
		left := m.Left.ColorAt(p)
		return left.Add(m.Right.ColorAt(p).Sub(left).Mul(fraction))
	case MixRing:
		if int(math.Floor(math.Sqrt(p.X*p.X+p.Z*p.Z)))%2 == 0 {
			return m.Left.ColorAt(p)
		}
		return m.Right.ColorAt(p)
	case MixGradient:
		fraction := p.X - math.Floor(p.X)
		left := m.Left.ColorAt(p)
		return left.Add(m.Right.ColorAt(p).Sub(left).Mul(fraction))
	default:
		if int(math.Floor(p.X))%2 == 0 {
			return m.Left.ColorAt(p)
		}
		return m.Right.ColorAt(p)
	}
}
