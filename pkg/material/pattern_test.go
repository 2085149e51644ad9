package material

import (
	"testing"

	"github.com/castlight/go-whitted-raytracer/pkg/color"
	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

func TestStripes(t *testing.T) {
	pattern := NewStripes(linalg.Identity(), NewPlain(color.White), NewPlain(color.Black))

	tests := []struct {
		name  string
		point linalg.Tuple
		want  color.Color
	}{
		{"constant in y", linalg.NewPoint(0, 1, 0), color.White},
		{"constant in y farther out", linalg.NewPoint(0, 2, 0), color.White},
		{"constant in z", linalg.NewPoint(0, 0, 1), color.White},
		{"constant in z farther out", linalg.NewPoint(0, 0, 2), color.White},
		{"just before the stripe edge", linalg.NewPoint(0.9, 0, 0), color.White},
		{"at the stripe edge", linalg.NewPoint(1, 0, 0), color.Black},
		{"just below zero", linalg.NewPoint(-0.1, 0, 0), color.Black},
		{"at negative one", linalg.NewPoint(-1, 0, 0), color.Black},
		{"below negative one", linalg.NewPoint(-1.1, 0, 0), color.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pattern.ColorAt(tt.point); !got.ApproxEqual(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStripesWithTransform(t *testing.T) {
	t.Run("pattern scaling stretches the stripes", func(t *testing.T) {
		pattern := NewStripes(linalg.Scaling(2, 2, 2), NewPlain(color.White), NewPlain(color.Black))
		if got := pattern.ColorAt(linalg.NewPoint(1.5, 0, 0)); !got.ApproxEqual(color.White) {
			t.Errorf("expected white, got %v", got)
		}
	})

	t.Run("pattern translation shifts the stripes", func(t *testing.T) {
		pattern := NewStripes(linalg.Translation(0.5, 0, 0), NewPlain(color.White), NewPlain(color.Black))
		if got := pattern.ColorAt(linalg.NewPoint(2.5, 0, 0)); !got.ApproxEqual(color.White) {
			t.Errorf("expected white, got %v", got)
		}
	})
}

func TestGradient(t *testing.T) {
	pattern := NewGradient(linalg.Identity(), NewPlain(color.White), NewPlain(color.Black))

	tests := []struct {
		name  string
		point linalg.Tuple
		want  color.Color
	}{
		{"start", linalg.NewPoint(0, 0, 0), color.White},
		{"quarter", linalg.NewPoint(0.25, 0, 0), color.New(0.75, 0.75, 0.75)},
		{"half", linalg.NewPoint(0.5, 0, 0), color.New(0.5, 0.5, 0.5)},
		{"three quarters", linalg.NewPoint(0.75, 0, 0), color.New(0.25, 0.25, 0.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pattern.ColorAt(tt.point); !got.ApproxEqual(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRing(t *testing.T) {
	pattern := NewRing(linalg.Identity(), NewPlain(color.White), NewPlain(color.Black))

	if got := pattern.ColorAt(linalg.NewPoint(0, 0, 0)); !got.ApproxEqual(color.White) {
		t.Errorf("expected white at origin, got %v", got)
	}
	if got := pattern.ColorAt(linalg.NewPoint(1, 0, 0)); !got.ApproxEqual(color.Black) {
		t.Errorf("expected black at (1,0,0), got %v", got)
	}
	if got := pattern.ColorAt(linalg.NewPoint(0, 0, 1)); !got.ApproxEqual(color.Black) {
		t.Errorf("expected black at (0,0,1), got %v", got)
	}
	// just past sqrt(2)/2, inside the second ring in both x and z
	if got := pattern.ColorAt(linalg.NewPoint(0.708, 0, 0.708)); !got.ApproxEqual(color.Black) {
		t.Errorf("expected black at (0.708,0,0.708), got %v", got)
	}
}

func TestCheckers(t *testing.T) {
	pattern := NewCheckers(linalg.Identity(), NewPlain(color.White), NewPlain(color.Black))

	tests := []struct {
		name  string
		point linalg.Tuple
		want  color.Color
	}{
		{"origin", linalg.NewPoint(0, 0, 0), color.White},
		{"repeats in x", linalg.NewPoint(0.99, 0, 0), color.White},
		{"alternates in x", linalg.NewPoint(1.01, 0, 0), color.Black},
		{"repeats in y", linalg.NewPoint(0, 0.99, 0), color.White},
		{"alternates in y", linalg.NewPoint(0, 1.01, 0), color.Black},
		{"repeats in z", linalg.NewPoint(0, 0, 0.99), color.White},
		{"alternates in z", linalg.NewPoint(0, 0, 1.01), color.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pattern.ColorAt(tt.point); !got.ApproxEqual(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestBlend(t *testing.T) {
	pattern := NewBlend(linalg.Identity(), NewPlain(color.White), NewPlain(color.Black))
	if got := pattern.ColorAt(linalg.NewPoint(0, 0, 0)); !got.ApproxEqual(color.New(0.5, 0.5, 0.5)) {
		t.Errorf("expected gray, got %v", got)
	}
}

func TestDebugPattern(t *testing.T) {
	var pattern Debug
	got := pattern.ColorAt(linalg.NewPoint(0.25, 0.5, 0.75))
	if !got.ApproxEqual(color.New(0.25, 0.5, 0.75)) {
		t.Errorf("expected the point's coordinates back, got %v", got)
	}
}

func TestPointJitterWithZeroScaleIsIdentity(t *testing.T) {
	inner := NewStripes(linalg.Identity(), NewPlain(color.White), NewPlain(color.Black))
	pattern := NewPointJitter(NewSimplexNoise(0), inner)
	if got := pattern.ColorAt(linalg.NewPoint(0.5, 0, 0)); !got.ApproxEqual(color.White) {
		t.Errorf("expected white, got %v", got)
	}
}

func TestSimplexNoiseStaysInRange(t *testing.T) {
	var n SimplexNoise
	for _, p := range [][3]float64{
		{0.1, 0.2, 0.3}, {1.7, -2.4, 0.9}, {-5.5, 3.3, -1.1}, {10.2, 0.01, 7.7},
	} {
		v := n.At(p[0], p[1], p[2])
		if v < -1 || v > 1 {
			t.Errorf("noise at %v out of range: %v", p, v)
		}
	}
}

func TestFractalNoiseStaysInRange(t *testing.T) {
	n := NewFractalNoise(1, 4)
	for _, p := range [][3]float64{
		{0.1, 0.2, 0.3}, {1.7, -2.4, 0.9}, {-5.5, 3.3, -1.1},
	} {
		v := n.At(p[0], p[1], p[2])
		if v < -1 || v > 1 {
			t.Errorf("noise at %v out of range: %v", p, v)
		}
	}
}
