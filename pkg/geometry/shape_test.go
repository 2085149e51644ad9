package geometry

import (
	"math"
	"testing"

	"github.com/castlight/go-whitted-raytracer/pkg/color"
	"github.com/castlight/go-whitted-raytracer/pkg/lights"
	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
	"github.com/castlight/go-whitted-raytracer/pkg/material"
)

func TestLighting(t *testing.T) {
	b := NewBuilder()
	sphere := b.Sphere(DefaultArgs())
	position := linalg.NewPoint(0, 0, 0)
	normal := linalg.NewVector(0, 0, -1)

	tests := []struct {
		name     string
		eye      linalg.Tuple
		light    lights.PointLight
		shadowed bool
		want     color.Color
	}{
		{
			"eye between light and surface",
			linalg.NewVector(0, 0, -1),
			lights.NewPointLight(linalg.NewPoint(0, 0, -10), color.White),
			false,
			color.New(1.9, 1.9, 1.9),
		},
		{
			"eye offset 45 degrees",
			linalg.NewVector(0, math.Sqrt2/2, -math.Sqrt2/2),
			lights.NewPointLight(linalg.NewPoint(0, 0, -10), color.White),
			false,
			color.New(1.0, 1.0, 1.0),
		},
		{
			"light offset 45 degrees",
			linalg.NewVector(0, 0, -1),
			lights.NewPointLight(linalg.NewPoint(0, 10, -10), color.White),
			false,
			color.New(0.7364, 0.7364, 0.7364),
		},
		{
			"eye in the reflection path",
			linalg.NewVector(0, -math.Sqrt2/2, -math.Sqrt2/2),
			lights.NewPointLight(linalg.NewPoint(0, 10, -10), color.White),
			false,
			color.New(1.6364, 1.6364, 1.6364),
		},
		{
			"light behind the surface",
			linalg.NewVector(0, 0, -1),
			lights.NewPointLight(linalg.NewPoint(0, 0, 10), color.White),
			false,
			color.New(0.1, 0.1, 0.1),
		},
		{
			"surface in shadow",
			linalg.NewVector(0, 0, -1),
			lights.NewPointLight(linalg.NewPoint(0, 0, -10), color.White),
			true,
			color.New(0.1, 0.1, 0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphere.Lighting(tt.light, position, tt.eye, normal, tt.shadowed)
			if !got.ApproxEqual(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLightingUsesPatternInShapeSpace(t *testing.T) {
	b := NewBuilder()
	args := DefaultArgs()
	args.Material.Pattern = stripePattern()
	args.Material.Ambient = 1
	args.Material.Diffuse = 0
	args.Material.Specular = 0
	sphere := b.Sphere(args)

	light := lights.NewPointLight(linalg.NewPoint(0, 0, -10), color.White)
	eye := linalg.NewVector(0, 0, -1)
	normal := linalg.NewVector(0, 0, -1)

	c1 := sphere.Lighting(light, linalg.NewPoint(0.9, 0, 0), eye, normal, false)
	c2 := sphere.Lighting(light, linalg.NewPoint(1.1, 0, 0), eye, normal, false)

	if !c1.ApproxEqual(color.White) {
		t.Errorf("expected white at x=0.9, got %v", c1)
	}
	if !c2.ApproxEqual(color.Black) {
		t.Errorf("expected black at x=1.1, got %v", c2)
	}
}

func stripePattern() material.Pattern {
	return material.NewStripes(linalg.Identity(),
		material.NewPlain(color.White), material.NewPlain(color.Black))
}

func TestShapeBoundingBoxes(t *testing.T) {
	b := NewBuilder()
	t.Run("transformed sphere", func(t *testing.T) {
		args := DefaultArgs()
		args.Transform = linalg.Translation(1, -3, 5).Mul(linalg.Scaling(0.5, 1.1, 3.5))
		sphere := b.Sphere(args)

		want := NewBoundingBox(linalg.NewPoint(0.5, -4.1, 1.5), linalg.NewPoint(1.5, -1.9, 8.5))
		if !sphere.BBox().ApproxEqual(want) {
			t.Errorf("expected %v, got %v", want, sphere.BBox())
		}
	})

	t.Run("unbounded cylinder", func(t *testing.T) {
		min, max := unbounded()
		cyl := b.Cylinder(DefaultArgs(), min, max, false)

		box := cyl.BBox()
		if !math.IsInf(box.Min.Y, -1) || !math.IsInf(box.Max.Y, 1) {
			t.Errorf("expected infinite y extent, got %v", box)
		}
	})

	t.Run("closed cone", func(t *testing.T) {
		cone := b.Cone(DefaultArgs(), -2, 0.5, true)

		want := NewBoundingBox(linalg.NewPoint(-2, -2, -2), linalg.NewPoint(2, 0.5, 2))
		if !cone.BBox().ApproxEqual(want) {
			t.Errorf("expected %v, got %v", want, cone.BBox())
		}
	})
}

func TestBuilderIssuesMonotonicIdentities(t *testing.T) {
	b := NewBuilder()
	s1 := b.Sphere(DefaultArgs())
	s2 := b.Cube(DefaultArgs())
	s3 := b.Plane(DefaultArgs())

	if s1.ID() != 1 || s2.ID() != 2 || s3.ID() != 3 {
		t.Errorf("expected ids 1,2,3, got %d,%d,%d", s1.ID(), s2.ID(), s3.ID())
	}
}

func TestShapeIdentitySurvivesCopy(t *testing.T) {
	b := NewBuilder()
	sphere := b.Sphere(DefaultArgs())
	other := b.Sphere(DefaultArgs())

	clone := *sphere
	if !sphere.Includes(&clone) {
		t.Error("a copy keeps the original's identity")
	}
	if sphere.Includes(other) {
		t.Error("distinct shapes must have distinct identities")
	}

	i1 := Intersection{T: 1, Shape: sphere}
	i2 := Intersection{T: 1, Shape: &clone}
	if !i1.Equal(i2) {
		t.Error("intersections on a shape and its copy should be equal")
	}
}

func TestShapeBBoxReflectsGroupTransform(t *testing.T) {
	b := NewBuilder()
	sphere := b.Sphere(DefaultArgs())
	NewAggregation(linalg.Translation(0, 0, 3), []Element{sphere})

	want := NewBoundingBox(linalg.NewPoint(-1, -1, 2), linalg.NewPoint(1, 1, 4))
	if !sphere.BBox().ApproxEqual(want) {
		t.Errorf("expected %v, got %v", want, sphere.BBox())
	}
}
