package scene

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/color"
	"github.com/castlight/go-whitted-raytracer/pkg/geometry"
	"github.com/castlight/go-whitted-raytracer/pkg/lights"
	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
	"github.com/castlight/go-whitted-raytracer/pkg/material"
	"github.com/castlight/go-whitted-raytracer/pkg/renderer"
	"github.com/castlight/go-whitted-raytracer/pkg/world"
)

// NewHexagonScene builds a ring of six cylinder edges joined by sphere
// corners, demonstrating nested group transforms.
func NewHexagonScene(width, height int, fov float64) Scene {
	mat := material.Default()
	mat.Pattern = material.NewPlain(color.New(0.9, 0.6, 0.2))
	mat.Specular = 0.6

	b := geometry.NewBuilder()
	w := &world.World{
		Lights: []lights.PointLight{
			lights.NewPointLight(linalg.NewPoint(-10, 10, -10), color.White),
		},
		Elements: []geometry.Element{hexagon(b, mat)},
	}

	camera := renderer.NewCamera(width, height, fovOrDefault(fov, math.Pi/3),
		linalg.ViewTransform(
			linalg.NewPoint(0, 2.5, -2.5),
			linalg.NewPoint(0, 0, 0),
			linalg.NewVector(0, 1, 0),
		))
	return Scene{World: w, Camera: camera, Builder: b}
}

func hexagon(b *geometry.Builder, mat material.Material) geometry.Element {
	sides := make([]geometry.Element, 0, 6)
	for n := 0; n < 6; n++ {
		sides = append(sides, geometry.NewAggregation(
			linalg.RotationY(float64(n)*math.Pi/3),
			[]geometry.Element{hexagonCorner(b, mat), hexagonEdge(b, mat)},
		))
	}
	return geometry.NewAggregation(linalg.Identity(), sides)
}

func hexagonCorner(b *geometry.Builder, mat material.Material) geometry.Element {
	args := geometry.DefaultArgs()
	args.Material = mat
	args.Transform = linalg.Translation(0, 0, -1).Mul(linalg.Scaling(0.25, 0.25, 0.25))
	return b.Sphere(args)
}

func hexagonEdge(b *geometry.Builder, mat material.Material) geometry.Element {
	args := geometry.DefaultArgs()
	args.Material = mat
	args.Transform = linalg.Translation(0, 0, -1).
		Mul(linalg.RotationY(-math.Pi / 6)).
		Mul(linalg.RotationZ(-math.Pi / 2)).
		Mul(linalg.Scaling(0.25, 1, 0.25))
	return b.Cylinder(args, 0, 1, false)
}
