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

// NewShowcaseScene composes a checkered floor, a glass sphere, a
// marbled sphere and a rounded die cut with constructive geometry.
func NewShowcaseScene(width, height int, fov float64) Scene {
	b := geometry.NewBuilder()
	w := &world.World{
		Lights: []lights.PointLight{
			lights.NewPointLight(linalg.NewPoint(-10, 10, -10), color.White),
		},
		Elements: []geometry.Element{
			showcaseFloor(b),
			glassSphere(b),
			marbledSphere(b),
			die(b),
		},
	}

	camera := renderer.NewCamera(width, height, fovOrDefault(fov, math.Pi/3),
		linalg.ViewTransform(
			linalg.NewPoint(0, 2, -6),
			linalg.NewPoint(0, 0.75, 0),
			linalg.NewVector(0, 1, 0),
		))
	return Scene{World: w, Camera: camera, Builder: b}
}

func showcaseFloor(b *geometry.Builder) geometry.Element {
	args := geometry.DefaultArgs()
	args.Material.Pattern = material.NewCheckers(linalg.Identity(),
		material.NewPlain(color.New(0.85, 0.85, 0.85)),
		material.NewPlain(color.New(0.25, 0.25, 0.25)),
	)
	args.Material.Specular = 0.1
	args.Material.Reflective = 0.08
	return b.Plane(args)
}

func glassSphere(b *geometry.Builder) geometry.Element {
	args := geometry.DefaultArgs()
	args.Material = material.Glass()
	args.Material.Reflective = 0.9
	args.Material.Diffuse = 0.05
	args.Material.Ambient = 0.02
	args.CastsShadow = false
	args.Transform = linalg.Translation(-2.2, 1, 0.5)
	return b.Sphere(args)
}

func marbledSphere(b *geometry.Builder) geometry.Element {
	stripes := material.NewStripes(linalg.Scaling(0.3, 0.3, 0.3),
		material.NewPlain(color.New(0.1, 0.35, 0.7)),
		material.NewPlain(color.New(0.75, 0.85, 0.95)),
	)
	args := geometry.DefaultArgs()
	args.Material.Pattern = material.NewPointJitter(material.NewFractalNoise(0.8, 4), stripes)
	args.Material.Diffuse = 0.8
	args.Transform = linalg.Translation(2.2, 1, 1).Mul(linalg.RotationZ(math.Pi / 4))
	return b.Sphere(args)
}

// die is a cube with a sphere carved out of one face.
func die(b *geometry.Builder) geometry.Element {
	cubeArgs := geometry.DefaultArgs()
	cubeArgs.Material.Pattern = material.NewPlain(color.New(0.8, 0.2, 0.2))
	cube := b.Cube(cubeArgs)

	holeArgs := geometry.DefaultArgs()
	holeArgs.Material.Pattern = material.NewPlain(color.New(0.95, 0.95, 0.9))
	holeArgs.Transform = linalg.Translation(0, 0, -1).Mul(linalg.Scaling(0.4, 0.4, 0.4))
	hole := b.Sphere(holeArgs)

	group, err := geometry.NewGroup(
		linalg.Translation(0, 0.7, 2.5).
			Mul(linalg.RotationY(math.Pi/5)).
			Mul(linalg.Scaling(0.7, 0.7, 0.7)),
		nil,
		geometry.Difference,
		[]geometry.Element{cube, hole},
	)
	if err != nil {
		panic(err)
	}
	return group
}
