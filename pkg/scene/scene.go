// Package scene provides ready-made worlds with matching cameras.
package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/castlight/go-whitted-raytracer/pkg/geometry"
	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
	"github.com/castlight/go-whitted-raytracer/pkg/renderer"
	"github.com/castlight/go-whitted-raytracer/pkg/world"
)

// Scene pairs a world with the camera it was composed for. Builder is
// the shape builder the world was assembled with; adding more elements
// through it keeps shape identities unique within the world.
type Scene struct {
	World   *world.World
	Camera  renderer.Camera
	Builder *geometry.Builder
}

// BuilderFunc constructs a scene at the requested image size. A field
// of view of zero or less keeps the scene's own default.
type BuilderFunc func(width, height int, fov float64) Scene

var registry = map[string]BuilderFunc{
	"default":  NewDefaultScene,
	"hexagon":  NewHexagonScene,
	"showcase": NewShowcaseScene,
}

// Lookup returns the named scene builder.
func Lookup(name string) (BuilderFunc, error) {
	builder, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q (available: %v)", name, Names())
	}
	return builder, nil
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fovOrDefault(fov, fallback float64) float64 {
	if fov > 0 {
		return fov
	}
	return fallback
}

// NewDefaultScene is the two-sphere world used throughout the tests,
// viewed from slightly above.
func NewDefaultScene(width, height int, fov float64) Scene {
	b := geometry.NewBuilder()
	w := world.NewDefaultWith(b)
	camera := renderer.NewCamera(width, height, fovOrDefault(fov, math.Pi/3),
		linalg.ViewTransform(
			linalg.NewPoint(0, 1.5, -5),
			linalg.NewPoint(0, 1, 0),
			linalg.NewVector(0, 1, 0),
		))
	return Scene{World: w, Camera: camera, Builder: b}
}
