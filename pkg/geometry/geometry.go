package geometry

import "github.com/castlight/go-whitted-raytracer/pkg/linalg"

// Geometry is one of the seven unit primitives, defined in its own
// local space. Placement in the world happens on the Shape that wraps
// it. The interface is sealed: all implementations live in this package.
type Geometry interface {
	// intersect records all hits of a local-space ray, including
	// those behind the origin.
	intersect(shape *Shape, ray Ray, xs *Intersections)

	// normal returns the surface normal at a local-space point. The
	// hit record supplies barycentric coordinates for smooth triangles
	// and is ignored by every other primitive.
	normal(point linalg.Tuple, hit *Intersection) linalg.Tuple

	// bbox returns the box enclosing the primitive in local space
	bbox() BoundingBox
}
