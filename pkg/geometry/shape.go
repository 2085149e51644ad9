package geometry

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/color"
	"github.com/castlight/go-whitted-raytracer/pkg/lights"
	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
	"github.com/castlight/go-whitted-raytracer/pkg/material"
)

// Element is anything a world can hold: a placed primitive or a
// composite group of them.
type Element interface {
	// Intersect records all hits of the world-space ray
	Intersect(ray Ray, xs *Intersections)

	// BBox returns the element's world-space bounding box
	BBox() BoundingBox

	// Includes reports whether the shape belongs to this subtree
	Includes(shape *Shape) bool

	propagateInverses(transform, inv, invTsp linalg.Matrix, mat *material.Material)
}

// ShapeArgs configures a new shape. The zero value is not usable;
// start from DefaultArgs.
type ShapeArgs struct {
	Transform   linalg.Matrix
	Material    material.Material
	CastsShadow bool
}

// DefaultArgs returns an identity placement with the default material
func DefaultArgs() ShapeArgs {
	return ShapeArgs{
		Transform:   linalg.Identity(),
		Material:    material.Default(),
		CastsShadow: true,
	}
}

// Shape is a primitive placed in the world. It caches the inverse of
// its placement transform and the inverse transpose for normals, so
// rays are transformed with plain matrix multiplies. Shapes carry a
// numeric identity issued by the Builder that made them: two shapes
// are the same solid iff their ids match, which keeps equality
// meaningful for copies.
type Shape struct {
	Geometry    Geometry
	Material    material.Material
	CastsShadow bool

	id              uint64
	transformInv    linalg.Matrix
	transformInvTsp linalg.Matrix
	materialInv     linalg.Matrix
	bbox            BoundingBox
}

// Builder issues shape identities while a scene is assembled. Every
// shape in one world must come from the same builder so that ids stay
// unique; separate builders restart the sequence.
type Builder struct {
	nextID uint64
}

// NewBuilder creates a builder whose ids start at 1
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) newShape(args ShapeArgs, geometry Geometry) *Shape {
	b.nextID++
	inv := args.Transform.Inverse()
	return &Shape{
		Geometry:        geometry,
		Material:        args.Material,
		CastsShadow:     args.CastsShadow,
		id:              b.nextID,
		transformInv:    inv,
		transformInvTsp: inv.Transpose(),
		materialInv:     inv,
		bbox:            geometry.bbox().Transform(args.Transform),
	}
}

// Sphere places a unit sphere
func (b *Builder) Sphere(args ShapeArgs) *Shape {
	return b.newShape(args, Sphere{})
}

// Plane places an xz plane
func (b *Builder) Plane(args ShapeArgs) *Shape {
	return b.newShape(args, Plane{})
}

// Cube places a unit cube
func (b *Builder) Cube(args ShapeArgs) *Shape {
	return b.newShape(args, Cube{})
}

// Cylinder places a truncated cylinder
func (b *Builder) Cylinder(args ShapeArgs, min, max float64, closed bool) *Shape {
	return b.newShape(args, Cylinder{Min: min, Max: max, Closed: closed})
}

// Cone places a truncated double cone
func (b *Builder) Cone(args ShapeArgs, min, max float64, closed bool) *Shape {
	return b.newShape(args, Cone{Min: min, Max: max, Closed: closed})
}

// Triangle places a flat triangle over the given vertices
func (b *Builder) Triangle(args ShapeArgs, p1, p2, p3 linalg.Tuple) *Shape {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	return b.newShape(args, Triangle{
		P1: p1, P2: p2, P3: p3,
		E1: e1, E2: e2,
		N: e2.Cross(e1).Normalize(),
	})
}

// SmoothTriangle places a triangle with per-vertex normals
func (b *Builder) SmoothTriangle(args ShapeArgs, p1, p2, p3, n1, n2, n3 linalg.Tuple) *Shape {
	return b.newShape(args, SmoothTriangle{
		P1: p1, P2: p2, P3: p3,
		E1: p2.Sub(p1), E2: p3.Sub(p1),
		N1: n1, N2: n2, N3: n3,
	})
}

// Intersect transforms the ray into shape space and records all hits
func (s *Shape) Intersect(ray Ray, xs *Intersections) {
	s.Geometry.intersect(s, ray.Transform(s.transformInv), xs)
}

// BBox returns the shape's world-space bounding box, including any
// group transforms propagated onto it.
func (s *Shape) BBox() BoundingBox {
	return s.bbox
}

// ID returns the shape's builder-issued identity
func (s *Shape) ID() uint64 {
	return s.id
}

// Includes reports whether the given shape is this shape
func (s *Shape) Includes(shape *Shape) bool {
	return s.id == shape.id
}

// TransformInv exposes the cached inverse placement transform
func (s *Shape) TransformInv() linalg.Matrix {
	return s.transformInv
}

// Normal returns the world-space surface normal at a world-space
// point. The hit record is consulted only by smooth triangles.
func (s *Shape) Normal(point linalg.Tuple, hit *Intersection) linalg.Tuple {
	shapePoint := s.transformInv.MulTuple(point)
	shapeNormal := s.Geometry.normal(shapePoint, hit)

	worldNormal := s.transformInvTsp.MulTuple(shapeNormal)
	worldNormal.W = 0

	return worldNormal.Normalize()
}

// Lighting shades a point on the shape under a single light using the
// Phong model. Shadowed points receive the ambient term only.
func (s *Shape) Lighting(light lights.PointLight, point, eye, normal linalg.Tuple, shadowed bool) color.Color {
	surface := s.Material.Pattern.ColorAt(s.materialInv.MulTuple(point))

	effectiveColor := surface.Hadamard(light.Intensity)
	lightDir := light.Position.Sub(point).Normalize()

	ambient := effectiveColor.Mul(s.Material.Ambient)
	diffuse := color.Black
	specular := color.Black

	lightDotNormal := lightDir.Dot(normal)
	if !shadowed && lightDotNormal >= 0 {
		diffuse = effectiveColor.Mul(s.Material.Diffuse * lightDotNormal)

		reflect := lightDir.Neg().Reflect(normal)
		if reflectDotEye := reflect.Dot(eye); reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, s.Material.Shininess)
			specular = light.Intensity.Mul(s.Material.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}

func (s *Shape) propagateInverses(transform, inv, invTsp linalg.Matrix, mat *material.Material) {
	s.transformInv = s.transformInv.Mul(inv)
	s.transformInvTsp = invTsp.Mul(s.transformInvTsp)
	s.bbox = s.bbox.Transform(transform)
	if mat != nil {
		s.Material = *mat
		s.materialInv = inv
	} else {
		s.materialInv = s.materialInv.Mul(inv)
	}
}
