package geometry

import (
	"fmt"

	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
	"github.com/castlight/go-whitted-raytracer/pkg/material"
)

// GroupKind selects the set operation a group applies to its children
type GroupKind int

// Group kinds. The three CSG kinds combine exactly two children; an
// aggregation collects any number and applies no filtering.
const (
	Union GroupKind = iota
	Intersect
	Difference
	Aggregation
)

func (k GroupKind) String() string {
	switch k {
	case Union:
		return "union"
	case Intersect:
		return "intersection"
	case Difference:
		return "difference"
	default:
		return "aggregation"
	}
}

// allowsIntersection is the CSG truth table. leftHit says whether the
// record under consideration lies on the left operand; inLeft and
// inRight say whether the ray is currently inside each operand.
func (k GroupKind) allowsIntersection(leftHit, inLeft, inRight bool) bool {
	switch k {
	case Union:
		return (leftHit && !inRight) || (!leftHit && !inLeft)
	case Intersect:
		return (leftHit && inRight) || (!leftHit && inLeft)
	case Difference:
		return (leftHit && !inRight) || (!leftHit && inLeft)
	default:
		return true
	}
}

// Group is a composite element. Its transform is baked into every
// descendant shape at construction time, so intersection never walks
// back up the tree. The bounding box prunes rays that cannot hit any
// child.
type Group struct {
	Kind     GroupKind
	Children []Element

	bbox BoundingBox
}

// NewGroup builds a composite from the given children, applying the
// transform to every descendant. A non-nil material replaces the
// material of every shape in the subtree. CSG kinds require exactly
// two children: the first is the left operand.
func NewGroup(transform linalg.Matrix, mat *material.Material, kind GroupKind, children []Element) (*Group, error) {
	if kind != Aggregation && len(children) != 2 {
		return nil, fmt.Errorf("geometry: %s group requires exactly 2 children, got %d", kind, len(children))
	}

	inv := transform.Inverse()
	invTsp := inv.Transpose()

	bbox := EmptyBox()
	for _, child := range children {
		bbox = bbox.Union(child.BBox())
	}

	group := &Group{Kind: kind, Children: children, bbox: bbox}
	group.propagateInverses(transform, inv, invTsp, mat)

	return group, nil
}

// NewAggregation builds an unfiltered collection of elements
func NewAggregation(transform linalg.Matrix, children []Element) *Group {
	group, err := NewGroup(transform, nil, Aggregation, children)
	if err != nil {
		panic(err)
	}
	return group
}

// BBox returns the group's world-space bounding box
func (g *Group) BBox() BoundingBox {
	return g.bbox
}

// Includes reports whether the shape belongs to any child subtree
func (g *Group) Includes(shape *Shape) bool {
	for _, child := range g.Children {
		if child.Includes(shape) {
			return true
		}
	}
	return false
}

// Intersect records the group's hits. Aggregations pass children's
// hits straight through; CSG kinds collect and sort the children's
// hits privately, filter them by the set operation, then hand the
// survivors to the caller.
func (g *Group) Intersect(ray Ray, xs *Intersections) {
	if !g.bbox.Intersects(ray) {
		return
	}

	if g.Kind == Aggregation {
		for _, child := range g.Children {
			child.Intersect(ray, xs)
		}
		return
	}

	tmp := NewIntersections()
	for _, child := range g.Children {
		child.Intersect(ray, tmp)
	}
	tmp.Sort()
	tmp.FilterByGroup(g)
	xs.Append(tmp)
}

func (g *Group) propagateInverses(transform, inv, invTsp linalg.Matrix, mat *material.Material) {
	for _, child := range g.Children {
		child.propagateInverses(transform, inv, invTsp, mat)
	}
	g.bbox = g.bbox.Transform(transform)
}
