package geometry

import (
	"math"
	"sort"

	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

// Intersection records a single ray hit. U, V carry barycentric
// coordinates and are only meaningful when HasUV is set, which happens
// for triangle hits.
type Intersection struct {
	T     float64
	Shape *Shape
	U, V  float64
	HasUV bool
}

// Equal reports whether two records describe the same hit: the same
// distance on the same shape identity.
func (i Intersection) Equal(other Intersection) bool {
	return i.T == other.T && i.Shape.id == other.Shape.id
}

// Intersections is a reusable ledger of hit records. Callers allocate
// one per worker and clear it between rays to avoid churn.
type Intersections struct {
	records []Intersection
}

// NewIntersections creates an empty ledger
func NewIntersections() *Intersections {
	return &Intersections{}
}

// Insert appends a record without sorting
func (x *Intersections) Insert(i Intersection) {
	x.records = append(x.records, i)
}

// Append moves all records from other into this ledger
func (x *Intersections) Append(other *Intersections) {
	x.records = append(x.records, other.records...)
	other.records = other.records[:0]
}

// Clear empties the ledger, keeping its capacity
func (x *Intersections) Clear() {
	x.records = x.records[:0]
}

// Len returns the number of records
func (x *Intersections) Len() int {
	return len(x.records)
}

// Records exposes the underlying records in insertion or sorted order
func (x *Intersections) Records() []Intersection {
	return x.records
}

// Sort orders the records by ascending t, preserving insertion order
// between records at the same distance.
func (x *Intersections) Sort() {
	sort.SliceStable(x.records, func(i, j int) bool {
		return x.records[i].T < x.records[j].T
	})
}

// Hit returns the first record with t >= 0, assuming sorted records
func (x *Intersections) Hit() (Intersection, bool) {
	for _, rec := range x.records {
		if rec.T >= 0 {
			return rec, true
		}
	}
	return Intersection{}, false
}

// FilterByGroup keeps only the records the group's set operation
// allows. The ledger must be sorted. Walking the records in order, a
// record belongs to the left operand when that subtree includes its
// shape, and the in/out flags toggle after every record.
func (x *Intersections) FilterByGroup(group *Group) {
	left := group.Children[0]

	inLeft := false
	inRight := false

	kept := x.records[:0]
	for _, rec := range x.records {
		leftHit := left.Includes(rec.Shape)

		if group.Kind.allowsIntersection(leftHit, inLeft, inRight) {
			kept = append(kept, rec)
		}

		if leftHit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	x.records = kept
}

// State carries everything shading needs about a hit: the hit point
// and its offsets, viewing geometry, and the refractive indices on
// either side of the surface.
type State struct {
	T           float64
	Shape       *Shape
	Point       linalg.Tuple
	OverPoint   linalg.Tuple
	UnderPoint  linalg.Tuple
	Eye         linalg.Tuple
	Normal      linalg.Tuple
	Reflect     linalg.Tuple
	Inside      bool
	N1, N2      float64
	Reflectance float64
}

// PrepareState computes the shading state for this hit. The ledger
// must be sorted and must contain the hit itself, since the refractive
// indices on both sides of the surface come from walking the ledger
// and tracking which shapes the ray is currently inside.
func (i Intersection) PrepareState(ray Ray, xs *Intersections) State {
	point := ray.Position(i.T)
	eye := ray.Direction.Neg()

	normal := i.Shape.Normal(point, &i)
	inside := false
	if normal.Dot(eye) < 0 {
		normal = normal.Neg()
		inside = true
	}

	overPoint := point.Add(normal.Mul(linalg.Epsilon))
	underPoint := point.Sub(normal.Mul(linalg.Epsilon))
	reflect := ray.Direction.Reflect(normal)

	var containers []*Shape
	entered := make(map[uint64]bool)
	n1, n2 := 1.0, 1.0

	for _, rec := range xs.records {
		if i.Equal(rec) {
			if len(containers) == 0 {
				n1 = 1
			} else {
				n1 = containers[len(containers)-1].Material.RefractiveIndex
			}
		}

		if entered[rec.Shape.id] {
			for idx, s := range containers {
				if s.id == rec.Shape.id {
					containers = append(containers[:idx], containers[idx+1:]...)
					break
				}
			}
			delete(entered, rec.Shape.id)
		} else {
			containers = append(containers, rec.Shape)
			entered[rec.Shape.id] = true
		}

		if i.Equal(rec) {
			if len(containers) == 0 {
				n2 = 1
			} else {
				n2 = containers[len(containers)-1].Material.RefractiveIndex
			}
		}
	}

	return State{
		T:           i.T,
		Shape:       i.Shape,
		Point:       point,
		OverPoint:   overPoint,
		UnderPoint:  underPoint,
		Eye:         eye,
		Normal:      normal,
		Reflect:     reflect,
		Inside:      inside,
		N1:          n1,
		N2:          n2,
		Reflectance: schlick(eye, normal, n1, n2),
	}
}

// schlick approximates the Fresnel reflectance at the boundary
// between media with indices n1 and n2.
func schlick(eye, normal linalg.Tuple, n1, n2 float64) float64 {
	cos := eye.Dot(normal)

	if n1 > n2 {
		n := n1 / n2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (n1 - n2) / (n1 + n2)
	r0 *= r0

	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
