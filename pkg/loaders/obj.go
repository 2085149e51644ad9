// Package loaders reads external model files into scene elements.
package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/castlight/go-whitted-raytracer/pkg/geometry"
	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
	"github.com/castlight/go-whitted-raytracer/pkg/material"
)

// IgnoredLine records an input line the parser could not interpret,
// with its 1-based line number.
type IgnoredLine struct {
	N    int
	Line string
}

// ObjResult is a parsed Wavefront OBJ model: one element holding a
// group per named OBJ group, plus every line that was skipped.
type ObjResult struct {
	Element geometry.Element
	Ignored []IgnoredLine
}

// vertexNormal is one face corner: a vertex index and an optional
// normal index, both 1-based as in the OBJ format.
type vertexNormal struct {
	vertex    int
	normal    int
	hasNormal bool
}

// ParseObjFile reads and parses an OBJ file from disk
func ParseObjFile(path string, b *geometry.Builder, transform linalg.Matrix, mat material.Material) (*ObjResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer file.Close()

	result, err := ParseObj(file, b, transform, mat)
	if err != nil {
		return nil, fmt.Errorf("parsing OBJ file %s: %w", path, err)
	}
	return result, nil
}

// ParseObj parses Wavefront OBJ data, building triangles with b.
// Vertices, normals, faces and named groups are interpreted; polygon
// faces are fan-triangulated; anything else is collected as ignored.
// Faces whose corners all carry normals become smooth triangles.
func ParseObj(r io.Reader, b *geometry.Builder, transform linalg.Matrix, mat material.Material) (*ObjResult, error) {
	var vertices []linalg.Tuple
	var normals []linalg.Tuple
	var ignored []IgnoredLine

	currentGroup := "Default"
	groups := map[string][]geometry.Element{currentGroup: nil}
	var groupOrder []string

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)

		ignore := func() {
			ignored = append(ignored, IgnoredLine{N: lineNo, Line: line})
		}

		if len(fields) == 0 {
			ignore()
			continue
		}

		switch fields[0] {
		case "v":
			point, ok := parseTriple(fields[1:])
			if !ok {
				ignore()
				continue
			}
			vertices = append(vertices, linalg.NewPoint(point[0], point[1], point[2]))

		case "vn":
			vec, ok := parseTriple(fields[1:])
			if !ok {
				ignore()
				continue
			}
			normals = append(normals, linalg.NewVector(vec[0], vec[1], vec[2]))

		case "f":
			corners, ok := parseCorners(fields[1:])
			if !ok || len(corners) < 3 {
				ignore()
				continue
			}

			for i := 1; i < len(corners)-1; i++ {
				triangle, err := buildTriangle(b, vertices, normals, corners[0], corners[i], corners[i+1])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				groups[currentGroup] = append(groups[currentGroup], triangle)
			}

		case "g":
			if len(fields) < 2 {
				ignore()
				continue
			}
			currentGroup = fields[1]
			if _, seen := groups[currentGroup]; !seen {
				groups[currentGroup] = nil
				groupOrder = append(groupOrder, currentGroup)
			}

		default:
			ignore()
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ data: %w", err)
	}

	element, err := assemble(groups, groupOrder, transform, mat)
	if err != nil {
		return nil, err
	}

	return &ObjResult{Element: element, Ignored: ignored}, nil
}

// parseTriple reads exactly three floats
func parseTriple(fields []string) ([3]float64, bool) {
	var out [3]float64
	if len(fields) < 3 {
		return out, false
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return out, false
		}
		out[i] = v
	}
	return out, true
}

// parseCorners reads the corner list of a face directive. Corners are
// either a bare vertex index or a vertex/texture/normal triplet whose
// texture part is skipped.
func parseCorners(fields []string) ([]vertexNormal, bool) {
	corners := make([]vertexNormal, 0, len(fields))

	for _, field := range fields {
		parts := strings.Split(field, "/")

		v, err := strconv.Atoi(parts[0])
		if err != nil || v < 1 {
			return nil, false
		}

		corner := vertexNormal{vertex: v}
		if len(parts) == 3 && parts[2] != "" {
			n, err := strconv.Atoi(parts[2])
			if err != nil || n < 1 {
				return nil, false
			}
			corner.normal = n
			corner.hasNormal = true
		} else if len(parts) != 1 {
			return nil, false
		}

		corners = append(corners, corner)
	}
	return corners, true
}

func buildTriangle(b *geometry.Builder, vertices, normals []linalg.Tuple, c1, c2, c3 vertexNormal) (geometry.Element, error) {
	for _, c := range []vertexNormal{c1, c2, c3} {
		if c.vertex > len(vertices) {
			return nil, fmt.Errorf("vertex index %d out of range (%d vertices)", c.vertex, len(vertices))
		}
		if c.hasNormal && c.normal > len(normals) {
			return nil, fmt.Errorf("normal index %d out of range (%d normals)", c.normal, len(normals))
		}
	}

	p1 := vertices[c1.vertex-1]
	p2 := vertices[c2.vertex-1]
	p3 := vertices[c3.vertex-1]

	if c1.hasNormal && c2.hasNormal && c3.hasNormal {
		return b.SmoothTriangle(geometry.DefaultArgs(),
			p1, p2, p3,
			normals[c1.normal-1], normals[c2.normal-1], normals[c3.normal-1],
		), nil
	}
	return b.Triangle(geometry.DefaultArgs(), p1, p2, p3), nil
}

// assemble wraps each non-empty named group in an aggregation carrying
// the model transform and material, then combines multiple groups
// under one untransformed root.
func assemble(groups map[string][]geometry.Element, groupOrder []string, transform linalg.Matrix, mat material.Material) (geometry.Element, error) {
	names := append([]string{"Default"}, groupOrder...)

	var elements []geometry.Element
	for _, name := range names {
		children := groups[name]
		if len(children) == 0 {
			continue
		}
		group, err := geometry.NewGroup(transform, &mat, geometry.Aggregation, children)
		if err != nil {
			return nil, err
		}
		elements = append(elements, group)
	}

	if len(elements) == 0 {
		return geometry.NewAggregation(linalg.Identity(), nil), nil
	}
	if len(elements) == 1 {
		return elements[0], nil
	}
	return geometry.NewAggregation(linalg.Identity(), elements), nil
}
