// Package renderer maps world-space colors onto a pixel canvas: the
// camera builds per-pixel rays, the canvas stores and encodes the
// result, and the render driver runs the tracing across workers.
package renderer

import (
	"math"

	"github.com/castlight/go-whitted-raytracer/pkg/geometry"
	"github.com/castlight/go-whitted-raytracer/pkg/linalg"
)

// Camera projects the scene onto a canvas one world unit in front of
// it. The world-to-camera transform's inverse is cached at
// construction, along with the size of a pixel on that canvas.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transformInv linalg.Matrix
	pixelSize    float64
	halfWidth    float64
	halfHeight   float64
}

// NewCamera creates a camera for the given canvas size, field of view
// in radians, and world-to-camera transform.
func NewCamera(hsize, vsize int, fieldOfView float64, transform linalg.Matrix) Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return Camera{
		HSize:        hsize,
		VSize:        vsize,
		FieldOfView:  fieldOfView,
		transformInv: transform.Inverse(),
		pixelSize:    halfWidth * 2 / float64(hsize),
		halfWidth:    halfWidth,
		halfHeight:   halfHeight,
	}
}

// PixelSize returns the world-space size of one pixel on the canvas
func (c Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayAtPixel returns the world-space ray through the center of the
// given pixel.
func (c Camera) RayAtPixel(x, y int) geometry.Ray {
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.transformInv.MulTuple(linalg.NewPoint(worldX, worldY, -1))
	origin := c.transformInv.MulTuple(linalg.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return geometry.NewRay(origin, direction)
}
