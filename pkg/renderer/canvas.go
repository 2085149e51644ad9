package renderer

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"strings"

	"github.com/castlight/go-whitted-raytracer/pkg/color"
)

// Canvas is a rectangular grid of float colors, written to while
// rendering and encoded to PPM or PNG afterwards.
type Canvas struct {
	Width  int
	Height int
	pixels []color.Color
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]color.Color, width*height),
	}
}

// Write sets the pixel at x, y
func (c *Canvas) Write(x, y int, col color.Color) {
	c.pixels[y*c.Width+x] = col
}

// Read returns the pixel at x, y
func (c *Canvas) Read(x, y int) color.Color {
	return c.pixels[y*c.Width+x]
}

// PPM encodes the canvas as plain-text PPM. Every canvas row starts a
// new line, and lines wrap after five pixels to keep them short.
func (c *Canvas) PPM() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n255", c.Width, c.Height)

	j := 0
	for i, pixel := range c.pixels {
		r := color.Clamp8(pixel.R)
		g := color.Clamp8(pixel.G)
		bl := color.Clamp8(pixel.B)

		if i%c.Width == 0 || j%5 == 0 {
			fmt.Fprintf(&b, "\n%d %d %d", r, g, bl)
			j = 1
		} else {
			fmt.Fprintf(&b, " %d %d %d", r, g, bl)
			j++
		}
	}
	b.WriteByte('\n')

	return b.String()
}

// Image converts the canvas to an 8-bit RGBA image
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			pixel := c.Read(x, y)
			img.Set(x, y, stdcolor.RGBA{
				R: color.Clamp8(pixel.R),
				G: color.Clamp8(pixel.G),
				B: color.Clamp8(pixel.B),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG encodes the canvas as PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Image())
}
