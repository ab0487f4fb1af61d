package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is an offscreen RGBA surface the composer draws into.
// All fills composite with draw.Over so translucent colors blend.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(width, height int, background color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image exposes the underlying pixels for encoding or inspection.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (width int, height int) {
	bounds := c.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

// FillRect fills rect, clipped to the canvas.
func (c *Canvas) FillRect(rect image.Rectangle, fill color.Color) {
	rect = rect.Intersect(c.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, &image.Uniform{C: fill}, image.Point{}, draw.Over)
}
