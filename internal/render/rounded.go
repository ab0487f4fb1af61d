package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Corner quadrants of a rounded rectangle. The angular ranges follow the
// clockwise-from-east convention: top-left 180-270, top-right 270-360,
// bottom-left 90-180, bottom-right 0-90.
type corner int

const (
	topLeft corner = iota
	topRight
	bottomLeft
	bottomRight
)

// FillRoundedRect fills rect with the four corners replaced by
// quarter-circle arcs of the given radius. The silhouette is composed from
// primitives only: a horizontal band inset by radius on the left and right,
// a vertical band inset by radius on the top and bottom, and one quarter
// disc per corner. Radius 0 degenerates to a plain rectangle fill.
//
// The caller is responsible for sane geometry; radius is clamped to half
// the shorter side.
func (c *Canvas) FillRoundedRect(rect image.Rectangle, radius int, fill color.Color) {
	rect = rect.Canon()
	if radius <= 0 {
		c.FillRect(rect, fill)
		return
	}
	if shorter := min(rect.Dx(), rect.Dy()); radius > shorter/2 {
		radius = shorter / 2
	}

	c.FillRect(image.Rect(rect.Min.X+radius, rect.Min.Y, rect.Max.X-radius, rect.Max.Y), fill)
	c.FillRect(image.Rect(rect.Min.X, rect.Min.Y+radius, rect.Max.X, rect.Max.Y-radius), fill)

	c.fillQuarterDisc(image.Pt(rect.Min.X+radius, rect.Min.Y+radius), radius, topLeft, fill)
	c.fillQuarterDisc(image.Pt(rect.Max.X-radius, rect.Min.Y+radius), radius, topRight, fill)
	c.fillQuarterDisc(image.Pt(rect.Min.X+radius, rect.Max.Y-radius), radius, bottomLeft, fill)
	c.fillQuarterDisc(image.Pt(rect.Max.X-radius, rect.Max.Y-radius), radius, bottomRight, fill)
}

// fillQuarterDisc fills the quarter of the disc around center that faces
// the given corner. A pixel is inside when its center lies within radius of
// the disc center; the coverage is built as an alpha mask so translucent
// fills composite the same way the band fills do.
func (c *Canvas) fillQuarterDisc(center image.Point, radius int, q corner, fill color.Color) {
	var box image.Rectangle
	switch q {
	case topLeft:
		box = image.Rect(center.X-radius, center.Y-radius, center.X, center.Y)
	case topRight:
		box = image.Rect(center.X, center.Y-radius, center.X+radius, center.Y)
	case bottomLeft:
		box = image.Rect(center.X-radius, center.Y, center.X, center.Y+radius)
	case bottomRight:
		box = image.Rect(center.X, center.Y, center.X+radius, center.Y+radius)
	}

	mask := image.NewAlpha(box)
	rr := float64(radius) * float64(radius)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			dx := float64(x) + 0.5 - float64(center.X)
			dy := float64(y) + 0.5 - float64(center.Y)
			if dx*dx+dy*dy <= rr {
				mask.SetAlpha(x, y, color.Alpha{A: 0xFF})
			}
		}
	}

	target := box.Intersect(c.img.Bounds())
	if target.Empty() {
		return
	}
	draw.DrawMask(c.img, target, &image.Uniform{C: fill}, image.Point{}, mask, target.Min, draw.Over)
}
