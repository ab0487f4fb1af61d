package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// GlyphMetrics describes the ink bounding box of a string under a face:
// the minimal rectangle enclosing the rendered pixels, not the advance.
type GlyphMetrics struct {
	Width  int
	Height int

	// Bearing is the offset from the draw origin (the baseline dot) to the
	// top-left of the ink box. Y is negative for ink above the baseline.
	Bearing image.Point
}

// MeasureGlyph returns ink-box metrics for s under face.
func MeasureGlyph(face font.Face, s string) GlyphMetrics {
	bounds, _ := font.BoundString(face, s)
	return GlyphMetrics{
		Width:   (bounds.Max.X - bounds.Min.X).Ceil(),
		Height:  (bounds.Max.Y - bounds.Min.Y).Ceil(),
		Bearing: image.Pt(bounds.Min.X.Floor(), bounds.Min.Y.Floor()),
	}
}

// GlyphOrigin computes the baseline dot that centers the ink box of the
// measured glyph within rect, shifted by nudge.
func GlyphOrigin(rect image.Rectangle, m GlyphMetrics, nudge image.Point) image.Point {
	x := rect.Min.X + (rect.Dx()-m.Width)/2 - m.Bearing.X + nudge.X
	y := rect.Min.Y + (rect.Dy()-m.Height)/2 - m.Bearing.Y + nudge.Y
	return image.Pt(x, y)
}

// DrawGlyphCentered draws s centered on its ink box within rect and
// returns the metrics used.
func (c *Canvas) DrawGlyphCentered(s string, rect image.Rectangle, face font.Face, fill color.Color, nudge image.Point) GlyphMetrics {
	m := MeasureGlyph(face, s)
	origin := GlyphOrigin(rect, m, nudge)
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{C: fill},
		Face: face,
		Dot:  fixed.P(origin.X, origin.Y),
	}
	drawer.DrawString(s)
	return m
}
