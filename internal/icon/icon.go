// Package icon composes the application icon: a 2x2 grid of rounded
// terminal cells, each carrying a centered ">" prompt glyph.
package icon

import (
	"fmt"
	"image"

	"golang.org/x/image/font"

	"github.com/rook-computer/icongen/internal/render"
	"github.com/rook-computer/icongen/internal/render/layout"
)

// Size is the side of the square canvas in pixels.
const Size = 128

// Prompt is the glyph drawn in every cell.
const Prompt = ">"

// Variant is one named set of icon constants. Two sets shipped over the
// icon's history; both are preserved so either rendition can be
// regenerated exactly.
type Variant struct {
	Name string

	Padding  int
	CellSize int
	Gap      int
	Radius   int

	FontSize float64

	// Shadow draws a translucent drop shadow under each cell, offset by
	// ShadowOffset, before the cell itself.
	Shadow       bool
	ShadowOffset image.Point

	// Nudge shifts every glyph by a fixed offset after centering, for
	// optical balance. Applied uniformly to all four cells.
	Nudge image.Point
}

var (
	// Classic is the original rendition: tight cells, no shadow, 32pt glyph.
	Classic = Variant{
		Name:     "classic",
		Padding:  16,
		CellSize: 44,
		Gap:      8,
		Radius:   4,
		FontSize: 32,
	}

	// Shadowed is the current rendition: larger cells, 48pt glyph, drop
	// shadow two pixels down-right.
	Shadowed = Variant{
		Name:         "shadowed",
		Padding:      12,
		CellSize:     50,
		Gap:          4,
		Radius:       4,
		FontSize:     48,
		Shadow:       true,
		ShadowOffset: image.Pt(2, 2),
	}
)

// Default returns the variant the generator ships.
func Default() Variant { return Shadowed }

// Variants lists every named rendition.
func Variants() []Variant { return []Variant{Classic, Shadowed} }

// ByName looks up a variant by its name.
func ByName(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant %q", name)
}

// Validate checks the grid invariant: four congruent cells that fit the
// canvas exactly, symmetric about its center, with a radius no larger
// than half a cell.
func (v Variant) Validate() error {
	if v.Padding < 0 || v.CellSize <= 0 || v.Gap < 0 {
		return fmt.Errorf("variant %s: negative or empty geometry", v.Name)
	}
	if got := 2*v.Padding + 2*v.CellSize + v.Gap; got != Size {
		return fmt.Errorf("variant %s: 2*padding + 2*cellSize + gap = %d, want %d", v.Name, got, Size)
	}
	if v.Radius < 0 || v.Radius > v.CellSize/2 {
		return fmt.Errorf("variant %s: radius %d out of range for cell size %d", v.Name, v.Radius, v.CellSize)
	}
	if v.FontSize <= 0 {
		return fmt.Errorf("variant %s: font size %g out of range", v.Name, v.FontSize)
	}
	return nil
}

// Cells returns the four cell rectangles in top-left, top-right,
// bottom-left, bottom-right order.
func (v Variant) Cells() [4]image.Rectangle {
	return layout.GridCells(image.Rect(0, 0, Size, Size), v.Padding, v.CellSize, v.Gap)
}

// Compose draws the variant onto a fresh canvas and returns the pixels.
// The pass is fully deterministic: background, then per cell an optional
// shadow followed by the cell itself, then one centered glyph per cell.
func Compose(v Variant, face font.Face) (*image.RGBA, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	canvas := render.NewCanvas(Size, Size, render.Background)
	cells := v.Cells()

	for _, cell := range cells {
		if v.Shadow {
			canvas.FillRoundedRect(cell.Add(v.ShadowOffset), v.Radius, render.Shadow)
		}
		canvas.FillRoundedRect(cell, v.Radius, render.TerminalBG)
	}

	for _, cell := range cells {
		canvas.DrawGlyphCentered(Prompt, cell, face, render.TerminalFG, v.Nudge)
	}

	return canvas.Image(), nil
}
