package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// GridCells lays out a 2x2 grid of square cells inside rect: cells of
// cellSize separated by gap, the whole grid offset from rect.Min by
// padding. Order is top-left, top-right, bottom-left, bottom-right.
//
// When 2*padding + 2*cellSize + gap equals the side of a square rect, the
// grid is symmetric about the rect center.
func GridCells(rect image.Rectangle, padding, cellSize, gap int) [4]image.Rectangle {
	area := Inset(Normalize(rect), padding)
	step := cellSize + gap
	var cells [4]image.Rectangle
	for i := range cells {
		x := area.Min.X + (i%2)*step
		y := area.Min.Y + (i/2)*step
		cells[i] = image.Rect(x, y, x+cellSize, y+cellSize)
	}
	return cells
}

// FitSquare returns the largest square that fits into rect, anchored at the top-left.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	size := rect.Dx()
	if rect.Dy() < size {
		size = rect.Dy()
	}
	if size < 0 {
		size = 0
	}
	return image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+size, rect.Min.Y+size)
}

// CenterIn returns a widthPx x heightPx rectangle centered within rect.
func CenterIn(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	x := rect.Min.X + (rect.Dx()-widthPx)/2
	y := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(x, y, x+widthPx, y+heightPx)
}
