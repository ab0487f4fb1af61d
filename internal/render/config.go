package render

import "image/color"

// Icon palette. Hex values match the shipped icon.
var (
	// Background is the solid canvas fill behind the cell grid.
	Background = color.RGBA{R: 0x2C, G: 0x64, B: 0x96, A: 0xFF} // #2C6496

	// TerminalBG fills the rounded terminal cells.
	TerminalBG = color.RGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF} // #1E1E1E

	// TerminalFG is the accent used for the prompt glyph.
	TerminalFG = color.RGBA{R: 0x39, G: 0xC6, B: 0xC0, A: 0xFF} // #39C6C0

	// Shadow is the translucent drop-shadow fill, composited with Over.
	Shadow = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x50}
)
