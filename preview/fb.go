package main

import (
	"image"
	"image/color"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/icongen/internal/render/layout"
)

// blitCentered clears the framebuffer and scales img into the largest
// centered square with nearest-neighbor sampling, so the icon's hard
// pixel edges survive the upscale.
func blitCentered(dev *fb.Device, img image.Image) {
	bounds := dev.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			dev.Set(x, y, color.RGBA{A: 0xFF})
		}
	}

	square := layout.FitSquare(bounds)
	target := layout.CenterIn(bounds, square.Dx(), square.Dy())
	scaled := image.NewRGBA(target)
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	for y := target.Min.Y; y < target.Max.Y; y++ {
		for x := target.Min.X; x < target.Max.X; x++ {
			pixel := scaled.RGBAAt(x, y)
			dev.Set(x, y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
