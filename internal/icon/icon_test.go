package icon

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/rook-computer/icongen/internal/render"
)

func TestVariantsValidate(t *testing.T) {
	for _, v := range Variants() {
		if err := v.Validate(); err != nil {
			t.Errorf("variant %s: %v", v.Name, err)
		}
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name string
		v    Variant
	}{
		{"grid does not fill canvas", Variant{Name: "x", Padding: 10, CellSize: 10, Gap: 10, Radius: 2, FontSize: 32}},
		{"negative gap", Variant{Name: "x", Padding: 14, CellSize: 51, Gap: -2, Radius: 2, FontSize: 32}},
		{"radius exceeds half cell", Variant{Name: "x", Padding: 12, CellSize: 50, Gap: 4, Radius: 26, FontSize: 32}},
		{"zero font size", Variant{Name: "x", Padding: 12, CellSize: 50, Gap: 4, Radius: 4}},
	}
	for _, tt := range tests {
		if err := tt.v.Validate(); err == nil {
			t.Errorf("%s: Validate accepted %+v", tt.name, tt.v)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"classic", "shadowed"} {
		v, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if v.Name != name {
			t.Errorf("ByName(%q).Name = %q", name, v.Name)
		}
	}
	if _, err := ByName("neon"); err == nil {
		t.Error("ByName accepted an unknown variant")
	}
}

func TestCellsStayInsideCanvas(t *testing.T) {
	canvas := image.Rect(0, 0, Size, Size)
	for _, v := range Variants() {
		cells := v.Cells()
		for i, cell := range cells {
			if !cell.In(canvas) {
				t.Errorf("%s cell %d %v escapes canvas", v.Name, i, cell)
			}
			for j := i + 1; j < len(cells); j++ {
				if !cell.Intersect(cells[j]).Empty() {
					t.Errorf("%s cells %d and %d overlap", v.Name, i, j)
				}
			}
		}
		// Symmetric about the canvas center: the top-left cell mirrors the
		// bottom-right one.
		if cells[0].Min.X != Size-cells[3].Max.X || cells[0].Min.Y != Size-cells[3].Max.Y {
			t.Errorf("%s grid not centered: %v vs %v", v.Name, cells[0], cells[3])
		}
	}
}

func TestComposeDefaultPixels(t *testing.T) {
	img, err := Compose(Default(), basicfont.Face7x13)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, Size, Size) {
		t.Fatalf("bounds = %v", got)
	}

	if got := img.RGBAAt(0, 0); got != render.Background {
		t.Errorf("pixel (0,0) = %v, want canvas background %v", got, render.Background)
	}
	// The cell's top band starts at the padding offset, inset by the corner
	// radius.
	v := Default()
	if got := img.RGBAAt(v.Padding+v.Radius, v.Padding); got != render.TerminalBG {
		t.Errorf("pixel on cell top band = %v, want cell fill %v", got, render.TerminalBG)
	}
	// The literal corner pixel is rounded away and shows the background.
	if got := img.RGBAAt(v.Padding, v.Padding); got != render.Background {
		t.Errorf("rounded-off corner = %v, want canvas background %v", got, render.Background)
	}
}

func TestComposeShadowFallsInGap(t *testing.T) {
	v := Default() // shadowed
	img, err := Compose(v, basicfont.Face7x13)
	if err != nil {
		t.Fatal(err)
	}
	// Between the top-left and top-right cells, two pixels right of the
	// first cell, only the translucent shadow lands on the background.
	x := v.Padding + v.CellSize + 1
	y := v.Padding + v.CellSize/2
	got := img.RGBAAt(x, y)
	if got == render.Background || got == render.TerminalBG {
		t.Errorf("pixel (%d,%d) = %v, want a shadow blend", x, y, got)
	}
}

func TestComposeClassicHasNoShadow(t *testing.T) {
	v := Classic
	img, err := Compose(v, basicfont.Face7x13)
	if err != nil {
		t.Fatal(err)
	}
	x := v.Padding + v.CellSize + 1
	y := v.Padding + v.CellSize/2
	if got := img.RGBAAt(x, y); got != render.Background {
		t.Errorf("pixel (%d,%d) = %v, want untouched background", x, y, got)
	}
}

func TestComposeGlyphInEveryCell(t *testing.T) {
	for _, v := range Variants() {
		img, err := Compose(v, basicfont.Face7x13)
		if err != nil {
			t.Fatal(err)
		}
		for i, cell := range v.Cells() {
			found := false
			for y := cell.Min.Y; y < cell.Max.Y && !found; y++ {
				for x := cell.Min.X; x < cell.Max.X; x++ {
					if img.RGBAAt(x, y) == render.TerminalFG {
						found = true
						break
					}
				}
			}
			if !found {
				t.Errorf("%s cell %d has no glyph pixels", v.Name, i)
			}
		}
	}
}

func TestComposeDeterministic(t *testing.T) {
	encode := func() []byte {
		img, err := Compose(Default(), basicfont.Face7x13)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}
	if !bytes.Equal(encode(), encode()) {
		t.Error("two identical runs produced different PNG bytes")
	}
}

func TestComposeRejectsInvalidVariant(t *testing.T) {
	bad := Variant{Name: "bad", Padding: 1, CellSize: 1, Gap: 1, FontSize: 12}
	if _, err := Compose(bad, basicfont.Face7x13); err == nil {
		t.Error("Compose accepted an invalid variant")
	}
}
