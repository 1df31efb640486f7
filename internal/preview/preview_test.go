package preview

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/hoppxi/accents/internal/palette"
)

var pal = &palette.Palette{Accents: []palette.Accent{
	{Name: "Ocean Blue", Color: "3498db"},
	{Name: "Red", Color: "ff0000"},
}}

func TestRenderSwatches(t *testing.T) {
	img := Render(pal, 1)
	if got, want := img.Bounds().Dy(), 2*rowHeight+padding; got != want {
		t.Errorf("height = %d; want %d", got, want)
	}

	want := []color.NRGBA{
		{0x34, 0x98, 0xdb, 0xff},
		{0xff, 0x00, 0x00, 0xff},
	}
	for i, c := range want {
		got := img.NRGBAAt(padding+swatch/2, padding+i*rowHeight+swatch/2)
		if got != c {
			t.Errorf("swatch %d = %v; want %v", i, got, c)
		}
	}
	if got := img.NRGBAAt(0, 0); got != background {
		t.Errorf("background = %v; want %v", got, background)
	}
}

func TestRenderScaled(t *testing.T) {
	small := Render(pal, 1).Bounds()
	big := Render(pal, 3).Bounds()
	if big.Dx() != small.Dx()*3 || big.Dy() != small.Dy()*3 {
		t.Errorf("scaled bounds = %v; want 3x %v", big, small)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, pal, 2); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() == 0 {
		t.Error("empty image")
	}
}
