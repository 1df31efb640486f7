package preview

import (
	"image"
	"image/color"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hoppxi/accents/internal/palette"
)

const (
	rowHeight = 24
	swatch    = 20
	padding   = 4
	textX     = padding + swatch + 8
)

var (
	background = color.NRGBA{0x26, 0x32, 0x38, 0xff}
	foreground = color.NRGBA{0xee, 0xff, 0xff, 0xff}
)

// Render draws one row per accent: a color swatch followed by its name and hex value.
func Render(p *palette.Palette, scale int) *image.NRGBA {
	face := basicfont.Face7x13
	labels := make([]string, len(p.Accents))
	width := 0
	for i, a := range p.Accents {
		labels[i] = a.Name + "  " + a.Hex()
		if w := font.MeasureString(face, labels[i]).Ceil(); w > width {
			width = w
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, textX+width+padding, len(p.Accents)*rowHeight+padding))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, xdraw.Src)

	d := &font.Drawer{Dst: img, Src: image.NewUniform(foreground), Face: face}
	for i, a := range p.Accents {
		y := padding + i*rowHeight
		r := image.Rect(padding, y, padding+swatch, y+swatch)
		xdraw.Draw(img, r, image.NewUniform(a.RGB()), image.Point{}, xdraw.Src)

		d.Dot = fixed.P(textX, y+swatch/2+face.Ascent/2)
		d.DrawString(labels[i])
	}

	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	scaled := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)
	return scaled
}

func Write(w io.Writer, p *palette.Palette, scale int) error {
	return png.Encode(w, Render(p, scale))
}
