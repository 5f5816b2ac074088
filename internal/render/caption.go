package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	captionBand    = 32
	captionPadding = 8
	ellipsis       = "..."
)

var (
	captionBackground = color.NRGBA{A: 0xff}
	captionForeground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// withCaption returns a taller canvas with text centred in a black band on
// top and flag below it.
func withCaption(flag *image.NRGBA, text string) *image.NRGBA {
	b := flag.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+captionBand))

	draw.Draw(out, image.Rect(0, 0, b.Dx(), captionBand), image.NewUniform(captionBackground), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, captionBand, b.Dx(), captionBand+b.Dy()), flag, b.Min, draw.Src)

	face := basicfont.Face7x13
	text = fitText(face, text, b.Dx()-2*captionPadding)
	width := font.MeasureString(face, text).Ceil()

	d := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(captionForeground),
		Face: face,
		Dot:  fixed.P(max(captionPadding, (b.Dx()-width)/2), (captionBand+face.Ascent)/2),
	}
	d.DrawString(text)
	return out
}

// fitText trims runes from the end until text fits within limit pixels.
func fitText(face font.Face, text string, limit int) string {
	if font.MeasureString(face, text).Ceil() <= limit {
		return text
	}
	runes := []rune(text)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + ellipsis
		if font.MeasureString(face, candidate).Ceil() <= limit {
			return candidate
		}
	}
	return ""
}
