package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/listenupapp/nameflags/internal/palette"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
	rgb   = palette.Palette{"ff0000", "00ff00", "0000ff"}
)

func TestDraw_HorizontalStripes(t *testing.T) {
	img, err := Draw(rgb, Options{Pattern: Stripes, Orientation: Horizontal, Width: 30, Height: 30})
	require.NoError(t, err)

	assert.Equal(t, red, img.NRGBAAt(15, 0))
	assert.Equal(t, red, img.NRGBAAt(29, 9))
	assert.Equal(t, green, img.NRGBAAt(0, 10))
	assert.Equal(t, blue, img.NRGBAAt(0, 29))
}

func TestDraw_VerticalStripes(t *testing.T) {
	img, err := Draw(rgb, Options{Pattern: Stripes, Orientation: Vertical, Width: 30, Height: 12})
	require.NoError(t, err)

	assert.Equal(t, red, img.NRGBAAt(0, 11))
	assert.Equal(t, green, img.NRGBAAt(10, 0))
	assert.Equal(t, blue, img.NRGBAAt(29, 5))
}

func TestDraw_StripesCoverUnevenCanvas(t *testing.T) {
	// 400 rows do not split evenly into 3 bands; the last row is still painted.
	img, err := Draw(rgb, Options{Width: 10, Height: 400})
	require.NoError(t, err)

	assert.Equal(t, blue, img.NRGBAAt(0, 399))
	assert.Equal(t, red, img.NRGBAAt(0, 133))
	assert.Equal(t, green, img.NRGBAAt(0, 134))
}

func TestDraw_Checkerboard(t *testing.T) {
	// 80x80 gives 10px blocks.
	img, err := Draw(rgb, Options{Pattern: Checkerboard, Width: 80, Height: 80})
	require.NoError(t, err)

	assert.Equal(t, red, img.NRGBAAt(0, 0))
	assert.Equal(t, green, img.NRGBAAt(10, 0))
	assert.Equal(t, green, img.NRGBAAt(0, 10))
	assert.Equal(t, blue, img.NRGBAAt(10, 10))
	assert.Equal(t, red, img.NRGBAAt(30, 0))
}

func TestDraw_CheckerboardTinyCanvas(t *testing.T) {
	img, err := Draw(rgb, Options{Pattern: Checkerboard, Width: 4, Height: 4})
	require.NoError(t, err)

	assert.Equal(t, red, img.NRGBAAt(0, 0))
	assert.Equal(t, green, img.NRGBAAt(1, 0))
}

func TestDraw_Diagonal(t *testing.T) {
	img, err := Draw(rgb, Options{Pattern: Diagonal, Width: 60, Height: 30})
	require.NoError(t, err)

	// floor((x+y)/90 * 3)
	assert.Equal(t, red, img.NRGBAAt(0, 0))
	assert.Equal(t, red, img.NRGBAAt(29, 0))
	assert.Equal(t, green, img.NRGBAAt(32, 0))
	assert.Equal(t, green, img.NRGBAAt(20, 20))
	assert.Equal(t, blue, img.NRGBAAt(59, 29))
}

func TestDraw_SingleColor(t *testing.T) {
	for _, p := range []Pattern{Stripes, Checkerboard, Diagonal} {
		img, err := Draw(palette.Palette{"00ff00"}, Options{Pattern: p, Width: 16, Height: 16})
		require.NoError(t, err)
		assert.Equal(t, green, img.NRGBAAt(15, 15), string(p))
	}
}

func TestDraw_Defaults(t *testing.T) {
	img, err := Draw(rgb, Options{})
	require.NoError(t, err)

	assert.Equal(t, DefaultWidth, img.Bounds().Dx())
	assert.Equal(t, DefaultHeight, img.Bounds().Dy())
}

func TestDraw_Errors(t *testing.T) {
	_, err := Draw(nil, Options{})
	assert.ErrorIs(t, err, ErrEmptyPalette)

	_, err = Draw(rgb, Options{Pattern: "spiral"})
	assert.ErrorIs(t, err, ErrInvalidPattern)

	_, err = Draw(rgb, Options{Orientation: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidOrientation)

	_, err = Draw(rgb, Options{Width: -1})
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Draw(palette.Palette{"nothex"}, Options{})
	assert.ErrorIs(t, err, palette.ErrMalformedColor)
}

func TestDraw_Caption(t *testing.T) {
	img, err := Draw(rgb, Options{Width: 120, Height: 60, Caption: "Flag for: Nico"})
	require.NoError(t, err)

	assert.Equal(t, 60+captionBand, img.Bounds().Dy())
	assert.Equal(t, captionBackground, img.NRGBAAt(0, 0))
	assert.Equal(t, red, img.NRGBAAt(0, captionBand))
	assert.Equal(t, blue, img.NRGBAAt(119, captionBand+59))

	lit := false
	for x := 0; x < 120 && !lit; x++ {
		for y := 0; y < captionBand; y++ {
			if img.NRGBAAt(x, y) == captionForeground {
				lit = true
				break
			}
		}
	}
	assert.True(t, lit, "caption text should be drawn")
}

func TestFitText(t *testing.T) {
	long := "Flag for: a rather long name that cannot fit in a small band"
	face := basicfont.Face7x13
	got := fitText(face, long, 100)

	assert.LessOrEqual(t, font.MeasureString(face, got).Ceil(), 100)
	assert.Contains(t, got, ellipsis)
	assert.Equal(t, "short", fitText(face, "short", 100))
}
