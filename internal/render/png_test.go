package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/nameflags/internal/palette"
)

func TestRender(t *testing.T) {
	out, err := Render(palette.Palette{"4e6963", "6f6dd9"}, Options{Width: 90, Height: 60})
	require.NoError(t, err)

	assert.Equal(t, 90, out.Width)
	assert.Equal(t, 60, out.Height)
	assert.NotEmpty(t, out.BlurHash)

	decoded, err := png.Decode(bytes.NewReader(out.PNG))
	require.NoError(t, err)
	assert.Equal(t, 90, decoded.Bounds().Dx())

	r, g, b, _ := decoded.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0x4e, 0x69, 0x63}, []uint32{r >> 8, g >> 8, b >> 8})
}

func TestRender_Deterministic(t *testing.T) {
	p := palette.Palette{"4e6963", "6f6dd9"}
	a, err := Render(p, Options{Pattern: Diagonal})
	require.NoError(t, err)
	b, err := Render(p, Options{Pattern: Diagonal})
	require.NoError(t, err)

	assert.Equal(t, a.PNG, b.PNG)
	assert.Equal(t, a.BlurHash, b.BlurHash)
}

func TestComputeBlurHash_LargeImage(t *testing.T) {
	img, err := Draw(palette.Palette{"ff0000", "0000ff"}, Options{Width: 1200, Height: 300})
	require.NoError(t, err)

	hash, err := ComputeBlurHash(img)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	thumb := thumbnail(img)
	assert.Equal(t, blurHashSize, thumb.Bounds().Dx())
	assert.Equal(t, 16, thumb.Bounds().Dy())
}
