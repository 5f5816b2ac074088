package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/listenupapp/nameflags/internal/palette"
)

var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// EncodePNG writes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Image is a rendered flag.
type Image struct {
	PNG      []byte
	Width    int
	Height   int
	BlurHash string
}

// Render draws p, encodes it as PNG and computes its BlurHash.
func Render(p palette.Palette, opts Options) (*Image, error) {
	img, err := Draw(p, opts)
	if err != nil {
		return nil, err
	}

	data, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}

	hash, err := ComputeBlurHash(img)
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	return &Image{
		PNG:      data,
		Width:    b.Dx(),
		Height:   b.Dy(),
		BlurHash: hash,
	}, nil
}
