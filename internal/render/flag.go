package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/listenupapp/nameflags/internal/palette"
)

// Default canvas size, a 3:2 flag.
const (
	DefaultWidth  = 600
	DefaultHeight = 400

	// checkerDivisions is how many blocks fit along the shorter side.
	checkerDivisions = 8
)

// Options controls the raster.
type Options struct {
	Pattern     Pattern
	Orientation Orientation
	Width       int
	Height      int
	// Caption, when set, is drawn in a band above the flag.
	Caption string
}

// WithDefaults fills zero fields.
func (o Options) WithDefaults() Options {
	if o.Pattern == "" {
		o.Pattern = Stripes
	}
	if o.Orientation == "" {
		o.Orientation = Horizontal
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Validate checks enum values and dimensions.
func (o Options) Validate() error {
	if _, err := ParsePattern(string(o.Pattern)); err != nil {
		return err
	}
	if _, err := ParseOrientation(string(o.Orientation)); err != nil {
		return err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	return nil
}

// Draw paints p onto a new canvas.
func Draw(p palette.Palette, opts Options) (*image.NRGBA, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}

	colors, err := toNRGBA(p)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	var index func(x, y int) int

	switch opts.Pattern {
	case Checkerboard:
		index = checkerboardIndex(opts.Width, opts.Height, len(colors))
	case Diagonal:
		index = diagonalIndex(opts.Width, opts.Height, len(colors))
	default:
		index = stripeIndex(opts.Orientation, opts.Width, opts.Height, len(colors))
	}

	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			img.SetNRGBA(x, y, colors[index(x, y)])
		}
	}

	if opts.Caption != "" {
		img = withCaption(img, opts.Caption)
	}
	return img, nil
}

// stripeIndex splits the axis of length L into n bands; pixel i lies in
// band i*n/L, so the bands cover the canvas with no remainder.
func stripeIndex(o Orientation, w, h, n int) func(x, y int) int {
	if o == Vertical {
		return func(x, _ int) int { return x * n / w }
	}
	return func(_, y int) int { return y * n / h }
}

func checkerboardIndex(w, h, n int) func(x, y int) int {
	block := max(1, min(w/checkerDivisions, h/checkerDivisions))
	return func(x, y int) int {
		return (x/block + y/block) % n
	}
}

func diagonalIndex(w, h, n int) func(x, y int) int {
	span := float64(w + h)
	return func(x, y int) int {
		return int(float64(x+y)/span*float64(n)) % n
	}
}

func toNRGBA(p palette.Palette) ([]color.NRGBA, error) {
	out := make([]color.NRGBA, len(p))
	for i, c := range p {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: block %d %q", palette.ErrMalformedColor, i, string(c))
		}
		parsed, err := colorful.Hex(c.Hex())
		if err != nil {
			return nil, fmt.Errorf("%w: block %d %q", palette.ErrMalformedColor, i, string(c))
		}
		r, g, b := parsed.RGB255()
		out[i] = color.NRGBA{R: r, G: g, B: b, A: 0xff}
	}
	return out, nil
}
