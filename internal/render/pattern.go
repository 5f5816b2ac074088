package render

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Errors returned for invalid render options.
var (
	ErrInvalidPattern     = errors.New("invalid flag pattern")
	ErrInvalidOrientation = errors.New("invalid stripe orientation")
	ErrInvalidSize        = errors.New("invalid image size")
	ErrEmptyPalette       = errors.New("palette has no colors")
)

// Pattern is the geometric layout of a flag.
type Pattern string

// Supported patterns.
const (
	Stripes      Pattern = "stripes"
	Checkerboard Pattern = "checkerboard"
	Diagonal     Pattern = "diagonal"
)

// Orientation applies to stripes only.
type Orientation string

// Supported orientations. Horizontal bands are stacked top to bottom.
const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// ParsePattern accepts any case. Empty means stripes.
func ParsePattern(s string) (Pattern, error) {
	switch p := Pattern(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return Stripes, nil
	case Stripes, Checkerboard, Diagonal:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPattern, s)
	}
}

// ParseOrientation accepts any case. Empty means horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch o := Orientation(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return Horizontal, nil
	case Horizontal, Vertical:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
	}
}

// Label is the title-cased display name.
func (p Pattern) Label() string {
	return cases.Title(language.English).String(string(p))
}

// Label is the title-cased display name.
func (o Orientation) Label() string {
	return cases.Title(language.English).String(string(o))
}

// Describe renders e.g. "Stripes with Horizontal orientation".
func Describe(p Pattern, o Orientation) string {
	if p != Stripes {
		return p.Label()
	}
	return p.Label() + " with " + o.Label() + " orientation"
}
