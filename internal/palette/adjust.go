package palette

import (
	"fmt"
	"math"
	"strings"
)

// AdjustmentKind names a post-processing transform.
type AdjustmentKind string

// Adjustment kinds.
const (
	AdjustNone     AdjustmentKind = "none"
	AdjustBrighten AdjustmentKind = "brighten"
	AdjustDarken   AdjustmentKind = "darken"
	AdjustSaturate AdjustmentKind = "saturate"
)

// Brighten and Darken accept integer amounts in this range.
const (
	MinShift = 0
	MaxShift = 100
)

// ParseAdjustmentKind maps user-facing names onto a kind. Empty means none.
func ParseAdjustmentKind(s string) (AdjustmentKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AdjustNone, nil
	case "brighten":
		return AdjustBrighten, nil
	case "darken":
		return AdjustDarken, nil
	case "saturate", "saturation", "boost saturation", "boost-saturation":
		return AdjustSaturate, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidAdjustment, s)
	}
}

// DefaultAmount is the amount used when a caller picks a kind but no amount.
func (k AdjustmentKind) DefaultAmount() float64 {
	switch k {
	case AdjustBrighten, AdjustDarken:
		return 30
	case AdjustSaturate:
		return 1.5
	default:
		return 0
	}
}

// Adjustment is an optional transform applied to every block.
// Applying one gives up the one-name-one-flag property; it cannot be undone.
type Adjustment struct {
	Kind   AdjustmentKind
	Amount float64
}

// Validate checks the kind and its amount range.
func (a Adjustment) Validate() error {
	switch a.Kind {
	case "", AdjustNone:
		return nil
	case AdjustBrighten, AdjustDarken:
		if a.Amount != math.Trunc(a.Amount) || a.Amount < MinShift || a.Amount > MaxShift {
			return fmt.Errorf("%w: %s amount must be an integer in [%d, %d], got %v",
				ErrInvalidAdjustment, a.Kind, MinShift, MaxShift, a.Amount)
		}
		return nil
	case AdjustSaturate:
		if math.IsNaN(a.Amount) || math.IsInf(a.Amount, 0) || a.Amount < 0 {
			return fmt.Errorf("%w: saturation factor must be a non-negative number, got %v",
				ErrInvalidAdjustment, a.Amount)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidAdjustment, string(a.Kind))
	}
}

// IsNoop reports whether applying a leaves every colour unchanged.
func (a Adjustment) IsNoop() bool {
	switch a.Kind {
	case AdjustBrighten, AdjustDarken:
		return a.Amount == 0
	case AdjustSaturate:
		return a.Amount == 1
	default:
		return true
	}
}

// Apply validates a and returns the adjusted palette, same length and order.
func (a Adjustment) Apply(p Palette) (Palette, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	switch a.Kind {
	case AdjustBrighten:
		return Brighten(p, int(a.Amount)), nil
	case AdjustDarken:
		return Darken(p, int(a.Amount)), nil
	case AdjustSaturate:
		return Saturate(p, a.Amount), nil
	default:
		out := make(Palette, len(p))
		copy(out, p)
		return out, nil
	}
}

// Brighten adds amount to every channel, clamped to [0, 255].
func Brighten(p Palette, amount int) Palette {
	return mapChannels(p, func(v uint8) uint8 {
		return clampInt(int(v) + amount)
	})
}

// Darken subtracts amount from every channel, clamped to [0, 255].
func Darken(p Palette, amount int) Palette {
	return mapChannels(p, func(v uint8) uint8 {
		return clampInt(int(v) - amount)
	})
}

// Saturate moves each channel away from (factor > 1) or towards (factor < 1)
// the perceptual gray 0.299R + 0.587G + 0.114B. Results are clamped, then
// rounded.
func Saturate(p Palette, factor float64) Palette {
	out := make(Palette, len(p))
	for i, c := range p {
		r, g, b := c.RGB()
		gray := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
		scale := func(v uint8) uint8 {
			return clampFloat(gray + factor*(float64(v)-gray))
		}
		out[i] = FromRGB(scale(r), scale(g), scale(b))
	}
	return out
}

func mapChannels(p Palette, f func(uint8) uint8) Palette {
	out := make(Palette, len(p))
	for i, c := range p {
		r, g, b := c.RGB()
		out[i] = FromRGB(f(r), f(g), f(b))
	}
	return out
}

func clampInt(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

func clampFloat(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
