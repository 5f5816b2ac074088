package service

import (
	"fmt"
	"strings"

	"github.com/listenupapp/nameflags/internal/palette"
	"github.com/listenupapp/nameflags/internal/render"
)

// Analysis is the human-readable summary shown next to a flag.
type Analysis struct {
	GeneratedFrom     string `json:"generated_from" yaml:"generated_from"`
	TotalColors       string `json:"total_colors" yaml:"total_colors"`
	AverageBrightness string `json:"average_brightness" yaml:"average_brightness"`
	Category          string `json:"category" yaml:"category"`
	Encoding          string `json:"encoding" yaml:"encoding"`
	Pattern           string `json:"pattern" yaml:"pattern"`
}

// Analyze summarises stats for display.
func Analyze(stats palette.Stats, enc palette.Encoding, p render.Pattern, o render.Orientation) Analysis {
	if p == "" {
		p = render.Stripes
	}
	if o == "" {
		o = render.Horizontal
	}
	return Analysis{
		GeneratedFrom:     fmt.Sprintf("%d word(s)", stats.WordCount),
		TotalColors:       fmt.Sprintf("%d stripes", stats.StripeCount),
		AverageBrightness: fmt.Sprintf("%.1f/255", stats.AverageBrightness),
		Category:          string(stats.Category),
		Encoding:          enc.Label(),
		Pattern:           render.Describe(p, o),
	}
}

// String renders one "label: value" line per field.
func (a Analysis) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generated from: %s\n", a.GeneratedFrom)
	fmt.Fprintf(&b, "Total colors: %s\n", a.TotalColors)
	fmt.Fprintf(&b, "Average brightness: %s (%s)\n", a.AverageBrightness, a.Category)
	fmt.Fprintf(&b, "Encoding: %s\n", a.Encoding)
	fmt.Fprintf(&b, "Pattern: %s\n", a.Pattern)
	return b.String()
}
