package domain

import (
	"time"

	"github.com/listenupapp/nameflags/internal/palette"
	"github.com/listenupapp/nameflags/internal/render"
)

// Flag is a saved, shareable flag request. The palette is stored alongside
// the request so a record stays readable without re-running the pipeline,
// but it is always reproducible from Name, Encoding and Adjustment.
type Flag struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Encoding    palette.Encoding       `json:"encoding"`
	Adjustment  palette.AdjustmentKind `json:"adjustment"`
	Amount      float64                `json:"amount,omitempty"`
	Pattern     render.Pattern         `json:"pattern"`
	Orientation render.Orientation     `json:"orientation"`
	Width       int                    `json:"width"`
	Height      int                    `json:"height"`
	Caption     bool                   `json:"caption"`
	Colors      palette.Palette        `json:"colors"`
	Stats       palette.Stats          `json:"stats"`
	CreatedAt   time.Time              `json:"created_at"`
}

// AdjustmentSpec returns the stored adjustment as a pipeline value.
func (f *Flag) AdjustmentSpec() palette.Adjustment {
	return palette.Adjustment{Kind: f.Adjustment, Amount: f.Amount}
}

// RenderOptions returns the stored layout. Caption text is derived from Name.
func (f *Flag) RenderOptions() render.Options {
	opts := render.Options{
		Pattern:     f.Pattern,
		Orientation: f.Orientation,
		Width:       f.Width,
		Height:      f.Height,
	}
	if f.Caption {
		opts.Caption = CaptionFor(f.Name)
	}
	return opts
}

// CaptionFor is the title drawn above a captioned flag.
func CaptionFor(name string) string {
	return "Flag for: " + name
}
