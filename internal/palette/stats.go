package palette

// Category buckets the average brightness of a palette.
type Category string

// Brightness categories.
const (
	Dark   Category = "Dark"
	Medium Category = "Medium"
	Bright Category = "Bright"
)

// Stats is the metadata reported alongside a palette.
type Stats struct {
	WordCount         int      `json:"word_count" yaml:"word_count"`
	StripeCount       int      `json:"stripe_count" yaml:"stripe_count"`
	AverageBrightness float64  `json:"average_brightness" yaml:"average_brightness"`
	Category          Category `json:"brightness_category" yaml:"brightness_category"`
}

// ComputeStats derives stats from a palette. Brightness is the mean over
// colours of (R+G+B)/3.
func ComputeStats(wordCount int, p Palette) Stats {
	var total float64
	for _, c := range p {
		r, g, b := c.RGB()
		total += float64(int(r)+int(g)+int(b)) / 3
	}

	var avg float64
	if len(p) > 0 {
		avg = total / float64(len(p))
	}

	return Stats{
		WordCount:         wordCount,
		StripeCount:       len(p),
		AverageBrightness: avg,
		Category:          Categorize(avg),
	}
}

// Categorize maps an average brightness onto Dark (<85), Medium (<170) or Bright.
func Categorize(avg float64) Category {
	switch {
	case avg < 85:
		return Dark
	case avg < 170:
		return Medium
	default:
		return Bright
	}
}
