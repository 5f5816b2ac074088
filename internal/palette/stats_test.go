package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(1, Palette{"4e6963", "6f6dd9"})

	assert.Equal(t, 1, stats.WordCount)
	assert.Equal(t, 2, stats.StripeCount)
	// (94 + 145.667) / 2
	assert.InDelta(t, 119.833, stats.AverageBrightness, 0.001)
	assert.Equal(t, Medium, stats.Category)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(0, nil)
	assert.Zero(t, stats.AverageBrightness)
	assert.Equal(t, Dark, stats.Category)
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, Dark, Categorize(0))
	assert.Equal(t, Dark, Categorize(84.99))
	assert.Equal(t, Medium, Categorize(85))
	assert.Equal(t, Medium, Categorize(169.9))
	assert.Equal(t, Bright, Categorize(170))
	assert.Equal(t, Bright, Categorize(255))
}
