package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	for input, want := range map[string]Pattern{
		"":             Stripes,
		"Stripes":      Stripes,
		"CHECKERBOARD": Checkerboard,
		" diagonal ":   Diagonal,
	} {
		got, err := ParsePattern(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParsePattern("spiral")
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestParseOrientation(t *testing.T) {
	got, err := ParseOrientation("Vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, got)

	got, err = ParseOrientation("")
	require.NoError(t, err)
	assert.Equal(t, Horizontal, got)

	_, err = ParseOrientation("diagonal")
	assert.ErrorIs(t, err, ErrInvalidOrientation)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Stripes with Horizontal orientation", Describe(Stripes, Horizontal))
	assert.Equal(t, "Stripes with Vertical orientation", Describe(Stripes, Vertical))
	assert.Equal(t, "Checkerboard", Describe(Checkerboard, Horizontal))
}

func TestFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Nico", "Nico_flag.png"},
		{"Eugene Wigner", "Eugene_Wigner_flag.png"},
		{"AC/DC", "AC_DC_flag.png"},
		{`C:\temp`, "C:_temp_flag.png"},
		{"織田 信長", "織田_信長_flag.png"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.input), tt.input)
	}
}
