package palette

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canonicalBlock = regexp.MustCompile(`^[0-9a-f]{6}$`)

// Expected palettes match the reference implementation bit for bit.
func TestGenerate_Reference(t *testing.T) {
	tests := []struct {
		input string
		mode  Encoding
		want  Palette
	}{
		{"Nico", CodePoint, Palette{"4e6963", "6f6dd9"}},
		{"ab", CodePoint, Palette{"616225"}},
		{"Leonhard_Euler", CodePoint, Palette{"4c656f", "6e6861", "726445", "756c65", "7234cc"}},
		{"織田 信長", CodePoint, Palette{"7e5475", "30d1e0", "4fe195", "77d1e0"}},
		{"織田 信長", ByteEncoded, Palette{"e7b994", "e794b0", "e4bfa1", "e995b7"}},
		{"User123", CodePoint, Palette{"557365", "723132", "335d4e"}},
		{"⛰️😸☕", CodePoint, Palette{"26f0fe", "0f1f63", "82615a"}},
		{"⛰️😸☕", ByteEncoded, Palette{"e29bb0", "efb88f", "f09f98", "b8e298", "95785b"}},
		{"King_of_Pirates", CodePoint, Palette{"4b696e", "676f66", "506972", "617465", "732e1d"}},
		{"tab\there", CodePoint, Palette{"746162", "686572", "65f3e9"}},
		{"tab\there", ByteEncoded, Palette{"746162", "096865", "726557"}},
		{"a  b", ByteEncoded, Palette{"6125ab", "6225ab"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.input, func(t *testing.T) {
			res, err := Generate(tt.input, Options{Encoding: tt.mode})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Palette)
		})
	}
}

func TestGenerate_NicoIntermediates(t *testing.T) {
	res, err := Generate("Nico", Options{Encoding: CodePoint})
	require.NoError(t, err)

	assert.Equal(t, []string{"4e69636f"}, res.Words)
	assert.Equal(t, "6dd91", res.Filler)
	assert.Equal(t, 0, Seed([]string{"4e69636f"}).Cmp(res.Seed))
	assert.Equal(t, [][]Color{{"4e6963", "6f6dd9"}}, res.Blocks)
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, mode := range []Encoding{CodePoint, ByteEncoded} {
		a, err := Generate("Robert_Fripp and friends", Options{Encoding: mode})
		require.NoError(t, err)
		b, err := Generate("Robert_Fripp and friends", Options{Encoding: mode})
		require.NoError(t, err)
		assert.Equal(t, a.Palette, b.Palette)
	}
}

func TestGenerate_CaseSensitive(t *testing.T) {
	upper, err := Generate("Merlin", Options{Encoding: CodePoint})
	require.NoError(t, err)
	lower, err := Generate("merlin", Options{Encoding: CodePoint})
	require.NoError(t, err)

	assert.NotEqual(t, upper.Palette, lower.Palette)
}

func TestGenerate_UnderscoreChangesSegmentation(t *testing.T) {
	for _, mode := range []Encoding{CodePoint, ByteEncoded} {
		joined, err := Generate("Ab_Cd", Options{Encoding: mode})
		require.NoError(t, err)
		split, err := Generate("Ab Cd", Options{Encoding: mode})
		require.NoError(t, err)

		assert.Equal(t, Palette{"416243", "64ee37"}, joined.Palette)
		assert.Equal(t, Palette{"4162ee", "4364ee"}, split.Palette)
	}
}

func TestGenerate_FlatteningOrder(t *testing.T) {
	res, err := Generate("Eugene Wigner", Options{Encoding: CodePoint})
	require.NoError(t, err)

	assert.Equal(t, Palette{"457567", "656e65", "576967", "6e6572"}, res.Palette)
	assert.Equal(t, [][]Color{{"457567", "656e65"}, {"576967", "6e6572"}}, res.Blocks)
}

func TestGenerate_CanonicalBlocks(t *testing.T) {
	inputs := []string{"Nico", "ଆର୍ନଭ୍_ପଣ୍ଡା", "x", "🙂", "a b c d e f g", "1234567890123"}

	for _, mode := range []Encoding{CodePoint, ByteEncoded} {
		for _, input := range inputs {
			res, err := Generate(input, Options{Encoding: mode})
			require.NoError(t, err, input)
			require.NotEmpty(t, res.Palette)
			for _, c := range res.Palette {
				assert.Regexp(t, canonicalBlock, string(c), "input %q", input)
			}
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate("", Options{Encoding: CodePoint})
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Generate("Nico", Options{Encoding: "ebcdic"})
	assert.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = Generate("Nico", Options{Encoding: CodePoint, Adjustment: Adjustment{Kind: AdjustDarken, Amount: 300}})
	assert.ErrorIs(t, err, ErrInvalidAdjustment)
}

func TestGenerate_WithAdjustment(t *testing.T) {
	plain, err := Generate("Nico", Options{Encoding: CodePoint})
	require.NoError(t, err)

	bright, err := Generate("Nico", Options{
		Encoding:   CodePoint,
		Adjustment: Adjustment{Kind: AdjustBrighten, Amount: 30},
	})
	require.NoError(t, err)

	assert.Equal(t, Brighten(plain.Palette, 30), bright.Palette)
	assert.Equal(t, Palette{"6c8781", "8d8bf7"}, bright.Palette)
	assert.Equal(t, plain.Filler, bright.Filler, "adjustment runs after padding")
}

func TestResult_Stats(t *testing.T) {
	res, err := Generate("a  b", Options{Encoding: ByteEncoded})
	require.NoError(t, err)

	stats := res.Stats()
	assert.Equal(t, 3, stats.WordCount, "empty words still count")
	assert.Equal(t, 2, stats.StripeCount)
}
