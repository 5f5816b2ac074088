package palette

import (
	"math/big"
	"strings"

	"github.com/listenupapp/nameflags/internal/prng"
)

const (
	// FillerLength is the canonical filler length. A short block lacks at
	// most five digits, so five always completes it.
	FillerLength = 5

	// FillerAlphabet is the draw alphabet. Its order is part of the output
	// contract.
	FillerAlphabet = "abcdef0123456789"
)

// GenerateFiller draws length characters uniformly, with replacement, from
// FillerAlphabet using an MT19937 generator seeded with seed.
func GenerateFiller(seed *big.Int, length int) string {
	if length <= 0 {
		return ""
	}

	rng := prng.New(seed)
	var b strings.Builder
	b.Grow(length)
	for range length {
		b.WriteByte(FillerAlphabet[rng.Intn(len(FillerAlphabet))])
	}
	return b.String()
}
