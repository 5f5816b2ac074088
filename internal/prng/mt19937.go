// Package prng implements the 32-bit Mersenne Twister (MT19937) with the
// big-integer seeding scheme used by CPython's random module.
//
// Flag fillers must be reproducible across every implementation that has ever
// produced a flag, so both the generator and the way an arbitrary-size integer
// is folded into its state are fixed here rather than delegated to math/rand.
package prng

import (
	"math/big"
)

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// MT19937 is a Mersenne Twister generator. It is not safe for concurrent use.
type MT19937 struct {
	state [n]uint32
	index int
}

// New returns a generator seeded with the absolute value of seed.
// A nil seed is treated as zero.
func New(seed *big.Int) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)
	return mt
}

// NewFromUint64 returns a generator seeded with a machine-sized integer.
func NewFromUint64(seed uint64) *MT19937 {
	return New(new(big.Int).SetUint64(seed))
}

// Seed resets the generator state from seed.
func (mt *MT19937) Seed(seed *big.Int) {
	mt.initByArray(seedKey(seed))
}

// seedKey splits |seed| into little-endian 32-bit words. Zero yields a
// single zero word.
func seedKey(seed *big.Int) []uint32 {
	v := new(big.Int)
	if seed != nil {
		v.Abs(seed)
	}

	bits := v.BitLen()
	keyUsed := 1
	if bits > 0 {
		keyUsed = (bits-1)/32 + 1
	}

	raw := v.Bytes() // big-endian
	key := make([]uint32, keyUsed)
	for i := range key {
		var word uint32
		for b := 0; b < 4; b++ {
			pos := len(raw) - 1 - (i*4 + b)
			if pos < 0 {
				break
			}
			word |= uint32(raw[pos]) << (8 * b)
		}
		key[i] = word
	}
	return key
}

func (mt *MT19937) initGenrand(s uint32) {
	mt.state[0] = s
	for i := 1; i < n; i++ {
		prev := mt.state[i-1]
		mt.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	mt.index = n
}

func (mt *MT19937) initByArray(key []uint32) {
	mt.initGenrand(19650218)

	i, j := 1, 0
	k := max(n, len(key))
	for ; k > 0; k-- {
		prev := mt.state[i-1]
		mt.state[i] = (mt.state[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			mt.state[0] = mt.state[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		prev := mt.state[i-1]
		mt.state[i] = (mt.state[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			mt.state[0] = mt.state[n-1]
			i = 1
		}
	}

	mt.state[0] = 0x80000000
	mt.index = n
}

func (mt *MT19937) twist() {
	for i := 0; i < n; i++ {
		y := (mt.state[i] & upperMask) | (mt.state[(i+1)%n] & lowerMask)
		next := mt.state[(i+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		mt.state[i] = next
	}
	mt.index = 0
}

// Uint32 returns the next tempered 32-bit output.
func (mt *MT19937) Uint32() uint32 {
	if mt.index >= n {
		mt.twist()
	}

	y := mt.state[mt.index]
	mt.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Float64 returns a float in [0.0, 1.0) with 53 bits of precision, built
// from two consecutive outputs the same way CPython's random() is.
func (mt *MT19937) Float64() float64 {
	a := mt.Uint32() >> 5
	b := mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Intn returns floor(Float64() * n). It panics if n <= 0.
// This is the scaling used for uniform choice with replacement; it is not
// rejection sampling and must stay that way for reproducibility.
func (mt *MT19937) Intn(bound int) int {
	if bound <= 0 {
		panic("prng: invalid bound")
	}
	return int(mt.Float64() * float64(bound))
}
