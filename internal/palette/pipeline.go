package palette

import (
	"fmt"
	"math/big"
)

// Options selects the encoding and an optional adjustment.
type Options struct {
	Encoding   Encoding
	Adjustment Adjustment
}

// Result carries every intermediate of one pipeline run.
type Result struct {
	Input      string
	Encoding   Encoding
	Words      []string
	Seed       *big.Int
	Filler     string
	Blocks     [][]Color
	Adjustment Adjustment
	Palette    Palette
}

// Generate runs the full pipeline. It fails fast on the first invalid state
// and never returns a partial palette.
func Generate(input string, opts Options) (*Result, error) {
	if err := opts.Adjustment.Validate(); err != nil {
		return nil, err
	}

	enc, err := Encode(input, opts.Encoding)
	if err != nil {
		return nil, err
	}

	filler := GenerateFiller(enc.Seed, FillerLength)

	blocks, err := ChunkAndPad(enc.Words, filler)
	if err != nil {
		return nil, err
	}

	if !opts.Adjustment.IsNoop() {
		for i := range blocks {
			if blocks[i], err = opts.Adjustment.Apply(blocks[i]); err != nil {
				return nil, err
			}
		}
	}

	flat := Flatten(blocks)
	if len(flat) == 0 {
		return nil, ErrEmptyInput
	}
	if err := flat.Validate(); err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}

	return &Result{
		Input:      input,
		Encoding:   opts.Encoding,
		Words:      enc.Words,
		Seed:       enc.Seed,
		Filler:     filler,
		Blocks:     blocks,
		Adjustment: opts.Adjustment,
		Palette:    flat,
	}, nil
}

// Stats summarises the result.
func (r *Result) Stats() Stats {
	return ComputeStats(len(r.Words), r.Palette)
}
