package palette

import "errors"

// Sentinel errors returned by the pipeline. Callers compare with errors.Is.
var (
	// ErrEmptyInput means no word of the input carried an encodable character.
	ErrEmptyInput = errors.New("input contains no encodable words")

	// ErrInvalidEncoding means the encoding mode is neither code point nor byte encoded.
	ErrInvalidEncoding = errors.New("invalid encoding mode")

	// ErrMalformedColor means a block is not exactly six hex digits after padding.
	// It indicates a defect in chunking, never bad user input.
	ErrMalformedColor = errors.New("malformed color block")

	// ErrInvalidAdjustment means an adjustment kind or amount is out of range.
	ErrInvalidAdjustment = errors.New("invalid color adjustment")
)
