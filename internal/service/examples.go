package service

import (
	"context"
	"fmt"

	"github.com/listenupapp/nameflags/internal/palette"
)

// ExampleNames are the sample inputs offered to new users. They cover Latin
// names, underscores, CJK and emoji.
var ExampleNames = []string{
	"Nico",
	"Leonhard_Euler",
	"織田 信長",
	"User123",
	"⛰️😸☕",
}

// Example is one sample input with its palette in both encodings.
type Example struct {
	Name      string
	CodePoint *Generated
	Bytes     *Generated
}

// Examples generates the palettes of every sample input.
func (s *FlagService) Examples(ctx context.Context) ([]Example, error) {
	out, err := GenerateExamples(ctx)
	if err != nil {
		return nil, s.mapError(err, "generate examples")
	}
	return out, nil
}

// GenerateExamples runs the pipeline over ExampleNames in both encodings,
// without adjustment. It needs no storage, so the CLI calls it directly.
func GenerateExamples(ctx context.Context) ([]Example, error) {
	out := make([]Example, 0, len(ExampleNames))
	for _, name := range ExampleNames {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cp, err := generateDefault(name, palette.CodePoint)
		if err != nil {
			return nil, err
		}
		utf8, err := generateDefault(name, palette.ByteEncoded)
		if err != nil {
			return nil, err
		}
		out = append(out, Example{Name: name, CodePoint: cp, Bytes: utf8})
	}
	return out, nil
}

func generateDefault(name string, enc palette.Encoding) (*Generated, error) {
	result, err := palette.Generate(name, palette.Options{Encoding: enc})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Generated{Result: result, Stats: result.Stats()}, nil
}
