package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/nameflags/internal/palette"
	"github.com/listenupapp/nameflags/internal/render"
	"github.com/listenupapp/nameflags/internal/service"
)

func (s *Server) registerPaletteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "generatePalette",
		Method:      http.MethodPost,
		Path:        "/api/v1/palettes",
		Summary:     "Generate palette",
		Description: "Turns a name into its deterministic colour palette",
		Tags:        []string{"Palettes"},
	}, s.handleGeneratePalette)
}

// PaletteRequest selects the input and how it is turned into colours.
type PaletteRequest struct {
	Name       string   `json:"name" minLength:"1" maxLength:"512" doc:"Name to encode"`
	Encoding   string   `json:"encoding,omitempty" doc:"unicode (default) or utf-8"`
	Adjustment string   `json:"adjustment,omitempty" doc:"none, brighten, darken or saturate"`
	Amount     *float64 `json:"amount,omitempty" doc:"Adjustment amount; defaults to 30 for brighten/darken and 1.5 for saturate"`
}

func (r PaletteRequest) toService() service.PaletteRequest {
	return service.PaletteRequest{
		Name:       r.Name,
		Encoding:   r.Encoding,
		Adjustment: r.Adjustment,
		Amount:     r.Amount,
	}
}

// GeneratePaletteInput wraps the palette request for Huma.
type GeneratePaletteInput struct {
	Body PaletteRequest
}

// AdjustmentResponse describes the adjustment that was applied.
type AdjustmentResponse struct {
	Kind   string  `json:"kind" doc:"Adjustment kind"`
	Amount float64 `json:"amount" doc:"Effective amount"`
}

// PaletteResponse is a generated palette with every intermediate step.
type PaletteResponse struct {
	Name       string             `json:"name" doc:"Input name"`
	Encoding   string             `json:"encoding" doc:"Encoding used"`
	Words      []string           `json:"words" doc:"Encoded hex words"`
	Seed       string             `json:"seed" doc:"Decimal PRNG seed"`
	Filler     string             `json:"filler" doc:"Hex filler used to pad the last colour of each word"`
	Blocks     [][]string         `json:"blocks" doc:"Colours per word"`
	Adjustment AdjustmentResponse `json:"adjustment" doc:"Applied adjustment"`
	Colors     []string           `json:"colors" doc:"Flattened palette, one colour per stripe"`
	Stats      palette.Stats      `json:"stats" doc:"Palette statistics"`
	Analysis   service.Analysis   `json:"analysis" doc:"Human-readable summary"`
}

// PaletteOutput wraps the palette response for Huma.
type PaletteOutput struct {
	Body PaletteResponse
}

func (s *Server) handleGeneratePalette(ctx context.Context, input *GeneratePaletteInput) (*PaletteOutput, error) {
	gen, err := s.flags.Palette(ctx, input.Body.toService())
	if err != nil {
		return nil, statusError(err)
	}
	return &PaletteOutput{Body: newPaletteResponse(gen)}, nil
}

func newPaletteResponse(gen *service.Generated) PaletteResponse {
	blocks := make([][]string, len(gen.Blocks))
	for i, b := range gen.Blocks {
		blocks[i] = palette.Palette(b).Strings()
	}

	return PaletteResponse{
		Name:     gen.Input,
		Encoding: string(gen.Encoding),
		Words:    gen.Words,
		Seed:     gen.Seed.String(),
		Filler:   gen.Filler,
		Blocks:   blocks,
		Adjustment: AdjustmentResponse{
			Kind:   string(gen.Adjustment.Kind),
			Amount: gen.Adjustment.Amount,
		},
		Colors:   gen.Palette.Strings(),
		Stats:    gen.Stats,
		Analysis: service.Analyze(gen.Stats, gen.Encoding, render.Stripes, render.Horizontal),
	}
}
