package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerExampleRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listExamples",
		Method:      http.MethodGet,
		Path:        "/api/v1/examples",
		Summary:     "List examples",
		Description: "Sample names with their palettes in both encodings",
		Tags:        []string{"Palettes"},
	}, s.handleListExamples)
}

// ExampleResponse is one sample name.
type ExampleResponse struct {
	Name      string          `json:"name" doc:"Sample input"`
	Unicode   PaletteResponse `json:"unicode" doc:"Palette using code point encoding"`
	UTF8      PaletteResponse `json:"utf8" doc:"Palette using UTF-8 byte encoding"`
	ImagePath string          `json:"image_path" doc:"Relative URL of the default flag image"`
}

// ListExamplesOutput wraps the examples for Huma.
type ListExamplesOutput struct {
	Body struct {
		Examples []ExampleResponse `json:"examples" doc:"Sample names"`
	}
}

func (s *Server) handleListExamples(ctx context.Context, _ *struct{}) (*ListExamplesOutput, error) {
	examples, err := s.flags.Examples(ctx)
	if err != nil {
		return nil, statusError(err)
	}

	resp := &ListExamplesOutput{}
	resp.Body.Examples = make([]ExampleResponse, 0, len(examples))
	for _, ex := range examples {
		resp.Body.Examples = append(resp.Body.Examples, ExampleResponse{
			Name:      ex.Name,
			Unicode:   newPaletteResponse(ex.CodePoint),
			UTF8:      newPaletteResponse(ex.Bytes),
			ImagePath: imagePath(ex.Name),
		})
	}
	return resp, nil
}
