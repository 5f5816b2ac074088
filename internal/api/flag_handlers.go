package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/listenupapp/nameflags/internal/domain"
	"github.com/listenupapp/nameflags/internal/palette"
	"github.com/listenupapp/nameflags/internal/service"
)

func (s *Server) registerFlagRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID:   "saveFlag",
		Method:        http.MethodPost,
		Path:          "/api/v1/flags",
		Summary:       "Save flag",
		Description:   "Stores a flag request under a shareable ID",
		Tags:          []string{"Flags"},
		DefaultStatus: http.StatusCreated,
	}, s.handleSaveFlag)

	huma.Register(s.api, huma.Operation{
		OperationID: "listFlags",
		Method:      http.MethodGet,
		Path:        "/api/v1/flags",
		Summary:     "List flags",
		Description: "Returns saved flags, newest first",
		Tags:        []string{"Flags"},
	}, s.handleListFlags)

	huma.Register(s.api, huma.Operation{
		OperationID: "getFlag",
		Method:      http.MethodGet,
		Path:        "/api/v1/flags/{id}",
		Summary:     "Get flag",
		Description: "Returns a saved flag with its palette and statistics",
		Tags:        []string{"Flags"},
	}, s.handleGetFlag)

	huma.Register(s.api, huma.Operation{
		OperationID: "getFlagImage",
		Method:      http.MethodGet,
		Path:        "/api/v1/flags/{id}/image",
		Summary:     "Render saved flag",
		Description: "Renders a saved flag as a PNG image",
		Tags:        []string{"Images"},
		Middlewares: huma.Middlewares{s.rateLimitRenders},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Flag image",
				Content:     map[string]*huma.MediaType{"image/png": {}},
			},
			"304": {Description: "Not modified"},
		},
	}, s.handleGetFlagImage)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteFlag",
		Method:      http.MethodDelete,
		Path:        "/api/v1/flags/{id}",
		Summary:     "Delete flag",
		Description: "Deletes a saved flag",
		Tags:        []string{"Flags"},
	}, s.handleDeleteFlag)
}

// SaveFlagRequest is a render request to persist.
type SaveFlagRequest struct {
	PaletteRequest
	Pattern     string `json:"pattern,omitempty" doc:"stripes (default), checkerboard or diagonal"`
	Orientation string `json:"orientation,omitempty" doc:"horizontal (default) or vertical"`
	Width       int    `json:"width,omitempty" minimum:"0" doc:"Image width in pixels"`
	Height      int    `json:"height,omitempty" minimum:"0" doc:"Image height in pixels"`
	Caption     bool   `json:"caption,omitempty" doc:"Draw a caption band"`
}

// SaveFlagInput wraps the save request for Huma.
type SaveFlagInput struct {
	Body SaveFlagRequest
}

// FlagResponse is a saved flag in API responses.
type FlagResponse struct {
	ID          string           `json:"id" doc:"Flag ID"`
	Name        string           `json:"name" doc:"Input name"`
	Encoding    string           `json:"encoding" doc:"Encoding"`
	Adjustment  string           `json:"adjustment" doc:"Adjustment kind"`
	Amount      float64          `json:"amount" doc:"Adjustment amount"`
	Pattern     string           `json:"pattern" doc:"Pattern"`
	Orientation string           `json:"orientation" doc:"Stripe orientation"`
	Width       int              `json:"width" doc:"Image width"`
	Height      int              `json:"height" doc:"Image height"`
	Caption     bool             `json:"caption" doc:"Whether the image has a caption band"`
	Colors      []string         `json:"colors" doc:"Palette"`
	Stats       palette.Stats    `json:"stats" doc:"Palette statistics"`
	Analysis    service.Analysis `json:"analysis" doc:"Human-readable summary"`
	ImagePath   string           `json:"image_path" doc:"Relative URL of the flag image"`
	CreatedAt   time.Time        `json:"created_at" doc:"Creation time"`
}

func newFlagResponse(f *domain.Flag) FlagResponse {
	return FlagResponse{
		ID:          f.ID,
		Name:        f.Name,
		Encoding:    string(f.Encoding),
		Adjustment:  string(f.Adjustment),
		Amount:      f.Amount,
		Pattern:     string(f.Pattern),
		Orientation: string(f.Orientation),
		Width:       f.Width,
		Height:      f.Height,
		Caption:     f.Caption,
		Colors:      f.Colors.Strings(),
		Stats:       f.Stats,
		Analysis:    service.Analyze(f.Stats, f.Encoding, f.Pattern, f.Orientation),
		ImagePath:   "/api/v1/flags/" + f.ID + "/image",
		CreatedAt:   f.CreatedAt,
	}
}

// FlagOutput wraps a saved flag for Huma.
type FlagOutput struct {
	Body FlagResponse
}

func (s *Server) handleSaveFlag(ctx context.Context, input *SaveFlagInput) (*FlagOutput, error) {
	req := input.Body
	flag, err := s.flags.SaveFlag(ctx, service.RenderRequest{
		PaletteRequest: req.toService(),
		Pattern:        req.Pattern,
		Orientation:    req.Orientation,
		Width:          req.Width,
		Height:         req.Height,
		Caption:        req.Caption,
	})
	if err != nil {
		return nil, statusError(err)
	}
	return &FlagOutput{Body: newFlagResponse(flag)}, nil
}

// ListFlagsInput contains parameters for listing flags.
type ListFlagsInput struct {
	Limit  int    `query:"limit" minimum:"0" maximum:"100" doc:"Page size (default 20)"`
	Cursor string `query:"cursor" doc:"Cursor from a previous page"`
}

// ListFlagsOutput contains a page of saved flags.
type ListFlagsOutput struct {
	Body struct {
		Flags      []FlagResponse `json:"flags" doc:"Saved flags"`
		NextCursor string         `json:"next_cursor,omitempty" doc:"Cursor for the next page"`
		HasMore    bool           `json:"has_more" doc:"Whether more flags exist"`
	}
}

func (s *Server) handleListFlags(ctx context.Context, input *ListFlagsInput) (*ListFlagsOutput, error) {
	page, err := s.flags.ListFlags(ctx, input.Limit, input.Cursor)
	if err != nil {
		return nil, statusError(err)
	}

	resp := &ListFlagsOutput{}
	resp.Body.Flags = make([]FlagResponse, 0, len(page.Items))
	for _, f := range page.Items {
		resp.Body.Flags = append(resp.Body.Flags, newFlagResponse(f))
	}
	resp.Body.NextCursor = page.NextCursor
	resp.Body.HasMore = page.HasMore
	return resp, nil
}

// FlagIDInput identifies a saved flag.
type FlagIDInput struct {
	ID string `path:"id" doc:"Flag ID"`
}

func (s *Server) handleGetFlag(ctx context.Context, input *FlagIDInput) (*FlagOutput, error) {
	flag, err := s.flags.GetFlag(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return &FlagOutput{Body: newFlagResponse(flag)}, nil
}

// FlagImageByIDInput identifies a saved flag image.
type FlagImageByIDInput struct {
	ID          string `path:"id" doc:"Flag ID"`
	IfNoneMatch string `header:"If-None-Match" doc:"ETag from a previous response"`
}

func (s *Server) handleGetFlagImage(ctx context.Context, input *FlagImageByIDInput) (*huma.StreamResponse, error) {
	img, err := s.flags.RenderFlag(ctx, input.ID)
	if err != nil {
		return nil, statusError(err)
	}
	return imageResponse(img, input.IfNoneMatch), nil
}

// DeleteFlagOutput confirms a deletion.
type DeleteFlagOutput struct {
	Body struct {
		Message string `json:"message" doc:"Success message"`
	}
}

func (s *Server) handleDeleteFlag(ctx context.Context, input *FlagIDInput) (*DeleteFlagOutput, error) {
	if err := s.flags.DeleteFlag(ctx, input.ID); err != nil {
		return nil, statusError(err)
	}
	resp := &DeleteFlagOutput{}
	resp.Body.Message = "Flag deleted"
	return resp, nil
}
