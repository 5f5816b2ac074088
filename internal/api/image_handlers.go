package api

import (
	"context"
	"math"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	domainerrors "github.com/listenupapp/nameflags/internal/errors"
	"github.com/listenupapp/nameflags/internal/service"
)

func (s *Server) registerImageRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "renderFlagImage",
		Method:      http.MethodGet,
		Path:        "/api/v1/flags/image",
		Summary:     "Render flag",
		Description: "Renders the flag for a name as a PNG image",
		Tags:        []string{"Images"},
		Middlewares: huma.Middlewares{s.rateLimitRenders},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Flag image",
				Content:     map[string]*huma.MediaType{"image/png": {}},
			},
			"304": {Description: "Not modified"},
		},
	}, s.handleRenderFlagImage)
}

// FlagImageInput describes an ad-hoc render.
type FlagImageInput struct {
	Name        string `query:"name" required:"true" minLength:"1" maxLength:"512" doc:"Name to encode"`
	Encoding    string `query:"encoding" doc:"unicode (default) or utf-8"`
	Adjustment  string `query:"adjustment" doc:"none, brighten, darken or saturate"`
	Amount      string `query:"amount" doc:"Adjustment amount"`
	Pattern     string `query:"pattern" doc:"stripes (default), checkerboard or diagonal"`
	Orientation string `query:"orientation" doc:"horizontal (default) or vertical; stripes only"`
	Width       int    `query:"width" minimum:"0" doc:"Image width in pixels"`
	Height      int    `query:"height" minimum:"0" doc:"Image height in pixels, excluding the caption band"`
	Caption     bool   `query:"caption" doc:"Draw a 'Flag for: <name>' caption above the flag"`
	IfNoneMatch string `header:"If-None-Match" doc:"ETag from a previous response"`
}

func (s *Server) handleRenderFlagImage(ctx context.Context, input *FlagImageInput) (*huma.StreamResponse, error) {
	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, statusError(err)
	}

	img, err := s.flags.Render(ctx, service.RenderRequest{
		PaletteRequest: service.PaletteRequest{
			Name:       input.Name,
			Encoding:   input.Encoding,
			Adjustment: input.Adjustment,
			Amount:     amount,
		},
		Pattern:     input.Pattern,
		Orientation: input.Orientation,
		Width:       input.Width,
		Height:      input.Height,
		Caption:     input.Caption,
	})
	if err != nil {
		return nil, statusError(err)
	}

	return imageResponse(img, input.IfNoneMatch), nil
}

// parseAmount returns nil for an empty value so the adjustment default applies.
func parseAmount(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, domainerrors.Validationf("amount %q is not a number", raw)
	}
	return &v, nil
}

func imageResponse(img *service.Rendered, ifNoneMatch string) *huma.StreamResponse {
	etag := `"` + img.ETag + `"`

	return &huma.StreamResponse{
		Body: func(ctx huma.Context) {
			ctx.SetHeader("ETag", etag)
			ctx.SetHeader("Cache-Control", "public, max-age=86400")

			if etagMatches(ifNoneMatch, etag) {
				ctx.SetStatus(http.StatusNotModified)
				return
			}

			cache := "miss"
			if img.Cached {
				cache = "hit"
			}

			ctx.SetHeader("Content-Type", "image/png")
			ctx.SetHeader("Content-Length", strconv.Itoa(len(img.PNG)))
			ctx.SetHeader("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": img.Filename}))
			ctx.SetHeader("X-BlurHash", img.BlurHash)
			ctx.SetHeader("X-Render-Cache", cache)
			ctx.SetStatus(http.StatusOK)
			_, _ = ctx.BodyWriter().Write(img.PNG)
		},
	}
}

// etagMatches implements the weak comparison used by If-None-Match.
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for candidate := range strings.SplitSeq(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

func imagePath(name string) string {
	return "/api/v1/flags/image?" + url.Values{"name": {name}}.Encode()
}
