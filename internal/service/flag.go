// Package service orchestrates the palette pipeline, rendering and storage.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/listenupapp/nameflags/internal/config"
	"github.com/listenupapp/nameflags/internal/domain"
	domainerrors "github.com/listenupapp/nameflags/internal/errors"
	"github.com/listenupapp/nameflags/internal/id"
	"github.com/listenupapp/nameflags/internal/palette"
	"github.com/listenupapp/nameflags/internal/render"
	"github.com/listenupapp/nameflags/internal/store"
	"github.com/listenupapp/nameflags/internal/validation"
)

// FlagService turns names into palettes and images, and manages saved flags.
type FlagService struct {
	store     *store.Store
	logger    *slog.Logger
	validator *validation.Validator
	limits    config.RenderConfig
	now       func() time.Time
}

// NewFlagService creates a new flag service.
func NewFlagService(store *store.Store, logger *slog.Logger, limits config.RenderConfig) *FlagService {
	return &FlagService{
		store:     store,
		logger:    logger,
		validator: validation.New(),
		limits:    limits,
		now:       time.Now,
	}
}

// PaletteRequest selects the input and how it is turned into colours.
type PaletteRequest struct {
	Name       string `json:"name" validate:"required,max=512"`
	Encoding   string `json:"encoding" validate:"omitempty,flag_encoding"`
	Adjustment string `json:"adjustment" validate:"omitempty,flag_adjustment"`
	// Amount defaults to the adjustment's default when nil.
	Amount *float64 `json:"amount,omitempty"`
}

// RenderRequest adds the image layout to a PaletteRequest.
type RenderRequest struct {
	PaletteRequest
	Pattern     string `json:"pattern" validate:"omitempty,flag_pattern"`
	Orientation string `json:"orientation" validate:"omitempty,flag_orientation"`
	Width       int    `json:"width" validate:"gte=0"`
	Height      int    `json:"height" validate:"gte=0"`
	Caption     bool   `json:"caption"`
}

// Generated is a palette with its summary.
type Generated struct {
	*palette.Result
	Stats palette.Stats
}

// Rendered is an encoded flag image.
type Rendered struct {
	PNG      []byte
	Width    int
	Height   int
	BlurHash string
	// ETag identifies the exact request that produced the image.
	ETag     string
	Filename string
	Cached   bool
}

// Palette runs the pipeline for req.
func (s *FlagService) Palette(ctx context.Context, req PaletteRequest) (*Generated, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	opts, err := paletteOptions(req)
	if err != nil {
		return nil, err
	}
	return s.generate(req.Name, opts)
}

func (s *FlagService) generate(name string, opts palette.Options) (*Generated, error) {
	result, err := palette.Generate(name, opts)
	if err != nil {
		return nil, s.mapError(err, "generate palette")
	}

	s.logger.Debug("palette generated",
		"encoding", opts.Encoding,
		"adjustment", opts.Adjustment.Kind,
		"words", len(result.Words),
		"colors", len(result.Palette),
	)
	return &Generated{Result: result, Stats: result.Stats()}, nil
}

// Render draws the flag for req, serving it from the render cache when possible.
func (s *FlagService) Render(ctx context.Context, req RenderRequest) (*Rendered, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	popts, err := paletteOptions(req.PaletteRequest)
	if err != nil {
		return nil, err
	}
	ropts, err := s.renderOptions(req)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, req.Name, popts, ropts)
}

func (s *FlagService) render(ctx context.Context, name string, popts palette.Options, ropts render.Options) (*Rendered, error) {
	key, err := cacheKey(name, popts, ropts)
	if err != nil {
		return nil, s.mapError(err, "render flag")
	}
	out := &Rendered{ETag: key, Filename: render.Filename(name)}

	if s.limits.CacheTTL > 0 {
		cached, err := s.store.GetRender(ctx, key)
		switch {
		case err == nil:
			out.PNG, out.Width, out.Height, out.BlurHash = cached.PNG, cached.Width, cached.Height, cached.BlurHash
			out.Cached = true
			return out, nil
		case !errors.Is(err, store.ErrNotFound):
			s.logger.Warn("render cache read failed", "key", key, "error", err)
		}
	}

	gen, err := s.generate(name, popts)
	if err != nil {
		return nil, err
	}

	img, err := render.Render(gen.Palette, ropts)
	if err != nil {
		return nil, s.mapError(err, "render flag")
	}
	out.PNG, out.Width, out.Height, out.BlurHash = img.PNG, img.Width, img.Height, img.BlurHash

	if s.limits.CacheTTL > 0 {
		entry := &store.CachedRender{PNG: img.PNG, Width: img.Width, Height: img.Height, BlurHash: img.BlurHash}
		if err := s.store.PutRender(ctx, key, entry, s.limits.CacheTTL); err != nil {
			s.logger.Warn("render cache write failed", "key", key, "error", err)
		}
	}

	s.logger.Info("flag rendered",
		"pattern", ropts.Pattern,
		"width", img.Width,
		"height", img.Height,
		"bytes", len(img.PNG),
	)
	return out, nil
}

// SaveFlag stores req under a new ID.
func (s *FlagService) SaveFlag(ctx context.Context, req RenderRequest) (*domain.Flag, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	popts, err := paletteOptions(req.PaletteRequest)
	if err != nil {
		return nil, err
	}
	ropts, err := s.renderOptions(req)
	if err != nil {
		return nil, err
	}

	gen, err := s.generate(req.Name, popts)
	if err != nil {
		return nil, err
	}

	flagID, err := id.NewFlagID()
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to generate flag id")
	}

	flag := &domain.Flag{
		ID:          flagID,
		Name:        req.Name,
		Encoding:    popts.Encoding,
		Adjustment:  popts.Adjustment.Kind,
		Amount:      popts.Adjustment.Amount,
		Pattern:     ropts.Pattern,
		Orientation: ropts.Orientation,
		Width:       ropts.Width,
		Height:      ropts.Height,
		Caption:     req.Caption,
		Colors:      gen.Palette,
		Stats:       gen.Stats,
		CreatedAt:   s.now(),
	}

	if err := s.store.CreateFlag(ctx, flag); err != nil {
		return nil, s.mapError(err, "save flag")
	}

	s.logger.Info("flag saved", "id", flag.ID, "colors", len(flag.Colors))
	return flag, nil
}

// GetFlag returns a saved flag.
func (s *FlagService) GetFlag(ctx context.Context, flagID string) (*domain.Flag, error) {
	flag, err := s.store.GetFlag(ctx, flagID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFoundf("flag %s not found", flagID)
		}
		return nil, s.mapError(err, "get flag")
	}
	return flag, nil
}

// ListFlags returns saved flags, newest first.
func (s *FlagService) ListFlags(ctx context.Context, limit int, cursor string) (*store.PaginatedResult[*domain.Flag], error) {
	page, err := s.store.ListFlags(ctx, store.PaginationParams{Limit: limit, Cursor: cursor})
	if err != nil {
		return nil, s.mapError(err, "list flags")
	}
	return page, nil
}

// DeleteFlag removes a saved flag.
func (s *FlagService) DeleteFlag(ctx context.Context, flagID string) error {
	if err := s.store.DeleteFlag(ctx, flagID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFoundf("flag %s not found", flagID)
		}
		return s.mapError(err, "delete flag")
	}
	s.logger.Info("flag deleted", "id", flagID)
	return nil
}

// RenderFlag draws a saved flag with its stored layout.
func (s *FlagService) RenderFlag(ctx context.Context, flagID string) (*Rendered, error) {
	flag, err := s.GetFlag(ctx, flagID)
	if err != nil {
		return nil, err
	}

	popts := palette.Options{Encoding: flag.Encoding, Adjustment: flag.AdjustmentSpec()}
	return s.render(ctx, flag.Name, popts, flag.RenderOptions())
}

// paletteOptions resolves names, aliases and the default amount.
func paletteOptions(req PaletteRequest) (palette.Options, error) {
	enc := palette.CodePoint
	if req.Encoding != "" {
		var err error
		if enc, err = palette.ParseEncoding(req.Encoding); err != nil {
			return palette.Options{}, domainerrors.Wrap(err, domainerrors.CodeValidation, "invalid encoding")
		}
	}

	kind, err := palette.ParseAdjustmentKind(req.Adjustment)
	if err != nil {
		return palette.Options{}, domainerrors.Wrap(err, domainerrors.CodeValidation, "invalid adjustment")
	}

	adj := palette.Adjustment{Kind: kind, Amount: kind.DefaultAmount()}
	if req.Amount != nil && kind != palette.AdjustNone {
		adj.Amount = *req.Amount
	}
	if err := adj.Validate(); err != nil {
		return palette.Options{}, domainerrors.Wrap(err, domainerrors.CodeValidation, "invalid adjustment")
	}

	return palette.Options{Encoding: enc, Adjustment: adj}, nil
}

// renderOptions applies configured defaults and bounds.
func (s *FlagService) renderOptions(req RenderRequest) (render.Options, error) {
	pattern, err := render.ParsePattern(req.Pattern)
	if err != nil {
		return render.Options{}, domainerrors.Wrap(err, domainerrors.CodeValidation, "invalid pattern")
	}
	orientation, err := render.ParseOrientation(req.Orientation)
	if err != nil {
		return render.Options{}, domainerrors.Wrap(err, domainerrors.CodeValidation, "invalid orientation")
	}

	opts := render.Options{
		Pattern:     pattern,
		Orientation: orientation,
		Width:       req.Width,
		Height:      req.Height,
	}
	if opts.Width == 0 {
		opts.Width = s.limits.DefaultWidth
	}
	if opts.Height == 0 {
		opts.Height = s.limits.DefaultHeight
	}
	if opts.Width > s.limits.MaxWidth || opts.Height > s.limits.MaxHeight {
		return render.Options{}, domainerrors.Validationf("image size %dx%d exceeds maximum %dx%d",
			opts.Width, opts.Height, s.limits.MaxWidth, s.limits.MaxHeight)
	}
	if req.Caption {
		opts.Caption = domain.CaptionFor(req.Name)
	}
	return opts, nil
}

// renderKey is the canonical form of a render request. Fields are encoded
// as JSON so free text in the name or caption cannot shift field boundaries.
type renderKey struct {
	Name        string  `json:"name"`
	Encoding    string  `json:"encoding"`
	Adjustment  string  `json:"adjustment"`
	Amount      float64 `json:"amount"`
	Pattern     string  `json:"pattern"`
	Orientation string  `json:"orientation"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Caption     string  `json:"caption"`
}

// cacheKey hashes the canonical form of a render request.
func cacheKey(name string, popts palette.Options, ropts render.Options) (string, error) {
	canonical, err := json.Marshal(renderKey{
		Name:        name,
		Encoding:    string(popts.Encoding),
		Adjustment:  string(popts.Adjustment.Kind),
		Amount:      popts.Adjustment.Amount,
		Pattern:     string(ropts.Pattern),
		Orientation: string(ropts.Orientation),
		Width:       ropts.Width,
		Height:      ropts.Height,
		Caption:     ropts.Caption,
	})
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// mapError converts core and storage errors into domain errors. Malformed
// colour blocks mean the pipeline itself is broken, so they are logged.
func (s *FlagService) mapError(err error, op string) error {
	var domainErr *domainerrors.Error
	switch {
	case errors.As(err, &domainErr):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, palette.ErrEmptyInput):
		return domainerrors.Wrap(err, domainerrors.CodeValidation, "name has no encodable characters")
	case errors.Is(err, palette.ErrInvalidEncoding),
		errors.Is(err, palette.ErrInvalidAdjustment),
		errors.Is(err, render.ErrInvalidPattern),
		errors.Is(err, render.ErrInvalidOrientation),
		errors.Is(err, render.ErrInvalidSize):
		return domainerrors.Wrap(err, domainerrors.CodeValidation, err.Error())
	case errors.Is(err, store.ErrNotFound):
		return domainerrors.Wrap(err, domainerrors.CodeNotFound, "not found")
	case errors.Is(err, store.ErrInvalidCursor):
		return domainerrors.Wrap(err, domainerrors.CodeValidation, "invalid cursor")
	default:
		s.logger.Error("flag operation failed", "op", op, "error", err)
		return domainerrors.Wrap(err, domainerrors.CodeInternal, fmt.Sprintf("failed to %s", op))
	}
}
