package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/nameflags/internal/config"
	"github.com/listenupapp/nameflags/internal/domain"
	domainerrors "github.com/listenupapp/nameflags/internal/errors"
	"github.com/listenupapp/nameflags/internal/palette"
	"github.com/listenupapp/nameflags/internal/render"
	"github.com/listenupapp/nameflags/internal/store"
)

var testLimits = config.RenderConfig{
	DefaultWidth:  60,
	DefaultHeight: 40,
	MaxWidth:      800,
	MaxHeight:     800,
	CacheTTL:      time.Minute,
}

func setupService(t *testing.T, limits config.RenderConfig) *FlagService {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return NewFlagService(s, slog.New(slog.DiscardHandler), limits)
}

func ptr[T any](v T) *T { return &v }

func assertCode(t *testing.T, err error, code domainerrors.Code) {
	t.Helper()
	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestPalette_Default(t *testing.T) {
	svc := setupService(t, testLimits)

	gen, err := svc.Palette(context.Background(), PaletteRequest{Name: "Nico"})
	require.NoError(t, err)

	assert.Equal(t, palette.CodePoint, gen.Encoding)
	assert.Equal(t, palette.Palette{"4e6963", "6f6dd9"}, gen.Palette)
	assert.Equal(t, "6dd91", gen.Filler)
	assert.Equal(t, 1, gen.Stats.WordCount)
	assert.Equal(t, palette.Medium, gen.Stats.Category)
}

func TestPalette_Adjustments(t *testing.T) {
	svc := setupService(t, testLimits)
	ctx := context.Background()

	tests := []struct {
		name string
		req  PaletteRequest
		want palette.Palette
	}{
		{"default amount", PaletteRequest{Name: "Nico", Adjustment: "brighten"}, palette.Palette{"6c8781", "8d8bf7"}},
		{"explicit amount", PaletteRequest{Name: "Nico", Adjustment: "Brighten", Amount: ptr(30.0)}, palette.Palette{"6c8781", "8d8bf7"}},
		{"zero amount is identity", PaletteRequest{Name: "Nico", Adjustment: "darken", Amount: ptr(0.0)}, palette.Palette{"4e6963", "6f6dd9"}},
		{"unit factor is identity", PaletteRequest{Name: "Nico", Adjustment: "saturate", Amount: ptr(1.0)}, palette.Palette{"4e6963", "6f6dd9"}},
		{"amount ignored without kind", PaletteRequest{Name: "Nico", Amount: ptr(50.0)}, palette.Palette{"4e6963", "6f6dd9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen, err := svc.Palette(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, gen.Palette)
		})
	}
}

func TestPalette_Encodings(t *testing.T) {
	svc := setupService(t, testLimits)

	gen, err := svc.Palette(context.Background(), PaletteRequest{Name: "織田 信長", Encoding: "utf-8"})
	require.NoError(t, err)
	assert.Equal(t, palette.ByteEncoded, gen.Encoding)
	assert.Equal(t, palette.Palette{"e7b994", "e794b0", "e4bfa1", "e995b7"}, gen.Palette)
}

func TestPalette_ValidationErrors(t *testing.T) {
	svc := setupService(t, testLimits)
	ctx := context.Background()

	tests := []struct {
		name string
		req  PaletteRequest
	}{
		{"empty name", PaletteRequest{}},
		{"whitespace only", PaletteRequest{Name: " \t "}},
		{"underscores only", PaletteRequest{Name: "___"}},
		{"unknown encoding", PaletteRequest{Name: "Nico", Encoding: "latin1"}},
		{"unknown adjustment", PaletteRequest{Name: "Nico", Adjustment: "invert"}},
		{"shift out of range", PaletteRequest{Name: "Nico", Adjustment: "brighten", Amount: ptr(150.0)}},
		{"fractional shift", PaletteRequest{Name: "Nico", Adjustment: "darken", Amount: ptr(2.5)}},
		{"negative factor", PaletteRequest{Name: "Nico", Adjustment: "saturate", Amount: ptr(-1.0)}},
		{"name too long", PaletteRequest{Name: strings.Repeat("a", 513)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Palette(ctx, tt.req)
			assertCode(t, err, domainerrors.CodeValidation)
		})
	}
}

func TestPalette_NameLimitCountsCharacters(t *testing.T) {
	svc := setupService(t, testLimits)

	gen, err := svc.Palette(context.Background(), PaletteRequest{Name: strings.Repeat("é", 512)})
	require.NoError(t, err)
	assert.Len(t, gen.Words, 1)
}

func TestPalette_EmptyInputKeepsCause(t *testing.T) {
	svc := setupService(t, testLimits)

	_, err := svc.Palette(context.Background(), PaletteRequest{Name: "   "})
	assert.ErrorIs(t, err, palette.ErrEmptyInput)
}

func TestRender_CachesResult(t *testing.T) {
	svc := setupService(t, testLimits)
	ctx := context.Background()
	req := RenderRequest{PaletteRequest: PaletteRequest{Name: "Nico"}}

	first, err := svc.Render(ctx, req)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.NotEmpty(t, first.PNG)
	assert.NotEmpty(t, first.BlurHash)
	assert.Len(t, first.ETag, 64)
	assert.Equal(t, "Nico_flag.png", first.Filename)
	assert.Equal(t, 60, first.Width)
	assert.Equal(t, 40, first.Height)

	second, err := svc.Render(ctx, req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.PNG, second.PNG)
	assert.Equal(t, first.ETag, second.ETag)
	assert.Equal(t, first.BlurHash, second.BlurHash)
}

func TestRender_CacheDisabled(t *testing.T) {
	limits := testLimits
	limits.CacheTTL = 0
	svc := setupService(t, limits)
	ctx := context.Background()
	req := RenderRequest{PaletteRequest: PaletteRequest{Name: "Nico"}}

	_, err := svc.Render(ctx, req)
	require.NoError(t, err)
	again, err := svc.Render(ctx, req)
	require.NoError(t, err)
	assert.False(t, again.Cached)
}

func TestRender_Caption(t *testing.T) {
	svc := setupService(t, testLimits)

	out, err := svc.Render(context.Background(), RenderRequest{
		PaletteRequest: PaletteRequest{Name: "Nico"},
		Width:          200,
		Height:         100,
		Caption:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, 200, out.Width)
	assert.Equal(t, 132, out.Height)
}

func TestRender_Errors(t *testing.T) {
	svc := setupService(t, testLimits)
	ctx := context.Background()

	tests := []struct {
		name string
		req  RenderRequest
	}{
		{"too wide", RenderRequest{PaletteRequest: PaletteRequest{Name: "Nico"}, Width: 801}},
		{"negative height", RenderRequest{PaletteRequest: PaletteRequest{Name: "Nico"}, Height: -1}},
		{"bad pattern", RenderRequest{PaletteRequest: PaletteRequest{Name: "Nico"}, Pattern: "spiral"}},
		{"bad orientation", RenderRequest{PaletteRequest: PaletteRequest{Name: "Nico"}, Orientation: "up"}},
		{"empty name", RenderRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Render(ctx, tt.req)
			assertCode(t, err, domainerrors.CodeValidation)
		})
	}
}

func TestSavedFlags_Lifecycle(t *testing.T) {
	svc := setupService(t, testLimits)
	ctx := context.Background()

	saved, err := svc.SaveFlag(ctx, RenderRequest{
		PaletteRequest: PaletteRequest{Name: "Leonhard_Euler", Adjustment: "darken", Amount: ptr(10.0)},
		Pattern:        "Checkerboard",
	})
	require.NoError(t, err)
	assert.Contains(t, saved.ID, "flag-")
	assert.Equal(t, render.Checkerboard, saved.Pattern)
	assert.Equal(t, render.Horizontal, saved.Orientation)
	assert.Equal(t, 60, saved.Width)
	assert.Equal(t, palette.AdjustDarken, saved.Adjustment)
	assert.Equal(t, 10.0, saved.Amount)
	assert.Len(t, saved.Colors, 5)

	got, err := svc.GetFlag(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Colors, got.Colors)

	img, err := svc.RenderFlag(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leonhard_Euler_flag.png", img.Filename)

	direct, err := svc.Render(ctx, RenderRequest{
		PaletteRequest: PaletteRequest{Name: "Leonhard_Euler", Adjustment: "darken", Amount: ptr(10.0)},
		Pattern:        "checkerboard",
	})
	require.NoError(t, err)
	assert.Equal(t, img.ETag, direct.ETag, "saved and ad-hoc renders of the same request share a cache entry")

	page, err := svc.ListFlags(ctx, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, saved.ID, page.Items[0].ID)

	require.NoError(t, svc.DeleteFlag(ctx, saved.ID))

	_, err = svc.GetFlag(ctx, saved.ID)
	assertCode(t, err, domainerrors.CodeNotFound)
	assertCode(t, svc.DeleteFlag(ctx, saved.ID), domainerrors.CodeNotFound)
	_, err = svc.RenderFlag(ctx, saved.ID)
	assertCode(t, err, domainerrors.CodeNotFound)
}

func TestListFlags_InvalidCursor(t *testing.T) {
	svc := setupService(t, testLimits)

	_, err := svc.ListFlags(context.Background(), 10, "%%%")
	assertCode(t, err, domainerrors.CodeValidation)
}

func TestExamples(t *testing.T) {
	svc := setupService(t, testLimits)

	examples, err := svc.Examples(context.Background())
	require.NoError(t, err)
	require.Len(t, examples, len(ExampleNames))

	assert.Equal(t, "Nico", examples[0].Name)
	assert.Equal(t, palette.Palette{"4e6963", "6f6dd9"}, examples[0].CodePoint.Palette)
	assert.Equal(t, palette.Palette{"557365", "723132", "335d4e"}, examples[3].CodePoint.Palette)
	assert.Equal(t, palette.Palette{"e29bb0", "efb88f", "f09f98", "b8e298", "95785b"}, examples[4].Bytes.Palette)
}

func TestGenerateExamples_MatchesService(t *testing.T) {
	svc := setupService(t, testLimits)
	ctx := context.Background()

	direct, err := GenerateExamples(ctx)
	require.NoError(t, err)
	viaService, err := svc.Examples(ctx)
	require.NoError(t, err)

	require.Len(t, direct, len(ExampleNames))
	for i := range direct {
		assert.Equal(t, direct[i].Name, viaService[i].Name)
		assert.Equal(t, direct[i].CodePoint.Palette, viaService[i].CodePoint.Palette)
		assert.Equal(t, direct[i].Bytes.Palette, viaService[i].Bytes.Palette)
	}
}

func TestGenerateExamples_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := GenerateExamples(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCacheKey_DistinguishesRequests(t *testing.T) {
	base := palette.Options{Encoding: palette.CodePoint}
	ropts := render.Options{Pattern: render.Stripes, Orientation: render.Horizontal, Width: 600, Height: 400}

	key := func(name string, popts palette.Options, ropts render.Options) string {
		t.Helper()
		k, err := cacheKey(name, popts, ropts)
		require.NoError(t, err)
		return k
	}

	k := key("Nico", base, ropts)
	assert.Equal(t, k, key("Nico", base, ropts))

	vertical := ropts
	vertical.Orientation = render.Vertical
	bytes := base
	bytes.Encoding = palette.ByteEncoded

	assert.NotEqual(t, k, key("Nico ", base, ropts))
	assert.NotEqual(t, k, key("Nico", bytes, ropts))
	assert.NotEqual(t, k, key("Nico", base, vertical))

	// Field text that looks like a separator must not move field boundaries.
	sep := "\x00unicode\x00none\x000\x00stripes\x00horizontal\x00600\x00400\x00"
	captioned := ropts
	captioned.Caption = "c" + sep
	assert.NotEqual(t, key("x", base, captioned), key("x"+sep+"c", base, ropts))
}

func TestRender_NULNamesDoNotShareCacheEntries(t *testing.T) {
	svc := setupService(t, testLimits)
	ctx := context.Background()

	sep := "\x00unicode\x00none\x000\x00stripes\x00horizontal\x0060\x0040\x00"
	captionedName := "Zed" + sep
	plainName := captionedName + sep + domain.CaptionFor("Zed")

	captioned, err := svc.Render(ctx, RenderRequest{
		PaletteRequest: PaletteRequest{Name: captionedName},
		Caption:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, 72, captioned.Height)

	plain, err := svc.Render(ctx, RenderRequest{PaletteRequest: PaletteRequest{Name: plainName}})
	require.NoError(t, err)
	assert.False(t, plain.Cached)
	assert.NotEqual(t, captioned.ETag, plain.ETag)
	assert.Equal(t, 40, plain.Height)
}

func TestAnalyze(t *testing.T) {
	stats := palette.ComputeStats(1, palette.Palette{"4e6963", "6f6dd9"})
	a := Analyze(stats, palette.CodePoint, render.Stripes, render.Horizontal)

	assert.Equal(t, "1 word(s)", a.GeneratedFrom)
	assert.Equal(t, "2 stripes", a.TotalColors)
	assert.Equal(t, "119.8/255", a.AverageBrightness)
	assert.Equal(t, "Medium", a.Category)
	assert.Equal(t, "Unicode", a.Encoding)
	assert.Equal(t, "Stripes with Horizontal orientation", a.Pattern)
	assert.Contains(t, a.String(), "Average brightness: 119.8/255 (Medium)\n")

	assert.Equal(t, "Diagonal", Analyze(stats, palette.ByteEncoded, render.Diagonal, "").Pattern)
}
