package providers

import (
	"context"
	"testing"
	"time"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listenupapp/nameflags/internal/config"
	"github.com/listenupapp/nameflags/internal/service"
	"github.com/listenupapp/nameflags/internal/store"
)

func testInjector(t *testing.T) *do.RootScope {
	t.Helper()

	injector := do.New()
	do.ProvideValue(injector, &config.Config{
		App:     config.AppConfig{Environment: "development"},
		Logger:  config.LoggerConfig{Level: "error"},
		Storage: config.StorageConfig{DataPath: t.TempDir()},
		Render: config.RenderConfig{
			DefaultWidth:  60,
			DefaultHeight: 40,
			MaxWidth:      400,
			MaxHeight:     400,
			CacheTTL:      time.Minute,
		},
	})
	do.Provide(injector, ProvideLogger)
	do.Provide(injector, ProvideStore)
	do.Provide(injector, ProvideFlagService)

	return injector
}

func TestProvideFlagService(t *testing.T) {
	injector := testInjector(t)
	defer injector.Shutdown()

	svc := do.MustInvoke[*service.FlagService](injector)

	gen, err := svc.Palette(context.Background(), service.PaletteRequest{Name: "Nico"})
	require.NoError(t, err)
	assert.Len(t, gen.Palette, 2)
}

func TestStoreHandle_ClosedOnShutdown(t *testing.T) {
	injector := testInjector(t)

	handle := do.MustInvoke[*StoreHandle](injector)
	require.NoError(t, handle.Ping(context.Background()))

	injector.Shutdown()

	assert.ErrorIs(t, handle.Ping(context.Background()), store.ErrClosed)
}
