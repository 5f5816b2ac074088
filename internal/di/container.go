// Package di provides dependency injection configuration for the nameflags server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/nameflags/internal/config"
	"github.com/listenupapp/nameflags/internal/di/providers"
	"github.com/listenupapp/nameflags/internal/logger"
	"github.com/listenupapp/nameflags/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideFlagService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services. Providers are lazy, so anything not
// invoked here would only start on first use.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*service.FlagService](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
