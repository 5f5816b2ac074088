package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/nameflags/internal/config"
	"github.com/listenupapp/nameflags/internal/logger"
	"github.com/listenupapp/nameflags/internal/service"
)

// ProvideFlagService provides the flag service.
func ProvideFlagService(i do.Injector) (*service.FlagService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return service.NewFlagService(storeHandle.Store, log.Logger, cfg.Render), nil
}
