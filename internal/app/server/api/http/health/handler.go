package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"noteshare/internal/infrastructure/assetcache"
)

// StatusProvider reports the state of the asset cache.
type StatusProvider interface {
	Status() assetcache.Status
}

type Handler struct {
	cache      StatusProvider
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(cache StatusProvider, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		cache:      cache,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

// healthCheck reports DEGRADED while the cache is not installed; misses are
// still served from the origin.
func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	st := h.cache.Status()
	status := "OK"
	if !st.Installed {
		status = "DEGRADED"
	}

	return &Output{
		Body: Response{
			Status:    status,
			Cache:     st.Name,
			Installed: st.Installed,
		},
	}, nil
}
