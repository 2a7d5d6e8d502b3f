package cache

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"noteshare/internal/infrastructure/assetcache"
)

// Manager is the part of assetcache.Manager the API needs.
type Manager interface {
	Install(ctx context.Context) error
	Activate() []string
	Status() assetcache.Status
}

type Handler struct {
	manager    Manager
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(manager Manager, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		manager:    manager,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.statusOp(), h.status)
	huma.Register(api, h.refreshOp(), h.refresh)
}

func (h *Handler) status(_ context.Context, _ *StatusInput) (*StatusOutput, error) {
	return &StatusOutput{Body: h.manager.Status()}, nil
}

func (h *Handler) refresh(ctx context.Context, _ *RefreshInput) (*RefreshOutput, error) {
	if err := h.manager.Install(ctx); err != nil {
		h.log.Error("cache refresh failed", "error", err)
		return nil, huma.Error502BadGateway("failed to fetch assets from origin", err)
	}

	deleted := h.manager.Activate()
	if deleted == nil {
		deleted = []string{}
	}

	return &RefreshOutput{Body: RefreshResponse{
		Status:  h.manager.Status(),
		Deleted: deleted,
	}}, nil
}
