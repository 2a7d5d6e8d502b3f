// Сервер офлайн-кэша:
// GET  /api/v1/health         # Состояние сервиса и кэша
// GET  /api/v1/cache          # Версия кэша и список закэшированных путей
// POST /api/v1/cache/refresh  # Переустановить кэш и удалить старые версии
// GET  /*                     # Ассеты: сначала кэш, затем origin

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"

	cacheAPI "noteshare/internal/app/server/api/http/cache"
	healthAPI "noteshare/internal/app/server/api/http/health"
	"noteshare/internal/app/server/api/http/middleware/logger"
	"noteshare/internal/infrastructure/assetcache"
)

type Handlers struct {
	Health *healthAPI.Handler
	Cache  *cacheAPI.Handler
}

// New создает *chi.Mux: API через huma.Register, остальные пути отдает кэш
func New(manager *assetcache.Manager, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(middleware.RequestID, middleware.Recoverer)

	config := huma.DefaultConfig("Noteshare asset cache", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(manager, log)
	h.Health.SetupRoutes(API)
	h.Cache.SetupRoutes(API)

	loggerMW := logger.New(log)
	mux.Handle("/*", loggerMW.Handler(manager))

	return mux
}

func handlers(manager *assetcache.Manager, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := huma.Middlewares{loggerMW.Middleware()}

	return &Handlers{
		Health: healthAPI.NewHandler(manager, log, middlewares),
		Cache:  cacheAPI.NewHandler(manager, log, middlewares),
	}
}
