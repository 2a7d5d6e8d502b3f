package cache

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) statusOp() huma.Operation {
	return huma.Operation{
		OperationID: "cache-status",
		Method:      http.MethodGet,
		Path:        "/api/v1/cache",
		Summary:     "Cache status",
		Description: "Returns the current cache version and the cached asset paths",
		Tags:        []string{"cache"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) refreshOp() huma.Operation {
	return huma.Operation{
		OperationID:   "cache-refresh",
		Method:        http.MethodPost,
		Path:          "/api/v1/cache/refresh",
		Summary:       "Reinstall the cache",
		Description:   "Fetches every asset again, then deletes caches of other versions",
		Tags:          []string{"cache"},
		DefaultStatus: http.StatusOK,
		Middlewares:   h.middleware,
	}
}
