package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Service and asset cache health",
		Description: "Returns OK when the current cache version is installed and DEGRADED otherwise. A degraded server still proxies every request to the asset origin.",
		Tags:        []string{"health"},
		Middlewares: h.middleware,
	}
}
