package status

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) statusOp() huma.Operation {
	return huma.Operation{
		OperationID: "service-status",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service status",
		Description: "Returns a status line confirming the API is up",
		Tags:        []string{"status"},
		Middlewares: h.middleware,
	}
}
