package todo

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-list",
		Method:      http.MethodGet,
		Path:        "/api/todos",
		Summary:     "List the caller's todos",
		Tags:        []string{"todos"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "todos-create",
		Method:        http.MethodPost,
		Path:          "/api/todos",
		Summary:       "Create a todo",
		Tags:          []string{"todos"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-update",
		Method:      http.MethodPut,
		Path:        "/api/todos/{id}",
		Summary:     "Update a todo",
		Tags:        []string{"todos"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "todos-delete",
		Method:      http.MethodDelete,
		Path:        "/api/todos/{id}",
		Summary:     "Delete a todo",
		Tags:        []string{"todos"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
