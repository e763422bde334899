package note

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-list",
		Method:      http.MethodGet,
		Path:        "/api/notes",
		Summary:     "List the caller's notes",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-search",
		Method:      http.MethodGet,
		Path:        "/api/notes/search",
		Summary:     "Search the caller's notes",
		Description: "Free-text search over title and content, ranked by relevance",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-get",
		Method:      http.MethodGet,
		Path:        "/api/notes/{id}",
		Summary:     "Get a note",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "notes-create",
		Method:        http.MethodPost,
		Path:          "/api/notes",
		Summary:       "Create a note",
		Tags:          []string{"notes"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-update",
		Method:      http.MethodPut,
		Path:        "/api/notes/{id}",
		Summary:     "Update a note",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "notes-delete",
		Method:      http.MethodDelete,
		Path:        "/api/notes/{id}",
		Summary:     "Delete a note",
		Tags:        []string{"notes"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
