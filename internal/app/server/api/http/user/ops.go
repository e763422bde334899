package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-register",
		Method:        http.MethodPost,
		Path:          "/api/users",
		Summary:       "Register a new user",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.public,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-login",
		Method:      http.MethodPost,
		Path:        "/api/users/login",
		Summary:     "Log in and receive a bearer token",
		Tags:        []string{"users"},
		Middlewares: h.public,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-me",
		Method:      http.MethodGet,
		Path:        "/api/users/me",
		Summary:     "Current user's profile",
		Tags:        []string{"users"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
