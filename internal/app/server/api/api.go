// Request flow: chi mux → huma operation → per-handler middleware chain
// (request logging, then bearer auth on protected routes) → handler →
// domain service → owner-scoped repository.
//
// POST   /api/users            # register (public)
// POST   /api/users/login      # login, returns bearer token (public)
// GET    /api/users/me         # own profile (auth)
// GET    /api/todos            # list own todos (auth)
// POST   /api/todos            # create todo (auth)
// PUT    /api/todos/{id}       # update own todo (auth)
// DELETE /api/todos/{id}       # delete own todo (auth)
// GET    /api/notes            # list own notes (auth)
// GET    /api/notes/search     # search own notes (auth)
// GET    /api/notes/{id}       # get own note (auth)
// POST   /api/notes            # create note (auth)
// PUT    /api/notes/{id}       # update own note (auth)
// DELETE /api/notes/{id}       # delete own note (auth)
// GET    /                     # service status (public)
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"taskpad/internal/app/server/api/http/middleware"
	authMW "taskpad/internal/app/server/api/http/middleware/auth"
	loggerMW "taskpad/internal/app/server/api/http/middleware/logger"
	noteAPI "taskpad/internal/app/server/api/http/note"
	statusAPI "taskpad/internal/app/server/api/http/status"
	todoAPI "taskpad/internal/app/server/api/http/todo"
	userAPI "taskpad/internal/app/server/api/http/user"
	"taskpad/internal/config"
	"taskpad/internal/domain/note"
	"taskpad/internal/domain/todo"
	"taskpad/internal/domain/token"
	"taskpad/internal/domain/user"
	"taskpad/internal/infrastructure/storage/postgres"
)

type Handlers struct {
	Status *statusAPI.Handler
	User   *userAPI.Handler
	Todo   *todoAPI.Handler
	Note   *noteAPI.Handler
}

// New wires every operation onto a chi mux through huma.Register.
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.NotFound(notFound)

	humaConfig := huma.DefaultConfig("Taskpad API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, cfg, log)
	h.Status.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Todo.SetupRoutes(API)
	h.Note.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	userRepo := postgres.NewUserRepository(storage.Pool(), log)
	userService := user.NewService(userRepo, log)

	tokenService := token.NewService(cfg.Auth.Secret, cfg.Auth.TokenTTL)

	authMiddleware := authMW.New(tokenService, userService, log)
	logMiddleware := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(logMiddleware.Middleware())
	statusHandler := statusAPI.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(logMiddleware.Middleware())
	public := middlewares.GetAllAndClear()
	middlewares.Add(logMiddleware.Middleware())
	middlewares.Add(authMiddleware.Middleware())
	userHandler := userAPI.NewHandler(userService, tokenService, log, public, middlewares.GetAllAndClear())

	todoRepo := postgres.NewTodoRepository(storage.Pool(), log)
	todoService := todo.NewService(todoRepo, log)
	middlewares.Add(logMiddleware.Middleware())
	middlewares.Add(authMiddleware.Middleware())
	todoHandler := todoAPI.NewHandler(todoService, log, middlewares.GetAllAndClear())

	noteRepo := postgres.NewNoteRepository(storage.Pool(), log)
	noteService := note.NewService(noteRepo, log)
	middlewares.Add(logMiddleware.Middleware())
	middlewares.Add(authMiddleware.Middleware())
	noteHandler := noteAPI.NewHandler(noteService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Status: statusHandler,
		User:   userHandler,
		Todo:   todoHandler,
		Note:   noteHandler,
	}
}

// notFound keeps the JSON contract on the API prefix; anything else gets a
// plain 404.
func notFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error": "API endpoint not found",
		})
		return
	}
	http.NotFound(w, r)
}
