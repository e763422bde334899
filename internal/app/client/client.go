package client

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"taskpad/internal/app/client/config"
	"taskpad/internal/app/client/token"
	"taskpad/internal/domain/note"
	"taskpad/internal/domain/todo"
	"taskpad/internal/domain/user"
)

// App is the client-side application: an HTTP API client plus a bearer
// token persisted on disk between invocations.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	tokens     *token.FileStore
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	app := &App{
		config:     cfg,
		log:        log,
		httpClient: newHTTPClient(cfg, log),
		tokens:     token.NewFileStore(cfg.TokenPath),
	}

	if bearer, err := app.tokens.Load(); err == nil && bearer != "" {
		app.httpClient.SetToken(bearer)
		log.Debug("token loaded from file")
	}

	return app, nil
}

// IsAuthenticated reports whether a saved token is present. The token may
// still be expired; the server has the final word.
func (a *App) IsAuthenticated() bool {
	bearer, err := a.tokens.Load()
	return err == nil && bearer != ""
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.CheckConnection(ctx)
}

func (a *App) Register(ctx context.Context, email, password string) (*user.Profile, error) {
	return a.httpClient.Register(ctx, email, password)
}

// Login authenticates against the server and persists the returned token.
func (a *App) Login(ctx context.Context, email, password string) error {
	bearer, err := a.httpClient.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := a.tokens.Save(bearer); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// Logout drops the saved token. The server keeps no session state, so this
// is purely local.
func (a *App) Logout() error {
	a.httpClient.SetToken("")
	if err := a.tokens.Clear(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	return nil
}

func (a *App) Me(ctx context.Context) (*user.Profile, error) {
	return a.httpClient.Me(ctx)
}

func (a *App) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	return a.httpClient.ListTodos(ctx)
}

func (a *App) CreateTodo(ctx context.Context, text string) (*todo.Todo, error) {
	return a.httpClient.CreateTodo(ctx, text)
}

func (a *App) UpdateTodo(ctx context.Context, id int64, upd todo.Update) (*todo.Todo, error) {
	return a.httpClient.UpdateTodo(ctx, id, upd)
}

func (a *App) DeleteTodo(ctx context.Context, id int64) error {
	return a.httpClient.DeleteTodo(ctx, id)
}

func (a *App) ListNotes(ctx context.Context) ([]note.Note, error) {
	return a.httpClient.ListNotes(ctx)
}

func (a *App) SearchNotes(ctx context.Context, query string) ([]note.Note, error) {
	return a.httpClient.SearchNotes(ctx, query)
}

func (a *App) GetNote(ctx context.Context, id int64) (*note.Note, error) {
	return a.httpClient.GetNote(ctx, id)
}

func (a *App) CreateNote(ctx context.Context, title, content string) (*note.Note, error) {
	return a.httpClient.CreateNote(ctx, title, content)
}

func (a *App) UpdateNote(ctx context.Context, id int64, upd note.Update) (*note.Note, error) {
	return a.httpClient.UpdateNote(ctx, id, upd)
}

func (a *App) DeleteNote(ctx context.Context, id int64) error {
	return a.httpClient.DeleteNote(ctx, id)
}
