package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"taskpad/internal/app/client/config"
	"taskpad/internal/domain/note"
	"taskpad/internal/domain/todo"
	"taskpad/internal/domain/user"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User  user.Profile `json:"user"`
	Token string       `json:"token"`
}

type httpClient struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
	token   string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		log:     log,
		baseURL: scheme + cfg.ServerAddress,
	}
}

// SetToken attaches a bearer token to every subsequent request.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// CheckConnection hits the public status endpoint.
func (h *httpClient) CheckConnection(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) Register(ctx context.Context, email, password string) (*user.Profile, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/users", credentials{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var profile user.Profile
	if err := h.parseResponse(resp, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (h *httpClient) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/users/login", credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	var loginResp loginResponse
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}

	h.SetToken(loginResp.Token)
	return loginResp.Token, nil
}

func (h *httpClient) Me(ctx context.Context) (*user.Profile, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/users/me", nil)
	if err != nil {
		return nil, err
	}

	var profile user.Profile
	if err := h.parseResponse(resp, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (h *httpClient) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/todos", nil)
	if err != nil {
		return nil, err
	}

	var todos []todo.Todo
	if err := h.parseResponse(resp, &todos); err != nil {
		return nil, err
	}

	return todos, nil
}

func (h *httpClient) CreateTodo(ctx context.Context, text string) (*todo.Todo, error) {
	body := struct {
		Text string `json:"text"`
	}{Text: text}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/todos", body)
	if err != nil {
		return nil, err
	}

	var created todo.Todo
	if err := h.parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (h *httpClient) UpdateTodo(ctx context.Context, id int64, upd todo.Update) (*todo.Todo, error) {
	body := struct {
		Text      *string `json:"text,omitempty"`
		Completed *bool   `json:"completed,omitempty"`
	}{Text: upd.Text, Completed: upd.Completed}

	resp, err := h.doRequest(ctx, http.MethodPut, "/api/todos/"+strconv.FormatInt(id, 10), body)
	if err != nil {
		return nil, err
	}

	var updated todo.Todo
	if err := h.parseResponse(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (h *httpClient) DeleteTodo(ctx context.Context, id int64) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/todos/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) ListNotes(ctx context.Context) ([]note.Note, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/notes", nil)
	if err != nil {
		return nil, err
	}

	var notes []note.Note
	if err := h.parseResponse(resp, &notes); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpClient) SearchNotes(ctx context.Context, query string) ([]note.Note, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/notes/search?query="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, err
	}

	var notes []note.Note
	if err := h.parseResponse(resp, &notes); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpClient) GetNote(ctx context.Context, id int64) (*note.Note, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/notes/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return nil, err
	}

	var n note.Note
	if err := h.parseResponse(resp, &n); err != nil {
		return nil, err
	}

	return &n, nil
}

func (h *httpClient) CreateNote(ctx context.Context, title, content string) (*note.Note, error) {
	body := struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}{Title: title, Content: content}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/notes", body)
	if err != nil {
		return nil, err
	}

	var created note.Note
	if err := h.parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (h *httpClient) UpdateNote(ctx context.Context, id int64, upd note.Update) (*note.Note, error) {
	body := struct {
		Title   *string `json:"title,omitempty"`
		Content *string `json:"content,omitempty"`
	}{Title: upd.Title, Content: upd.Content}

	resp, err := h.doRequest(ctx, http.MethodPut, "/api/notes/"+strconv.FormatInt(id, 10), body)
	if err != nil {
		return nil, err
	}

	var updated note.Note
	if err := h.parseResponse(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (h *httpClient) DeleteNote(ctx context.Context, id int64) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/notes/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("server unreachable: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	h.log.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Error != "" {
				return fmt.Errorf("server error: %s", errResp.Error)
			}
			if errResp.Detail != "" {
				return fmt.Errorf("server error: %s", errResp.Detail)
			}
		}
		return fmt.Errorf("server returned status: %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}
