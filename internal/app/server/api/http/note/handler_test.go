package note

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"taskpad/internal/app/server/api/http/middleware/auth"
	"taskpad/internal/domain/note"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, ownerID int64) ([]note.Note, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]note.Note), args.Error(1)
}

func (m *MockService) Search(ctx context.Context, ownerID int64, query string) ([]note.Note, error) {
	args := m.Called(ctx, ownerID, query)
	return args.Get(0).([]note.Note), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, ownerID, noteID int64) (*note.Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, ownerID int64, title, content string) (*note.Note, error) {
	args := m.Called(ctx, ownerID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, ownerID, noteID int64, upd note.Update) (*note.Note, error) {
	args := m.Called(ctx, ownerID, noteID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, ownerID, noteID int64) error {
	args := m.Called(ctx, ownerID, noteID)
	return args.Error(0)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	return statusErr.GetStatus()
}

func TestHandler_List_EmptyIsSlice(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)
	ctx := auth.WithUserID(context.Background(), 42)

	svc.On("List", mock.Anything, int64(42)).Return([]note.Note(nil), nil)

	out, err := h.list(ctx, nil)
	assert.NoError(t, err)
	require.NotNil(t, out.Body)
	assert.Empty(t, out.Body)

	svc.AssertExpectations(t)
}

func TestHandler_Search(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)
	ctx := auth.WithUserID(context.Background(), 42)

	found := []note.Note{{ID: 3, UserID: 42, Title: "groceries"}}
	svc.On("Search", mock.Anything, int64(42), "grocer").Return(found, nil)

	out, err := h.search(ctx, &searchInput{Query: "grocer"})
	assert.NoError(t, err)
	assert.Equal(t, found, out.Body)

	svc.AssertExpectations(t)
}

func TestHandler_Search_EmptyQuery(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)
	ctx := auth.WithUserID(context.Background(), 42)

	svc.On("Search", mock.Anything, int64(42), "").Return([]note.Note(nil), note.ErrQueryRequired)

	_, err := h.search(ctx, &searchInput{})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Contains(t, err.Error(), "Search query is required")

	svc.AssertExpectations(t)
}

func TestHandler_Get_NoIdentity(t *testing.T) {
	h := NewHandler(new(MockService), slog.Default(), nil)

	_, err := h.get(context.Background(), &getInput{ID: 3})
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestHandler_Get_OtherOwnerLooksMissing(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)
	ctx := auth.WithUserID(context.Background(), 42)

	svc.On("Get", mock.Anything, int64(42), int64(9)).Return(nil, note.ErrNotFound)

	_, err := h.get(ctx, &getInput{ID: 9})
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	assert.Contains(t, err.Error(), "Note not found")

	svc.AssertExpectations(t)
}

func TestHandler_Create_MissingTitle(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)
	ctx := auth.WithUserID(context.Background(), 42)

	svc.On("Create", mock.Anything, int64(42), "", "body only").Return(nil, note.ErrTitleRequired)

	input := &createInput{}
	input.Body.Content = "body only"

	_, err := h.create(ctx, input)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	assert.Contains(t, err.Error(), "Title is required")

	svc.AssertExpectations(t)
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockService)
	h := NewHandler(svc, slog.Default(), nil)
	ctx := auth.WithUserID(context.Background(), 42)

	svc.On("Delete", mock.Anything, int64(42), int64(3)).Return(nil)

	out, err := h.delete(ctx, &deleteInput{ID: 3})
	assert.NoError(t, err)
	assert.Equal(t, "Note deleted successfully", out.Body.Message)

	svc.AssertExpectations(t)
}
