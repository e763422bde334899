package note

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, ownerID int64) ([]Note, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]Note), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, ownerID, noteID int64) (*Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Note), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, n *Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, n *Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, ownerID, noteID int64) error {
	args := m.Called(ctx, ownerID, noteID)
	return args.Error(0)
}

func (m *MockRepository) Search(ctx context.Context, ownerID int64, query string) ([]Note, error) {
	args := m.Called(ctx, ownerID, query)
	return args.Get(0).([]Note), args.Error(1)
}

func TestService_Create_SetsOwner(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *Note) bool {
		return n.UserID == 42 && n.Title == "Meeting notes" && n.Content == ""
	})).Return(nil)

	created, err := service.Create(context.Background(), 42, "Meeting notes", "")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_TitleRequired(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Create(context.Background(), 42, "  ", "content")
	assert.ErrorIs(t, err, ErrTitleRequired)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Update_PartialMerge(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	current := &Note{ID: 7, UserID: 42, Title: "Meeting notes", Content: "agenda"}
	mockRepo.On("Get", mock.Anything, int64(42), int64(7)).Return(current, nil)

	content := "agenda + minutes"
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(n *Note) bool {
		return n.Title == "Meeting notes" && n.Content == content && n.UserID == 42
	})).Return(nil)

	updated, err := service.Update(context.Background(), 42, 7, Update{Content: &content})
	assert.NoError(t, err)
	assert.Equal(t, content, updated.Content)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, int64(42), int64(7)).Return(nil, ErrNotFound)

	_, err := service.Update(context.Background(), 42, 7, Update{})
	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Search(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	found := []Note{{ID: 1, UserID: 42, Title: "Meeting notes"}}
	mockRepo.On("Search", mock.Anything, int64(42), "meeting").Return(found, nil)

	notes, err := service.Search(context.Background(), 42, "meeting")
	assert.NoError(t, err)
	assert.Equal(t, found, notes)

	mockRepo.AssertExpectations(t)
}

func TestService_Search_EmptyQuery(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	_, err := service.Search(context.Background(), 42, "   ")
	assert.ErrorIs(t, err, ErrQueryRequired)
	mockRepo.AssertNotCalled(t, "Search")
}

func TestService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, int64(42), int64(7)).Return(ErrNotFound)

	assert.ErrorIs(t, service.Delete(context.Background(), 42, 7), ErrNotFound)

	mockRepo.AssertExpectations(t)
}
