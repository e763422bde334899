package todo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, ownerID int64) ([]Todo, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]Todo), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, ownerID, todoID int64) (*Todo, error) {
	args := m.Called(ctx, ownerID, todoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Todo), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, t *Todo) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, t *Todo) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, ownerID, todoID int64) error {
	args := m.Called(ctx, ownerID, todoID)
	return args.Error(0)
}

func TestService_Create_SetsOwner(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(td *Todo) bool {
		return td.UserID == 42 && td.Text == "buy milk" && !td.Completed
	})).Return(nil)

	created, err := service.Create(context.Background(), 42, "buy milk", false)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), created.UserID)

	mockRepo.AssertExpectations(t)
}

func TestService_Create_EmptyText(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	tests := []string{"", "   ", "\t\n"}
	for _, text := range tests {
		_, err := service.Create(context.Background(), 42, text, false)
		assert.ErrorIs(t, err, ErrTextRequired)
	}
	mockRepo.AssertNotCalled(t, "Create")
}

func TestService_Get_NotFoundPassthrough(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Get", mock.Anything, int64(42), int64(7)).Return(nil, ErrNotFound)

	_, err := service.Get(context.Background(), 42, 7)
	assert.ErrorIs(t, err, ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_PartialMerge(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	current := &Todo{ID: 7, UserID: 42, Text: "buy milk", Completed: false}
	mockRepo.On("Get", mock.Anything, int64(42), int64(7)).Return(current, nil)

	done := true
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(td *Todo) bool {
		// Text untouched, completed flipped, owner re-asserted.
		return td.Text == "buy milk" && td.Completed && td.UserID == 42
	})).Return(nil)

	updated, err := service.Update(context.Background(), 42, 7, Update{Completed: &done})
	assert.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, "buy milk", updated.Text)

	mockRepo.AssertExpectations(t)
}

func TestService_Update_OwnerCannotBeReassigned(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	// Row returned by the store carries a different user id than the caller;
	// the service must overwrite it with the authenticated owner.
	current := &Todo{ID: 7, UserID: 99, Text: "x"}
	mockRepo.On("Get", mock.Anything, int64(42), int64(7)).Return(current, nil)
	mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(td *Todo) bool {
		return td.UserID == 42
	})).Return(nil)

	_, err := service.Update(context.Background(), 42, 7, Update{})
	assert.NoError(t, err)

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

func TestService_Update_EmptyText(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	current := &Todo{ID: 7, UserID: 42, Text: "buy milk"}
	mockRepo.On("Get", mock.Anything, int64(42), int64(7)).Return(current, nil)

	empty := "  "
	_, err := service.Update(context.Background(), 42, 7, Update{Text: &empty})
	assert.ErrorIs(t, err, ErrTextRequired)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, int64(42), int64(7)).Return(nil)

	err := service.Delete(context.Background(), 42, 7)
	assert.NoError(t, err)

	mockRepo.AssertExpectations(t)
}

func TestService_Delete_NotFoundOnRepeat(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, int64(42), int64(7)).Return(ErrNotFound)

	// A second delete of a gone id is the same NotFound, not a new error kind.
	assert.ErrorIs(t, service.Delete(context.Background(), 42, 7), ErrNotFound)
	assert.ErrorIs(t, service.Delete(context.Background(), 42, 7), ErrNotFound)

	mockRepo.AssertExpectations(t)
}

func TestService_List_StoreError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, slog.Default())

	mockRepo.On("List", mock.Anything, int64(42)).Return([]Todo(nil), errors.New("connection refused"))

	_, err := service.List(context.Background(), 42)
	assert.Error(t, err)

	mockRepo.AssertExpectations(t)
}
