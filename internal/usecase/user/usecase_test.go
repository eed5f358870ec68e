package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "shop-service/internal/domain/user"
	apperrors "shop-service/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int64, p domain.Patch) (*domain.User, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupTestUsecase(t *testing.T) (*Usecase, *MockRepository) {
	mockRepo := new(MockRepository)
	uc := New(mockRepo, zaptest.NewLogger(t))
	return uc, mockRepo
}

func strPtr(s string) *string { return &s }

// ==================== CREATE USER TESTS ====================

func TestCreateUser_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	req := CreateUserRequest{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "secret"}

	mockRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == 0 && u.FirstName == "Ann" && u.Email == "ann@example.com"
	})).Return(&domain.User{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "secret"}, nil)

	got, err := uc.CreateUser(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, &User{ID: 1, FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "secret"}, got)
	mockRepo.AssertExpectations(t)
}

func TestCreateUser_ValidationError(t *testing.T) {
	tests := []struct {
		name string
		req  CreateUserRequest
	}{
		{"first name too long", CreateUserRequest{FirstName: strings.Repeat("a", 256), LastName: "Lee", Email: "a@b.co", Password: "x"}},
		{"email too long", CreateUserRequest{FirstName: "Ann", LastName: "Lee", Email: strings.Repeat("e", 256), Password: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo := setupTestUsecase(t)

			got, err := uc.CreateUser(context.Background(), tt.req)

			assert.Nil(t, got)
			var ve *apperrors.ValidationError
			assert.ErrorAs(t, err, &ve)
			mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateUser_FreeFormFields(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	req := CreateUserRequest{FirstName: "", LastName: "Lee", Email: "bob", Password: ""}
	mockRepo.On("Create", ctx, &domain.User{LastName: "Lee", Email: "bob"}).
		Return(&domain.User{ID: 3, LastName: "Lee", Email: "bob"}, nil)

	got, err := uc.CreateUser(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "bob", got.Email)
	mockRepo.AssertExpectations(t)
}

func TestCreateUser_RepositoryError(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()
	repoErr := errors.New("database error")

	mockRepo.On("Create", ctx, mock.Anything).Return(nil, repoErr)

	got, err := uc.CreateUser(ctx, CreateUserRequest{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "x"})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, repoErr)
}

// ==================== GET USER TESTS ====================

func TestGetUser_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(7)).Return(&domain.User{ID: 7, FirstName: "Bo"}, nil)

	got, err := uc.GetUser(ctx, GetUserRequest{ID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Bo", got.FirstName)
}

func TestGetUser_InvalidID(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)

	_, err := uc.GetUser(context.Background(), GetUserRequest{ID: 0})

	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestGetUser_NotFound(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, apperrors.NewNotFoundError("user", "User not found"))

	_, err := uc.GetUser(ctx, GetUserRequest{ID: 99})

	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "User not found", nf.Error())
}

// ==================== LIST USERS TESTS ====================

func TestListUsers(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return([]domain.User{{ID: 1, FirstName: "A"}, {ID: 2, FirstName: "B"}}, nil)

	got, err := uc.ListUsers(ctx)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestListUsers_Empty(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return([]domain.User{}, nil)

	got, err := uc.ListUsers(ctx)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ==================== UPDATE USER TESTS ====================

func TestUpdateUser_PassesOnlySuppliedFields(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Update", ctx, int64(3), mock.MatchedBy(func(p domain.Patch) bool {
		return p.FirstName != nil && *p.FirstName == "New" &&
			p.LastName == nil && p.Email == nil && p.Password == nil
	})).Return(&domain.User{ID: 3, FirstName: "New", LastName: "Old"}, nil)

	got, err := uc.UpdateUser(ctx, UpdateUserRequest{ID: 3, FirstName: strPtr("New")})

	require.NoError(t, err)
	assert.Equal(t, "New", got.FirstName)
	assert.Equal(t, "Old", got.LastName)
	mockRepo.AssertExpectations(t)
}

func TestUpdateUser_EmailTooLong(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)

	_, err := uc.UpdateUser(context.Background(), UpdateUserRequest{ID: 3, Email: strPtr(strings.Repeat("e", 256))})

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "email must be at most 255 characters")
	mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUser_EmptyStringIsApplied(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Update", ctx, int64(3), mock.MatchedBy(func(p domain.Patch) bool {
		return p.FirstName != nil && *p.FirstName == "" && p.Email != nil && *p.Email == "bob"
	})).Return(&domain.User{ID: 3, Email: "bob"}, nil)

	got, err := uc.UpdateUser(ctx, UpdateUserRequest{ID: 3, FirstName: strPtr(""), Email: strPtr("bob")})

	require.NoError(t, err)
	assert.Equal(t, "bob", got.Email)
	mockRepo.AssertExpectations(t)
}

func TestUpdateUser_NotFound(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Update", ctx, int64(42), mock.Anything).Return(nil, apperrors.NewNotFoundError("user", "User not found"))

	_, err := uc.UpdateUser(ctx, UpdateUserRequest{ID: 42})

	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

// ==================== DELETE USER TESTS ====================

func TestDeleteUser_Success(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(5)).Return(nil)

	require.NoError(t, uc.DeleteUser(ctx, DeleteUserRequest{ID: 5}))
	mockRepo.AssertExpectations(t)
}

func TestDeleteUser_InvalidID(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)

	err := uc.DeleteUser(context.Background(), DeleteUserRequest{ID: -1})

	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteUser_Conflict(t *testing.T) {
	uc, mockRepo := setupTestUsecase(t)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(5)).Return(apperrors.NewConflictError("user", "User has 1 order(s) and cannot be deleted"))

	err := uc.DeleteUser(ctx, DeleteUserRequest{ID: 5})

	var ce *apperrors.ConflictError
	assert.ErrorAs(t, err, &ce)
}
