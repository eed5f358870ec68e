package user

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "shop-service/internal/domain/user"
	apperrors "shop-service/pkg/errors"
	"shop-service/pkg/validation"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)            // Create a new user
	GetByID(ctx context.Context, id int64) (*domain.User, error)                 // Retrieve user by ID
	List(ctx context.Context) ([]domain.User, error)                             // List all users
	Update(ctx context.Context, id int64, p domain.Patch) (*domain.User, error) // Apply a partial update
	Delete(ctx context.Context, id int64) error                                  // Delete user by ID
}

// Usecase implements the business logic for user management operations.
type Usecase struct {
	repo     Repository          // Repository for data access
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

var _ UserUsecase = (*Usecase)(nil)

// New creates a new instance of Usecase with the provided repository and logger.
func New(r Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, log: log, validate: validation.New()}
}

func invalidID() error {
	return apperrors.NewValidationError("id", "user id must be positive")
}

func toDTO(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
	}
}

// CreateUser validates the request and stores a new user.
func (uc *Usecase) CreateUser(ctx context.Context, in CreateUserRequest) (*User, error) {
	uc.log.Info("creating user", zap.String("email", in.Email))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.Format(err)
	}

	u, err := uc.repo.Create(ctx, &domain.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	})
	if err != nil {
		uc.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}
	return toDTO(u), nil
}

// GetUser retrieves a user by ID.
func (uc *Usecase) GetUser(ctx context.Context, in GetUserRequest) (*User, error) {
	if in.ID <= 0 {
		uc.log.Warn("get user validation failed", zap.Int64("id", in.ID), zap.String("reason", "invalid id"))
		return nil, invalidID()
	}

	u, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

// ListUsers returns all users.
func (uc *Usecase) ListUsers(ctx context.Context) ([]User, error) {
	domainUsers, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list users", zap.Error(err))
		return nil, err
	}

	users := make([]User, len(domainUsers))
	for i := range domainUsers {
		users[i] = *toDTO(&domainUsers[i])
	}
	return users, nil
}

// UpdateUser changes only the fields supplied in the request.
func (uc *Usecase) UpdateUser(ctx context.Context, in UpdateUserRequest) (*User, error) {
	uc.log.Info("updating user", zap.Int64("id", in.ID))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.Format(err)
	}

	u, err := uc.repo.Update(ctx, in.ID, domain.Patch{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
	})
	if err != nil {
		uc.log.Error("failed to update user", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	return toDTO(u), nil
}

// DeleteUser removes a user by ID.
func (uc *Usecase) DeleteUser(ctx context.Context, in DeleteUserRequest) error {
	uc.log.Info("deleting user", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		uc.log.Warn("delete user validation failed", zap.Int64("id", in.ID), zap.String("reason", "invalid id"))
		return invalidID()
	}

	if err := uc.repo.Delete(ctx, in.ID); err != nil {
		uc.log.Error("failed to delete user", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}
	return nil
}
