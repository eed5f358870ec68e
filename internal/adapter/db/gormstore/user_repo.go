package gormstore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"shop-service/internal/domain/user"
	apperrors "shop-service/pkg/errors"
)

// UserRepo implements the user Repository interface with GORM.
type UserRepo struct {
	db  *gorm.DB    // GORM database connection
	log *zap.Logger // Structured logger for database operations
}

// NewUserRepo creates a new instance of UserRepo.
func NewUserRepo(db *gorm.DB, log *zap.Logger) *UserRepo {
	return &UserRepo{db: db, log: log}
}

func userNotFound() error {
	return apperrors.NewNotFoundError("user", "User not found")
}

// Create inserts a new user and returns it with its generated ID.
func (r *UserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := newUserModel(u)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// GetByID retrieves a user by its ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var model userModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("user not found", zap.Int64("id", id))
			return nil, userNotFound()
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.toDomain(), nil
}

// List returns every user ordered by ID.
func (r *UserRepo) List(ctx context.Context) ([]user.User, error) {
	var models []userModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list users from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]user.User, len(models))
	for i, m := range models {
		users[i] = *m.toDomain()
	}
	return users, nil
}

// Update applies the supplied fields of the patch to an existing user.
func (r *UserRepo) Update(ctx context.Context, id int64, patch user.Patch) (*user.User, error) {
	var updated *user.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model userModel
		if err := tx.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userNotFound()
			}
			return fmt.Errorf("failed to load user: %w", err)
		}

		u := model.toDomain()
		patch.Apply(u)
		model = newUserModel(u)

		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		updated = model.toDomain()
		return nil
	})
	if err != nil {
		r.log.Warn("user update failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	r.log.Info("user updated in db", zap.Int64("id", id))
	return updated, nil
}

// Delete removes a user. Users that still have orders are not deleted.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&orderModel{}).Where("user_id = ?", id).Count(&refs).Error; err != nil {
			return fmt.Errorf("failed to count user orders: %w", err)
		}
		if refs > 0 {
			return apperrors.NewConflictError("user", fmt.Sprintf("User has %d order(s) and cannot be deleted", refs))
		}

		res := tx.Delete(&userModel{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return userNotFound()
		}
		return nil
	})
	if err != nil {
		r.log.Warn("user delete failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	r.log.Info("user deleted in db", zap.Int64("id", id))
	return nil
}
