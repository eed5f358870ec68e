package order

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "shop-service/internal/domain/order"
	"shop-service/internal/domain/user"
	apperrors "shop-service/pkg/errors"
	"shop-service/pkg/validation"
)

// Repository defines the interface for order data access operations.
type Repository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	Update(ctx context.Context, id int64, p domain.Patch) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	TotalAmountByUser(ctx context.Context, userID int64) (float64, error)
}

// UserReader resolves the user behind the per-user queries.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// Usecase implements the business logic for orders.
type Usecase struct {
	repo     Repository
	users    UserReader
	log      *zap.Logger
	validate *validator.Validate
}

var _ OrderUsecase = (*Usecase)(nil)

// New creates an order Usecase.
func New(r Repository, users UserReader, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, users: users, log: log, validate: validation.New()}
}

func invalidID(field string) error {
	return apperrors.NewValidationError(field, "must be positive")
}

func toDTO(o *domain.Order) *Order {
	return &Order{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		OrderDate: o.OrderDate,
		Status:    o.Status,
	}
}

func toDTOs(orders []domain.Order) []Order {
	out := make([]Order, len(orders))
	for i := range orders {
		out[i] = *toDTO(&orders[i])
	}
	return out
}

// CreateOrder places an order for an existing user and product.
func (uc *Usecase) CreateOrder(ctx context.Context, in CreateOrderRequest) (*Order, error) {
	uc.log.Info("creating order",
		zap.Int64("user_id", in.UserID),
		zap.Int64("product_id", in.ProductID),
	)

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.Format(err)
	}

	o, err := uc.repo.Create(ctx, &domain.Order{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Status:    in.Status,
	})
	if err != nil {
		uc.log.Error("failed to create order", zap.Error(err))
		return nil, err
	}
	return toDTO(o), nil
}

// GetOrder retrieves an order by ID.
func (uc *Usecase) GetOrder(ctx context.Context, in GetOrderRequest) (*Order, error) {
	if in.ID <= 0 {
		return nil, invalidID("id")
	}

	o, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	return toDTO(o), nil
}

// ListOrders returns all orders.
func (uc *Usecase) ListOrders(ctx context.Context) ([]Order, error) {
	orders, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	return toDTOs(orders), nil
}

// UpdateOrder changes only the fields supplied in the request.
func (uc *Usecase) UpdateOrder(ctx context.Context, in UpdateOrderRequest) (*Order, error) {
	uc.log.Info("updating order", zap.Int64("id", in.ID))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.Format(err)
	}

	o, err := uc.repo.Update(ctx, in.ID, domain.Patch{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Status:    in.Status,
	})
	if err != nil {
		uc.log.Error("failed to update order", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	return toDTO(o), nil
}

// DeleteOrder removes an order by ID.
func (uc *Usecase) DeleteOrder(ctx context.Context, in DeleteOrderRequest) error {
	uc.log.Info("deleting order", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		return invalidID("id")
	}

	if err := uc.repo.Delete(ctx, in.ID); err != nil {
		uc.log.Error("failed to delete order", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}
	return nil
}

// ListUserOrders returns the orders of an existing user.
func (uc *Usecase) ListUserOrders(ctx context.Context, userID int64) ([]Order, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, err
	}

	orders, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		uc.log.Error("failed to list user orders", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return toDTOs(orders), nil
}

// TotalOrderAmount sums the product prices over the user's orders.
// A user without orders totals 0.
func (uc *Usecase) TotalOrderAmount(ctx context.Context, userID int64) (float64, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return 0, err
	}

	total, err := uc.repo.TotalAmountByUser(ctx, userID)
	if err != nil {
		uc.log.Error("failed to total user orders", zap.Int64("user_id", userID), zap.Error(err))
		return 0, err
	}
	return total, nil
}

func (uc *Usecase) requireUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return invalidID("user_id")
	}
	_, err := uc.users.GetByID(ctx, userID)
	return err
}
