package gormstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shop-service/internal/domain/order"
	apperrors "shop-service/pkg/errors"
)

// OrderRepo implements the order Repository interface with GORM.
type OrderRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewOrderRepo creates a new instance of OrderRepo.
func NewOrderRepo(db *gorm.DB, log *zap.Logger) *OrderRepo {
	return &OrderRepo{db: db, log: log}
}

func orderNotFound() error {
	return apperrors.NewNotFoundError("order", "Order not found")
}

// rowExists reports whether model's table has a row with the given primary key.
func rowExists(tx *gorm.DB, model any, id int64) (bool, error) {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// checkReferences verifies that the referenced user and product exist.
// A nil id is not checked.
func checkReferences(tx *gorm.DB, userID, productID *int64) error {
	if userID != nil {
		ok, err := rowExists(tx, &userModel{}, *userID)
		if err != nil {
			return fmt.Errorf("failed to check user reference: %w", err)
		}
		if !ok {
			return apperrors.NewReferentialIntegrityError("user", *userID)
		}
	}
	if productID != nil {
		ok, err := rowExists(tx, &productModel{}, *productID)
		if err != nil {
			return fmt.Errorf("failed to check product reference: %w", err)
		}
		if !ok {
			return apperrors.NewReferentialIntegrityError("product", *productID)
		}
	}
	return nil
}

// Create stores a new order after verifying its user and product exist.
// OrderDate is assigned here and ignored on input.
func (r *OrderRepo) Create(ctx context.Context, o *order.Order) (*order.Order, error) {
	if o == nil {
		return nil, errors.New("order cannot be nil")
	}

	model := newOrderModel(o)
	model.ID = 0
	model.OrderDate = r.db.NowFunc().Truncate(time.Microsecond)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, &model.UserID, &model.ProductID); err != nil {
			return err
		}
		if err := tx.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		r.log.Warn("order create failed",
			zap.Int64("user_id", o.UserID),
			zap.Int64("product_id", o.ProductID),
			zap.Error(err),
		)
		return nil, err
	}

	r.log.Info("order created in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// GetByID retrieves an order by its ID.
func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	var model orderModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("order not found", zap.Int64("id", id))
			return nil, orderNotFound()
		}
		r.log.Error("failed to get order from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return model.toDomain(), nil
}

// List returns every order ordered by ID.
func (r *OrderRepo) List(ctx context.Context) ([]order.Order, error) {
	return r.find(r.db.WithContext(ctx))
}

// ListByUser returns the orders placed by userID ordered by ID.
func (r *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]order.Order, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *OrderRepo) find(tx *gorm.DB) ([]order.Order, error) {
	var models []orderModel
	if err := tx.Order("id").Find(&models).Error; err != nil {
		r.log.Error("failed to list orders from db", zap.Error(err))
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]order.Order, len(models))
	for i, m := range models {
		orders[i] = *m.toDomain()
	}
	return orders, nil
}

// Update applies the supplied fields of the patch to an existing order.
// Changed references are verified in the same transaction as the save.
func (r *OrderRepo) Update(ctx context.Context, id int64, patch order.Patch) (*order.Order, error) {
	var updated *order.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model orderModel
		if err := tx.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return orderNotFound()
			}
			return fmt.Errorf("failed to load order: %w", err)
		}

		if err := checkReferences(tx, patch.UserID, patch.ProductID); err != nil {
			return err
		}

		o := model.toDomain()
		patch.Apply(o)
		model = newOrderModel(o)

		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}
		updated = model.toDomain()
		return nil
	})
	if err != nil {
		r.log.Warn("order update failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	r.log.Info("order updated in db", zap.Int64("id", id))
	return updated, nil
}

// Delete removes an order by ID.
func (r *OrderRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&orderModel{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete order in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete order: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Debug("order not found for delete", zap.Int64("id", id))
		return orderNotFound()
	}

	r.log.Info("order deleted in db", zap.Int64("id", id))
	return nil
}

// TotalAmountByUser sums the prices of the products ordered by userID.
// It returns 0 when the user has no orders.
func (r *OrderRepo) TotalAmountByUser(ctx context.Context, userID int64) (float64, error) {
	var prices []float64
	err := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Joins("JOIN products ON products.id = orders.product_id").
		Where("orders.user_id = ?", userID).
		Pluck("products.price", &prices).Error
	if err != nil {
		r.log.Error("failed to sum order amounts", zap.Error(err), zap.Int64("user_id", userID))
		return 0, fmt.Errorf("failed to sum order amounts: %w", err)
	}

	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(decimal.NewFromFloat(p))
	}

	amount, _ := total.Float64()
	return amount, nil
}
