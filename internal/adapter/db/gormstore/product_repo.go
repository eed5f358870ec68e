package gormstore

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop-service/internal/domain/product"
	apperrors "shop-service/pkg/errors"
)

// ProductRepo implements the product Repository interface with GORM.
type ProductRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewProductRepo creates a new instance of ProductRepo.
func NewProductRepo(db *gorm.DB, log *zap.Logger) *ProductRepo {
	return &ProductRepo{db: db, log: log}
}

func productNotFound() error {
	return apperrors.NewNotFoundError("product", "Product not found")
}

// Create inserts a new product and returns it with its generated ID.
func (r *ProductRepo) Create(ctx context.Context, p *product.Product) (*product.Product, error) {
	if p == nil {
		return nil, errors.New("product cannot be nil")
	}

	model := newProductModel(p)
	model.ID = 0

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create product in db", zap.Error(err), zap.String("name", p.Name))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	r.log.Info("product created in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// GetByID retrieves a product by its ID.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	var model productModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("product not found", zap.Int64("id", id))
			return nil, productNotFound()
		}
		r.log.Error("failed to get product from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return model.toDomain(), nil
}

// List returns every product ordered by ID.
func (r *ProductRepo) List(ctx context.Context) ([]product.Product, error) {
	return r.Query(ctx, product.Query{})
}

// Query returns the products matching the price bounds in q, ordered by q.SortBy.
// Rows with equal sort keys keep ascending ID order.
func (r *ProductRepo) Query(ctx context.Context, q product.Query) ([]product.Product, error) {
	if q.SortBy != "" && !product.IsSortable(q.SortBy) {
		return nil, apperrors.NewValidationError("sort_by", fmt.Sprintf("cannot sort by %q", q.SortBy))
	}

	tx := r.db.WithContext(ctx).Model(&productModel{})
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}
	if q.SortBy != "" && q.SortBy != "id" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: q.SortBy}, Desc: q.Desc})
	}
	tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: q.SortBy == "id" && q.Desc})

	var models []productModel
	if err := tx.Find(&models).Error; err != nil {
		r.log.Error("failed to query products from db", zap.Error(err), zap.String("sort_by", q.SortBy))
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	products := make([]product.Product, len(models))
	for i, m := range models {
		products[i] = *m.toDomain()
	}
	return products, nil
}

// Update applies the supplied fields of the patch to an existing product.
func (r *ProductRepo) Update(ctx context.Context, id int64, patch product.Patch) (*product.Product, error) {
	var updated *product.Product

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model productModel
		if err := tx.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return productNotFound()
			}
			return fmt.Errorf("failed to load product: %w", err)
		}

		p := model.toDomain()
		patch.Apply(p)
		model = newProductModel(p)

		if err := tx.Save(&model).Error; err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		updated = model.toDomain()
		return nil
	})
	if err != nil {
		r.log.Warn("product update failed", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	r.log.Info("product updated in db", zap.Int64("id", id))
	return updated, nil
}

// Delete removes a product. Products referenced by orders are not deleted.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var refs int64
		if err := tx.Model(&orderModel{}).Where("product_id = ?", id).Count(&refs).Error; err != nil {
			return fmt.Errorf("failed to count product orders: %w", err)
		}
		if refs > 0 {
			return apperrors.NewConflictError("product", fmt.Sprintf("Product is referenced by %d order(s) and cannot be deleted", refs))
		}

		res := tx.Delete(&productModel{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return productNotFound()
		}
		return nil
	})
	if err != nil {
		r.log.Warn("product delete failed", zap.Int64("id", id), zap.Error(err))
		return err
	}

	r.log.Info("product deleted in db", zap.Int64("id", id))
	return nil
}
