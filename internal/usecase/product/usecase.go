package product

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domain "shop-service/internal/domain/product"
	apperrors "shop-service/pkg/errors"
	"shop-service/pkg/security"
	"shop-service/pkg/validation"
)

// Repository defines the interface for product data access operations.
type Repository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Query(ctx context.Context, q domain.Query) ([]domain.Product, error)
	Update(ctx context.Context, id int64, p domain.Patch) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// Usecase implements product management and the filtered listing.
type Usecase struct {
	repo     Repository
	log      *zap.Logger
	validate *validator.Validate
}

var _ ProductUsecase = (*Usecase)(nil)

// New creates a product Usecase.
func New(r Repository, log *zap.Logger) *Usecase {
	return &Usecase{repo: r, log: log, validate: validation.New()}
}

func toDTO(p *domain.Product) *Product {
	return &Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

func toDTOs(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i := range ps {
		out[i] = *toDTO(&ps[i])
	}
	return out
}

// CreateProduct validates the request and stores a new product.
func (uc *Usecase) CreateProduct(ctx context.Context, in CreateProductRequest) (*Product, error) {
	uc.log.Info("creating product", zap.String("name", in.Name))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.Format(err)
	}

	p, err := uc.repo.Create(ctx, &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	})
	if err != nil {
		uc.log.Error("failed to create product", zap.Error(err))
		return nil, err
	}
	return toDTO(p), nil
}

// GetProduct retrieves a product by ID.
func (uc *Usecase) GetProduct(ctx context.Context, in GetProductRequest) (*Product, error) {
	if in.ID <= 0 {
		return nil, apperrors.NewValidationError("id", "product id must be positive")
	}

	p, err := uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	return toDTO(p), nil
}

// ListProducts returns all products ordered by id.
func (uc *Usecase) ListProducts(ctx context.Context) ([]Product, error) {
	ps, err := uc.repo.List(ctx)
	if err != nil {
		uc.log.Error("failed to list products", zap.Error(err))
		return nil, err
	}
	return toDTOs(ps), nil
}

// ListSortedProducts applies the optional price bounds and sort column.
// A minimum above the maximum is not an error; it simply matches nothing.
func (uc *Usecase) ListSortedProducts(ctx context.Context, in ListSortedRequest) ([]Product, error) {
	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.Format(err)
	}

	sortBy, err := security.ValidateSortField(in.SortBy, domain.SortableFields)
	if err != nil {
		uc.log.Warn("rejected sort field", zap.String("sort_by", in.SortBy), zap.Error(err))
		return nil, apperrors.NewValidationError("sort_by", err.Error())
	}

	ps, err := uc.repo.Query(ctx, domain.Query{
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		SortBy:   sortBy,
		Desc:     in.Desc,
	})
	if err != nil {
		uc.log.Error("failed to query products", zap.Error(err))
		return nil, err
	}
	return toDTOs(ps), nil
}

// UpdateProduct changes only the fields supplied in the request.
func (uc *Usecase) UpdateProduct(ctx context.Context, in UpdateProductRequest) (*Product, error) {
	uc.log.Info("updating product", zap.Int64("id", in.ID))

	if err := uc.validate.Struct(in); err != nil {
		uc.log.Warn("validate failed", zap.Error(err))
		return nil, validation.Format(err)
	}

	p, err := uc.repo.Update(ctx, in.ID, domain.Patch{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	})
	if err != nil {
		uc.log.Error("failed to update product", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}
	return toDTO(p), nil
}

// DeleteProduct removes a product that no order references.
func (uc *Usecase) DeleteProduct(ctx context.Context, in DeleteProductRequest) error {
	uc.log.Info("deleting product", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		return apperrors.NewValidationError("id", "product id must be positive")
	}

	if err := uc.repo.Delete(ctx, in.ID); err != nil {
		uc.log.Error("failed to delete product", zap.Int64("id", in.ID), zap.Error(err))
		return err
	}
	return nil
}
