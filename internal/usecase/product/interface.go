package product

import "context"

// ProductUsecase defines the interface for product business logic operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, in CreateProductRequest) (*Product, error)
	GetProduct(ctx context.Context, in GetProductRequest) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	ListSortedProducts(ctx context.Context, in ListSortedRequest) ([]Product, error)
	UpdateProduct(ctx context.Context, in UpdateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, in DeleteProductRequest) error
}
