package product

// CreateProductRequest represents the request payload for creating a product.
type CreateProductRequest struct {
	Name        string `validate:"max=255"`
	Description string
	Price       float64
}

// UpdateProductRequest represents a partial update. Nil fields are not changed.
type UpdateProductRequest struct {
	ID          int64   `validate:"gt=0"`
	Name        *string `validate:"omitempty,max=255"`
	Description *string
	Price       *float64
}

// ListSortedRequest filters products by price and orders them by a column.
type ListSortedRequest struct {
	MinPrice *float64 `validate:"omitempty,gt=0"`
	MaxPrice *float64 `validate:"omitempty,gt=0"`
	SortBy   string
	Desc     bool
}

// GetProductRequest represents the request payload for retrieving a product.
type GetProductRequest struct {
	ID int64
}

// DeleteProductRequest represents the request payload for deleting a product.
type DeleteProductRequest struct {
	ID int64
}

// Product is the product DTO returned to transports.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
}
