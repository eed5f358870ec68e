package order

import "time"

// CreateOrderRequest represents the request payload for placing an order.
type CreateOrderRequest struct {
	UserID    int64  `validate:"required,gt=0"`
	ProductID int64  `validate:"required,gt=0"`
	Status    string `validate:"max=255"`
}

// UpdateOrderRequest represents a partial update. Nil fields are not changed
// and the order date is never modified.
type UpdateOrderRequest struct {
	ID        int64   `validate:"gt=0"`
	UserID    *int64  `validate:"omitempty,gt=0"`
	ProductID *int64  `validate:"omitempty,gt=0"`
	Status    *string `validate:"omitempty,max=255"`
}

type GetOrderRequest struct {
	ID int64
}

type DeleteOrderRequest struct {
	ID int64
}

// Order is the order DTO returned to transports.
type Order struct {
	ID        int64
	UserID    int64
	ProductID int64
	OrderDate time.Time
	Status    string
}
