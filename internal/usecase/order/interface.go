package order

import "context"

// OrderUsecase defines order management and the per-user order queries.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, in CreateOrderRequest) (*Order, error)
	GetOrder(ctx context.Context, in GetOrderRequest) (*Order, error)
	ListOrders(ctx context.Context) ([]Order, error)
	UpdateOrder(ctx context.Context, in UpdateOrderRequest) (*Order, error)
	DeleteOrder(ctx context.Context, in DeleteOrderRequest) error
	ListUserOrders(ctx context.Context, userID int64) ([]Order, error)
	TotalOrderAmount(ctx context.Context, userID int64) (float64, error)
}
