package gormstore

import (
	"time"

	"shop-service/internal/domain/order"
	"shop-service/internal/domain/product"
	"shop-service/internal/domain/user"
)

// userModel maps the users table.
type userModel struct {
	ID        int64 `gorm:"primaryKey"`
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// TableName specifies the table name for userModel.
func (userModel) TableName() string {
	return "users"
}

func newUserModel(u *user.User) userModel {
	return userModel{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
	}
}

func (m userModel) toDomain() *user.User {
	return &user.User{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Password:  m.Password,
	}
}

// productModel maps the products table.
type productModel struct {
	ID          int64 `gorm:"primaryKey"`
	Name        string
	Description string
	Price       float64
}

// TableName specifies the table name for productModel.
func (productModel) TableName() string {
	return "products"
}

func newProductModel(p *product.Product) productModel {
	return productModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

func (m productModel) toDomain() *product.Product {
	return &product.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
	}
}

// orderModel maps the orders table.
type orderModel struct {
	ID        int64 `gorm:"primaryKey"`
	UserID    int64
	ProductID int64
	OrderDate time.Time
	Status    string
}

// TableName specifies the table name for orderModel.
func (orderModel) TableName() string {
	return "orders"
}

func newOrderModel(o *order.Order) orderModel {
	return orderModel{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		OrderDate: o.OrderDate,
		Status:    o.Status,
	}
}

func (m orderModel) toDomain() *order.Order {
	return &order.Order{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		OrderDate: m.OrderDate,
		Status:    m.Status,
	}
}
