package order

import "time"

// Order links one user to one product.
type Order struct {
	ID        int64
	UserID    int64     // UserID references an existing user
	ProductID int64     // ProductID references an existing product
	OrderDate time.Time // OrderDate is set once when the order is stored
	Status    string    // Status is a free-form label such as "pending"
}

// Patch holds the fields of a partial update. OrderDate is never patched.
type Patch struct {
	UserID    *int64
	ProductID *int64
	Status    *string
}

// Apply copies every supplied field of the patch onto o.
func (p Patch) Apply(o *Order) {
	if p.UserID != nil {
		o.UserID = *p.UserID
	}
	if p.ProductID != nil {
		o.ProductID = *p.ProductID
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
}
