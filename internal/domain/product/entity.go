package product

// Product represents an item offered by the shop.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
}

// Patch holds the fields of a partial update. A nil field is left untouched.
type Patch struct {
	Name        *string
	Description *string
	Price       *float64
}

// Apply copies every supplied field of the patch onto p.
func (pt Patch) Apply(p *Product) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Description != nil {
		p.Description = *pt.Description
	}
	if pt.Price != nil {
		p.Price = *pt.Price
	}
}
