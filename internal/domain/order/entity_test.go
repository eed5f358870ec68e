package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPatchApply_KeepsOrderDate(t *testing.T) {
	placed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	productID := int64(9)
	status := "shipped"
	o := Order{ID: 1, UserID: 2, ProductID: 3, OrderDate: placed, Status: "pending"}

	Patch{ProductID: &productID, Status: &status}.Apply(&o)

	assert.Equal(t, Order{ID: 1, UserID: 2, ProductID: 9, OrderDate: placed, Status: "shipped"}, o)
}
