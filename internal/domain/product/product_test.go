package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchApply(t *testing.T) {
	price := 0.0
	desc := ""
	p := Product{ID: 3, Name: "Lamp", Description: "desk lamp", Price: 20}

	Patch{Description: &desc, Price: &price}.Apply(&p)

	assert.Equal(t, Product{ID: 3, Name: "Lamp"}, p, "zero values are applied when supplied")
}

func TestIsSortable(t *testing.T) {
	for _, f := range []string{"id", "name", "description", "price"} {
		assert.True(t, IsSortable(f), f)
	}
	for _, f := range []string{"", "Price", "stock", "price desc"} {
		assert.False(t, IsSortable(f), f)
	}
}
