package gormstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"shop-service/internal/adapter/db/dbtest"
	"shop-service/internal/domain/product"
	apperrors "shop-service/pkg/errors"
)

func floatPtr(f float64) *float64 { return &f }

func setupProductRepo(t *testing.T) *ProductRepo {
	return NewProductRepo(dbtest.Open(t), zaptest.NewLogger(t))
}

func seedProducts(t *testing.T, repo *ProductRepo, prices ...float64) []product.Product {
	t.Helper()
	names := []string{"Kettle", "Lamp", "Mug", "Notebook", "Oven", "Pen"}

	var out []product.Product
	for i, price := range prices {
		p, err := repo.Create(context.Background(), &product.Product{
			Name:        names[i%len(names)],
			Description: "item",
			Price:       price,
		})
		require.NoError(t, err)
		out = append(out, *p)
	}
	return out
}

func prices(products []product.Product) []float64 {
	out := make([]float64, len(products))
	for i, p := range products {
		out[i] = p.Price
	}
	return out
}

func TestProductRepo_CreateGetUpdateDelete(t *testing.T) {
	repo := setupProductRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &product.Product{Name: "Kettle", Description: "1.7 l, steel", Price: 39.9})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := repo.Update(ctx, created.ID, product.Patch{Price: floatPtr(35)})
	require.NoError(t, err)
	assert.Equal(t, 35.0, updated.Price)
	assert.Equal(t, "Kettle", updated.Name)
	assert.Equal(t, "1.7 l, steel", updated.Description)

	require.NoError(t, repo.Delete(ctx, created.ID))

	var nf *apperrors.NotFoundError
	_, err = repo.GetByID(ctx, created.ID)
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Product not found", nf.Error())
}

func TestProductRepo_Delete_NotFound(t *testing.T) {
	repo := setupProductRepo(t)

	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, repo.Delete(context.Background(), 1), &nf)
}

func TestProductRepo_Query(t *testing.T) {
	repo := setupProductRepo(t)
	seedProducts(t, repo, 5, 10, 25, 50, 75, 25)

	tests := []struct {
		name     string
		query    product.Query
		expected []float64
	}{
		{
			name:     "no filter keeps id order",
			query:    product.Query{},
			expected: []float64{5, 10, 25, 50, 75, 25},
		},
		{
			name:     "inclusive price range",
			query:    product.Query{MinPrice: floatPtr(10), MaxPrice: floatPtr(50)},
			expected: []float64{10, 25, 50, 25},
		},
		{
			name:     "min only",
			query:    product.Query{MinPrice: floatPtr(50)},
			expected: []float64{50, 75},
		},
		{
			name:     "max only",
			query:    product.Query{MaxPrice: floatPtr(10)},
			expected: []float64{5, 10},
		},
		{
			name:     "range sorted by price descending",
			query:    product.Query{MinPrice: floatPtr(10), MaxPrice: floatPtr(50), SortBy: "price", Desc: true},
			expected: []float64{50, 25, 25, 10},
		},
		{
			name:     "sorted by price ascending",
			query:    product.Query{SortBy: "price"},
			expected: []float64{5, 10, 25, 25, 50, 75},
		},
		{
			name:     "sorted by id descending",
			query:    product.Query{SortBy: "id", Desc: true},
			expected: []float64{25, 75, 50, 25, 10, 5},
		},
		{
			name:     "inverted range is empty",
			query:    product.Query{MinPrice: floatPtr(60), MaxPrice: floatPtr(20)},
			expected: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Query(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, prices(got))
		})
	}
}

func TestProductRepo_Query_SortByName(t *testing.T) {
	repo := setupProductRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Mug", "Apron", "Lamp"} {
		_, err := repo.Create(ctx, &product.Product{Name: name, Description: "-", Price: 1})
		require.NoError(t, err)
	}

	got, err := repo.Query(ctx, product.Query{SortBy: "name"})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Apron", "Lamp", "Mug"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestProductRepo_Query_RejectsUnknownSortField(t *testing.T) {
	repo := setupProductRepo(t)

	_, err := repo.Query(context.Background(), product.Query{SortBy: "price; DROP TABLE products"})

	var ve *apperrors.ValidationError
	assert.ErrorAs(t, err, &ve)
}
