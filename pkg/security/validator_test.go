package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productColumns = []string{"id", "name", "description", "price"}

func TestValidateSortField(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		expectError error
		expected    string
	}{
		{
			name:     "empty field",
			field:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			field:    "   ",
			expected: "",
		},
		{
			name:     "allowed field",
			field:    "price",
			expected: "price",
		},
		{
			name:     "allowed field with surrounding spaces",
			field:    "  name ",
			expected: "name",
		},
		{
			name:     "allowed field in upper case",
			field:    "PRICE",
			expected: "price",
		},
		{
			name:        "unknown column",
			field:       "password",
			expectError: ErrSortFieldNotAllowed,
		},
		{
			name:        "SQL injection attempt - trailing clause",
			field:       "price; DROP TABLE products",
			expectError: ErrSortFieldInvalid,
		},
		{
			name:        "SQL injection attempt - direction suffix",
			field:       "price DESC",
			expectError: ErrSortFieldInvalid,
		},
		{
			name:        "SQL injection attempt - comment",
			field:       "price--",
			expectError: ErrSortFieldInvalid,
		},
		{
			name:        "qualified column",
			field:       "products.price",
			expectError: ErrSortFieldInvalid,
		},
		{
			name:        "field too long",
			field:       strings.Repeat("a", MaxSortFieldLength+1),
			expectError: ErrSortFieldTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateSortField(tt.field, productColumns)

			if tt.expectError != nil {
				require.ErrorIs(t, err, tt.expectError)
				assert.Empty(t, result)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestValidateSortField_EmptyWhitelist(t *testing.T) {
	_, err := ValidateSortField("id", nil)
	assert.ErrorIs(t, err, ErrSortFieldNotAllowed)
}

// BenchmarkValidateSortField benchmarks the validation function
func BenchmarkValidateSortField(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateSortField("price", productColumns)
	}
}
