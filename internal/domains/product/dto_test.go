package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFormValidate(t *testing.T) {
	tests := []struct {
		name    string
		form    ProductForm
		wantErr bool
	}{
		{
			name: "valid form",
			form: ProductForm{
				Title:       "Lamp",
				Price:       "19.99",
				Description: "desk lamp",
				ImageURL:    "http://x/lamp.png",
			},
		},
		{
			name: "integer price",
			form: ProductForm{Title: "Lamp", Price: "20"},
		},
		{
			name: "zero price",
			form: ProductForm{Title: "Lamp", Price: "0"},
		},
		{
			name:    "missing title",
			form:    ProductForm{Price: "19.99"},
			wantErr: true,
		},
		{
			name:    "missing price",
			form:    ProductForm{Title: "Lamp"},
			wantErr: true,
		},
		{
			name:    "malformed price",
			form:    ProductForm{Title: "Lamp", Price: "nineteen"},
			wantErr: true,
		},
		{
			name:    "negative price",
			form:    ProductForm{Title: "Lamp", Price: "-1"},
			wantErr: true,
		},
		{
			name:    "price above bound",
			form:    ProductForm{Title: "Lamp", Price: "1000001"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProductFormPriceDecimal(t *testing.T) {
	form := ProductForm{Title: "Lamp", Price: "19.99"}
	require.NoError(t, form.Validate())

	price, err := form.PriceDecimal()
	require.NoError(t, err)
	assert.Equal(t, "19.99", price.String())
}
