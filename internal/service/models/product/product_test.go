package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestRecord_ToProduct(t *testing.T) {
	record := Record{ID: ptr(int64(7)), Name: ptr("Widget"), PriceCents: ptr(int64(1000))}

	p, err := record.ToProduct()
	require.NoError(t, err)
	assert.Equal(t, Product{ID: 7, Name: "Widget", PriceCents: 1000}, p)
}

func TestRecord_ToProduct_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		record  Record
		wantErr string
	}{
		{name: "missing id", record: Record{Name: ptr("Widget"), PriceCents: ptr(int64(1))}, wantErr: "missing id"},
		{name: "missing name", record: Record{ID: ptr(int64(7)), PriceCents: ptr(int64(1))}, wantErr: "missing name"},
		{name: "missing price", record: Record{ID: ptr(int64(7)), Name: ptr("Widget")}, wantErr: "missing priceCents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.record.ToProduct()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
