package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQuery_Normalized(t *testing.T) {
	tests := []struct {
		name      string
		query     PageQuery
		wantPage  int
		wantLimit int
	}{
		{name: "defaults when unset", query: PageQuery{}, wantPage: 1, wantLimit: 10},
		{name: "keeps explicit values", query: PageQuery{Page: 3, Limit: 25}, wantPage: 3, wantLimit: 25},
		{name: "negative values default", query: PageQuery{Page: -1, Limit: -5}, wantPage: 1, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.query.Normalized()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestPageQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, PageQuery{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 20, PageQuery{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 14, PageQuery{Page: 3, Limit: 7}.Offset())
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		limit        int
		total        int
		wantLastPage int
	}{
		{name: "exact multiple", page: 1, limit: 10, total: 30, wantLastPage: 3},
		{name: "partial last page", page: 1, limit: 10, total: 25, wantLastPage: 3},
		{name: "single row", page: 1, limit: 10, total: 1, wantLastPage: 1},
		{name: "empty", page: 1, limit: 10, total: 0, wantLastPage: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.total, meta.TotalPages)
			assert.Equal(t, tt.wantLastPage, meta.LastPage)
		})
	}
}
