package order

import (
	"github.com/productsapp/orders-svc/internal/service/models/status"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// QueryOrdersModel represents filter parameters for querying order rows.
type QueryOrdersModel struct {
	Status *status.Status `json:"status,omitempty"`
	Limit  int            `json:"limit,omitempty"`
	Offset int            `json:"offset,omitempty"`
}

// PageQuery represents a paginated listing request. Page is 1-based.
type PageQuery struct {
	Page   int
	Limit  int
	Status *status.Status
}

// Normalized returns the query with page and limit defaulted to 1 and 10 when
// unset. Page numbers beyond the last page are left alone: they yield an empty
// slice, not an error.
func (q PageQuery) Normalized() PageQuery {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}

	return q
}

// Offset returns the row offset for the requested page.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PageMeta describes a page of results. TotalPages carries the total count of
// matching rows and LastPage the number of the last non-empty page.
type PageMeta struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	LastPage   int `json:"lastPage"`
}

// NewPageMeta computes listing metadata: lastPage = ceil(total / limit).
func NewPageMeta(page, limit, total int) PageMeta {
	return PageMeta{
		Page:       page,
		TotalPages: total,
		LastPage:   (total + limit - 1) / limit,
	}
}

// Page is one page of orders together with its metadata.
type Page struct {
	Data []Order  `json:"data"`
	Meta PageMeta `json:"meta"`
}
