package iproductvalidator

import (
	"context"

	"github.com/productsapp/orders-svc/internal/service/models/product"
)

// IProductValidator is an interface for the remote products service client.
// One call is one batched request/response round-trip; there is no retry and
// no caching of results.
type IProductValidator interface {
	Validate(ctx context.Context, productIDs []int64) ([]product.Product, error)
}
