package ordersvc

import (
	"fmt"

	"github.com/productsapp/orders-svc/internal/service/models/orderitem"
	"github.com/productsapp/orders-svc/internal/service/models/product"
)

// assembledOrder is the result of reconciling requested items with the
// validated product list.
type assembledOrder struct {
	TotalAmountCents int64
	TotalItems       int
	Items            []orderitem.OrderItem
}

// assemble merges requested items with validated products: every item gets the
// snapshot unit price and product name, and totals are computed from those
// snapshots. A requested product missing from the validated list aborts the
// whole assembly; an order is never created with a dropped item or a zero
// price. Pure and deterministic, no I/O.
func assemble(
	items []orderitem.OrderItem,
	products []product.Product,
) (*assembledOrder, error) {
	byID := make(map[int64]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	assembled := &assembledOrder{
		Items: make([]orderitem.OrderItem, 0, len(items)),
	}

	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %d missing from validation response", item.ProductID)
		}

		item.PriceCents = p.PriceCents
		item.ProductName = p.Name

		assembled.TotalAmountCents += p.PriceCents * int64(item.Quantity)
		assembled.TotalItems += item.Quantity
		assembled.Items = append(assembled.Items, item)
	}

	return assembled, nil
}

// mergeNames annotates persisted item rows with product names from an already
// fetched product list. Rows never carry the name, only the product id and the
// price snapshot, so this second pass runs on every response assembly.
func mergeNames(
	items []orderitem.OrderItem,
	products []product.Product,
) ([]orderitem.OrderItem, error) {
	byID := make(map[int64]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	merged := make([]orderitem.OrderItem, 0, len(items))
	for _, item := range items {
		p, ok := byID[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("product %d missing from validation response", item.ProductID)
		}

		item.ProductName = p.Name
		merged = append(merged, item)
	}

	return merged, nil
}

// productIDs extracts the set of product ids referenced by the items.
func productIDs(items []orderitem.OrderItem) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	return ids
}
