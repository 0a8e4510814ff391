package query

import (
	"github.com/jevonx/farmers-market/internal/product/domain"
)

// ListProductsQuery represents the query to list products. Category and
// FarmID are optional filters; the full matching set is returned in store
// iteration order, unpaginated.
type ListProductsQuery struct {
	Category string
	FarmID   uint
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(query ListProductsQuery) ([]domain.Product, error) {
	switch {
	case query.Category != "":
		return h.repo.FindByCategory(query.Category)
	case query.FarmID != 0:
		return h.repo.FindByFarm(query.FarmID)
	default:
		return h.repo.FindAll()
	}
}

// GroupByCategory splits products into per-category buckets for the grouped
// products view, preserving store order within each bucket.
func GroupByCategory(products []domain.Product) map[string][]domain.Product {
	grouped := make(map[string][]domain.Product, len(domain.Categories))
	for _, category := range domain.Categories {
		grouped[category] = nil
	}
	for _, p := range products {
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	return grouped
}
