package query

import (
	"strings"

	"github.com/jevonx/farmers-market/internal/product/domain"
)

// SearchProductsQuery represents a case-insensitive substring search over
// product names.
type SearchProductsQuery struct {
	Term string
}

// SearchResult carries the matches plus the normalized term for display.
type SearchResult struct {
	Term     string
	Products []domain.Product
}

// SearchProductsHandler handles product search query
type SearchProductsHandler struct {
	repo domain.ProductRepository
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(repo domain.ProductRepository) *SearchProductsHandler {
	return &SearchProductsHandler{repo: repo}
}

// Handle performs a full scan and keeps products whose stored name contains
// the lowercased term. No ranking; store iteration order is preserved.
func (h *SearchProductsHandler) Handle(query SearchProductsQuery) (*SearchResult, error) {
	term := strings.ToLower(strings.TrimSpace(query.Term))

	all, err := h.repo.FindAll()
	if err != nil {
		return nil, err
	}

	matches := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if strings.Contains(p.Name, term) {
			matches = append(matches, p)
		}
	}

	return &SearchResult{Term: term, Products: matches}, nil
}
