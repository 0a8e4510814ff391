package query

import (
	"github.com/jevonx/farmers-market/internal/farm/domain"
)

// ListFarmsQuery represents the query to list all farms
type ListFarmsQuery struct{}

// ListFarmsHandler handles list farms query
type ListFarmsHandler struct {
	repo domain.FarmRepository
}

// NewListFarmsHandler creates a new list farms handler
func NewListFarmsHandler(repo domain.FarmRepository) *ListFarmsHandler {
	return &ListFarmsHandler{repo: repo}
}

// Handle returns every farm, unfiltered and unpaginated.
func (h *ListFarmsHandler) Handle(ListFarmsQuery) ([]domain.Farm, error) {
	return h.repo.FindAll()
}
