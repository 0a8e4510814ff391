package query

import (
	"github.com/jevonx/farmers-market/internal/apperr"
	"github.com/jevonx/farmers-market/internal/farm/domain"
)

// GetFarmQuery represents the query to get a farm by ID
type GetFarmQuery struct {
	ID uint
}

// GetFarmHandler handles get farm query
type GetFarmHandler struct {
	repo domain.FarmRepository
}

// NewGetFarmHandler creates a new get farm handler
func NewGetFarmHandler(repo domain.FarmRepository) *GetFarmHandler {
	return &GetFarmHandler{repo: repo}
}

// Handle executes the get farm query
func (h *GetFarmHandler) Handle(query GetFarmQuery) (*domain.Farm, error) {
	if query.ID == 0 {
		return nil, apperr.NewNotFound("farm", "0")
	}
	return h.repo.FindByID(query.ID)
}
