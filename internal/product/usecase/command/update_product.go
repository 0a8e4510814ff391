package command

import (
	"time"

	"github.com/jevonx/farmers-market/internal/apperr"
	"github.com/jevonx/farmers-market/internal/product/domain"
)

// UpdateProductCommand represents a partial update of price and/or qty. Nil
// fields are left untouched.
type UpdateProductCommand struct {
	ID    uint
	Price *float64
	Qty   *int
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command. When neither field is provided
// the operation is a no-op that still succeeds and reports the stored record.
// The image link is not refreshed on update; enrichment fires at creation only.
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID == 0 {
		return nil, apperr.NewNotFound("product", "0")
	}

	if cmd.Price != nil && *cmd.Price < 0 {
		return nil, apperr.NewValidation("price", "must not be negative")
	}
	if cmd.Qty != nil && *cmd.Qty < 0 {
		return nil, apperr.NewValidation("qty", "must not be negative")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	changed := false
	if cmd.Price != nil {
		product.Price = *cmd.Price
		changed = true
	}
	if cmd.Qty != nil {
		product.Qty = *cmd.Qty
		changed = true
	}

	if !changed {
		return product, nil
	}

	product.UpdatedAt = time.Now()
	if err := h.repo.Update(product); err != nil {
		return nil, err
	}

	return product, nil
}
