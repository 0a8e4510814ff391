package command

import (
	"strings"
	"time"

	"github.com/jevonx/farmers-market/internal/apperr"
	"github.com/jevonx/farmers-market/internal/farm/domain"
)

// UpdateDescriptionCommand overwrites a farm's description. The empty string
// is a valid overwrite.
type UpdateDescriptionCommand struct {
	ID          uint
	Description string
}

// UpdateDescriptionHandler handles farm description update command
type UpdateDescriptionHandler struct {
	repo domain.FarmRepository
}

// NewUpdateDescriptionHandler creates a new update description handler
func NewUpdateDescriptionHandler(repo domain.FarmRepository) *UpdateDescriptionHandler {
	return &UpdateDescriptionHandler{repo: repo}
}

// Handle trims the new description and overwrites the stored one unconditionally.
func (h *UpdateDescriptionHandler) Handle(cmd UpdateDescriptionCommand) (*domain.Farm, error) {
	if cmd.ID == 0 {
		return nil, apperr.NewNotFound("farm", "0")
	}

	farm, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	farm.Description = strings.TrimSpace(cmd.Description)
	farm.UpdatedAt = time.Now()

	if err := h.repo.Update(farm); err != nil {
		return nil, err
	}

	return farm, nil
}
