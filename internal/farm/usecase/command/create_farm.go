package command

import (
	"strings"
	"time"

	"github.com/jevonx/farmers-market/internal/apperr"
	"github.com/jevonx/farmers-market/internal/farm/domain"
)

// CreateFarmCommand represents the command to create a new farm
type CreateFarmCommand struct {
	Name        string
	Email       string
	Description string
	City        string
	State       string
}

// CreateFarmHandler handles farm creation command
type CreateFarmHandler struct {
	repo domain.FarmRepository
}

// NewCreateFarmHandler creates a new create farm handler
func NewCreateFarmHandler(repo domain.FarmRepository) *CreateFarmHandler {
	return &CreateFarmHandler{repo: repo}
}

// Handle executes the create farm command. Only the name is required; it is
// stored as submitted and matched case-insensitively on lookup.
func (h *CreateFarmHandler) Handle(cmd CreateFarmCommand) (*domain.Farm, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, apperr.NewValidation("name", "is required")
	}

	farm := &domain.Farm{
		Name:        name,
		Email:       strings.TrimSpace(cmd.Email),
		Description: cmd.Description,
		City:        cmd.City,
		State:       cmd.State,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.repo.Create(farm); err != nil {
		return nil, err
	}

	return farm, nil
}
