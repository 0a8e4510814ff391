package command

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jevonx/farmers-market/internal/apperr"
	farmdomain "github.com/jevonx/farmers-market/internal/farm/domain"
	"github.com/jevonx/farmers-market/internal/product/domain"
	"github.com/jevonx/farmers-market/pkg/logger"
)

// CreateProductCommand represents the command to create a new product. Price
// is a pointer so an absent submission is distinguishable from a free product.
type CreateProductCommand struct {
	Name      string   `validate:"required"`
	Price     *float64 `validate:"required,gte=0"`
	Size      float64  `validate:"gte=0"`
	Unit      string   `validate:"required,oneof=ounce fluid-ounce pound item"`
	Qty       int      `validate:"gte=0"`
	Category  string   `validate:"required,oneof=fruit vegetable dairy"`
	ImageLink string
	FarmName  string
}

// CreateProductHandler handles product creation as an explicit
// validate -> enrich -> persist pipeline.
type CreateProductHandler struct {
	repo     domain.ProductRepository
	farms    farmdomain.FarmRepository
	images   domain.ImageLookup
	validate *validator.Validate
	timeout  time.Duration
}

// NewCreateProductHandler creates a new create product handler. The timeout
// bounds the image lookup call during enrichment.
func NewCreateProductHandler(repo domain.ProductRepository, farms farmdomain.FarmRepository, images domain.ImageLookup, timeout time.Duration) *CreateProductHandler {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &CreateProductHandler{
		repo:     repo,
		farms:    farms,
		images:   images,
		validate: validator.New(),
		timeout:  timeout,
	}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	cmd.Name = strings.ToLower(strings.TrimSpace(cmd.Name))
	cmd.Unit = strings.ToLower(cmd.Unit)
	cmd.Category = strings.ToLower(cmd.Category)

	if err := h.validate.Struct(cmd); err != nil {
		var errs validator.ValidationErrors
		if ok := asValidationErrors(err, &errs); ok && len(errs) > 0 {
			return nil, apperr.NewValidation(strings.ToLower(errs[0].Field()), validationReason(errs[0]))
		}
		return nil, apperr.NewValidation("", err.Error())
	}

	product := &domain.Product{
		Name:      cmd.Name,
		Price:     *cmd.Price,
		Size:      cmd.Size,
		Unit:      cmd.Unit,
		Qty:       cmd.Qty,
		Category:  cmd.Category,
		ImageLink: cmd.ImageLink,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if product.Size == 0 {
		product.Size = 1
	}

	// An unknown farm name leaves the reference absent; it never fails the create.
	if name := strings.ToLower(strings.TrimSpace(cmd.FarmName)); name != "" {
		assigned, err := h.farms.FindByName(name)
		if err == nil && assigned != nil {
			product.FarmID = &assigned.ID
			product.Farm = assigned
		} else if err != nil && !apperr.IsNotFound(err) {
			logger.Warn(ctx).Err(err).Str("farm", name).Msg("Farm lookup failed, creating product without farm")
		}
	}

	h.enrich(ctx, product)

	if err := h.repo.Create(product); err != nil {
		return nil, err
	}

	return product, nil
}

// enrich fetches a stock photo URL for the product name and overwrites
// ImageLink when the current value is absent or stale. Lookup failures are
// absorbed: the product is persisted with whatever ImageLink it already had.
func (h *CreateProductHandler) enrich(ctx context.Context, product *domain.Product) {
	if h.images == nil {
		return
	}

	lookupCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	url, err := h.images.Lookup(lookupCtx, product.Name)
	if err != nil {
		logger.Warn(ctx).Err(err).Str("product", product.Name).Msg("Image lookup failed, keeping existing image link")
		return
	}
	if url == "" {
		return
	}
	if product.ImageLink == "" || product.ImageLink != url {
		product.ImageLink = url
	}
}
