//go:build wireinject
// +build wireinject

package product

import (
	"time"

	"github.com/google/wire"
	"gorm.io/gorm"

	farmdomain "github.com/jevonx/farmers-market/internal/farm/domain"
	farmrepository "github.com/jevonx/farmers-market/internal/farm/repository"
	"github.com/jevonx/farmers-market/internal/product/delivery/http"
	"github.com/jevonx/farmers-market/internal/product/domain"
	"github.com/jevonx/farmers-market/internal/product/repository"
	"github.com/jevonx/farmers-market/internal/product/usecase/command"
	"github.com/jevonx/farmers-market/internal/product/usecase/query"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

// ProvideFarmRepository provides the farm repository used to resolve farm
// names at creation
func ProvideFarmRepository(db *gorm.DB) farmdomain.FarmRepository {
	return farmrepository.NewGormFarmRepository(db)
}

// Command Handlers Providers
func ProvideCreateProductHandler(repo domain.ProductRepository, farms farmdomain.FarmRepository, images domain.ImageLookup, timeout time.Duration) *command.CreateProductHandler {
	return command.NewCreateProductHandler(repo, farms, images, timeout)
}

func ProvideUpdateProductHandler(repo domain.ProductRepository) *command.UpdateProductHandler {
	return command.NewUpdateProductHandler(repo)
}

// Query Handlers Providers
func ProvideGetProductHandler(repo domain.ProductRepository) *query.GetProductHandler {
	return query.NewGetProductHandler(repo)
}

func ProvideListProductsHandler(repo domain.ProductRepository) *query.ListProductsHandler {
	return query.NewListProductsHandler(repo)
}

func ProvideSearchProductsHandler(repo domain.ProductRepository) *query.SearchProductsHandler {
	return query.NewSearchProductsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideFarmRepository,
)

var HandlerSet = wire.NewSet(
	ProvideCreateProductHandler,
	ProvideUpdateProductHandler,
	ProvideGetProductHandler,
	ProvideListProductsHandler,
	ProvideSearchProductsHandler,
)

// InitializeHTTPHandler initializes the product HTTP handler with all
// dependencies
func InitializeHTTPHandler(db *gorm.DB, images domain.ImageLookup, timeout time.Duration) (*http.ProductHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewProductHandlerWithDI,
	)
	return nil, nil
}
