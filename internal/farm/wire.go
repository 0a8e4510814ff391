//go:build wireinject
// +build wireinject

package farm

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/jevonx/farmers-market/internal/farm/delivery/http"
	"github.com/jevonx/farmers-market/internal/farm/domain"
	"github.com/jevonx/farmers-market/internal/farm/repository"
	"github.com/jevonx/farmers-market/internal/farm/usecase/command"
	"github.com/jevonx/farmers-market/internal/farm/usecase/query"
)

// ProvideFarmRepository provides the farm repository
func ProvideFarmRepository(db *gorm.DB) domain.FarmRepository {
	return repository.NewGormFarmRepository(db)
}

// Command Handlers Providers
func ProvideCreateFarmHandler(repo domain.FarmRepository) *command.CreateFarmHandler {
	return command.NewCreateFarmHandler(repo)
}

func ProvideUpdateDescriptionHandler(repo domain.FarmRepository) *command.UpdateDescriptionHandler {
	return command.NewUpdateDescriptionHandler(repo)
}

// Query Handlers Providers
func ProvideGetFarmHandler(repo domain.FarmRepository) *query.GetFarmHandler {
	return query.NewGetFarmHandler(repo)
}

func ProvideListFarmsHandler(repo domain.FarmRepository) *query.ListFarmsHandler {
	return query.NewListFarmsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideFarmRepository,
)

var HandlerSet = wire.NewSet(
	ProvideCreateFarmHandler,
	ProvideUpdateDescriptionHandler,
	ProvideGetFarmHandler,
	ProvideListFarmsHandler,
)

// InitializeHTTPHandler initializes the farm HTTP handler with all
// dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.FarmHandler, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		http.NewFarmHandlerWithDI,
	)
	return nil, nil
}
