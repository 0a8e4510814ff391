package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	farmhttp "github.com/jevonx/farmers-market/internal/farm/delivery/http"
	farmrepository "github.com/jevonx/farmers-market/internal/farm/repository"
	farmcmd "github.com/jevonx/farmers-market/internal/farm/usecase/command"
	farmquery "github.com/jevonx/farmers-market/internal/farm/usecase/query"
	"github.com/jevonx/farmers-market/internal/imagesearch"
	producthttp "github.com/jevonx/farmers-market/internal/product/delivery/http"
	productrepository "github.com/jevonx/farmers-market/internal/product/repository"
	productcmd "github.com/jevonx/farmers-market/internal/product/usecase/command"
	productquery "github.com/jevonx/farmers-market/internal/product/usecase/query"
	"github.com/jevonx/farmers-market/internal/web"
	"github.com/jevonx/farmers-market/pkg/config"
	"github.com/jevonx/farmers-market/pkg/database"
	"github.com/jevonx/farmers-market/pkg/logger"
	"github.com/jevonx/farmers-market/pkg/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("farmers-market", true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init("farmers-market", cfg.Development)
	logger.SetLevel(cfg.LogLevel)

	if err := run(cfg); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run(cfg *config.Config) error {
	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	// Repositories
	productRepo := productrepository.NewGormProductRepository(db)
	farmRepo := farmrepository.NewGormFarmRepository(db)
	if err := farmRepo.AutoMigrate(); err != nil {
		return err
	}
	if err := productRepo.AutoMigrate(); err != nil {
		return err
	}

	images := imagesearch.NewClient(cfg.ImageSearch.Endpoint, cfg.ImageSearch.APIKey, cfg.ImageSearch.Timeout)

	// Product use cases
	createProduct := productcmd.NewCreateProductHandler(productRepo, farmRepo, images, cfg.ImageSearch.Timeout)
	updateProduct := productcmd.NewUpdateProductHandler(productRepo)
	getProduct := productquery.NewGetProductHandler(productRepo)
	listProducts := productquery.NewListProductsHandler(productRepo)
	searchProducts := productquery.NewSearchProductsHandler(productRepo)

	// Farm use cases
	createFarm := farmcmd.NewCreateFarmHandler(farmRepo)
	updateFarm := farmcmd.NewUpdateDescriptionHandler(farmRepo)
	getFarm := farmquery.NewGetFarmHandler(farmRepo)
	listFarms := farmquery.NewListFarmsHandler(farmRepo)

	renderer, err := view.NewTemplateRenderer(cfg.ViewsGlob)
	if err != nil {
		return err
	}

	router := mux.NewRouter()

	// Machine-facing API plus metrics
	productHandler := producthttp.NewProductHandlerWithDI(
		createProduct, updateProduct, getProduct, listProducts, searchProducts, productRepo,
	)
	productHandler.RegisterRoutes(router)
	farmhttp.NewFarmHandlerWithDI(createFarm, updateFarm, getFarm, listFarms).RegisterRoutes(router)
	router.Handle("/metrics", promhttp.Handler())

	// Static assets for the rendered pages
	router.PathPrefix("/images/").Handler(
		http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.StaticDir+"/images"))),
	)

	// Server-rendered pages, catch-all 404 included
	webHandler := web.NewHandler(
		createProduct, updateProduct, getProduct, listProducts, searchProducts,
		createFarm, updateFarm, getFarm, listFarms,
		renderer,
	)
	webHandler.RegisterRoutes(router)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      c.Handler(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Logger.Info().Str("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Logger.Info().Str("signal", sig.String()).Msg("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
