package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jevonx/farmers-market/internal/apperr"
	farmdomain "github.com/jevonx/farmers-market/internal/farm/domain"
	"github.com/jevonx/farmers-market/internal/product/domain"
)

func validCreateCommand() CreateProductCommand {
	return CreateProductCommand{
		Name:     "Gala Apple",
		Price:    floatPtr(2.5),
		Unit:     domain.UnitItem,
		Qty:      10,
		Category: domain.CategoryFruit,
	}
}

func TestCreateProduct(t *testing.T) {
	t.Run("persists normalized valid product", func(t *testing.T) {
		repo := &fakeProductRepo{}
		h := NewCreateProductHandler(repo, &fakeFarmRepo{}, &stubImageLookup{}, time.Second)

		p, err := h.Handle(context.Background(), validCreateCommand())
		require.NoError(t, err)

		assert.Equal(t, "gala apple", p.Name)
		assert.Equal(t, "Gala apple", p.DisplayName())
		assert.Equal(t, 2.5, p.Price)
		assert.Equal(t, 10, p.Qty)
		assert.True(t, domain.ValidUnit(p.Unit))
		assert.True(t, domain.ValidCategory(p.Category))
		assert.Equal(t, float64(1), p.Size, "size defaults to 1 when unset")
		assert.False(t, p.CreatedAt.IsZero())
		require.Len(t, repo.products, 1)
	})

	t.Run("rejects unit outside the enumeration", func(t *testing.T) {
		h := NewCreateProductHandler(&fakeProductRepo{}, &fakeFarmRepo{}, &stubImageLookup{}, time.Second)

		cmd := validCreateCommand()
		cmd.Unit = "gallon"
		_, err := h.Handle(context.Background(), cmd)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("rejects category outside the enumeration", func(t *testing.T) {
		h := NewCreateProductHandler(&fakeProductRepo{}, &fakeFarmRepo{}, &stubImageLookup{}, time.Second)

		cmd := validCreateCommand()
		cmd.Category = "meat"
		_, err := h.Handle(context.Background(), cmd)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("rejects missing name", func(t *testing.T) {
		h := NewCreateProductHandler(&fakeProductRepo{}, &fakeFarmRepo{}, &stubImageLookup{}, time.Second)

		cmd := validCreateCommand()
		cmd.Name = "  "
		_, err := h.Handle(context.Background(), cmd)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("rejects missing price", func(t *testing.T) {
		repo := &fakeProductRepo{}
		h := NewCreateProductHandler(repo, &fakeFarmRepo{}, &stubImageLookup{}, time.Second)

		cmd := validCreateCommand()
		cmd.Price = nil
		_, err := h.Handle(context.Background(), cmd)
		assert.True(t, apperr.IsValidation(err))
		assert.Empty(t, repo.products)
	})

	t.Run("accepts an explicit zero price", func(t *testing.T) {
		h := NewCreateProductHandler(&fakeProductRepo{}, &fakeFarmRepo{}, &stubImageLookup{}, time.Second)

		cmd := validCreateCommand()
		cmd.Price = floatPtr(0)
		p, err := h.Handle(context.Background(), cmd)
		require.NoError(t, err)
		assert.Zero(t, p.Price)
	})

	t.Run("rejects negative price and qty", func(t *testing.T) {
		h := NewCreateProductHandler(&fakeProductRepo{}, &fakeFarmRepo{}, &stubImageLookup{}, time.Second)

		cmd := validCreateCommand()
		cmd.Price = floatPtr(-1)
		_, err := h.Handle(context.Background(), cmd)
		assert.True(t, apperr.IsValidation(err))

		cmd = validCreateCommand()
		cmd.Qty = -3
		_, err = h.Handle(context.Background(), cmd)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("resolves farm by exact name", func(t *testing.T) {
		farms := &fakeFarmRepo{}
		require.NoError(t, farms.Create(&farmdomain.Farm{Name: "sunny acres"}))

		h := NewCreateProductHandler(&fakeProductRepo{}, farms, &stubImageLookup{}, time.Second)

		cmd := validCreateCommand()
		cmd.FarmName = "Sunny Acres"
		p, err := h.Handle(context.Background(), cmd)
		require.NoError(t, err)
		require.NotNil(t, p.FarmID)
		assert.Equal(t, farms.farms[0].ID, *p.FarmID)
	})

	t.Run("unknown farm name leaves the reference absent", func(t *testing.T) {
		h := NewCreateProductHandler(&fakeProductRepo{}, &fakeFarmRepo{}, &stubImageLookup{}, time.Second)

		cmd := validCreateCommand()
		cmd.FarmName = "nowhere farm"
		p, err := h.Handle(context.Background(), cmd)
		require.NoError(t, err)
		assert.Nil(t, p.FarmID)
	})

	t.Run("propagates persistence failure", func(t *testing.T) {
		repo := &fakeProductRepo{createErr: apperr.NewPersistence("create product", errors.New("store down"))}
		h := NewCreateProductHandler(repo, &fakeFarmRepo{}, &stubImageLookup{}, time.Second)

		_, err := h.Handle(context.Background(), validCreateCommand())
		assert.True(t, apperr.IsPersistence(err))
	})
}

func TestCreateProduct_Enrichment(t *testing.T) {
	t.Run("sets image link when absent", func(t *testing.T) {
		h := NewCreateProductHandler(&fakeProductRepo{}, &fakeFarmRepo{}, &stubImageLookup{url: "https://img.example/apple.jpg"}, time.Second)

		p, err := h.Handle(context.Background(), validCreateCommand())
		require.NoError(t, err)
		assert.Equal(t, "https://img.example/apple.jpg", p.ImageLink)
	})

	t.Run("overwrites stale image link", func(t *testing.T) {
		h := NewCreateProductHandler(&fakeProductRepo{}, &fakeFarmRepo{}, &stubImageLookup{url: "https://img.example/fresh.jpg"}, time.Second)

		cmd := validCreateCommand()
		cmd.ImageLink = "https://img.example/stale.jpg"
		p, err := h.Handle(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, "https://img.example/fresh.jpg", p.ImageLink)
	})

	t.Run("lookup failure is absorbed", func(t *testing.T) {
		repo := &fakeProductRepo{}
		h := NewCreateProductHandler(repo, &fakeFarmRepo{}, &stubImageLookup{err: errors.New("rate limited")}, time.Second)

		cmd := validCreateCommand()
		cmd.ImageLink = "https://img.example/existing.jpg"
		p, err := h.Handle(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, "https://img.example/existing.jpg", p.ImageLink)
		require.Len(t, repo.products, 1)
	})

	t.Run("empty lookup result keeps existing link", func(t *testing.T) {
		h := NewCreateProductHandler(&fakeProductRepo{}, &fakeFarmRepo{}, &stubImageLookup{url: ""}, time.Second)

		cmd := validCreateCommand()
		cmd.ImageLink = "https://img.example/existing.jpg"
		p, err := h.Handle(context.Background(), cmd)
		require.NoError(t, err)
		assert.Equal(t, "https://img.example/existing.jpg", p.ImageLink)
	})

	t.Run("nil lookup client skips enrichment", func(t *testing.T) {
		h := NewCreateProductHandler(&fakeProductRepo{}, &fakeFarmRepo{}, nil, time.Second)

		p, err := h.Handle(context.Background(), validCreateCommand())
		require.NoError(t, err)
		assert.Empty(t, p.ImageLink)
	})
}
