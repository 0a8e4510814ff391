package command

import (
	"context"
	"strconv"
	"strings"

	"github.com/jevonx/farmers-market/internal/apperr"
	farmdomain "github.com/jevonx/farmers-market/internal/farm/domain"
	"github.com/jevonx/farmers-market/internal/product/domain"
)

type fakeProductRepo struct {
	products  []domain.Product
	createErr error
	updateErr error
}

func (r *fakeProductRepo) Create(p *domain.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	p.ID = uint(len(r.products) + 1)
	r.products = append(r.products, *p)
	return nil
}

func (r *fakeProductRepo) FindByID(id uint) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, apperr.NewNotFound("product", strconv.FormatUint(uint64(id), 10))
}

func (r *fakeProductRepo) FindAll() ([]domain.Product, error) {
	return append([]domain.Product(nil), r.products...), nil
}

func (r *fakeProductRepo) FindByCategory(category string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) FindByFarm(farmID uint) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.FarmID != nil && *p.FarmID == farmID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *domain.Product) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = *p
			return nil
		}
	}
	return apperr.NewNotFound("product", strconv.FormatUint(uint64(p.ID), 10))
}

func (r *fakeProductRepo) Count() (int64, error) {
	return int64(len(r.products)), nil
}

type fakeFarmRepo struct {
	farms []farmdomain.Farm
}

func (r *fakeFarmRepo) Create(f *farmdomain.Farm) error {
	f.ID = uint(len(r.farms) + 1)
	r.farms = append(r.farms, *f)
	return nil
}

func (r *fakeFarmRepo) FindByID(id uint) (*farmdomain.Farm, error) {
	for i := range r.farms {
		if r.farms[i].ID == id {
			f := r.farms[i]
			return &f, nil
		}
	}
	return nil, apperr.NewNotFound("farm", strconv.FormatUint(uint64(id), 10))
}

func (r *fakeFarmRepo) FindByName(name string) (*farmdomain.Farm, error) {
	for i := range r.farms {
		if strings.EqualFold(r.farms[i].Name, name) {
			f := r.farms[i]
			return &f, nil
		}
	}
	return nil, apperr.NewNotFound("farm", name)
}

func (r *fakeFarmRepo) FindAll() ([]farmdomain.Farm, error) {
	return append([]farmdomain.Farm(nil), r.farms...), nil
}

func (r *fakeFarmRepo) Update(f *farmdomain.Farm) error {
	for i := range r.farms {
		if r.farms[i].ID == f.ID {
			r.farms[i] = *f
			return nil
		}
	}
	return apperr.NewNotFound("farm", strconv.FormatUint(uint64(f.ID), 10))
}

func (r *fakeFarmRepo) Count() (int64, error) {
	return int64(len(r.farms)), nil
}

type stubImageLookup struct {
	url string
	err error
}

func (s *stubImageLookup) Lookup(ctx context.Context, query string) (string, error) {
	return s.url, s.err
}
