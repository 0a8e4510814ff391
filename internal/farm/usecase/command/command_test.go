package command

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jevonx/farmers-market/internal/apperr"
	"github.com/jevonx/farmers-market/internal/farm/domain"
)

type memFarmRepo struct {
	farms []domain.Farm
}

func (r *memFarmRepo) Create(f *domain.Farm) error {
	f.ID = uint(len(r.farms) + 1)
	r.farms = append(r.farms, *f)
	return nil
}

func (r *memFarmRepo) FindByID(id uint) (*domain.Farm, error) {
	for i := range r.farms {
		if r.farms[i].ID == id {
			f := r.farms[i]
			return &f, nil
		}
	}
	return nil, apperr.NewNotFound("farm", strconv.FormatUint(uint64(id), 10))
}

func (r *memFarmRepo) FindByName(name string) (*domain.Farm, error) {
	for i := range r.farms {
		if r.farms[i].Name == name {
			f := r.farms[i]
			return &f, nil
		}
	}
	return nil, apperr.NewNotFound("farm", name)
}

func (r *memFarmRepo) FindAll() ([]domain.Farm, error) {
	return append([]domain.Farm(nil), r.farms...), nil
}

func (r *memFarmRepo) Update(f *domain.Farm) error {
	for i := range r.farms {
		if r.farms[i].ID == f.ID {
			r.farms[i] = *f
			return nil
		}
	}
	return apperr.NewNotFound("farm", strconv.FormatUint(uint64(f.ID), 10))
}

func (r *memFarmRepo) Count() (int64, error) { return int64(len(r.farms)), nil }

func TestCreateFarm(t *testing.T) {
	t.Run("persists farm with name as submitted", func(t *testing.T) {
		repo := &memFarmRepo{}
		h := NewCreateFarmHandler(repo)

		f, err := h.Handle(CreateFarmCommand{
			Name:        "  Sunny Acres ",
			Email:       "hello@sunnyacres.example",
			Description: "Family owned since 1950",
			City:        "Madison",
			State:       "WI",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sunny Acres", f.Name, "casing survives, surrounding space does not")
		assert.Equal(t, "Sunny Acres", f.DisplayName())
		assert.Equal(t, "Madison, WI", f.Location())
		require.Len(t, repo.farms, 1)
	})

	t.Run("only name is required", func(t *testing.T) {
		h := NewCreateFarmHandler(&memFarmRepo{})

		f, err := h.Handle(CreateFarmCommand{Name: "bare farm"})
		require.NoError(t, err)
		assert.Empty(t, f.Email)
		assert.Empty(t, f.Description)
	})

	t.Run("missing name fails validation", func(t *testing.T) {
		h := NewCreateFarmHandler(&memFarmRepo{})

		_, err := h.Handle(CreateFarmCommand{Name: "   "})
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestUpdateDescription(t *testing.T) {
	seed := func(t *testing.T) *memFarmRepo {
		t.Helper()
		repo := &memFarmRepo{}
		require.NoError(t, repo.Create(&domain.Farm{Name: "sunny acres", Description: "old text"}))
		return repo
	}

	t.Run("trims and overwrites", func(t *testing.T) {
		repo := seed(t)
		h := NewUpdateDescriptionHandler(repo)

		f, err := h.Handle(UpdateDescriptionCommand{ID: 1, Description: "  fresh paragraph  "})
		require.NoError(t, err)
		assert.Equal(t, "fresh paragraph", f.Description)
		assert.Equal(t, "fresh paragraph", repo.farms[0].Description)
	})

	t.Run("empty string is a valid overwrite", func(t *testing.T) {
		repo := seed(t)
		h := NewUpdateDescriptionHandler(repo)

		f, err := h.Handle(UpdateDescriptionCommand{ID: 1, Description: "   "})
		require.NoError(t, err)
		assert.Equal(t, "", f.Description)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		h := NewUpdateDescriptionHandler(&memFarmRepo{})

		_, err := h.Handle(UpdateDescriptionCommand{ID: 9, Description: "x"})
		assert.True(t, apperr.IsNotFound(err))
	})
}
