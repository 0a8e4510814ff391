package repository

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/jevonx/farmers-market/internal/apperr"
	"github.com/jevonx/farmers-market/internal/farm/domain"
)

type GormFarmRepository struct {
	db *gorm.DB
}

func NewGormFarmRepository(db *gorm.DB) *GormFarmRepository {
	return &GormFarmRepository{db: db}
}

func (r *GormFarmRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Farm{})
}

func (r *GormFarmRepository) Create(farm *domain.Farm) error {
	if err := r.db.Create(farm).Error; err != nil {
		return apperr.NewPersistence("create farm", err)
	}
	return nil
}

func (r *GormFarmRepository) FindByID(id uint) (*domain.Farm, error) {
	var farm domain.Farm
	err := r.db.First(&farm, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("farm", strconv.FormatUint(uint64(id), 10))
		}
		return nil, apperr.NewPersistence("find farm", err)
	}
	return &farm, nil
}

// FindByName matches the stored name case-insensitively; names are persisted
// as submitted.
func (r *GormFarmRepository) FindByName(name string) (*domain.Farm, error) {
	var farm domain.Farm
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&farm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("farm", name)
		}
		return nil, apperr.NewPersistence("find farm by name", err)
	}
	return &farm, nil
}

func (r *GormFarmRepository) FindAll() ([]domain.Farm, error) {
	var farms []domain.Farm
	err := r.db.Find(&farms).Error
	if err != nil {
		return nil, apperr.NewPersistence("list farms", err)
	}
	return farms, nil
}

func (r *GormFarmRepository) Update(farm *domain.Farm) error {
	if err := r.db.Save(farm).Error; err != nil {
		return apperr.NewPersistence("update farm", err)
	}
	return nil
}

func (r *GormFarmRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Farm{}).Count(&count).Error
	if err != nil {
		return 0, apperr.NewPersistence("count farms", err)
	}
	return count, nil
}
