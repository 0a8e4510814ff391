package repository

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/jevonx/farmers-market/internal/apperr"
	"github.com/jevonx/farmers-market/internal/product/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return apperr.NewPersistence("create product", err)
	}
	return nil
}

func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Preload("Farm").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("product", strconv.FormatUint(uint64(id), 10))
		}
		return nil, apperr.NewPersistence("find product", err)
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Preload("Farm").Find(&products).Error
	if err != nil {
		return nil, apperr.NewPersistence("list products", err)
	}
	return products, nil
}

func (r *GormProductRepository) FindByCategory(category string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Preload("Farm").Where("category = ?", category).Find(&products).Error
	if err != nil {
		return nil, apperr.NewPersistence("list products by category", err)
	}
	return products, nil
}

func (r *GormProductRepository) FindByFarm(farmID uint) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Preload("Farm").Where("farm_id = ?", farmID).Find(&products).Error
	if err != nil {
		return nil, apperr.NewPersistence("list products by farm", err)
	}
	return products, nil
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		return apperr.NewPersistence("update product", err)
	}
	return nil
}

func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).Count(&count).Error
	if err != nil {
		return 0, apperr.NewPersistence("count products", err)
	}
	return count, nil
}
