package domain

import (
	"context"
	"strings"
	"time"

	farmdomain "github.com/jevonx/farmers-market/internal/farm/domain"
)

// Measurement units a product can be sold in.
const (
	UnitOunce      = "ounce"
	UnitFluidOunce = "fluid-ounce"
	UnitPound      = "pound"
	UnitItem       = "item"
)

// Product categories.
const (
	CategoryFruit     = "fruit"
	CategoryVegetable = "vegetable"
	CategoryDairy     = "dairy"
)

// Units lists every allowed unit value.
var Units = []string{UnitOunce, UnitFluidOunce, UnitPound, UnitItem}

// Categories lists every allowed category value.
var Categories = []string{CategoryFruit, CategoryVegetable, CategoryDairy}

// ValidUnit reports whether unit is a member of the unit enumeration.
func ValidUnit(unit string) bool {
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}

// ValidCategory reports whether category is a member of the category enumeration.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Product represents a grocery product. Name is stored lowercase; Farm is a
// weak reference with no cascade behavior.
type Product struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	Name      string           `json:"name" gorm:"not null"`
	Price     float64          `json:"price" gorm:"not null"`
	Size      float64          `json:"size" gorm:"not null;default:1"`
	Unit      string           `json:"unit" gorm:"not null"`
	Qty       int              `json:"qty" gorm:"not null;default:0"`
	Category  string           `json:"category" gorm:"not null;index"`
	ImageLink string           `json:"image_link"`
	FarmID    *uint            `json:"farm_id" gorm:"index"`
	Farm      *farmdomain.Farm `json:"farm,omitempty" gorm:"foreignKey:FarmID"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// DisplayName returns the stored lowercase name with the first letter capitalized.
func (p *Product) DisplayName() string {
	if p.Name == "" {
		return ""
	}
	return strings.ToUpper(p.Name[:1]) + p.Name[1:]
}

// FarmName returns the display name of the associated farm, or empty when the
// reference is absent or unresolved.
func (p *Product) FarmName() string {
	if p.Farm == nil {
		return ""
	}
	return p.Farm.DisplayName()
}

// ProductRepository defines the contract for product data access. Find
// operations resolve the farm reference inline.
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindAll() ([]Product, error)
	FindByCategory(category string) ([]Product, error)
	FindByFarm(farmID uint) ([]Product, error)
	Update(product *Product) error
	Count() (int64, error)
}

// ImageLookup resolves a search term to a best-match stock image URL. An
// empty URL means no image is available; implementations carry their own
// request timeout.
type ImageLookup interface {
	Lookup(ctx context.Context, query string) (string, error)
}
