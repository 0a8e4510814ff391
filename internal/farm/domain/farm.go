package domain

import (
	"strings"
	"time"
)

// Farm represents the farm entity
type Farm struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Farm) TableName() string {
	return "farms"
}

// Location renders the structured location value for display.
func (f *Farm) Location() string {
	switch {
	case f.City != "" && f.State != "":
		return f.City + ", " + f.State
	case f.City != "":
		return f.City
	default:
		return f.State
	}
}

// DisplayName returns the farm name with the first letter capitalized.
func (f *Farm) DisplayName() string {
	if f.Name == "" {
		return ""
	}
	return strings.ToUpper(f.Name[:1]) + f.Name[1:]
}

// FarmRepository defines the contract for farm data access
type FarmRepository interface {
	Create(farm *Farm) error
	FindByID(id uint) (*Farm, error)
	FindByName(name string) (*Farm, error)
	FindAll() ([]Farm, error)
	Update(farm *Farm) error
	Count() (int64, error)
}
