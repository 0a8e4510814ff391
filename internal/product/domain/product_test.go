package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	farmdomain "github.com/jevonx/farmers-market/internal/farm/domain"
)

func TestValidUnit(t *testing.T) {
	for _, unit := range Units {
		assert.True(t, ValidUnit(unit), unit)
	}
	assert.False(t, ValidUnit("gallon"))
	assert.False(t, ValidUnit(""))
	assert.False(t, ValidUnit("Ounce"))
}

func TestValidCategory(t *testing.T) {
	for _, category := range Categories {
		assert.True(t, ValidCategory(category), category)
	}
	assert.False(t, ValidCategory("meat"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("Fruit"))
}

func TestProduct_DisplayName(t *testing.T) {
	p := Product{Name: "gala apple"}
	assert.Equal(t, "Gala apple", p.DisplayName())

	empty := Product{}
	assert.Equal(t, "", empty.DisplayName())
}

func TestProduct_FarmName(t *testing.T) {
	p := Product{Name: "milk"}
	assert.Equal(t, "", p.FarmName())

	p.Farm = &farmdomain.Farm{Name: "sunny acres"}
	assert.Equal(t, "Sunny acres", p.FarmName())
}
