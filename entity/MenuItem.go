package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItem is immutable reference data; it is seeded once and only read.
type MenuItem struct {
	gorm.Model
	ItemName    string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Calories    int             `json:"calories"`

	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
	GlutenFree bool `json:"glutenFree"`

	// SortOrder preserves declaration order within the category.
	SortOrder int `json:"sortOrder"`

	MenuCategoryID uint         `json:"menuCategoryId"`
	MenuCategory   MenuCategory `json:"-"`
}
