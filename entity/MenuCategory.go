package entity

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	CategoryName string `json:"categoryName" gorm:"uniqueIndex"`
	// SortOrder preserves the declared order of categories on the menu page.
	SortOrder int `json:"sortOrder"`

	Items []MenuItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
