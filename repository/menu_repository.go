package repository

import (
	"gorm.io/gorm"

	"github.com/CameronCarlyon/LittleLemon/entity"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// FindCategories returns the catalog in declared order, items included.
func (r *MenuRepository) FindCategories() ([]entity.MenuCategory, error) {
	var cats []entity.MenuCategory
	err := r.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("sort_order ASC").
		Find(&cats).Error
	return cats, err
}

func (r *MenuRepository) FindItemByName(name string) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.Where("item_name = ?", name).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}
