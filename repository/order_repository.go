package repository

import (
	"gorm.io/gorm"

	"github.com/CameronCarlyon/LittleLemon/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateOrder archives a settled order with its line items.
func (r *OrderRepository) CreateOrder(o *entity.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(o).Error
	})
}

func (r *OrderRepository) GetByOrderNumber(number string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").Where("order_number = ?", number).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}
