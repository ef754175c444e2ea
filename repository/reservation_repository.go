package repository

import (
	"gorm.io/gorm"

	"github.com/CameronCarlyon/LittleLemon/entity"
)

type ReservationRepository struct {
	DB *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{DB: db}
}

func (r *ReservationRepository) CreateReservation(res *entity.Reservation) error {
	return r.DB.Create(res).Error
}

func (r *ReservationRepository) GetByConfirmationID(id string) (*entity.Reservation, error) {
	var res entity.Reservation
	err := r.DB.Where("confirmation_id = ?", id).First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}
