package entity

import (
	"gorm.io/gorm"
)

// Reservation is the archive row written when a booking submission settles.
type Reservation struct {
	gorm.Model
	ConfirmationID string `json:"confirmationId" gorm:"uniqueIndex"`

	FullName      string `json:"fullName"`
	EmailAddress  string `json:"emailAddress"`
	ContactNumber string `json:"contactNumber"`
	Occasion      string `json:"occasion"`

	GuestCount      int    `json:"guestCount"`
	ReservationDate string `json:"reservationDate"`
	ReservationTime string `json:"reservationTime"`
	SpecialRequests string `json:"specialRequests"`
}
