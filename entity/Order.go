package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is the archive row written when a checkout submission settles.
// It is a snapshot of the form plus the pricing at the moment of submission;
// nothing reads it back for correctness.
type Order struct {
	gorm.Model
	OrderNumber string `json:"orderNumber" gorm:"uniqueIndex"`

	FullName     string `json:"fullName"`
	EmailAddress string `json:"emailAddress"`

	DeliveryMethod string `json:"deliveryMethod"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`

	Subtotal      decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2)"`
	ServiceFee    decimal.Decimal `json:"serviceFee" gorm:"type:decimal(10,2)"`
	DeliveryFee   decimal.Decimal `json:"deliveryFee" gorm:"type:decimal(10,2)"`
	SalesTax      decimal.Decimal `json:"salesTax" gorm:"type:decimal(10,2)"`
	RestaurantTax decimal.Decimal `json:"restaurantTax" gorm:"type:decimal(10,2)"`
	Tip           decimal.Decimal `json:"tip" gorm:"type:decimal(10,2)"`
	Total         decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`

	EstimatedReady time.Time `json:"estimatedReady"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
