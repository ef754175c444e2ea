package entity

// CheckoutForm holds the raw checkout field values. Validity is a pure
// function of the values plus the delivery method: address and zip are only
// required for home delivery. City and state are prefilled and read-only.
type CheckoutForm struct {
	FullName     string `json:"fullName" validate:"notblank"`
	EmailAddress string `json:"emailAddress" validate:"notblank,emailish"`

	CardNumber string `json:"cardNumber" validate:"notblank"`
	ExpiryDate string `json:"expiryDate" validate:"notblank"`
	CVV        string `json:"cvv" validate:"notblank"`

	DeliveryMethod DeliveryMethod `json:"deliveryMethod" validate:"oneof=storePickup homeDelivery"`
	Address        string         `json:"address" validate:"required_if=DeliveryMethod homeDelivery"`
	City           string         `json:"city"`
	State          string         `json:"state"`
	Zip            string         `json:"zip" validate:"required_if=DeliveryMethod homeDelivery"`

	TermsAccepted bool `json:"termsAccepted" validate:"eq=true"`
}
