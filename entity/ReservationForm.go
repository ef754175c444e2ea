package entity

// Occasion values match the booking form's select options.
const (
	OccasionNone         = "none"
	OccasionBirthday     = "birthday"
	OccasionAnniversary  = "anniversary"
	OccasionBusiness     = "business"
	OccasionCasualDining = "casualDining"
)

// ReservationForm holds the raw booking field values. Contact number,
// occasion and special requests are always optional.
type ReservationForm struct {
	FullName     string `json:"fullName" validate:"notblank"`
	EmailAddress string `json:"emailAddress" validate:"notblank,emailish"`

	ContactNumber string `json:"contactNumber"`
	Occasion      string `json:"occasion" validate:"omitempty,oneof=none birthday anniversary business casualDining"`

	GuestCount      int    `json:"guestCount" validate:"min=1,max=20"`
	ReservationDate string `json:"reservationDate" validate:"required,datetime=2006-01-02,notpast"`
	ReservationTime string `json:"reservationTime" validate:"required"`

	SpecialRequests string `json:"specialRequests"`
}
