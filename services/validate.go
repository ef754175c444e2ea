package services

import (
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Two-part email check, deliberately looser than full RFC 5322: something
// before an "@", and a domain containing a dot.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors under the form field keys, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterValidation("emailish", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	v.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		d, err := time.Parse("2006-01-02", fl.Field().String())
		if err != nil {
			return false
		}
		today := time.Now().Format("2006-01-02")
		return d.Format("2006-01-02") >= today
	})

	return v
}

// FieldErrors maps a form field key to a user-facing message. It is a
// value, not a Go error in the fatal sense: every entry is recoverable by
// editing the field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

func (e FieldErrors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func fieldErrors(form any) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"form": err.Error()}
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "fullName":
		return "Name is required"
	case "emailAddress":
		if fe.Tag() == "emailish" {
			return "Email is invalid"
		}
		return "Email is required"
	case "cardNumber":
		return "Card number is required"
	case "expiryDate":
		return "Expiry date is required"
	case "cvv":
		return "CVV is required"
	case "deliveryMethod":
		return "Please select a delivery method"
	case "address":
		return "Address is required for home delivery"
	case "zip":
		return "Zip code is required for home delivery"
	case "termsAccepted":
		return "You must accept the terms and conditions"
	case "guestCount":
		return "Number of guests must be between 1 and 20"
	case "reservationDate":
		return "Please choose a date from today onwards"
	case "reservationTime":
		return "Please select a time slot"
	case "occasion":
		return "Unknown occasion"
	}
	return "Invalid value"
}
