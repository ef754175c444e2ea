package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/CameronCarlyon/LittleLemon/entity"
)

// ReservationConfirmation is the immutable handoff to the booking success
// page.
type ReservationConfirmation struct {
	ConfirmationID string
	BookedAt       time.Time

	Form entity.ReservationForm
}

// ReservationSession mirrors CheckoutSession for the booking form. Picking
// a date asks the availability collaborator for that day's slots.
type ReservationSession struct {
	mu sync.Mutex

	times     TimeFetcher
	submitter ReservationSubmitter
	log       zerolog.Logger

	form           entity.ReservationForm
	availableTimes []string

	visible   FieldErrors
	attempted bool
	inFlight  bool

	settleDelay time.Duration
	now         func() time.Time
}

func NewReservationSession(times TimeFetcher, submitter ReservationSubmitter, settleDelay time.Duration, log zerolog.Logger) *ReservationSession {
	return &ReservationSession{
		times:       times,
		submitter:   submitter,
		log:         log.With().Str("component", "reservations").Logger(),
		form:        entity.ReservationForm{Occasion: entity.OccasionNone},
		visible:     FieldErrors{},
		settleDelay: settleDelay,
		now:         time.Now,
	}
}

func (s *ReservationSession) Form() entity.ReservationForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *ReservationSession) SetField(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch field {
	case "fullName":
		s.form.FullName = value
	case "emailAddress":
		s.form.EmailAddress = value
	case "contactNumber":
		s.form.ContactNumber = value
	case "occasion":
		s.form.Occasion = value
	case "reservationTime":
		s.form.ReservationTime = value
	case "specialRequests":
		s.form.SpecialRequests = value
	default:
		return
	}
	delete(s.visible, field)
}

func (s *ReservationSession) SetGuestCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.GuestCount = n
	delete(s.visible, "guestCount")
}

// SelectDate sets the date and refreshes the day's available time slots.
// The previous time selection is discarded since it belonged to another
// day's slot list.
func (s *ReservationSession) SelectDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.ReservationDate = date
	s.form.ReservationTime = ""
	delete(s.visible, "reservationDate")
	delete(s.visible, "reservationTime")

	s.availableTimes = nil
	if d, err := time.Parse("2006-01-02", date); err == nil {
		s.availableTimes = s.times.TimesFor(d)
	}
}

func (s *ReservationSession) AvailableTimes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.availableTimes))
	copy(out, s.availableTimes)
	return out
}

func (s *ReservationSession) FieldValid(field string) bool {
	s.mu.Lock()
	form := s.form
	s.mu.Unlock()
	return !fieldErrors(form).Has(field)
}

func (s *ReservationSession) FormValid() bool {
	s.mu.Lock()
	form := s.form
	s.mu.Unlock()
	return len(fieldErrors(form)) == 0
}

func (s *ReservationSession) VisibleError(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attempted {
		return ""
	}
	return s.visible[field]
}

func (s *ReservationSession) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Submit validates and settles the booking. A time outside the fetched
// slot list is accepted but logged; the form never offers one, so hitting
// this means the caller bypassed the slot dropdown.
func (s *ReservationSession) Submit(ctx context.Context) (*ReservationConfirmation, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	s.attempted = true
	if errs := fieldErrors(s.form); len(errs) > 0 {
		s.visible = errs
		s.mu.Unlock()
		return nil, errs
	}
	s.visible = FieldErrors{}
	s.inFlight = true
	form := s.form
	offered := s.availableTimes
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if !contains(offered, form.ReservationTime) {
		s.log.Warn().
			Str("date", form.ReservationDate).
			Str("time", form.ReservationTime).
			Msg("reservation time is not an offered slot")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.settleDelay):
	}

	conf := &ReservationConfirmation{
		ConfirmationID: uuid.NewString(),
		BookedAt:       s.now(),
		Form:           form,
	}

	if err := s.submitter.SubmitReservation(ctx, conf); err != nil {
		s.log.Error().Err(err).Str("date", form.ReservationDate).Msg("reservation submission failed")
		return nil, fmt.Errorf("submit reservation: %w", err)
	}

	s.log.Info().
		Str("confirmationId", conf.ConfirmationID).
		Str("date", form.ReservationDate).
		Str("time", form.ReservationTime).
		Int("guests", form.GuestCount).
		Msg("reservation booked")
	return conf, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
