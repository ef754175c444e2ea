package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimeFetcher struct {
	slots []string
	calls []time.Time
}

func (f *fakeTimeFetcher) TimesFor(date time.Time) []string {
	f.calls = append(f.calls, date)
	return f.slots
}

type fakeReservationSubmitter struct {
	confs []*ReservationConfirmation
	err   error
}

func (f *fakeReservationSubmitter) SubmitReservation(_ context.Context, conf *ReservationConfirmation) error {
	if f.err != nil {
		return f.err
	}
	f.confs = append(f.confs, conf)
	return nil
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func newReservation(fetcher TimeFetcher, sub ReservationSubmitter) *ReservationSession {
	return NewReservationSession(fetcher, sub, 0, zerolog.Nop())
}

func fillValidReservation(s *ReservationSession) {
	s.SetField("fullName", "Grace Hopper")
	s.SetField("emailAddress", "grace@example.com")
	s.SetGuestCount(4)
	s.SelectDate(futureDate())
	s.SetField("reservationTime", "19:00")
}

func TestReservationFormValidity(t *testing.T) {
	s := newReservation(&fakeTimeFetcher{slots: []string{"19:00"}}, &fakeReservationSubmitter{})
	assert.False(t, s.FormValid())

	fillValidReservation(s)
	assert.True(t, s.FormValid())
}

func TestOptionalReservationFields(t *testing.T) {
	s := newReservation(&fakeTimeFetcher{slots: []string{"19:00"}}, &fakeReservationSubmitter{})
	fillValidReservation(s)

	// Contact number, occasion and special requests never gate validity.
	s.SetField("contactNumber", "")
	s.SetField("specialRequests", "")
	assert.True(t, s.FormValid())

	s.SetField("occasion", "anniversary")
	assert.True(t, s.FormValid())
	s.SetField("occasion", "not-a-thing")
	assert.False(t, s.FieldValid("occasion"))
}

func TestGuestCountBounds(t *testing.T) {
	s := newReservation(&fakeTimeFetcher{slots: []string{"19:00"}}, &fakeReservationSubmitter{})
	fillValidReservation(s)

	s.SetGuestCount(0)
	assert.False(t, s.FieldValid("guestCount"))
	s.SetGuestCount(21)
	assert.False(t, s.FieldValid("guestCount"))
	s.SetGuestCount(20)
	assert.True(t, s.FieldValid("guestCount"))
}

func TestPastDateIsInvalid(t *testing.T) {
	s := newReservation(&fakeTimeFetcher{slots: []string{"19:00"}}, &fakeReservationSubmitter{})
	fillValidReservation(s)

	s.SelectDate(time.Now().AddDate(0, 0, -1).Format("2006-01-02"))
	assert.False(t, s.FieldValid("reservationDate"))

	s.SelectDate(time.Now().Format("2006-01-02"))
	assert.True(t, s.FieldValid("reservationDate"))
}

func TestSelectDateFetchesSlotsAndResetsTime(t *testing.T) {
	fetcher := &fakeTimeFetcher{slots: []string{"17:30", "19:00"}}
	s := newReservation(fetcher, &fakeReservationSubmitter{})
	s.SetField("reservationTime", "19:00")

	s.SelectDate(futureDate())
	assert.Len(t, fetcher.calls, 1)
	assert.Equal(t, []string{"17:30", "19:00"}, s.AvailableTimes())
	assert.Empty(t, s.Form().ReservationTime)
}

func TestReservationErrorsOnlyVisibleAfterAttempt(t *testing.T) {
	s := newReservation(&fakeTimeFetcher{}, &fakeReservationSubmitter{})
	assert.Empty(t, s.VisibleError("fullName"))

	_, err := s.Submit(context.Background())
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.NotEmpty(t, s.VisibleError("fullName"))
	assert.NotEmpty(t, s.VisibleError("reservationTime"))

	s.SetField("fullName", "Grace")
	assert.Empty(t, s.VisibleError("fullName"))
}

func TestReservationSubmitArchivesAndConfirms(t *testing.T) {
	sub := &fakeReservationSubmitter{}
	s := newReservation(&fakeTimeFetcher{slots: []string{"19:00"}}, sub)
	fillValidReservation(s)

	conf, err := s.Submit(context.Background())
	require.NoError(t, err)
	require.Len(t, sub.confs, 1)
	assert.NotEmpty(t, conf.ConfirmationID)
	assert.Equal(t, "Grace Hopper", conf.Form.FullName)
	assert.Equal(t, "19:00", conf.Form.ReservationTime)
}

// The original never rejected a time outside the offered slots; the session
// accepts it too and only logs.
func TestUnofferedTimeStillSubmits(t *testing.T) {
	sub := &fakeReservationSubmitter{}
	s := newReservation(&fakeTimeFetcher{slots: []string{"17:00"}}, sub)
	fillValidReservation(s)
	s.SetField("reservationTime", "21:30")

	_, err := s.Submit(context.Background())
	assert.NoError(t, err)
	assert.Len(t, sub.confs, 1)
}

func TestReservationSubmitterFailureKeepsForm(t *testing.T) {
	s := newReservation(&fakeTimeFetcher{slots: []string{"19:00"}}, &fakeReservationSubmitter{err: errors.New("no tables")})
	fillValidReservation(s)

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Grace Hopper", s.Form().FullName)
	assert.False(t, s.Submitting())
}

func TestReservationDoubleSubmitRejected(t *testing.T) {
	s := NewReservationSession(&fakeTimeFetcher{slots: []string{"19:00"}}, &fakeReservationSubmitter{}, 200*time.Millisecond, zerolog.Nop())
	fillValidReservation(s)

	done := make(chan error, 1)
	go func() {
		_, err := s.Submit(context.Background())
		done <- err
	}()

	require.Eventually(t, s.Submitting, time.Second, 5*time.Millisecond)
	_, err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)
	require.NoError(t, <-done)
}
