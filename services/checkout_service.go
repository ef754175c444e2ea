package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/CameronCarlyon/LittleLemon/entity"
	"github.com/CameronCarlyon/LittleLemon/utils"
)

// ErrSubmitInFlight guards the single suspend point: a second submit while
// the first is still settling is rejected.
var ErrSubmitInFlight = errors.New("submission already in flight")

// OrderConfirmation is the immutable handoff to the success page: a copy of
// the form, the captured line items and the pricing at submit time. Later
// cart mutation cannot touch it.
type OrderConfirmation struct {
	OrderNumber    string
	PlacedAt       time.Time
	EstimatedReady time.Time

	Form    entity.CheckoutForm
	Items   []entity.CartLineItem
	Pricing PricingSnapshot
}

// CheckoutSession drives one checkout form instance: field edits, the
// error display policy, tip selection and the submission flow.
type CheckoutSession struct {
	mu sync.Mutex

	cart      *CartStore
	pricer    *Pricer
	submitter OrderSubmitter
	log       zerolog.Logger

	form entity.CheckoutForm
	tip  entity.TipChoice

	// Errors are only shown after a submit attempt; editing a field clears
	// its error until the next attempt re-evaluates it.
	visible   FieldErrors
	attempted bool
	inFlight  bool

	settleDelay time.Duration
	now         func() time.Time
}

func NewCheckoutSession(cart *CartStore, pricer *Pricer, submitter OrderSubmitter, city, state string, settleDelay time.Duration, log zerolog.Logger) *CheckoutSession {
	return &CheckoutSession{
		cart:      cart,
		pricer:    pricer,
		submitter: submitter,
		log:       log.With().Str("component", "checkout").Logger(),
		form: entity.CheckoutForm{
			City:  city,
			State: state,
		},
		tip:         entity.TipNone(),
		visible:     FieldErrors{},
		settleDelay: settleDelay,
		now:         time.Now,
	}
}

func (s *CheckoutSession) Form() entity.CheckoutForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// SetField updates one text field by its form key and clears that field's
// displayed error. Unknown keys and the fixed city/state are ignored.
func (s *CheckoutSession) SetField(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch field {
	case "fullName":
		s.form.FullName = value
	case "emailAddress":
		s.form.EmailAddress = value
	case "cardNumber":
		s.form.CardNumber = value
	case "expiryDate":
		s.form.ExpiryDate = value
	case "cvv":
		s.form.CVV = value
	case "address":
		s.form.Address = value
	case "zip":
		s.form.Zip = value
	default:
		return
	}
	delete(s.visible, field)
}

func (s *CheckoutSession) SelectDeliveryMethod(m entity.DeliveryMethod) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.DeliveryMethod = m
	delete(s.visible, "deliveryMethod")
}

func (s *CheckoutSession) SetTermsAccepted(accepted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.TermsAccepted = accepted
	delete(s.visible, "termsAccepted")
}

// SetTip replaces the tip choice outright; the tagged union keeps the
// percentage/custom mutual exclusion structural.
func (s *CheckoutSession) SetTip(t entity.TipChoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tip = t
}

func (s *CheckoutSession) Tip() entity.TipChoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tip
}

// Pricing recomputes the snapshot from current inputs on every call.
func (s *CheckoutSession) Pricing() PricingSnapshot {
	s.mu.Lock()
	form, tip := s.form, s.tip
	s.mu.Unlock()
	return s.pricer.Quote(s.cart.Items(), form.DeliveryMethod, tip)
}

// FieldValid reports field validity against the current values, regardless
// of the error display policy.
func (s *CheckoutSession) FieldValid(field string) bool {
	s.mu.Lock()
	form := s.form
	s.mu.Unlock()
	return !fieldErrors(form).Has(field)
}

func (s *CheckoutSession) FormValid() bool {
	s.mu.Lock()
	form := s.form
	s.mu.Unlock()
	return len(fieldErrors(form)) == 0
}

// VisibleError returns the field's error message, or "" when the field has
// no error to show. Nothing is shown before the first submit attempt.
func (s *CheckoutSession) VisibleError(field string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attempted {
		return ""
	}
	return s.visible[field]
}

func (s *CheckoutSession) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Submit validates, then settles through the collaborator after the
// simulated delay and clears the cart. On validation failure the errors
// become visible and no submission happens. On collaborator failure the
// form and cart are left intact for a manual retry.
func (s *CheckoutSession) Submit(ctx context.Context) (*OrderConfirmation, error) {
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
	form, tip := s.form, s.tip
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	// Snapshot before the delay: the handoff must not see later cart edits.
	items := s.cart.Items()
	pricing := s.pricer.Quote(items, form.DeliveryMethod, tip)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.settleDelay):
	}

	placedAt := s.now()
	estimated := utils.EstimatedDelivery(placedAt)
	if form.DeliveryMethod == entity.StorePickup {
		estimated = utils.EstimatedCollection(placedAt)
	}

	conf := &OrderConfirmation{
		OrderNumber:    utils.NewOrderNumber(),
		PlacedAt:       placedAt,
		EstimatedReady: estimated,
		Form:           form,
		Items:          items,
		Pricing:        pricing,
	}

	if err := s.submitter.SubmitOrder(ctx, conf); err != nil {
		s.log.Error().Err(err).Str("orderNumber", conf.OrderNumber).Msg("order submission failed")
		return nil, fmt.Errorf("submit order: %w", err)
	}

	s.cart.Clear()
	s.log.Info().
		Str("orderNumber", conf.OrderNumber).
		Str("deliveryMethod", string(form.DeliveryMethod)).
		Str("total", conf.Pricing.Total.String()).
		Msg("order placed")
	return conf, nil
}
