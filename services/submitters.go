package services

import (
	"context"

	"github.com/CameronCarlyon/LittleLemon/entity"
	"github.com/CameronCarlyon/LittleLemon/repository"
)

// Submission collaborators. The sessions only see these interfaces; the
// default implementations below archive to the local database and always
// settle successfully.
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, conf *OrderConfirmation) error
}

type ReservationSubmitter interface {
	SubmitReservation(ctx context.Context, conf *ReservationConfirmation) error
}

type ArchiveOrderSubmitter struct {
	Repo *repository.OrderRepository
}

func NewArchiveOrderSubmitter(repo *repository.OrderRepository) *ArchiveOrderSubmitter {
	return &ArchiveOrderSubmitter{Repo: repo}
}

func (s *ArchiveOrderSubmitter) SubmitOrder(_ context.Context, conf *OrderConfirmation) error {
	o := &entity.Order{
		OrderNumber:    conf.OrderNumber,
		FullName:       conf.Form.FullName,
		EmailAddress:   conf.Form.EmailAddress,
		DeliveryMethod: string(conf.Form.DeliveryMethod),
		Address:        conf.Form.Address,
		City:           conf.Form.City,
		State:          conf.Form.State,
		Zip:            conf.Form.Zip,
		Subtotal:       conf.Pricing.Subtotal,
		ServiceFee:     conf.Pricing.ServiceFee,
		DeliveryFee:    conf.Pricing.DeliveryFee,
		SalesTax:       conf.Pricing.SalesTax,
		RestaurantTax:  conf.Pricing.RestaurantTax,
		Tip:            conf.Pricing.Tip,
		Total:          conf.Pricing.Total,
		EstimatedReady: conf.EstimatedReady,
	}
	for _, it := range conf.Items {
		o.Items = append(o.Items, entity.OrderItem{
			ItemName:  it.Name,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
		})
	}
	return s.Repo.CreateOrder(o)
}

type ArchiveReservationSubmitter struct {
	Repo *repository.ReservationRepository
}

func NewArchiveReservationSubmitter(repo *repository.ReservationRepository) *ArchiveReservationSubmitter {
	return &ArchiveReservationSubmitter{Repo: repo}
}

func (s *ArchiveReservationSubmitter) SubmitReservation(_ context.Context, conf *ReservationConfirmation) error {
	return s.Repo.CreateReservation(&entity.Reservation{
		ConfirmationID:  conf.ConfirmationID,
		FullName:        conf.Form.FullName,
		EmailAddress:    conf.Form.EmailAddress,
		ContactNumber:   conf.Form.ContactNumber,
		Occasion:        conf.Form.Occasion,
		GuestCount:      conf.Form.GuestCount,
		ReservationDate: conf.Form.ReservationDate,
		ReservationTime: conf.Form.ReservationTime,
		SpecialRequests: conf.Form.SpecialRequests,
	})
}
