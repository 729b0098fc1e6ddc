package service

import (
	"context"

	"homegate/pkg/cache"
	"homegate/pkg/client"
	apperrors "homegate/pkg/errors"
	"homegate/pkg/logger"
	"homegate/pkg/model"
	"homegate/pkg/policy"
	"homegate/pkg/session"
)

type Payments struct {
	api      *client.API
	sessions *session.Store
	cache    *cache.Store
	log      *logger.Logger

	// PublicKey identifies the gateway to the hosted checkout page. It is
	// public by design and rendered to the client verbatim.
	PublicKey string
}

func NewPayments(api *client.API, sessions *session.Store, cacheStore *cache.Store, publicKey string, log *logger.Logger) *Payments {
	return &Payments{
		api:       api,
		sessions:  sessions,
		cache:     cacheStore,
		log:       log,
		PublicKey: publicKey,
	}
}

// PayNow requests a payment-session reference for the booking and returns
// the hosted checkout handoff. The booking is never marked paid here; the
// checkout's webhook updates the server, and views re-fetch afterwards.
func (s *Payments) PayNow(ctx context.Context, bookingID string) (*model.PaymentInit, error) {
	viewer := s.sessions.User()
	if viewer == nil {
		return nil, apperrors.Unauthorized("Please log in again.")
	}
	if bookingID == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.api.Bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(policy.ActionPay, booking, viewer); err != nil {
		return nil, err
	}

	init, err := s.api.Payments.Initialize(ctx, booking.ID, viewer.Email, booking.BookingType)
	if err != nil {
		return nil, err
	}

	// the server flips paymentStatus to pending on initialization
	s.cache.Invalidate(cache.ResourceBookings)
	s.log.Info("Checkout initialized",
		"booking_id", booking.ID,
		"reference", init.Reference,
	)
	return init, nil
}

// Verify reflects the settled state of a checkout back from the server and
// evicts everything the settlement may have changed.
func (s *Payments) Verify(ctx context.Context, reference string) (*model.Payment, error) {
	if reference == "" {
		return nil, apperrors.InvalidInput("Payment reference cannot be empty")
	}

	payment, err := s.api.Payments.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(cache.ResourceBookings)
	s.cache.Invalidate(cache.ResourcePayments)
	s.log.Info("Payment verified", "reference", reference, "status", payment.Status)
	return payment, nil
}

func (s *Payments) History(ctx context.Context) ([]*model.Payment, error) {
	if s.sessions.User() == nil {
		return nil, apperrors.Unauthorized("Please log in again.")
	}
	return cache.Load(ctx, s.cache, cache.ResourcePayments, "history", s.api.Payments.History)
}
