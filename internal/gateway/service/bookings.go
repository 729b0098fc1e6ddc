package service

import (
	"context"
	"errors"

	"homegate/internal/gateway/validator"
	"homegate/pkg/cache"
	"homegate/pkg/client"
	apperrors "homegate/pkg/errors"
	"homegate/pkg/logger"
	"homegate/pkg/model"
	"homegate/pkg/policy"
	"homegate/pkg/session"
)

// BookingView is a booking decorated with the affordances the current viewer
// may act on. Every screen renders from this shape; none re-derives the
// visibility conditions.
type BookingView struct {
	*model.Booking
	Actions []policy.Action `json:"actions"`
}

type Bookings struct {
	api      *client.API
	sessions *session.Store
	cache    *cache.Store
	forms    *validator.FormValidator
	log      *logger.Logger
}

func NewBookings(api *client.API, sessions *session.Store, cacheStore *cache.Store, forms *validator.FormValidator, log *logger.Logger) *Bookings {
	return &Bookings{
		api:      api,
		sessions: sessions,
		cache:    cacheStore,
		forms:    forms,
		log:      log,
	}
}

func (s *Bookings) viewer() (*model.User, error) {
	user := s.sessions.User()
	if user == nil {
		return nil, apperrors.Unauthorized("Please log in again.")
	}
	return user, nil
}

func (s *Bookings) decorate(bookings []*model.Booking, viewer *model.User) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, BookingView{
			Booking: b,
			Actions: policy.Actions(b, viewer),
		})
	}
	return views
}

// List returns the viewer's bookings through the read-through cache. The
// server scopes the collection by role: requesters see their own bookings,
// agents the ones assigned to them.
func (s *Bookings) List(ctx context.Context) ([]BookingView, error) {
	viewer, err := s.viewer()
	if err != nil {
		return nil, err
	}

	bookings, err := cache.Load(ctx, s.cache, cache.ResourceBookings, "all", s.api.Bookings.List)
	if err != nil {
		return nil, err
	}
	return s.decorate(bookings, viewer), nil
}

// ListByType narrows the cached collection to one booking type, for the
// rentals and purchases dashboard sections.
func (s *Bookings) ListByType(ctx context.Context, bookingType model.BookingType) ([]BookingView, error) {
	if !bookingType.Valid() {
		return nil, apperrors.InvalidInput("unknown booking type")
	}

	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]BookingView, 0, len(all))
	for _, view := range all {
		if view.BookingType == bookingType {
			filtered = append(filtered, view)
		}
	}
	return filtered, nil
}

func (s *Bookings) Get(ctx context.Context, id string) (*BookingView, error) {
	viewer, err := s.viewer()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.api.Bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &BookingView{Booking: booking, Actions: policy.Actions(booking, viewer)}, nil
}

func (s *Bookings) Create(ctx context.Context, req *model.BookingRequest) (*BookingView, error) {
	viewer, err := s.viewer()
	if err != nil {
		return nil, err
	}

	if verr := s.forms.ValidateBookingRequest(req); verr != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(verr, &fieldErrs) {
			return nil, apperrors.Validation("Invalid booking request", fieldErrs.Fields())
		}
		return nil, apperrors.InvalidInput(verr.Error())
	}

	booking, err := s.api.Bookings.Create(ctx, *req)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(cache.ResourceBookings)
	s.log.Info("Booking created",
		"booking_id", booking.ID,
		"property", booking.PropertyRef,
		"type", booking.BookingType,
	)
	return &BookingView{Booking: booking, Actions: policy.Actions(booking, viewer)}, nil
}

// act runs the shared mutation path: fetch the canonical booking, pre-flight
// the action against the policy, send the request, then invalidate so every
// view refetches. The server remains the authority on the resulting status.
func (s *Bookings) act(ctx context.Context, id string, action policy.Action, call func(context.Context) (*model.Booking, error)) (*BookingView, error) {
	viewer, err := s.viewer()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	current, err := s.api.Bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := policy.Authorize(action, current, viewer); err != nil {
		return nil, err
	}

	updated, err := call(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(cache.ResourceBookings)
	s.log.Info("Booking action applied", "booking_id", id, "action", action, "status", updated.Status)
	return &BookingView{Booking: updated, Actions: policy.Actions(updated, viewer)}, nil
}

func (s *Bookings) Confirm(ctx context.Context, id string) (*BookingView, error) {
	return s.act(ctx, id, policy.ActionConfirm, func(ctx context.Context) (*model.Booking, error) {
		return s.api.Bookings.Confirm(ctx, id)
	})
}

func (s *Bookings) Reject(ctx context.Context, id string) (*BookingView, error) {
	return s.act(ctx, id, policy.ActionReject, func(ctx context.Context) (*model.Booking, error) {
		return s.api.Bookings.Reject(ctx, id)
	})
}

func (s *Bookings) Cancel(ctx context.Context, id, reason string) (*BookingView, error) {
	return s.act(ctx, id, policy.ActionCancel, func(ctx context.Context) (*model.Booking, error) {
		return s.api.Bookings.Cancel(ctx, id, reason)
	})
}

func (s *Bookings) ConfirmPayment(ctx context.Context, id string) (*BookingView, error) {
	return s.act(ctx, id, policy.ActionConfirmPayment, func(ctx context.Context) (*model.Booking, error) {
		return s.api.Bookings.ConfirmPayment(ctx, id)
	})
}

func (s *Bookings) Stats(ctx context.Context) (*model.BookingStats, error) {
	if _, err := s.viewer(); err != nil {
		return nil, err
	}
	return cache.Load(ctx, s.cache, cache.ResourceBookings, "stats", s.api.Bookings.Stats)
}
