package model

import "time"

type BookingType string

const (
	BookingViewing  BookingType = "viewing"
	BookingRental   BookingType = "rental"
	BookingPurchase BookingType = "purchase"
)

func (t BookingType) Valid() bool {
	switch t {
	case BookingViewing, BookingRental, BookingPurchase:
		return true
	}
	return false
}

// Payable reports whether bookings of this type go through the payment
// sub-flow. Viewings never carry a payment status.
func (t BookingType) Payable() bool {
	return t == BookingRental || t == BookingPurchase
}

type BookingStatus string

const (
	StatusPending        BookingStatus = "pending"
	StatusAgentConfirmed BookingStatus = "agent_confirmed"
	StatusRejected       BookingStatus = "rejected"
	StatusCancelled      BookingStatus = "cancelled"
	StatusCompleted      BookingStatus = "completed"

	// statusPaid is a legacy wire value some server responses still use in
	// place of completed + paymentStatus=paid. It is normalized away at the
	// client boundary and never stored.
	statusPaid BookingStatus = "paid"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAgentConfirmed, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether a booking in this status admits no further
// workflow transitions.
func (s BookingStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentNone    PaymentStatus = ""
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type Booking struct {
	ID            string        `json:"_id,omitempty"`
	PropertyRef   string        `json:"property" validate:"required"`
	RequesterRef  string        `json:"user,omitempty"`
	AgentRef      string        `json:"agent,omitempty"`
	BookingType   BookingType   `json:"bookingType" validate:"required,oneof=viewing rental purchase"`
	Status        BookingStatus `json:"status,omitempty"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	Price         float64       `json:"price,omitempty" validate:"omitempty,gt=0"`
	Date          string        `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TimeSlot      string        `json:"timeSlot,omitempty"`
	Message       string        `json:"message,omitempty" validate:"omitempty,max=1000"`
	CreatedAt     time.Time     `json:"createdAt,omitempty"`
}

// Normalize canonicalizes a booking decoded from the wire. The server mixes
// status="paid" with paymentStatus="paid"; locally status only tracks the
// workflow stage and paymentStatus only tracks payment.
func (b *Booking) Normalize() {
	if b.Status == statusPaid {
		b.Status = StatusCompleted
		b.PaymentStatus = PaymentPaid
	}
	if !b.BookingType.Payable() {
		b.PaymentStatus = PaymentNone
	}
}

// BookingRequest is the payload a requester submits to open a booking.
type BookingRequest struct {
	PropertyRef string      `json:"property" validate:"required"`
	BookingType BookingType `json:"bookingType" validate:"required,oneof=viewing rental purchase"`
	Date        string      `json:"date,omitempty" validate:"required_if=BookingType viewing,omitempty,datetime=2006-01-02"`
	TimeSlot    string      `json:"timeSlot,omitempty" validate:"required_if=BookingType viewing"`
	Message     string      `json:"message,omitempty" validate:"omitempty,max=1000"`
}

type BookingStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Rejected  int `json:"rejected"`
}
