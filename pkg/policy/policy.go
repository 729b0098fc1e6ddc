// Package policy is the single source of truth for which actor may see or
// perform which action on a booking in which status. Every view that renders
// booking affordances consumes these predicates; no handler re-derives the
// conditions on its own.
package policy

import (
	"homegate/pkg/model"
)

type Action string

const (
	ActionPay            Action = "pay"
	ActionConfirm        Action = "confirm"
	ActionReject         Action = "reject"
	ActionCancel         Action = "cancel"
	ActionConfirmPayment Action = "confirm_payment"
)

// isBookingAgent reports whether the viewer handles bookings on the agent
// side. Role equality is deliberately flat: admin does not implicitly satisfy
// an agent-only check anywhere else, so both roles are named explicitly here.
func isBookingAgent(viewer *model.User) bool {
	if viewer == nil {
		return false
	}
	return viewer.Role == model.RoleAgent || viewer.Role == model.RoleAdmin
}

func isRequester(b *model.Booking, viewer *model.User) bool {
	if viewer == nil || b == nil {
		return false
	}
	return b.RequesterRef != "" && b.RequesterRef == viewer.ID
}

// CanPay reports whether the "Pay Now" affordance is visible: the viewer is
// the requesting user, the booking type goes through checkout, the agent has
// confirmed, and payment has not already settled.
func CanPay(b *model.Booking, viewer *model.User) bool {
	if b == nil || viewer == nil || viewer.Role != model.RoleUser {
		return false
	}
	return isRequester(b, viewer) &&
		b.BookingType.Payable() &&
		b.Status == model.StatusAgentConfirmed &&
		b.PaymentStatus != model.PaymentPaid
}

// CanConfirmPayment reports whether the "Confirm Payment" affordance is
// visible to the agent side. It requires an initiated (pending) payment;
// there is nothing to confirm before the requester starts checkout.
func CanConfirmPayment(b *model.Booking, viewer *model.User) bool {
	if b == nil || !isBookingAgent(viewer) {
		return false
	}
	return b.BookingType.Payable() &&
		b.Status == model.StatusAgentConfirmed &&
		b.PaymentStatus == model.PaymentPending
}

func CanConfirm(b *model.Booking, viewer *model.User) bool {
	if b == nil || !isBookingAgent(viewer) {
		return false
	}
	return b.Status == model.StatusPending
}

func CanReject(b *model.Booking, viewer *model.User) bool {
	if b == nil || !isBookingAgent(viewer) {
		return false
	}
	return b.Status == model.StatusPending
}

// CanCancel gates the cancel affordance on booking cards: only the original
// requester, and only while the booking is still pending. The transition
// table is wider (cancel is legal from any non-terminal status); the card
// deliberately hides cancel once an agent has confirmed.
func CanCancel(b *model.Booking, viewer *model.User) bool {
	if b == nil || viewer == nil {
		return false
	}
	return isRequester(b, viewer) && b.Status == model.StatusPending
}

// Actions returns the affordances the given viewer may act on for a booking,
// in stable render order.
func Actions(b *model.Booking, viewer *model.User) []Action {
	var actions []Action
	if CanConfirm(b, viewer) {
		actions = append(actions, ActionConfirm)
	}
	if CanReject(b, viewer) {
		actions = append(actions, ActionReject)
	}
	if CanPay(b, viewer) {
		actions = append(actions, ActionPay)
	}
	if CanConfirmPayment(b, viewer) {
		actions = append(actions, ActionConfirmPayment)
	}
	if CanCancel(b, viewer) {
		actions = append(actions, ActionCancel)
	}
	return actions
}
