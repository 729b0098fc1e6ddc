package policy

import (
	"fmt"

	apperrors "homegate/pkg/errors"
	"homegate/pkg/model"
)

// transitions lists the legal workflow moves. Terminal statuses have no
// entry: completed, cancelled and rejected admit nothing further.
var transitions = map[model.BookingStatus][]model.BookingStatus{
	model.StatusPending: {
		model.StatusAgentConfirmed,
		model.StatusRejected,
		model.StatusCancelled,
	},
	model.StatusAgentConfirmed: {
		model.StatusCompleted,
		model.StatusCancelled,
	},
}

func CanTransition(from, to model.BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Authorize checks an intended action against the booking's current state and
// the actor's role before the request is sent upstream. The server remains
// authoritative; this pre-flight exists so an already-terminal booking fails
// with a conflict locally instead of a round trip, and a wrong-role actor
// fails with forbidden.
func Authorize(action Action, b *model.Booking, actor *model.User) error {
	if b == nil {
		return apperrors.InvalidInput("booking is required")
	}
	if actor == nil {
		return apperrors.Unauthorized("Please log in again.")
	}

	switch action {
	case ActionConfirm:
		if !isBookingAgent(actor) {
			return apperrors.Forbidden("only an agent may confirm a booking")
		}
		if b.Status != model.StatusPending {
			return statusConflict("confirm", b.Status)
		}
	case ActionReject:
		if !isBookingAgent(actor) {
			return apperrors.Forbidden("only an agent may reject a booking")
		}
		if b.Status != model.StatusPending {
			return statusConflict("reject", b.Status)
		}
	case ActionCancel:
		if !isRequester(b, actor) {
			return apperrors.Forbidden("only the requester may cancel a booking")
		}
		if b.Status.Terminal() {
			return statusConflict("cancel", b.Status)
		}
	case ActionPay:
		if !CanPay(b, actor) {
			if b.PaymentStatus == model.PaymentPaid {
				return apperrors.Conflict("booking is already paid")
			}
			if b.Status != model.StatusAgentConfirmed {
				return statusConflict("pay for", b.Status)
			}
			return apperrors.Forbidden("payment is not available for this booking")
		}
	case ActionConfirmPayment:
		if !isBookingAgent(actor) {
			return apperrors.Forbidden("only an agent may confirm a payment")
		}
		if !CanConfirmPayment(b, actor) {
			if b.PaymentStatus == model.PaymentPaid {
				return apperrors.Conflict("payment is already confirmed")
			}
			return statusConflict("confirm payment for", b.Status)
		}
	default:
		return apperrors.InvalidInput(fmt.Sprintf("unknown booking action %q", action))
	}

	return nil
}

func statusConflict(verb string, status model.BookingStatus) error {
	return apperrors.Conflict(fmt.Sprintf("cannot %s a booking in status %q", verb, status))
}
