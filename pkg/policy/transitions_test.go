package policy

import (
	"testing"

	apperrors "homegate/pkg/errors"
	"homegate/pkg/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from model.BookingStatus
		to   model.BookingStatus
		want bool
	}{
		{model.StatusPending, model.StatusAgentConfirmed, true},
		{model.StatusPending, model.StatusRejected, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusPending, model.StatusCompleted, false},
		{model.StatusAgentConfirmed, model.StatusCompleted, true},
		{model.StatusAgentConfirmed, model.StatusCancelled, true},
		{model.StatusAgentConfirmed, model.StatusRejected, false},
		{model.StatusAgentConfirmed, model.StatusPending, false},
	}

	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestCanTransition_TerminalStatusesAreClosed(t *testing.T) {
	terminals := []model.BookingStatus{model.StatusCompleted, model.StatusCancelled, model.StatusRejected}
	all := []model.BookingStatus{
		model.StatusPending,
		model.StatusAgentConfirmed,
		model.StatusRejected,
		model.StatusCancelled,
		model.StatusCompleted,
	}

	for _, from := range terminals {
		for _, to := range all {
			if CanTransition(from, to) {
				t.Errorf("terminal status %s must not transition to %s", from, to)
			}
		}
	}
}

func TestAuthorize_CancelIsNotSilentlyIdempotent(t *testing.T) {
	cancelled := booking(model.BookingRental, model.StatusCancelled, model.PaymentNone)

	err := Authorize(ActionCancel, cancelled, requester)
	if err == nil {
		t.Fatal("cancelling an already-cancelled booking must fail, not no-op")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected %s, got %s", apperrors.CodeConflict, appErr.Code)
	}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		booking  *model.Booking
		actor    *model.User
		wantCode string
	}{
		{"agent confirms pending", ActionConfirm, booking(model.BookingViewing, model.StatusPending, model.PaymentNone), agent, ""},
		{"user cannot confirm", ActionConfirm, booking(model.BookingViewing, model.StatusPending, model.PaymentNone), requester, apperrors.CodeForbidden},
		{"confirm already confirmed", ActionConfirm, booking(model.BookingViewing, model.StatusAgentConfirmed, model.PaymentNone), agent, apperrors.CodeConflict},
		{"admin rejects pending", ActionReject, booking(model.BookingRental, model.StatusPending, model.PaymentNone), admin, ""},
		{"requester cancels confirmed", ActionCancel, booking(model.BookingRental, model.StatusAgentConfirmed, model.PaymentNone), requester, ""},
		{"stranger cannot cancel", ActionCancel, booking(model.BookingRental, model.StatusPending, model.PaymentNone), otherUser, apperrors.CodeForbidden},
		{"cancel completed booking", ActionCancel, booking(model.BookingRental, model.StatusCompleted, model.PaymentPaid), requester, apperrors.CodeConflict},
		{"requester pays confirmed purchase", ActionPay, booking(model.BookingPurchase, model.StatusAgentConfirmed, model.PaymentPending), requester, ""},
		{"pay twice", ActionPay, booking(model.BookingPurchase, model.StatusAgentConfirmed, model.PaymentPaid), requester, apperrors.CodeConflict},
		{"pay before confirmation", ActionPay, booking(model.BookingPurchase, model.StatusPending, model.PaymentNone), requester, apperrors.CodeConflict},
		{"agent confirms pending payment", ActionConfirmPayment, booking(model.BookingRental, model.StatusAgentConfirmed, model.PaymentPending), agent, ""},
		{"confirm payment twice", ActionConfirmPayment, booking(model.BookingRental, model.StatusAgentConfirmed, model.PaymentPaid), agent, apperrors.CodeConflict},
		{"user cannot confirm payment", ActionConfirmPayment, booking(model.BookingRental, model.StatusAgentConfirmed, model.PaymentPending), requester, apperrors.CodeForbidden},
		{"nil actor", ActionConfirm, booking(model.BookingViewing, model.StatusPending, model.PaymentNone), nil, apperrors.CodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.action, tt.booking, tt.actor)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("expected action to be authorized, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %s error, got nil", tt.wantCode)
			}
			if got := apperrors.AsAppError(err).Code; got != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, got)
			}
		})
	}
}
