package handler

import (
	"encoding/json"
	"net/http"

	apperrors "homegate/pkg/errors"
	"homegate/pkg/httpx"
	"homegate/pkg/model"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) DashboardSummary(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	summary, err := h.dashboard.Summary(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, summary)
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	views, err := h.bookings.ListByType(r.Context(), model.BookingViewing)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, views)
}

func (h *Handler) ListRentals(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	views, err := h.bookings.ListByType(r.Context(), model.BookingRental)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, views)
}

func (h *Handler) ListPurchases(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	views, err := h.bookings.ListByType(r.Context(), model.BookingPurchase)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, views)
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	view, err := h.bookings.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, view)
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	view, err := h.bookings.Create(r.Context(), &req)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteCreated(w, view)
}

func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		Reason string `json:"reason"`
	}
	// a missing or empty body cancels without a reason
	_ = json.NewDecoder(r.Body).Decode(&body)

	view, err := h.bookings.Cancel(r.Context(), ps.ByName("id"), body.Reason)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, view)
}

func (h *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	view, err := h.bookings.Confirm(r.Context(), ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, view)
}

func (h *Handler) RejectBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	view, err := h.bookings.Reject(r.Context(), ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, view)
}

func (h *Handler) ConfirmBookingPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	view, err := h.bookings.ConfirmPayment(r.Context(), ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, view)
}
