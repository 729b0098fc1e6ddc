package handler

import (
	"net/http"

	"homegate/pkg/httpx"

	"github.com/julienschmidt/httprouter"
)

// PayNow returns the provider checkout handoff instead of redirecting:
// the caller opens authorization_url itself and comes back through the
// verify endpoint with the reference.
func (h *Handler) PayNow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	init, err := h.payments.PayNow(r.Context(), ps.ByName("id"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, init)
}

func (h *Handler) VerifyPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	payment, err := h.payments.Verify(r.Context(), ps.ByName("reference"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, payment)
}

func (h *Handler) PaymentHistory(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payments, err := h.payments.History(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, payments)
}
