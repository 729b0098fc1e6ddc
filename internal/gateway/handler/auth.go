package handler

import (
	"encoding/json"
	"net/http"

	apperrors "homegate/pkg/errors"
	"homegate/pkg/httpx"
	"homegate/pkg/model"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var creds model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.forms.ValidateLogin(&creds); err != nil {
		httpx.WriteError(w, validationError(err))
		return
	}

	user, err := h.sessions.Login(r.Context(), creds)
	if err != nil {
		h.log.Warn("Login failed", "email", creds.Email)
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteSuccess(w, user)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.forms.ValidateSignup(&form); err != nil {
		httpx.WriteError(w, validationError(err))
		return
	}

	user, err := h.sessions.Signup(r.Context(), form)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteCreated(w, user)
}

// Logout always succeeds from the caller's point of view: the local session
// is gone before this handler returns, server-side invalidation is
// reconciled in the background.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.sessions.Logout()
	h.cache.Clear()
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := h.sessions.User()
	if user == nil {
		httpx.WriteError(w, apperrors.Unauthorized("not authenticated"))
		return
	}
	httpx.WriteSuccess(w, user)
}
