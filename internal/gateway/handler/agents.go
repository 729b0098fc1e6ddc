package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"homegate/pkg/cache"
	apperrors "homegate/pkg/errors"
	"homegate/pkg/httpx"
	"homegate/pkg/model"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) ApplyForAgent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var application model.AgentApplication
	if err := json.NewDecoder(r.Body).Decode(&application); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.forms.ValidateAgentApplication(&application); err != nil {
		httpx.WriteError(w, validationError(err))
		return
	}

	submitted, err := h.api.AgentApplications.Apply(r.Context(), &application)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteCreated(w, submitted)
}

func (h *Handler) PendingAgentApplications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	applications, err := cache.Load(r.Context(), h.cache, cache.ResourceAgents, "pending",
		func(ctx context.Context) ([]*model.AgentApplication, error) {
			return h.api.AgentApplications.Pending(ctx)
		})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, applications)
}

func (h *Handler) ApproveAgentApplication(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.api.AgentApplications.Approve(r.Context(), ps.ByName("id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.cache.Invalidate(cache.ResourceAgents)
	httpx.WriteNoContent(w)
}

func (h *Handler) RejectAgentApplication(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.api.AgentApplications.Reject(r.Context(), ps.ByName("id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.cache.Invalidate(cache.ResourceAgents)
	httpx.WriteNoContent(w)
}
