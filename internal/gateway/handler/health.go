package handler

import (
	"net/http"

	"homegate/pkg/httpx"

	"github.com/julienschmidt/httprouter"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"session": h.sessions.State().String(),
	})
}
