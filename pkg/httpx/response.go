package httpx

import (
	"encoding/json"
	"net/http"

	"homegate/pkg/client"
	apperrors "homegate/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data any `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError renders any error as the gateway's JSON error shape. Remote
// APIErrors keep the upstream status and server-supplied message; AppErrors
// carry their own status; anything else is a 500.
func WriteError(w http.ResponseWriter, err error) {
	if apiErr, ok := err.(*client.APIError); ok {
		status := apiErr.Status
		if status == 0 {
			status = http.StatusBadGateway
		}
		WriteJSON(w, status, ErrorResponse{Error: apiErr.Message})
		return
	}

	if apperrors.IsAppError(err) {
		appErr := apperrors.AsAppError(err)
		WriteJSON(w, appErr.StatusCode(), ErrorResponse{
			Error:   appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

func WriteSuccess(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
