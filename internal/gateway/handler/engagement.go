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

func (h *Handler) ListWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items, err := cache.Load(r.Context(), h.cache, cache.ResourceWishlist, "all",
		func(ctx context.Context) ([]*model.WishlistItem, error) {
			return h.api.Wishlist.List(ctx)
		})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, items)
}

func (h *Handler) ToggleWishlist(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		PropertyID string `json:"propertyId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PropertyID == "" {
		httpx.WriteError(w, apperrors.InvalidInput("propertyId is required"))
		return
	}

	saved, err := h.api.Wishlist.Toggle(r.Context(), body.PropertyID)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.cache.Invalidate(cache.ResourceWishlist)
	httpx.WriteSuccess(w, map[string]any{"propertyId": body.PropertyID, "saved": saved})
}

func (h *Handler) CheckWishlist(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	saved, err := h.api.Wishlist.Check(r.Context(), ps.ByName("propertyId"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, map[string]any{"saved": saved})
}

func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	propertyID := ps.ByName("id")
	reviews, err := cache.Load(r.Context(), h.cache, cache.ResourceReviews, propertyID,
		func(ctx context.Context) ([]*model.Review, error) {
			return h.api.Reviews.ListByProperty(ctx, propertyID)
		})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, reviews)
}

func (h *Handler) ReviewStats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	propertyID := ps.ByName("id")
	stats, err := cache.Load(r.Context(), h.cache, cache.ResourceReviews, "stats/"+propertyID,
		func(ctx context.Context) (*model.ReviewStats, error) {
			return h.api.Reviews.StatsByProperty(ctx, propertyID)
		})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, stats)
}

func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var review model.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.forms.ValidateReview(&review); err != nil {
		httpx.WriteError(w, validationError(err))
		return
	}

	created, err := h.api.Reviews.Create(r.Context(), &review)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.cache.Invalidate(cache.ResourceReviews)
	httpx.WriteCreated(w, created)
}

// Notifications are always fetched fresh; nothing on a dashboard is staler
// than a read notification that still shows unread.
func (h *Handler) ListNotifications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	notifications, err := h.api.Notifications.List(r.Context())
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, notifications)
}

func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.api.Notifications.MarkRead(r.Context(), ps.ByName("id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteNoContent(w)
}
