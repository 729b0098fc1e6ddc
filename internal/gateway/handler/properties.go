package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"homegate/pkg/cache"
	apperrors "homegate/pkg/errors"
	"homegate/pkg/httpx"
	"homegate/pkg/model"

	"github.com/julienschmidt/httprouter"
)

func parsePropertyFilter(r *http.Request) (model.PropertyFilter, error) {
	query := r.URL.Query()
	filter := model.PropertyFilter{
		City:        query.Get("city"),
		ListingType: model.ListingType(query.Get("listingType")),
	}

	for param, target := range map[string]*float64{
		"minPrice": &filter.MinPrice,
		"maxPrice": &filter.MaxPrice,
	} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			return filter, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", param, raw))
		}
		*target = value
	}

	for param, target := range map[string]*int{
		"bedrooms": &filter.Bedrooms,
		"page":     &filter.Page,
		"limit":    &filter.Limit,
	} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			return filter, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", param, raw))
		}
		*target = value
	}

	return filter, nil
}

func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := parsePropertyFilter(r)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}

	key := r.URL.Query().Encode()
	properties, err := cache.Load(r.Context(), h.cache, cache.ResourceProperties, key,
		func(ctx context.Context) ([]*model.Property, error) {
			return h.api.Properties.List(ctx, filter)
		})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, properties)
}

func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	property, err := cache.Load(r.Context(), h.cache, cache.ResourceProperties, id,
		func(ctx context.Context) (*model.Property, error) {
			return h.api.Properties.Get(ctx, id)
		})
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	httpx.WriteSuccess(w, property)
}

func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var property model.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}

	if err := h.forms.ValidateProperty(&property); err != nil {
		httpx.WriteError(w, validationError(err))
		return
	}

	created, err := h.api.Properties.Create(r.Context(), &property)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.cache.Invalidate(cache.ResourceProperties)
	httpx.WriteCreated(w, created)
}

func (h *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, apperrors.InvalidInput("Invalid request body"))
		return
	}
	if len(patch) == 0 {
		httpx.WriteError(w, apperrors.InvalidInput("empty update"))
		return
	}

	updated, err := h.api.Properties.Update(r.Context(), ps.ByName("id"), patch)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.cache.Invalidate(cache.ResourceProperties)
	httpx.WriteSuccess(w, updated)
}

func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.api.Properties.Delete(r.Context(), ps.ByName("id")); err != nil {
		httpx.WriteError(w, err)
		return
	}
	h.cache.Invalidate(cache.ResourceProperties)
	httpx.WriteNoContent(w)
}
