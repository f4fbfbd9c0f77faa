package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"blood-donation-service/internal/api/dto"
	"blood-donation-service/internal/domain"
)

type InventoryService interface {
	List(ctx context.Context) ([]domain.BloodInventory, error)
	Get(ctx context.Context, bloodType string) (domain.BloodInventory, error)
}

// InventoryHandler exposes read-only inventory endpoints.
type InventoryHandler struct {
	Service InventoryService
	Logger  *slog.Logger
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, loggerOrDefault(h.Logger), "list inventory", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewInventoryListResponse(items))
}

func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	// chi routes on RawPath when it is set, so "A%2B" arrives still escaped.
	// Otherwise the param is already decoded.
	bloodType := chi.URLParam(r, "bloodType")
	if r.URL.RawPath != "" {
		unescaped, err := url.PathUnescape(bloodType)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid blood type")
			return
		}
		bloodType = unescaped
	}

	item, err := h.Service.Get(r.Context(), bloodType)
	if err != nil {
		writeServiceError(w, r, loggerOrDefault(h.Logger), "get inventory", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewInventoryResponse(item))
}
