package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blood-donation-service/internal/api/dto"
	"blood-donation-service/internal/domain"
)

type DonorService interface {
	List(ctx context.Context) ([]domain.Donor, error)
	Register(ctx context.Context, d domain.Donor) (domain.Donor, error)
	SearchEligible(ctx context.Context, q domain.DonorSearch) ([]domain.Donor, error)
	Get(ctx context.Context, id int64) (domain.Donor, error)
}

// DonorHandler exposes donor registration, listing and search endpoints.
type DonorHandler struct {
	Service DonorService
	Logger  *slog.Logger
}

func (h *DonorHandler) List(w http.ResponseWriter, r *http.Request) {
	donors, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(w, r, loggerOrDefault(h.Logger), "list donors", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewDonorListResponse(donors))
}

// Register stores a new donor and answers 201 with the stored record.
func (h *DonorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.DonorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	donor, err := req.ToDomain()
	if err != nil {
		writeServiceError(w, r, loggerOrDefault(h.Logger), "register donor", err)
		return
	}

	created, err := h.Service.Register(r.Context(), donor)
	if err != nil {
		writeServiceError(w, r, loggerOrDefault(h.Logger), "register donor", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.NewDonorResponse(created))
}

// Search returns eligible donors for the required state and city query params.
func (h *DonorHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	search := domain.DonorSearch{
		State: q.Get("state"),
		City:  q.Get("city"),
	}

	donors, err := h.Service.SearchEligible(r.Context(), search)
	if err != nil {
		writeServiceError(w, r, loggerOrDefault(h.Logger), "search donors", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewDonorListResponse(donors))
}

func (h *DonorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	donor, err := h.Service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, loggerOrDefault(h.Logger), "get donor", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewDonorResponse(donor))
}
