package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/config"
	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
	"github.com/heartmarshall/coopkeeper-backend/internal/result"
	"github.com/heartmarshall/coopkeeper-backend/internal/service/flock"
)

type flockService interface {
	Create(ctx context.Context, input flock.CreateInput) result.Result[*domain.Flock]
	Get(ctx context.Context, id uuid.UUID) result.Result[*domain.Flock]
	List(ctx context.Context, input flock.ListInput) result.Result[[]*domain.Flock]
	Update(ctx context.Context, input flock.UpdateInput) result.Result[*domain.Flock]
	UpdateComposition(ctx context.Context, input flock.UpdateCompositionInput) result.Result[*domain.Flock]
	Archive(ctx context.Context, id uuid.UUID) result.Result[*domain.Flock]
	Reactivate(ctx context.Context, id uuid.UUID) result.Result[*domain.Flock]
	History(ctx context.Context, flockID uuid.UUID) result.Result[[]domain.FlockHistory]
	UpdateHistoryNotes(ctx context.Context, input flock.UpdateHistoryNotesInput) result.Result[domain.FlockHistory]
	SearchNames(ctx context.Context, q string, limit int) result.Result[[]string]
}

// FlockHandler serves /api/v1/flocks and /api/v1/flock-history.
type FlockHandler struct {
	svc    flockService
	search config.SearchConfig
}

// NewFlockHandler creates a FlockHandler.
func NewFlockHandler(svc flockService, search config.SearchConfig) *FlockHandler {
	return &FlockHandler{svc: svc, search: search}
}

type createFlockRequest struct {
	CoopID     uuid.UUID `json:"coopId"`
	Identifier string    `json:"identifier"`
	HatchDate  time.Time `json:"hatchDate"`
	Hens       int       `json:"hens"`
	Roosters   int       `json:"roosters"`
	Chicks     int       `json:"chicks"`
	Notes      *string   `json:"notes"`
}

type updateFlockRequest struct {
	Identifier string    `json:"identifier"`
	HatchDate  time.Time `json:"hatchDate"`
}

type compositionRequest struct {
	Hens     int     `json:"hens"`
	Roosters int     `json:"roosters"`
	Chicks   int     `json:"chicks"`
	Reason   string  `json:"reason"`
	Notes    *string `json:"notes"`
}

type historyNotesRequest struct {
	Notes *string `json:"notes"`
}

type flockResponse struct {
	ID         uuid.UUID `json:"id"`
	CoopID     uuid.UUID `json:"coopId"`
	Identifier string    `json:"identifier"`
	HatchDate  time.Time `json:"hatchDate"`
	Hens       int       `json:"hens"`
	Roosters   int       `json:"roosters"`
	Chicks     int       `json:"chicks"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type historyResponse struct {
	ID         uuid.UUID `json:"id"`
	FlockID    uuid.UUID `json:"flockId"`
	ChangeDate time.Time `json:"changeDate"`
	Hens       int       `json:"hens"`
	Roosters   int       `json:"roosters"`
	Chicks     int       `json:"chicks"`
	Reason     string    `json:"reason"`
	Notes      *string   `json:"notes"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toFlockResponse(f *domain.Flock) flockResponse {
	return flockResponse{
		ID:         f.ID(),
		CoopID:     f.CoopID(),
		Identifier: f.Identifier(),
		HatchDate:  f.HatchDate(),
		Hens:       f.CurrentHens(),
		Roosters:   f.CurrentRoosters(),
		Chicks:     f.CurrentChicks(),
		IsActive:   f.IsActive(),
		CreatedAt:  f.CreatedAt(),
		UpdatedAt:  f.UpdatedAt(),
	}
}

func toFlockResponses(fs []*domain.Flock) []flockResponse {
	out := make([]flockResponse, len(fs))
	for i, f := range fs {
		out[i] = toFlockResponse(f)
	}
	return out
}

func toHistoryResponse(h domain.FlockHistory) historyResponse {
	return historyResponse{
		ID:         h.ID(),
		FlockID:    h.FlockID(),
		ChangeDate: h.ChangeDate(),
		Hens:       h.Hens(),
		Roosters:   h.Roosters(),
		Chicks:     h.Chicks(),
		Reason:     h.Reason(),
		Notes:      h.Notes(),
		UpdatedAt:  h.UpdatedAt(),
	}
}

func toHistoryResponses(hs []domain.FlockHistory) []historyResponse {
	out := make([]historyResponse, len(hs))
	for i, h := range hs {
		out[i] = toHistoryResponse(h)
	}
	return out
}

// Create handles POST /api/v1/flocks.
func (h *FlockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createFlockRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res := h.svc.Create(r.Context(), flock.CreateInput{
		CoopID:     req.CoopID,
		Identifier: req.Identifier,
		HatchDate:  req.HatchDate,
		Hens:       req.Hens,
		Roosters:   req.Roosters,
		Chicks:     req.Chicks,
		Notes:      req.Notes,
	})
	respond(w, res, http.StatusCreated, toFlockResponse)
}

// List handles GET /api/v1/flocks.
func (h *FlockHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	input := flock.ListInput{
		CoopID:          q.id("coop_id"),
		IncludeInactive: q.flag("include_inactive"),
	}
	if q.err != nil {
		writeFailure(w, q.err)
		return
	}
	respond(w, h.svc.List(r.Context(), input), http.StatusOK, toFlockResponses)
}

// Search handles GET /api/v1/flocks/search.
func (h *FlockHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	limit := h.search.Clamp(q.number("limit"))
	if q.err != nil {
		writeFailure(w, q.err)
		return
	}
	respond(w, h.svc.SearchNames(r.Context(), q.text("q"), limit), http.StatusOK, identity[[]string])
}

// Get handles GET /api/v1/flocks/{id}.
func (h *FlockHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.Get(r.Context(), id), http.StatusOK, toFlockResponse)
}

// Update handles PUT /api/v1/flocks/{id}.
func (h *FlockHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	var req updateFlockRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res := h.svc.Update(r.Context(), flock.UpdateInput{ID: id, Identifier: req.Identifier, HatchDate: req.HatchDate})
	respond(w, res, http.StatusOK, toFlockResponse)
}

// UpdateComposition handles POST /api/v1/flocks/{id}/composition.
func (h *FlockHandler) UpdateComposition(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	var req compositionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res := h.svc.UpdateComposition(r.Context(), flock.UpdateCompositionInput{
		ID:       id,
		Hens:     req.Hens,
		Roosters: req.Roosters,
		Chicks:   req.Chicks,
		Reason:   req.Reason,
		Notes:    req.Notes,
	})
	respond(w, res, http.StatusOK, toFlockResponse)
}

// Archive handles POST /api/v1/flocks/{id}/archive.
func (h *FlockHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.Archive(r.Context(), id), http.StatusOK, toFlockResponse)
}

// Reactivate handles POST /api/v1/flocks/{id}/reactivate.
func (h *FlockHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.Reactivate(r.Context(), id), http.StatusOK, toFlockResponse)
}

// History handles GET /api/v1/flocks/{id}/history.
func (h *FlockHandler) History(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.History(r.Context(), id), http.StatusOK, toHistoryResponses)
}

// UpdateHistoryNotes handles PATCH /api/v1/flock-history/{id}/notes.
func (h *FlockHandler) UpdateHistoryNotes(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	var req historyNotesRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res := h.svc.UpdateHistoryNotes(r.Context(), flock.UpdateHistoryNotesInput{HistoryID: id, Notes: req.Notes})
	respond(w, res, http.StatusOK, toHistoryResponse)
}
