package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/config"
	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
	"github.com/heartmarshall/coopkeeper-backend/internal/result"
	"github.com/heartmarshall/coopkeeper-backend/internal/service/coop"
)

type coopService interface {
	Create(ctx context.Context, input coop.CreateInput) result.Result[*domain.Coop]
	Get(ctx context.Context, id uuid.UUID) result.Result[*domain.Coop]
	List(ctx context.Context, input coop.ListInput) result.Result[[]*domain.Coop]
	Update(ctx context.Context, input coop.UpdateInput) result.Result[*domain.Coop]
	Deactivate(ctx context.Context, id uuid.UUID) result.Result[*domain.Coop]
	Reactivate(ctx context.Context, id uuid.UUID) result.Result[*domain.Coop]
	Delete(ctx context.Context, id uuid.UUID) result.Result[struct{}]
	SearchNames(ctx context.Context, q string, limit int) result.Result[[]string]
}

// CoopHandler serves /api/v1/coops.
type CoopHandler struct {
	svc    coopService
	search config.SearchConfig
}

// NewCoopHandler creates a CoopHandler.
func NewCoopHandler(svc coopService, search config.SearchConfig) *CoopHandler {
	return &CoopHandler{svc: svc, search: search}
}

type coopRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location"`
}

type coopResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  *string   `json:"location"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCoopResponse(c *domain.Coop) coopResponse {
	return coopResponse{
		ID:        c.ID,
		Name:      c.Name,
		Location:  c.Location,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toCoopResponses(cs []*domain.Coop) []coopResponse {
	out := make([]coopResponse, len(cs))
	for i, c := range cs {
		out[i] = toCoopResponse(c)
	}
	return out
}

// Create handles POST /api/v1/coops.
func (h *CoopHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req coopRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res := h.svc.Create(r.Context(), coop.CreateInput{Name: req.Name, Location: req.Location})
	respond(w, res, http.StatusCreated, toCoopResponse)
}

// List handles GET /api/v1/coops.
func (h *CoopHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	input := coop.ListInput{IncludeInactive: q.flag("include_inactive")}
	if q.err != nil {
		writeFailure(w, q.err)
		return
	}
	respond(w, h.svc.List(r.Context(), input), http.StatusOK, toCoopResponses)
}

// Search handles GET /api/v1/coops/search.
func (h *CoopHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	limit := h.search.Clamp(q.number("limit"))
	if q.err != nil {
		writeFailure(w, q.err)
		return
	}
	respond(w, h.svc.SearchNames(r.Context(), q.text("q"), limit), http.StatusOK, identity[[]string])
}

// Get handles GET /api/v1/coops/{id}.
func (h *CoopHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.Get(r.Context(), id), http.StatusOK, toCoopResponse)
}

// Update handles PUT /api/v1/coops/{id}.
func (h *CoopHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	var req coopRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res := h.svc.Update(r.Context(), coop.UpdateInput{ID: id, Name: req.Name, Location: req.Location})
	respond(w, res, http.StatusOK, toCoopResponse)
}

// Deactivate handles POST /api/v1/coops/{id}/deactivate.
func (h *CoopHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.Deactivate(r.Context(), id), http.StatusOK, toCoopResponse)
}

// Reactivate handles POST /api/v1/coops/{id}/reactivate.
func (h *CoopHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.Reactivate(r.Context(), id), http.StatusOK, toCoopResponse)
}

// Delete handles DELETE /api/v1/coops/{id}.
func (h *CoopHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.Delete(r.Context(), id), http.StatusOK, noContent)
}
