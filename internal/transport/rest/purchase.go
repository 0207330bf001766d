package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/coopkeeper-backend/internal/config"
	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
	"github.com/heartmarshall/coopkeeper-backend/internal/result"
	"github.com/heartmarshall/coopkeeper-backend/internal/service/purchase"
)

type purchaseService interface {
	Create(ctx context.Context, input purchase.Input) result.Result[*domain.Purchase]
	Get(ctx context.Context, id uuid.UUID) result.Result[*domain.Purchase]
	List(ctx context.Context, input purchase.ListInput) result.Result[[]*domain.Purchase]
	Update(ctx context.Context, id uuid.UUID, input purchase.Input) result.Result[*domain.Purchase]
	MarkConsumed(ctx context.Context, id uuid.UUID, date time.Time) result.Result[*domain.Purchase]
	Delete(ctx context.Context, id uuid.UUID) result.Result[struct{}]
	SearchNames(ctx context.Context, q string, limit int) result.Result[[]string]
}

// PurchaseHandler serves /api/v1/purchases.
type PurchaseHandler struct {
	svc    purchaseService
	search config.SearchConfig
}

// NewPurchaseHandler creates a PurchaseHandler.
func NewPurchaseHandler(svc purchaseService, search config.SearchConfig) *PurchaseHandler {
	return &PurchaseHandler{svc: svc, search: search}
}

// purchaseRequest is the body of both create and update. Amount and
// quantity accept JSON strings or numbers.
type purchaseRequest struct {
	CoopID       *uuid.UUID          `json:"coopId"`
	Name         string              `json:"name"`
	Type         domain.PurchaseType `json:"type"`
	Amount       decimal.Decimal     `json:"amount"`
	Quantity     decimal.Decimal     `json:"quantity"`
	Unit         domain.QuantityUnit `json:"unit"`
	PurchaseDate Date                `json:"purchaseDate"`
	ConsumedDate *Date               `json:"consumedDate"`
	Notes        *string             `json:"notes"`
}

func (req purchaseRequest) input() purchase.Input {
	return purchase.Input{
		CoopID:       req.CoopID,
		Name:         req.Name,
		Type:         req.Type,
		Amount:       req.Amount,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		PurchaseDate: req.PurchaseDate.Time,
		ConsumedDate: req.ConsumedDate.timePtr(),
		Notes:        req.Notes,
	}
}

type consumeRequest struct {
	ConsumedDate Date `json:"consumedDate"`
}

type purchaseResponse struct {
	ID           uuid.UUID           `json:"id"`
	CoopID       *uuid.UUID          `json:"coopId"`
	Name         string              `json:"name"`
	Type         domain.PurchaseType `json:"type"`
	Amount       decimal.Decimal     `json:"amount"`
	Quantity     decimal.Decimal     `json:"quantity"`
	Unit         domain.QuantityUnit `json:"unit"`
	PurchaseDate Date                `json:"purchaseDate"`
	ConsumedDate *Date               `json:"consumedDate"`
	Notes        *string             `json:"notes"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

func toPurchaseResponse(p *domain.Purchase) purchaseResponse {
	return purchaseResponse{
		ID:           p.ID,
		CoopID:       p.CoopID,
		Name:         p.Name,
		Type:         p.Type,
		Amount:       p.Amount,
		Quantity:     p.Quantity,
		Unit:         p.Unit,
		PurchaseDate: toDate(p.PurchaseDate),
		ConsumedDate: optionalDate(p.ConsumedDate),
		Notes:        p.Notes,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPurchaseResponses(ps []*domain.Purchase) []purchaseResponse {
	out := make([]purchaseResponse, len(ps))
	for i, p := range ps {
		out[i] = toPurchaseResponse(p)
	}
	return out
}

// Create handles POST /api/v1/purchases.
func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	respond(w, h.svc.Create(r.Context(), req.input()), http.StatusCreated, toPurchaseResponse)
}

// List handles GET /api/v1/purchases.
func (h *PurchaseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	input := purchase.ListInput{
		CoopID: q.id("coop_id"),
		From:   q.date("from"),
		To:     q.date("to"),
	}
	if t := q.text("type"); t != "" {
		pt := domain.PurchaseType(t)
		input.Type = &pt
	}
	if q.err != nil {
		writeFailure(w, q.err)
		return
	}
	respond(w, h.svc.List(r.Context(), input), http.StatusOK, toPurchaseResponses)
}

// Names handles GET /api/v1/purchases/names.
func (h *PurchaseHandler) Names(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	limit := h.search.Clamp(q.number("limit"))
	if q.err != nil {
		writeFailure(w, q.err)
		return
	}
	respond(w, h.svc.SearchNames(r.Context(), q.text("q"), limit), http.StatusOK, identity[[]string])
}

// Get handles GET /api/v1/purchases/{id}.
func (h *PurchaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.Get(r.Context(), id), http.StatusOK, toPurchaseResponse)
}

// Update handles PUT /api/v1/purchases/{id}.
func (h *PurchaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	var req purchaseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	respond(w, h.svc.Update(r.Context(), id, req.input()), http.StatusOK, toPurchaseResponse)
}

// Consume handles POST /api/v1/purchases/{id}/consume.
func (h *PurchaseHandler) Consume(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	var req consumeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	respond(w, h.svc.MarkConsumed(r.Context(), id, req.ConsumedDate.Time), http.StatusOK, toPurchaseResponse)
}

// Delete handles DELETE /api/v1/purchases/{id}.
func (h *PurchaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.Delete(r.Context(), id), http.StatusOK, noContent)
}
