package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/coopkeeper-backend/internal/domain"
	"github.com/heartmarshall/coopkeeper-backend/internal/result"
	"github.com/heartmarshall/coopkeeper-backend/internal/service/dailyrecord"
)

type dailyRecordService interface {
	Create(ctx context.Context, input dailyrecord.CreateInput) result.Result[*domain.DailyRecord]
	Get(ctx context.Context, id uuid.UUID) result.Result[*domain.DailyRecord]
	List(ctx context.Context, input dailyrecord.ListInput) result.Result[[]*domain.DailyRecord]
	Update(ctx context.Context, input dailyrecord.UpdateInput) result.Result[*domain.DailyRecord]
	Delete(ctx context.Context, id uuid.UUID) result.Result[struct{}]
}

// DailyRecordHandler serves /api/v1/daily-records.
type DailyRecordHandler struct {
	svc dailyRecordService
}

// NewDailyRecordHandler creates a DailyRecordHandler.
func NewDailyRecordHandler(svc dailyRecordService) *DailyRecordHandler {
	return &DailyRecordHandler{svc: svc}
}

type createDailyRecordRequest struct {
	FlockID    uuid.UUID `json:"flockId"`
	RecordDate Date      `json:"recordDate"`
	EggCount   int       `json:"eggCount"`
	Notes      *string   `json:"notes"`
}

type updateDailyRecordRequest struct {
	EggCount int     `json:"eggCount"`
	Notes    *string `json:"notes"`
}

type dailyRecordResponse struct {
	ID         uuid.UUID `json:"id"`
	FlockID    uuid.UUID `json:"flockId"`
	RecordDate Date      `json:"recordDate"`
	EggCount   int       `json:"eggCount"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func toDailyRecordResponse(rec *domain.DailyRecord) dailyRecordResponse {
	return dailyRecordResponse{
		ID:         rec.ID,
		FlockID:    rec.FlockID,
		RecordDate: toDate(rec.RecordDate),
		EggCount:   rec.EggCount,
		Notes:      rec.Notes,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}

func toDailyRecordResponses(recs []*domain.DailyRecord) []dailyRecordResponse {
	out := make([]dailyRecordResponse, len(recs))
	for i, rec := range recs {
		out[i] = toDailyRecordResponse(rec)
	}
	return out
}

// Create handles POST /api/v1/daily-records.
func (h *DailyRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDailyRecordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res := h.svc.Create(r.Context(), dailyrecord.CreateInput{
		FlockID:    req.FlockID,
		RecordDate: req.RecordDate.Time,
		EggCount:   req.EggCount,
		Notes:      req.Notes,
	})
	respond(w, res, http.StatusCreated, toDailyRecordResponse)
}

// List handles GET /api/v1/daily-records.
func (h *DailyRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r)
	input := dailyrecord.ListInput{
		FlockID: q.id("flock_id"),
		From:    q.date("from"),
		To:      q.date("to"),
	}
	if q.err != nil {
		writeFailure(w, q.err)
		return
	}
	respond(w, h.svc.List(r.Context(), input), http.StatusOK, toDailyRecordResponses)
}

// Get handles GET /api/v1/daily-records/{id}.
func (h *DailyRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.Get(r.Context(), id), http.StatusOK, toDailyRecordResponse)
}

// Update handles PUT /api/v1/daily-records/{id}.
func (h *DailyRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	var req updateDailyRecordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	res := h.svc.Update(r.Context(), dailyrecord.UpdateInput{ID: id, EggCount: req.EggCount, Notes: req.Notes})
	respond(w, res, http.StatusOK, toDailyRecordResponse)
}

// Delete handles DELETE /api/v1/daily-records/{id}.
func (h *DailyRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, perr := pathID(r)
	if perr != nil {
		writeFailure(w, perr)
		return
	}
	respond(w, h.svc.Delete(r.Context(), id), http.StatusOK, noContent)
}
