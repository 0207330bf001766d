package rest

import "net/http"

// Handlers groups every REST handler the router mounts.
type Handlers struct {
	Health       *HealthHandler
	Coops        *CoopHandler
	Flocks       *FlockHandler
	DailyRecords *DailyRecordHandler
	Purchases    *PurchaseHandler
	Metrics      http.Handler
}

// NewRouter registers all routes on a new ServeMux. Literal segments such as
// /coops/search take precedence over the {id} wildcard.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	mux.HandleFunc("POST /api/v1/coops", h.Coops.Create)
	mux.HandleFunc("GET /api/v1/coops", h.Coops.List)
	mux.HandleFunc("GET /api/v1/coops/search", h.Coops.Search)
	mux.HandleFunc("GET /api/v1/coops/{id}", h.Coops.Get)
	mux.HandleFunc("PUT /api/v1/coops/{id}", h.Coops.Update)
	mux.HandleFunc("DELETE /api/v1/coops/{id}", h.Coops.Delete)
	mux.HandleFunc("POST /api/v1/coops/{id}/deactivate", h.Coops.Deactivate)
	mux.HandleFunc("POST /api/v1/coops/{id}/reactivate", h.Coops.Reactivate)

	mux.HandleFunc("POST /api/v1/flocks", h.Flocks.Create)
	mux.HandleFunc("GET /api/v1/flocks", h.Flocks.List)
	mux.HandleFunc("GET /api/v1/flocks/search", h.Flocks.Search)
	mux.HandleFunc("GET /api/v1/flocks/{id}", h.Flocks.Get)
	mux.HandleFunc("PUT /api/v1/flocks/{id}", h.Flocks.Update)
	mux.HandleFunc("POST /api/v1/flocks/{id}/composition", h.Flocks.UpdateComposition)
	mux.HandleFunc("POST /api/v1/flocks/{id}/archive", h.Flocks.Archive)
	mux.HandleFunc("POST /api/v1/flocks/{id}/reactivate", h.Flocks.Reactivate)
	mux.HandleFunc("GET /api/v1/flocks/{id}/history", h.Flocks.History)
	mux.HandleFunc("PATCH /api/v1/flock-history/{id}/notes", h.Flocks.UpdateHistoryNotes)

	mux.HandleFunc("POST /api/v1/daily-records", h.DailyRecords.Create)
	mux.HandleFunc("GET /api/v1/daily-records", h.DailyRecords.List)
	mux.HandleFunc("GET /api/v1/daily-records/{id}", h.DailyRecords.Get)
	mux.HandleFunc("PUT /api/v1/daily-records/{id}", h.DailyRecords.Update)
	mux.HandleFunc("DELETE /api/v1/daily-records/{id}", h.DailyRecords.Delete)

	mux.HandleFunc("POST /api/v1/purchases", h.Purchases.Create)
	mux.HandleFunc("GET /api/v1/purchases", h.Purchases.List)
	mux.HandleFunc("GET /api/v1/purchases/names", h.Purchases.Names)
	mux.HandleFunc("GET /api/v1/purchases/{id}", h.Purchases.Get)
	mux.HandleFunc("PUT /api/v1/purchases/{id}", h.Purchases.Update)
	mux.HandleFunc("POST /api/v1/purchases/{id}/consume", h.Purchases.Consume)
	mux.HandleFunc("DELETE /api/v1/purchases/{id}", h.Purchases.Delete)

	return mux
}
