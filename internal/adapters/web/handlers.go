package web

import (
	"net/http"

	"fulfilment-monolith/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)
	r.Get("/api/schema/{name}", h.requestSchema)
	r.Get("/api/reports/location-utilization", h.locationUtilization)

	r.Route("/warehouse", func(r chi.Router) {
		r.Get("/", h.listWarehouses)
		r.Post("/", h.createWarehouse)
		r.Get("/{id}", h.getWarehouse)
		r.Delete("/{id}", h.archiveWarehouse)
		r.Post("/{id}/replacement", h.replaceWarehouse)
	})

	r.Route("/fulfilment-association", func(r chi.Router) {
		r.Get("/", h.listAssociations)
		r.Post("/", h.associate)
	})

	r.Route("/product", func(r chi.Router) {
		r.Get("/", h.listProducts)
		r.Post("/", h.createProduct)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})

	r.Route("/store", func(r chi.Router) {
		r.Get("/", h.listStores)
		r.Post("/", h.createStore)
		r.Get("/{id}", h.getStore)
		r.Put("/{id}", h.updateStore)
		r.Delete("/{id}", h.deleteStore)
	})

	h.router = r
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
