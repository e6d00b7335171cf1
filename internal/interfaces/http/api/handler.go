package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/feastmap/storefront-api/internal/catalog/application"
)

// Handler wires the catalog HTTP endpoints to application services.
type Handler struct {
	logger    *log.Logger
	stores    *application.StoreService
	reviews   *application.ReviewService
	analytics *application.Analytics
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger    *log.Logger
	Stores    *application.StoreService
	Reviews   *application.ReviewService
	Analytics *application.Analytics
}

// NewHandler constructs the catalog HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:    cfg.Logger,
		stores:    cfg.Stores,
		reviews:   cfg.Reviews,
		analytics: cfg.Analytics,
	}
}

// Register mounts all catalog routes onto the router. Mutations require an
// authenticated author supplied by the auth middleware.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/stores/top", h.topStoresHandler())
	r.Get("/stores/slug/{slug}", h.storeBySlugHandler())
	r.Get("/stores/{id}", h.storeByIDHandler())
	r.Get("/stores/{id}/reviews", h.storeReviewsHandler())
	r.Get("/tags/top", h.topTagsHandler())
	r.With(authMiddleware).Post("/stores", h.storeCreateHandler())
	r.With(authMiddleware).Patch("/stores/{id}/name", h.storeRenameHandler())
	r.With(authMiddleware).Post("/stores/{id}/reviews", h.reviewCreateHandler())
}
