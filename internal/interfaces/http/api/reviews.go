package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/feastmap/storefront-api/internal/catalog/application"
	"github.com/feastmap/storefront-api/internal/interfaces/http/common"
)

func (h *Handler) reviewCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		storeID := strings.TrimSpace(chi.URLParam(r, "id"))

		var req reviewCreateRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		// The catalog core takes the rating range as a precondition, so the
		// bounds check belongs here at the edge.
		if req.Rating < common.MinRating || req.Rating > common.MaxRating {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{
				"error": fmt.Sprintf("rating must be between %d and %d", common.MinRating, common.MaxRating),
			})
			return
		}

		review, err := h.reviews.Submit(ctx, application.SubmitReviewCommand{
			StoreID:  storeID,
			AuthorID: user.ID,
			Rating:   req.Rating,
			Text:     req.Text,
		})
		if err != nil {
			common.WriteDomainError(h.logger, w, err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildReviewResponse(*review))
	}
}

func (h *Handler) storeReviewsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		storeID := strings.TrimSpace(chi.URLParam(r, "id"))
		reviews, err := h.reviews.ListByStore(ctx, storeID)
		if err != nil {
			common.WriteDomainError(h.logger, w, err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildReviewResponses(reviews))
	}
}
