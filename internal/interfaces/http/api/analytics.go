package api

import (
	"context"
	"net/http"
	"time"

	"github.com/feastmap/storefront-api/internal/catalog/application"
	"github.com/feastmap/storefront-api/internal/interfaces/http/common"
)

func (h *Handler) topTagsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		ranking, err := h.analytics.TopTags(ctx)
		if err != nil {
			h.logger.Printf("top tags query failed: %v", err)
			common.WriteDomainError(h.logger, w, err)
			return
		}

		items := make([]tagCountResponse, 0, len(ranking))
		for _, entry := range ranking {
			items = append(items, tagCountResponse{Tag: entry.Tag, Count: entry.Count})
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}

func (h *Handler) topStoresHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		limit, _ := common.ParsePositiveInt(r.URL.Query().Get("limit"), application.DefaultTopStoresLimit)

		ranked, err := h.analytics.TopStores(ctx, limit)
		if err != nil {
			h.logger.Printf("top stores query failed: %v", err)
			common.WriteDomainError(h.logger, w, err)
			return
		}

		items := make([]rankedStoreResponse, 0, len(ranked))
		for _, entry := range ranked {
			items = append(items, buildRankedStoreResponse(entry))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, items)
	}
}
