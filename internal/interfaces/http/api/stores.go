package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/feastmap/storefront-api/internal/catalog/application"
	"github.com/feastmap/storefront-api/internal/interfaces/http/common"
)

func (h *Handler) storeCreateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			return
		}

		var req storeCreateRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		store, err := h.stores.Create(ctx, application.CreateStoreCommand{
			Name:        req.Name,
			Description: req.Description,
			Tags:        req.Tags,
			Coordinates: req.Coordinates,
			Address:     req.Address,
			Photo:       req.Photo,
			AuthorID:    user.ID,
		})
		if err != nil {
			common.WriteDomainError(h.logger, w, err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildStoreResponse(*store))
	}
}

func (h *Handler) storeRenameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		if id == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "store id is required"})
			return
		}

		var req storeRenameRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
			return
		}

		store, err := h.stores.UpdateName(ctx, id, req.Name)
		if err != nil {
			common.WriteDomainError(h.logger, w, err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStoreResponse(*store))
	}
}

func (h *Handler) storeBySlugHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		slugParam := strings.TrimSpace(chi.URLParam(r, "slug"))
		store, err := h.stores.FindBySlug(ctx, slugParam)
		if err != nil {
			common.WriteDomainError(h.logger, w, err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStoreResponse(*store))
	}
}

func (h *Handler) storeByIDHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id := strings.TrimSpace(chi.URLParam(r, "id"))
		store, err := h.stores.FindByID(ctx, id)
		if err != nil {
			common.WriteDomainError(h.logger, w, err)
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildStoreResponse(*store))
	}
}
