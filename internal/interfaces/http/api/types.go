package api

import (
	"time"

	"github.com/feastmap/storefront-api/internal/catalog/domain"
)

type storeCreateRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Address     string    `json:"address"`
	Coordinates []float64 `json:"coordinates"`
	Photo       string    `json:"photo"`
}

type storeRenameRequest struct {
	Name string `json:"name"`
}

type reviewCreateRequest struct {
	Rating float64 `json:"rating"`
	Text   string  `json:"text"`
}

type storeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Tags        []string  `json:"tags"`
	Address     string    `json:"address"`
	Coordinates []float64 `json:"coordinates"`
	Photo       string    `json:"photo,omitempty"`
	AuthorID    string    `json:"authorId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type reviewResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	AuthorID  string    `json:"authorId"`
	Rating    float64   `json:"rating"`
	Text      string    `json:"text,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type tagCountResponse struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type rankedStoreResponse struct {
	Photo         string           `json:"photo,omitempty"`
	Name          string           `json:"name"`
	Slug          string           `json:"slug"`
	Reviews       []reviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
}

func buildStoreResponse(store domain.Store) storeResponse {
	return storeResponse{
		ID:          store.ID,
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		Tags:        append([]string{}, store.Tags...),
		Address:     store.Location.Address,
		Coordinates: []float64{store.Location.Coordinates[0], store.Location.Coordinates[1]},
		Photo:       store.Photo,
		AuthorID:    store.AuthorID,
		CreatedAt:   store.CreatedAt,
	}
}

func buildReviewResponse(review domain.Review) reviewResponse {
	return reviewResponse{
		ID:        review.ID,
		StoreID:   review.StoreID,
		AuthorID:  review.AuthorID,
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}
}

func buildReviewResponses(reviews []domain.Review) []reviewResponse {
	result := make([]reviewResponse, 0, len(reviews))
	for _, review := range reviews {
		result = append(result, buildReviewResponse(review))
	}
	return result
}

func buildRankedStoreResponse(ranked domain.RankedStore) rankedStoreResponse {
	return rankedStoreResponse{
		Photo:         ranked.Photo,
		Name:          ranked.Name,
		Slug:          ranked.Slug,
		Reviews:       buildReviewResponses(ranked.Reviews),
		AverageRating: ranked.AverageRating,
	}
}
