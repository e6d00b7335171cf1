package application

import (
	"context"
	"strings"
	"time"

	"github.com/feastmap/storefront-api/internal/catalog/domain"
)

// ReviewService creates reviews and lists them per store. Reviews carry no
// derived state of their own and are never mutated after creation.
type ReviewService struct {
	stores  StoreRepository
	reviews ReviewRepository
}

// NewReviewService creates a review service over the given repositories.
func NewReviewService(stores StoreRepository, reviews ReviewRepository) *ReviewService {
	return &ReviewService{stores: stores, reviews: reviews}
}

// Submit persists a new review. The store must exist; the author must be
// present. The rating range is an upstream-validated precondition.
func (s *ReviewService) Submit(ctx context.Context, cmd SubmitReviewCommand) (*domain.Review, error) {
	authorID := strings.TrimSpace(cmd.AuthorID)
	if authorID == "" {
		return nil, &domain.ValidationError{Fields: []string{"authorId"}}
	}

	storeID := strings.TrimSpace(cmd.StoreID)
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		StoreID:   storeID,
		AuthorID:  authorID,
		Rating:    cmd.Rating,
		Text:      strings.TrimSpace(cmd.Text),
		CreatedAt: time.Now().UTC(),
	}
	return review, s.reviews.Insert(ctx, review)
}

// ListByStore returns all reviews attached to the given store.
func (s *ReviewService) ListByStore(ctx context.Context, storeID string) ([]domain.Review, error) {
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, err
	}
	return s.reviews.FindByStore(ctx, storeID)
}
