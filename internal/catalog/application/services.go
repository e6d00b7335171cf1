package application

import (
	"context"

	"github.com/feastmap/storefront-api/internal/catalog/domain"
)

// StoreRepository is the persistence port for stores.
// StoreRepository は店舗集約を読み書きするためのポート。
type StoreRepository interface {
	// Insert persists a new store and assigns its identifier.
	Insert(ctx context.Context, store *domain.Store) error
	// UpdateNameAndSlug replaces name and slug on an existing store and
	// returns the updated record.
	UpdateNameAndSlug(ctx context.Context, id, name, slug string) (*domain.Store, error)
	FindByID(ctx context.Context, id string) (*domain.Store, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Store, error)
	FindAll(ctx context.Context) ([]domain.Store, error)
	// CountSlugMatches counts stores whose slug is base or base-N,
	// case-insensitively, excluding excludeID when non-empty.
	CountSlugMatches(ctx context.Context, base, excludeID string) (int64, error)
}

// ReviewRepository is the persistence port for reviews.
// ReviewRepository はレビューを読み書きするためのポート。
type ReviewRepository interface {
	// Insert persists a new review and assigns its identifier.
	Insert(ctx context.Context, review *domain.Review) error
	FindByStore(ctx context.Context, storeID string) ([]domain.Review, error)
	// FindByStores loads reviews for all given stores in one round trip,
	// keyed by store id. Stores without reviews are absent from the map.
	FindByStores(ctx context.Context, storeIDs []string) (map[string][]domain.Review, error)
}

// CreateStoreCommand carries the form input for a new store. Field presence
// is checked here; content sanitation happens upstream.
type CreateStoreCommand struct {
	Name        string
	Description string
	Tags        []string
	Coordinates []float64
	Address     string
	Photo       string
	AuthorID    string
}

// SubmitReviewCommand captures a single review submission.
type SubmitReviewCommand struct {
	StoreID  string
	AuthorID string
	Rating   float64
	Text     string
}
