package application_test

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/feastmap/storefront-api/internal/catalog/domain"
	"github.com/feastmap/storefront-api/pkg/slug"
)

// fakeStoreRepo is an in-memory StoreRepository. Setting conflictsLeft makes
// the next N writes lose a simulated race: a competing record takes the
// derived slug just before the write lands, which is exactly what the unique
// index would report.
type fakeStoreRepo struct {
	mu             sync.Mutex
	stores         map[string]*domain.Store
	nextID         int
	conflictsLeft  int
	alwaysConflict bool
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: make(map[string]*domain.Store)}
}

func (r *fakeStoreRepo) assignID() string {
	r.nextID++
	return fmt.Sprintf("store-%04d", r.nextID)
}

func (r *fakeStoreRepo) slugTaken(value, excludeID string) bool {
	for id, store := range r.stores {
		if id != excludeID && store.Slug == value {
			return true
		}
	}
	return false
}

func (r *fakeStoreRepo) loseRace(derived string) error {
	competitor := domain.Store{ID: r.assignID(), Name: "competitor", Slug: derived}
	r.stores[competitor.ID] = &competitor
	return &domain.ConflictError{Slug: derived}
}

func (r *fakeStoreRepo) Insert(_ context.Context, store *domain.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.alwaysConflict {
		return &domain.ConflictError{Slug: store.Slug}
	}
	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		return r.loseRace(store.Slug)
	}
	if r.slugTaken(store.Slug, "") {
		return &domain.ConflictError{Slug: store.Slug}
	}

	store.ID = r.assignID()
	stored := *store
	r.stores[stored.ID] = &stored
	return nil
}

func (r *fakeStoreRepo) UpdateNameAndSlug(_ context.Context, id, name, slugValue string) (*domain.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[id]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "store", ID: id}
	}
	if r.alwaysConflict {
		return nil, &domain.ConflictError{Slug: slugValue}
	}
	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		return nil, r.loseRace(slugValue)
	}
	if r.slugTaken(slugValue, id) {
		return nil, &domain.ConflictError{Slug: slugValue}
	}

	store.Name = name
	store.Slug = slugValue
	updated := *store
	return &updated, nil
}

func (r *fakeStoreRepo) FindByID(_ context.Context, id string) (*domain.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[id]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "store", ID: id}
	}
	found := *store
	return &found, nil
}

func (r *fakeStoreRepo) FindBySlug(_ context.Context, value string) (*domain.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, store := range r.stores {
		if store.Slug == value {
			found := *store
			return &found, nil
		}
	}
	return nil, &domain.NotFoundError{Resource: "store", ID: value}
}

func (r *fakeStoreRepo) FindAll(_ context.Context) ([]domain.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]domain.Store, 0, len(r.stores))
	for _, store := range r.stores {
		all = append(all, *store)
	}
	return all, nil
}

func (r *fakeStoreRepo) CountSlugMatches(_ context.Context, base, excludeID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	re := regexp.MustCompile("(?i)" + slug.Pattern(base))
	var matches int64
	for id, store := range r.stores {
		if id != excludeID && re.MatchString(store.Slug) {
			matches++
		}
	}
	return matches, nil
}

// seed places a store directly into the corpus, bypassing the service.
func (r *fakeStoreRepo) seed(store domain.Store) domain.Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if store.ID == "" {
		store.ID = r.assignID()
	}
	stored := store
	r.stores[stored.ID] = &stored
	return stored
}

// fakeReviewRepo is an in-memory ReviewRepository.
type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []domain.Review
	nextID  int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (r *fakeReviewRepo) Insert(_ context.Context, review *domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	review.ID = fmt.Sprintf("review-%04d", r.nextID)
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) FindByStore(_ context.Context, storeID string) ([]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.Review, 0)
	for _, review := range r.reviews {
		if review.StoreID == storeID {
			result = append(result, review)
		}
	}
	return result, nil
}

func (r *fakeReviewRepo) FindByStores(_ context.Context, storeIDs []string) (map[string][]domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	wanted := make(map[string]struct{}, len(storeIDs))
	for _, id := range storeIDs {
		wanted[id] = struct{}{}
	}

	result := make(map[string][]domain.Review)
	for _, review := range r.reviews {
		if _, ok := wanted[review.StoreID]; ok {
			result[review.StoreID] = append(result[review.StoreID], review)
		}
	}
	return result, nil
}

// seed places a review directly into the corpus, bypassing the service.
func (r *fakeReviewRepo) seed(storeID string, ratings ...float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rating := range ratings {
		r.nextID++
		r.reviews = append(r.reviews, domain.Review{
			ID:       fmt.Sprintf("review-%04d", r.nextID),
			StoreID:  storeID,
			AuthorID: "seed-author",
			Rating:   rating,
		})
	}
}
