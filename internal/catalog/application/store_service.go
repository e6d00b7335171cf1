package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/feastmap/storefront-api/internal/catalog/domain"
	"github.com/feastmap/storefront-api/pkg/slug"
)

// maxSlugAttempts bounds the conflict renumber loop. The unique index on
// slug is the correctness backstop when concurrent writers race on the same
// base; the count query alone is not atomic against other derivations.
const maxSlugAttempts = 5

// StoreService owns store mutations and lookups. Every mutation that changes
// the display name re-derives the slug before persisting; no other mutation
// touches the slug.
type StoreService struct {
	stores StoreRepository
}

// NewStoreService creates a store service over the given repository.
func NewStoreService(stores StoreRepository) *StoreService {
	return &StoreService{stores: stores}
}

// Create validates the required fields, derives a unique slug from the name
// and persists the store. It returns the stored record with id and createdAt
// assigned.
func (s *StoreService) Create(ctx context.Context, cmd CreateStoreCommand) (*domain.Store, error) {
	name := strings.TrimSpace(cmd.Name)
	address := strings.TrimSpace(cmd.Address)
	authorID := strings.TrimSpace(cmd.AuthorID)

	missing := make([]string, 0)
	if name == "" {
		missing = append(missing, "name")
	}
	if len(cmd.Coordinates) != 2 {
		missing = append(missing, "location.coordinates")
	}
	if address == "" {
		missing = append(missing, "location.address")
	}
	if authorID == "" {
		missing = append(missing, "authorId")
	}
	if len(missing) > 0 {
		return nil, &domain.ValidationError{Fields: missing}
	}

	store := &domain.Store{
		Name:        name,
		Description: strings.TrimSpace(cmd.Description),
		Tags:        append([]string{}, cmd.Tags...),
		Location: domain.GeoLocation{
			Coordinates: [2]float64{cmd.Coordinates[0], cmd.Coordinates[1]},
			Address:     address,
		},
		Photo:     strings.TrimSpace(cmd.Photo),
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}

	err := s.withDerivedSlug(ctx, name, "", func(derived string) error {
		store.Slug = derived
		return s.stores.Insert(ctx, store)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// UpdateName renames a store. An unchanged name leaves the record, slug
// included, untouched; a real change re-derives the slug against the current
// corpus exactly as Create does.
func (s *StoreService) UpdateName(ctx context.Context, id, newName string) (*domain.Store, error) {
	name := strings.TrimSpace(newName)
	if name == "" {
		return nil, &domain.ValidationError{Fields: []string{"name"}}
	}

	current, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Name == name {
		return current, nil
	}

	var updated *domain.Store
	err = s.withDerivedSlug(ctx, name, id, func(derived string) error {
		result, updateErr := s.stores.UpdateNameAndSlug(ctx, id, name, derived)
		if updateErr != nil {
			return updateErr
		}
		updated = result
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// FindBySlug returns the store carrying the given slug.
func (s *StoreService) FindBySlug(ctx context.Context, value string) (*domain.Store, error) {
	return s.stores.FindBySlug(ctx, strings.TrimSpace(value))
}

// FindByID returns the store with the given identifier.
func (s *StoreService) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	return s.stores.FindByID(ctx, strings.TrimSpace(id))
}

// withDerivedSlug invokes persist with a freshly derived slug: the candidate
// base when no store occupies it, otherwise base-(matches+1). When persist
// reports a conflict the count is taken again and the write retried, at most
// maxSlugAttempts times.
func (s *StoreService) withDerivedSlug(ctx context.Context, name, excludeID string, persist func(derived string) error) error {
	base := slug.From(name)

	lastSlug := base
	for attempt := 0; attempt < maxSlugAttempts; attempt++ {
		matches, err := s.stores.CountSlugMatches(ctx, base, excludeID)
		if err != nil {
			return err
		}

		derived := base
		if matches > 0 {
			derived = fmt.Sprintf("%s-%d", base, matches+1)
		}
		lastSlug = derived

		err = persist(derived)
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			continue
		}
		return err
	}
	return &domain.ConflictError{Slug: lastSlug}
}
