package application

import (
	"context"
	"sort"

	"github.com/feastmap/storefront-api/internal/catalog/domain"
)

// DefaultTopStoresLimit is the number of records TopStores returns when the
// caller does not ask for a specific limit.
const DefaultTopStoresLimit = 10

// minReviewsForRanking excludes stores whose mean would rest on a single
// opinion; only the presence of a second review makes a store eligible.
const minReviewsForRanking = 2

// Analytics computes the two ranked read models over stores and reviews.
// Both queries are read-only and reflect repository state at call time; there
// is no caching between calls.
type Analytics struct {
	stores  StoreRepository
	reviews ReviewRepository
}

// NewAnalytics creates the analytics engine over the given repositories.
func NewAnalytics(stores StoreRepository, reviews ReviewRepository) *Analytics {
	return &Analytics{stores: stores, reviews: reviews}
}

// TopTags flattens the tag sequences of all stores and returns (tag, count)
// pairs sorted by count descending. Equal counts order by tag ascending so
// that repeated calls return identical rankings.
func (a *Analytics) TopTags(ctx context.Context) ([]domain.TagCount, error) {
	stores, err := a.stores.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, store := range stores {
		for _, tag := range store.Tags {
			counts[tag]++
		}
	}

	ranking := make([]domain.TagCount, 0, len(counts))
	for tag, count := range counts {
		ranking = append(ranking, domain.TagCount{Tag: tag, Count: count})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Tag < ranking[j].Tag
	})
	return ranking, nil
}

// TopStores left-joins every store with its reviews, keeps stores carrying at
// least two reviews and ranks them by mean rating descending, truncated to
// limit. Equal means order by slug ascending. A limit of zero or less falls
// back to DefaultTopStoresLimit.
func (a *Analytics) TopStores(ctx context.Context, limit int) ([]domain.RankedStore, error) {
	if limit <= 0 {
		limit = DefaultTopStoresLimit
	}

	stores, err := a.stores.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(stores))
	for _, store := range stores {
		ids = append(ids, store.ID)
	}
	reviewsByStore, err := a.reviews.FindByStores(ctx, ids)
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.RankedStore, 0, len(stores))
	for _, store := range stores {
		reviews := reviewsByStore[store.ID]
		if len(reviews) < minReviewsForRanking {
			continue
		}

		total := 0.0
		for _, review := range reviews {
			total += review.Rating
		}

		ranked = append(ranked, domain.RankedStore{
			Photo:         store.Photo,
			Name:          store.Name,
			Slug:          store.Slug,
			Reviews:       append([]domain.Review{}, reviews...),
			AverageRating: total / float64(len(reviews)),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AverageRating != ranked[j].AverageRating {
			return ranked[i].AverageRating > ranked[j].AverageRating
		}
		return ranked[i].Slug < ranked[j].Slug
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}
