package application_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastmap/storefront-api/internal/catalog/application"
	"github.com/feastmap/storefront-api/internal/catalog/domain"
)

func TestAnalytics_TopTags(t *testing.T) {
	ctx := context.Background()
	stores := newFakeStoreRepo()
	stores.seed(domain.Store{Name: "One", Slug: "one", Tags: []string{"a", "b"}})
	stores.seed(domain.Store{Name: "Two", Slug: "two", Tags: []string{"a"}})
	stores.seed(domain.Store{Name: "Three", Slug: "three", Tags: []string{"c"}})

	engine := application.NewAnalytics(stores, newFakeReviewRepo())

	ranking, err := engine.TopTags(ctx)
	require.NoError(t, err)

	// "a" leads with 2; ties on count 1 order by tag ascending.
	assert.Equal(t, []domain.TagCount{
		{Tag: "a", Count: 2},
		{Tag: "b", Count: 1},
		{Tag: "c", Count: 1},
	}, ranking)
}

func TestAnalytics_TopTags_CountsDuplicatesWithinStore(t *testing.T) {
	ctx := context.Background()
	stores := newFakeStoreRepo()
	stores.seed(domain.Store{Name: "One", Slug: "one", Tags: []string{"wifi", "wifi"}})

	engine := application.NewAnalytics(stores, newFakeReviewRepo())

	ranking, err := engine.TopTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.TagCount{{Tag: "wifi", Count: 2}}, ranking)
}

func TestAnalytics_TopStores_RequiresTwoReviews(t *testing.T) {
	ctx := context.Background()
	stores := newFakeStoreRepo()
	reviews := newFakeReviewRepo()

	single := stores.seed(domain.Store{Name: "Single", Slug: "single"})
	double := stores.seed(domain.Store{Name: "Double", Slug: "double"})
	stores.seed(domain.Store{Name: "None", Slug: "none"})
	reviews.seed(single.ID, 4)
	reviews.seed(double.ID, 4, 4)

	engine := application.NewAnalytics(stores, reviews)

	ranked, err := engine.TopStores(ctx, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, "double", ranked[0].Slug)
	assert.Len(t, ranked[0].Reviews, 2)
}

func TestAnalytics_TopStores_RanksByMeanRating(t *testing.T) {
	ctx := context.Background()
	stores := newFakeStoreRepo()
	reviews := newFakeReviewRepo()

	x := stores.seed(domain.Store{Name: "X", Slug: "x", Photo: "x.jpg"})
	y := stores.seed(domain.Store{Name: "Y", Slug: "y"})
	reviews.seed(x.ID, 4, 5)
	reviews.seed(y.ID, 3, 3, 3)

	engine := application.NewAnalytics(stores, reviews)

	ranked, err := engine.TopStores(ctx, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, "x", ranked[0].Slug)
	assert.InDelta(t, 4.5, ranked[0].AverageRating, 1e-9)
	assert.Equal(t, "x.jpg", ranked[0].Photo)
	assert.Equal(t, "y", ranked[1].Slug)
	assert.InDelta(t, 3.0, ranked[1].AverageRating, 1e-9)
}

func TestAnalytics_TopStores_Limit(t *testing.T) {
	ctx := context.Background()
	stores := newFakeStoreRepo()
	reviews := newFakeReviewRepo()

	for i := 0; i < 5; i++ {
		store := stores.seed(domain.Store{
			Name: fmt.Sprintf("Store %d", i),
			Slug: fmt.Sprintf("store-%d", i),
		})
		rating := float64(i%5) + 1
		reviews.seed(store.ID, rating, rating)
	}

	engine := application.NewAnalytics(stores, reviews)

	ranked, err := engine.TopStores(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.InDelta(t, 5.0, ranked[0].AverageRating, 1e-9)
}

func TestAnalytics_TopStores_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	stores := newFakeStoreRepo()
	reviews := newFakeReviewRepo()

	for i := 0; i < 12; i++ {
		store := stores.seed(domain.Store{
			Name: fmt.Sprintf("Store %d", i),
			Slug: fmt.Sprintf("store-%02d", i),
		})
		reviews.seed(store.ID, 3, 4)
	}

	engine := application.NewAnalytics(stores, reviews)

	ranked, err := engine.TopStores(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, ranked, application.DefaultTopStoresLimit)
}

func TestAnalytics_TopStores_TieBreaksBySlug(t *testing.T) {
	ctx := context.Background()
	stores := newFakeStoreRepo()
	reviews := newFakeReviewRepo()

	b := stores.seed(domain.Store{Name: "B", Slug: "b"})
	a := stores.seed(domain.Store{Name: "A", Slug: "a"})
	reviews.seed(b.ID, 4, 4)
	reviews.seed(a.ID, 4, 4)

	engine := application.NewAnalytics(stores, reviews)

	ranked, err := engine.TopStores(ctx, 0)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Slug)
	assert.Equal(t, "b", ranked[1].Slug)
}

func TestAnalytics_Idempotence(t *testing.T) {
	ctx := context.Background()
	stores := newFakeStoreRepo()
	reviews := newFakeReviewRepo()

	store := stores.seed(domain.Store{Name: "One", Slug: "one", Tags: []string{"a", "b"}})
	reviews.seed(store.ID, 2, 5)

	engine := application.NewAnalytics(stores, reviews)

	tagsFirst, err := engine.TopTags(ctx)
	require.NoError(t, err)
	tagsSecond, err := engine.TopTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, tagsFirst, tagsSecond)

	storesFirst, err := engine.TopStores(ctx, 0)
	require.NoError(t, err)
	storesSecond, err := engine.TopStores(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, storesFirst, storesSecond)
}
