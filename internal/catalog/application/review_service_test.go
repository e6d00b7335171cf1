package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feastmap/storefront-api/internal/catalog/application"
	"github.com/feastmap/storefront-api/internal/catalog/domain"
)

func TestReviewService_Submit(t *testing.T) {
	ctx := context.Background()
	stores := newFakeStoreRepo()
	reviews := newFakeReviewRepo()
	svc := application.NewReviewService(stores, reviews)

	store := stores.seed(domain.Store{Name: "Target", Slug: "target"})

	review, err := svc.Submit(ctx, application.SubmitReviewCommand{
		StoreID:  store.ID,
		AuthorID: "author-1",
		Rating:   4,
		Text:     "  solid flat white  ",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, review.ID)
	assert.Equal(t, store.ID, review.StoreID)
	assert.Equal(t, "solid flat white", review.Text)
	assert.False(t, review.CreatedAt.IsZero())

	listed, err := svc.ListByStore(ctx, store.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, review.ID, listed[0].ID)
}

func TestReviewService_Submit_UnknownStore(t *testing.T) {
	svc := application.NewReviewService(newFakeStoreRepo(), newFakeReviewRepo())

	_, err := svc.Submit(context.Background(), application.SubmitReviewCommand{
		StoreID:  "missing",
		AuthorID: "author-1",
		Rating:   3,
	})
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestReviewService_Submit_MissingAuthor(t *testing.T) {
	stores := newFakeStoreRepo()
	store := stores.seed(domain.Store{Name: "Target", Slug: "target"})
	svc := application.NewReviewService(stores, newFakeReviewRepo())

	_, err := svc.Submit(context.Background(), application.SubmitReviewCommand{
		StoreID: store.ID,
		Rating:  3,
	})
	var validation *domain.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, []string{"authorId"}, validation.Fields)
}

func TestReviewService_ListByStore_UnknownStore(t *testing.T) {
	svc := application.NewReviewService(newFakeStoreRepo(), newFakeReviewRepo())

	_, err := svc.ListByStore(context.Background(), "missing")
	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
