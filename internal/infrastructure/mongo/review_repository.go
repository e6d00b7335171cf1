package mongo

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/feastmap/storefront-api/internal/catalog/domain"
)

// ReviewRepository implements application.ReviewRepository using MongoDB.
type ReviewRepository struct {
	collection *mongo.Collection
}

// NewReviewRepository creates a new Mongo-backed review repository.
func NewReviewRepository(db *mongo.Database, collectionName string) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection(collectionName)}
}

// EnsureIndexes creates the storeId index backing the store-to-review join.
func (r *ReviewRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "storeId", Value: 1}},
	})
	return err
}

// Insert persists a new review document and writes the assigned id back into
// the domain model.
func (r *ReviewRepository) Insert(ctx context.Context, review *domain.Review) error {
	storeID, err := primitive.ObjectIDFromHex(strings.TrimSpace(review.StoreID))
	if err != nil {
		return &domain.NotFoundError{Resource: "store", ID: review.StoreID}
	}

	doc := ReviewDocument{
		ID:        primitive.NewObjectID(),
		StoreID:   storeID,
		AuthorID:  review.AuthorID,
		Rating:    review.Rating,
		Text:      review.Text,
		CreatedAt: review.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}

	review.ID = doc.ID.Hex()
	return nil
}

// FindByStore returns all reviews attached to the given store.
func (r *ReviewRepository) FindByStore(ctx context.Context, storeID string) ([]domain.Review, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(storeID))
	if err != nil {
		return nil, &domain.NotFoundError{Resource: "store", ID: storeID}
	}

	cursor, err := r.collection.Find(ctx, bson.M{"storeId": objectID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reviews := make([]domain.Review, 0)
	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		reviews = append(reviews, mapReviewDocument(doc))
	}
	return reviews, cursor.Err()
}

// FindByStores loads the reviews of all given stores in one query and groups
// them by store id.
func (r *ReviewRepository) FindByStores(ctx context.Context, storeIDs []string) (map[string][]domain.Review, error) {
	result := make(map[string][]domain.Review, len(storeIDs))
	if len(storeIDs) == 0 {
		return result, nil
	}

	objectIDs := make([]primitive.ObjectID, 0, len(storeIDs))
	for _, id := range storeIDs {
		objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}

	cursor, err := r.collection.Find(ctx, bson.M{"storeId": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		key := doc.StoreID.Hex()
		result[key] = append(result[key], mapReviewDocument(doc))
	}
	return result, cursor.Err()
}
