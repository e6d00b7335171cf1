package mongo

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/feastmap/storefront-api/internal/catalog/domain"
	"github.com/feastmap/storefront-api/pkg/slug"
)

// StoreRepository implements application.StoreRepository using MongoDB.
type StoreRepository struct {
	collection *mongo.Collection
}

// NewStoreRepository creates a new Mongo-backed store repository.
func NewStoreRepository(db *mongo.Database, collectionName string) *StoreRepository {
	return &StoreRepository{collection: db.Collection(collectionName)}
}

// EnsureIndexes creates the indexes the catalog depends on: a text index over
// name+description for search, a 2dsphere index over location for
// radius/nearest queries, and the unique slug index that backs the slug
// invariant under concurrent writers.
func (r *StoreRepository) EnsureIndexes(ctx context.Context) error {
	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
		},
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, models)
	return err
}

// Insert persists a new store document and writes the assigned id back into
// the domain model. A duplicate-key error on the slug index surfaces as a
// ConflictError so the caller's renumber loop can react.
func (r *StoreRepository) Insert(ctx context.Context, store *domain.Store) error {
	doc := StoreDocument{
		ID:          primitive.NewObjectID(),
		Name:        store.Name,
		Slug:        store.Slug,
		Description: store.Description,
		Tags:        append([]string{}, store.Tags...),
		Location: StoreLocationDocument{
			Type:        geoJSONPoint,
			Coordinates: store.Location.Coordinates,
			Address:     store.Location.Address,
		},
		Photo:     store.Photo,
		AuthorID:  store.AuthorID,
		CreatedAt: store.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &domain.ConflictError{Slug: store.Slug}
		}
		return err
	}

	store.ID = doc.ID.Hex()
	return nil
}

// UpdateNameAndSlug replaces name and slug on an existing store and returns
// the updated record.
func (r *StoreRepository) UpdateNameAndSlug(ctx context.Context, id, name, slugValue string) (*domain.Store, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, &domain.NotFoundError{Resource: "store", ID: id}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"name": name, "slug": slugValue}}

	var doc StoreDocument
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID}, update, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &domain.NotFoundError{Resource: "store", ID: id}
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, &domain.ConflictError{Slug: slugValue}
	}
	if err != nil {
		return nil, err
	}

	store := mapStoreDocument(doc)
	return &store, nil
}

// FindByID returns a single store by its identifier.
func (r *StoreRepository) FindByID(ctx context.Context, id string) (*domain.Store, error) {
	objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, &domain.NotFoundError{Resource: "store", ID: id}
	}

	var doc StoreDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &domain.NotFoundError{Resource: "store", ID: id}
	}
	if err != nil {
		return nil, err
	}

	store := mapStoreDocument(doc)
	return &store, nil
}

// FindBySlug returns a single store by its slug.
func (r *StoreRepository) FindBySlug(ctx context.Context, slugValue string) (*domain.Store, error) {
	var doc StoreDocument
	err := r.collection.FindOne(ctx, bson.M{"slug": slugValue}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &domain.NotFoundError{Resource: "store", ID: slugValue}
	}
	if err != nil {
		return nil, err
	}

	store := mapStoreDocument(doc)
	return &store, nil
}

// FindAll returns the full store corpus.
func (r *StoreRepository) FindAll(ctx context.Context) ([]domain.Store, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	stores := make([]domain.Store, 0)
	for cursor.Next(ctx) {
		var doc StoreDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		stores = append(stores, mapStoreDocument(doc))
	}
	return stores, cursor.Err()
}

// CountSlugMatches counts stores whose slug is base or base-N, matching the
// pattern case-insensitively. excludeID keeps a store being renamed from
// counting itself as an occupant of its own base.
func (r *StoreRepository) CountSlugMatches(ctx context.Context, base, excludeID string) (int64, error) {
	filter := bson.M{
		"slug": primitive.Regex{Pattern: slug.Pattern(base), Options: "i"},
	}
	if excludeID != "" {
		if objectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(excludeID)); err == nil {
			filter["_id"] = bson.M{"$ne": objectID}
		}
	}
	return r.collection.CountDocuments(ctx, filter)
}
