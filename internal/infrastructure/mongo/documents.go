package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/feastmap/storefront-api/internal/catalog/domain"
)

// geoJSONPoint is the only geometry type a store location carries.
const geoJSONPoint = "Point"

// StoreLocationDocument は 2dsphere インデックスが期待する GeoJSON ポイントに住所を埋め込んだ構造。
type StoreLocationDocument struct {
	Type        string     `bson:"type"`
	Coordinates [2]float64 `bson:"coordinates"`
	Address     string     `bson:"address"`
}

// StoreDocument は MongoDB 上での店舗スキーマを Go 構造体として表現したもの。
type StoreDocument struct {
	ID          primitive.ObjectID    `bson:"_id"`
	Name        string                `bson:"name"`
	Slug        string                `bson:"slug"`
	Description string                `bson:"description,omitempty"`
	Tags        []string              `bson:"tags,omitempty"`
	Location    StoreLocationDocument `bson:"location"`
	Photo       string                `bson:"photo,omitempty"`
	AuthorID    string                `bson:"authorId"`
	CreatedAt   time.Time             `bson:"createdAt"`
}

// ReviewDocument は単一店舗に紐づくレビューのスキーマを表現する。
type ReviewDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	StoreID   primitive.ObjectID `bson:"storeId"`
	AuthorID  string             `bson:"authorId"`
	Rating    float64            `bson:"rating"`
	Text      string             `bson:"text,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func mapStoreDocument(doc StoreDocument) domain.Store {
	return domain.Store{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Slug:        doc.Slug,
		Description: doc.Description,
		Tags:        append([]string{}, doc.Tags...),
		Location: domain.GeoLocation{
			Coordinates: doc.Location.Coordinates,
			Address:     doc.Location.Address,
		},
		Photo:     doc.Photo,
		AuthorID:  doc.AuthorID,
		CreatedAt: doc.CreatedAt,
	}
}

func mapReviewDocument(doc ReviewDocument) domain.Review {
	return domain.Review{
		ID:        doc.ID.Hex(),
		StoreID:   doc.StoreID.Hex(),
		AuthorID:  doc.AuthorID,
		Rating:    doc.Rating,
		Text:      doc.Text,
		CreatedAt: doc.CreatedAt,
	}
}
