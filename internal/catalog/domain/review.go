package domain

import "time"

// Review is a rating plus free text submitted by one author against exactly
// one store. Reviews are immutable once created. The rating range (1-5) is
// enforced upstream at the HTTP layer.
type Review struct {
	ID        string
	StoreID   string
	AuthorID  string
	Rating    float64
	Text      string
	CreatedAt time.Time
}
