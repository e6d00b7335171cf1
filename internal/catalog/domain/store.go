package domain

import "time"

// GeoLocation pins a store to a physical place. Coordinates follow the
// GeoJSON convention: longitude first, then latitude.
type GeoLocation struct {
	Coordinates [2]float64
	Address     string
}

// Store is a catalog entry for a single business location. The slug is
// derived from the name and is never user-supplied; it changes only when the
// name changes.
type Store struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Tags        []string
	Location    GeoLocation
	Photo       string
	AuthorID    string
	CreatedAt   time.Time
}
