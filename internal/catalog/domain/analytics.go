package domain

// TagCount is one entry of the tag frequency ranking.
type TagCount struct {
	Tag   string
	Count int
}

// RankedStore is one entry of the top-store ranking: the store projection
// plus its joined reviews and their mean rating.
type RankedStore struct {
	Photo         string
	Name          string
	Slug          string
	Reviews       []Review
	AverageRating float64
}
