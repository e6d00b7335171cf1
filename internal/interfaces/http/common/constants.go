package common

const (
	// MaxRequestBody limits JSON request bodies for store/review endpoints.
	MaxRequestBody = 1 << 20
	// MinRating and MaxRating bound the accepted review score. The catalog
	// core treats the range as an upstream-validated precondition, so the
	// check lives here at the edge.
	MinRating = 1
	MaxRating = 5
)
