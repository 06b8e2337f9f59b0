package repositories

import (
	"context"

	"discounts/internal/domain/offer"
)

// OfferRepository is the read-side query surface over the offer store. All
// three queries page by limit/offset and restrict to the given shops when the
// slice is non-nil; a nil slice means no restriction. Implementations must be
// safe for concurrent use and must return an error only for executor failures,
// never for an empty result.
type OfferRepository interface {
	// List returns offers ordered by id ascending.
	List(ctx context.Context, shops []string, limit, offset int) ([]offer.Offer, error)

	// SearchRanked returns offers whose normalized title matches the
	// normalized query under full-text search, best matches first, ties
	// broken by id ascending.
	SearchRanked(ctx context.Context, query string, shops []string, limit, offset int) ([]offer.Offer, error)

	// SearchSubstring returns offers whose normalized title contains the
	// normalized query, ordered by id ascending.
	SearchSubstring(ctx context.Context, query string, shops []string, limit, offset int) ([]offer.Offer, error)
}
