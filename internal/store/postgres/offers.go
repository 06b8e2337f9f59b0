package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"discounts/internal/domain/offer"
)

const offerColumns = "id, title, shop, price, old_price, date_start, date_end, img, additional_info, discount"

// OfferRepository reads offers from the main_offers table. The table is
// populated by the scraper pipeline, which also precomputes title_normalized;
// nothing here ever writes.
type OfferRepository struct {
	db *pgxpool.Pool
}

func NewOfferRepository(db *pgxpool.Pool) *OfferRepository {
	return &OfferRepository{db: db}
}

// List returns offers ordered by id ascending, optionally shop-restricted.
func (r *OfferRepository) List(ctx context.Context, shops []string, limit, offset int) ([]offer.Offer, error) {
	sql, args := buildList(shops, limit, offset)
	return r.queryOffers(ctx, sql, args)
}

// SearchRanked matches the normalized query against normalized titles with
// Postgres full-text search, best rank first. Rank ties are broken by id so
// identical requests page identically; without the tie-break, equal-rank rows
// could straddle page boundaries differently between calls.
func (r *OfferRepository) SearchRanked(ctx context.Context, query string, shops []string, limit, offset int) ([]offer.Offer, error) {
	sql, args := buildRanked(query, shops, limit, offset)
	return r.queryOffers(ctx, sql, args)
}

// SearchSubstring returns offers whose normalized title contains the query
// anywhere, ordered by id ascending.
func (r *OfferRepository) SearchSubstring(ctx context.Context, query string, shops []string, limit, offset int) ([]offer.Offer, error) {
	sql, args := buildSubstring(query, shops, limit, offset)
	return r.queryOffers(ctx, sql, args)
}

func buildList(shops []string, limit, offset int) (string, []any) {
	var b queryBuilder
	b.write("SELECT " + offerColumns + " FROM main_offers")
	if shops != nil {
		b.write(" WHERE shop = ANY(" + b.bind(shops) + ")")
	}
	b.write(" ORDER BY id ASC LIMIT " + b.bind(limit) + " OFFSET " + b.bind(offset))
	return b.query()
}

func buildRanked(query string, shops []string, limit, offset int) (string, []any) {
	var b queryBuilder
	q := b.bind(query)
	tsMatch := "to_tsvector('simple', title_normalized) @@ plainto_tsquery('simple', " + q + ")"
	tsRank := "ts_rank_cd(to_tsvector('simple', title_normalized), plainto_tsquery('simple', " + q + "))"
	b.write("SELECT " + offerColumns + " FROM main_offers WHERE " + tsMatch)
	if shops != nil {
		b.write(" AND shop = ANY(" + b.bind(shops) + ")")
	}
	b.write(" ORDER BY " + tsRank + " DESC, id ASC LIMIT " + b.bind(limit) + " OFFSET " + b.bind(offset))
	return b.query()
}

func buildSubstring(query string, shops []string, limit, offset int) (string, []any) {
	var b queryBuilder
	b.write("SELECT " + offerColumns + " FROM main_offers WHERE title_normalized ILIKE " + b.bind("%"+query+"%"))
	if shops != nil {
		b.write(" AND shop = ANY(" + b.bind(shops) + ")")
	}
	b.write(" ORDER BY id ASC LIMIT " + b.bind(limit) + " OFFSET " + b.bind(offset))
	return b.query()
}

func (r *OfferRepository) queryOffers(ctx context.Context, sql string, args []any) ([]offer.Offer, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query offers: %w", err)
	}
	defer rows.Close()

	var offers []offer.Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func scanOffer(row pgx.Row) (offer.Offer, error) {
	var o offer.Offer
	err := row.Scan(
		&o.ID, &o.Title, &o.Shop, &o.Price, &o.OldPrice,
		&o.DateStart, &o.DateEnd, &o.Img, &o.AdditionalInfo, &o.Discount)
	if err != nil {
		return offer.Offer{}, fmt.Errorf("scan offer: %w", err)
	}
	return o, nil
}
