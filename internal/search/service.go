package search

import (
	"context"
	"fmt"
	"strings"

	"discounts/internal/domain/offer"
	"discounts/internal/store/repositories"
)

// Page is one window of results. Limit is the effective (clamped) page size;
// a page of exactly Limit rows tells the caller more pages may exist, a
// shorter page means the listing is exhausted. There is no total count.
type Page struct {
	Offers []offer.Offer
	Limit  int
}

// Config tunes the search service.
type Config struct {
	Limits      Limits
	ItemLimit   int // page size for grocery-list groups
	Concurrency int // max in-flight item searches in list mode
}

// Service plans and executes offer searches against the repository. It holds
// no per-request state; a single instance serves concurrent requests.
type Service struct {
	repo repositories.OfferRepository
	cfg  Config
}

func NewService(repo repositories.OfferRepository, cfg Config) *Service {
	if cfg.Limits.Default <= 0 {
		cfg.Limits.Default = 40
	}
	if cfg.Limits.Max <= 0 {
		cfg.Limits.Max = 200
	}
	if cfg.ItemLimit <= 0 {
		cfg.ItemLimit = cfg.Limits.Default
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	return &Service{repo: repo, cfg: cfg}
}

// Search runs one request through the two-stage policy.
//
// An empty or whitespace-only query has nothing to rank on, so it becomes a
// plain listing ordered by id. Otherwise the ranked full-text stage runs
// first; the substring stage runs only when the ranked stage produced zero
// rows for this exact page. The fallback catches literal fragments the
// full-text tokenizer does not segment favorably ("xvirgin" inside
// "extra virgin olive oil").
//
// The fallback trigger is per page, not per query: a query that matches rows
// elsewhere but not inside this offset window still falls back for this page,
// so deep paging can switch ranking regimes between pages. Kept as observable
// behavior; revisit if paging consumers start caring.
func (s *Service) Search(ctx context.Context, req Request) (Page, error) {
	req.clamp(s.cfg.Limits)

	if strings.TrimSpace(req.Query) == "" {
		rows, err := s.repo.List(ctx, req.Shops, req.Limit, req.Offset)
		if err != nil {
			return Page{}, fmt.Errorf("list offers: %w", err)
		}
		return Page{Offers: rows, Limit: req.Limit}, nil
	}

	q := strings.TrimSpace(Normalize(req.Query))

	rows, err := s.repo.SearchRanked(ctx, q, req.Shops, req.Limit, req.Offset)
	if err != nil {
		// A failed ranked stage is not "zero matches" and must not
		// degrade into substring results.
		return Page{}, fmt.Errorf("ranked search: %w", err)
	}
	if len(rows) > 0 {
		return Page{Offers: rows, Limit: req.Limit}, nil
	}

	rows, err = s.repo.SearchSubstring(ctx, q, req.Shops, req.Limit, req.Offset)
	if err != nil {
		return Page{}, fmt.Errorf("substring search: %w", err)
	}
	return Page{Offers: rows, Limit: req.Limit}, nil
}
