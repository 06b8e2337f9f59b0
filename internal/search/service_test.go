package search

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discounts/internal/domain/offer"
)

var errStore = errors.New("store unreachable")

type repoCall struct {
	op     string
	query  string
	shops  []string
	limit  int
	offset int
}

// fakeRepo serves canned rows keyed by normalized query and records every
// call, so tests can assert both results and the stage sequence.
type fakeRepo struct {
	mu    sync.Mutex
	calls []repoCall

	list         []offer.Offer
	ranked       map[string][]offer.Offer
	substring    map[string][]offer.Offer
	listErr      error
	rankedErr    map[string]error
	substringErr error
}

func (f *fakeRepo) record(c repoCall) {
	f.mu.Lock()
	f.calls = append(f.calls, c)
	f.mu.Unlock()
}

func (f *fakeRepo) ops() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ops := make([]string, len(f.calls))
	for i, c := range f.calls {
		ops[i] = c.op
	}
	return ops
}

func (f *fakeRepo) List(ctx context.Context, shops []string, limit, offset int) ([]offer.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.record(repoCall{op: "list", shops: shops, limit: limit, offset: offset})
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeRepo) SearchRanked(ctx context.Context, query string, shops []string, limit, offset int) ([]offer.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.record(repoCall{op: "ranked", query: query, shops: shops, limit: limit, offset: offset})
	if err := f.rankedErr[query]; err != nil {
		return nil, err
	}
	return f.ranked[query], nil
}

func (f *fakeRepo) SearchSubstring(ctx context.Context, query string, shops []string, limit, offset int) ([]offer.Offer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.record(repoCall{op: "substring", query: query, shops: shops, limit: limit, offset: offset})
	if f.substringErr != nil {
		return nil, f.substringErr
	}
	return f.substring[query], nil
}

func mkOffer(id int64, title, shop string) offer.Offer {
	return offer.Offer{ID: id, Title: title, Shop: shop, Price: 199, Img: "images/x.jpg"}
}

func newTestService(repo *fakeRepo) *Service {
	return NewService(repo, Config{Limits: Limits{Default: 40, Max: 200}})
}

func TestSearchEmptyQueryUsesListing(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		repo := &fakeRepo{list: []offer.Offer{mkOffer(1, "Pienas", "iki"), mkOffer(2, "Duona", "lidl")}}
		svc := newTestService(repo)

		page, err := svc.Search(context.Background(), Request{Query: q, Limit: 40})
		require.NoError(t, err)
		assert.Equal(t, repo.list, page.Offers)
		assert.Equal(t, []string{"list"}, repo.ops(), "query %q must take the listing path", q)
	}
}

func TestSearchListingPassesShopFilter(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.Search(context.Background(), Request{Shops: []string{"lidl"}, Limit: 40})
	require.NoError(t, err)
	require.Len(t, repo.calls, 1)
	assert.Equal(t, []string{"lidl"}, repo.calls[0].shops)
}

func TestSearchClampsPagination(t *testing.T) {
	tests := []struct {
		name               string
		limit, offset      int
		wantLimit, wantOff int
	}{
		{"oversized limit", 10000, 0, 200, 0},
		{"zero limit", 0, 0, 40, 0},
		{"negative limit", -1, 0, 40, 0},
		{"negative offset", 40, -7, 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := newTestService(repo)

			page, err := svc.Search(context.Background(), Request{Limit: tt.limit, Offset: tt.offset})
			require.NoError(t, err)
			require.Len(t, repo.calls, 1)
			assert.Equal(t, tt.wantLimit, repo.calls[0].limit)
			assert.Equal(t, tt.wantOff, repo.calls[0].offset)
			assert.Equal(t, tt.wantLimit, page.Limit)
		})
	}
}

func TestSearchRankedPageShortCircuits(t *testing.T) {
	hits := []offer.Offer{mkOffer(3, "Pienas 2.5%", "iki"), mkOffer(9, "Pieno gėrimas", "rimi")}
	repo := &fakeRepo{ranked: map[string][]offer.Offer{"pienas": hits}}
	svc := newTestService(repo)

	// The raw query is accented and mixed-case; the repo must see the
	// normalized form.
	page, err := svc.Search(context.Background(), Request{Query: "Píenas", Limit: 40})
	require.NoError(t, err)
	assert.Equal(t, hits, page.Offers)
	assert.Equal(t, []string{"ranked"}, repo.ops(), "substring stage must not run when the ranked page has rows")
	assert.Equal(t, "pienas", repo.calls[0].query)
}

func TestSearchFallsBackOnEmptyRankedPage(t *testing.T) {
	// "xvirgin" is a literal fragment of the stored title that the
	// full-text tokenizer does not produce as a word, so the ranked stage
	// finds nothing and the substring stage must.
	oil := mkOffer(7, "Extra Virgin Olive Oil", "lidl")
	repo := &fakeRepo{substring: map[string][]offer.Offer{"xvirgin": {oil}}}
	svc := newTestService(repo)

	page, err := svc.Search(context.Background(), Request{Query: "xvirgin", Limit: 40})
	require.NoError(t, err)
	assert.Equal(t, []offer.Offer{oil}, page.Offers)
	assert.Equal(t, []string{"ranked", "substring"}, repo.ops())
}

func TestSearchFallbackAppliesPerPage(t *testing.T) {
	// The fallback trigger is the empty ranked page for this exact
	// request, not "the query matches nothing at all". A query exhausted
	// at offset 40 falls back for that page even though earlier pages
	// ranked fine. Observable behavior, asserted here on purpose.
	repo := &fakeRepo{
		ranked:    map[string][]offer.Offer{},
		substring: map[string][]offer.Offer{"pienas": {mkOffer(80, "Sojų pienas", "rimi")}},
	}
	svc := newTestService(repo)

	page, err := svc.Search(context.Background(), Request{Query: "pienas", Limit: 40, Offset: 40})
	require.NoError(t, err)
	require.Equal(t, []string{"ranked", "substring"}, repo.ops())
	assert.Equal(t, 40, repo.calls[1].offset, "fallback must reuse the request's own offset window")
	assert.Len(t, page.Offers, 1)
}

func TestSearchRankedErrorDoesNotFallBack(t *testing.T) {
	// An executor failure is not "zero matches"; mapping it onto the
	// substring path would silently answer from the wrong regime.
	repo := &fakeRepo{rankedErr: map[string]error{"pienas": errStore}}
	svc := newTestService(repo)

	_, err := svc.Search(context.Background(), Request{Query: "pienas", Limit: 40})
	require.ErrorIs(t, err, errStore)
	assert.Equal(t, []string{"ranked"}, repo.ops())
}

func TestSearchSubstringErrorPropagates(t *testing.T) {
	repo := &fakeRepo{substringErr: errStore}
	svc := newTestService(repo)

	_, err := svc.Search(context.Background(), Request{Query: "pienas", Limit: 40})
	require.ErrorIs(t, err, errStore)
	assert.Equal(t, []string{"ranked", "substring"}, repo.ops())
}

func TestSearchBothStagesEmptyIsSuccess(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	page, err := svc.Search(context.Background(), Request{Query: "nieko", Limit: 40})
	require.NoError(t, err)
	assert.Empty(t, page.Offers, "no results is a valid outcome, not an error")
}

func TestSearchAppliesShopFilterToBothStages(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)

	_, err := svc.Search(context.Background(), Request{Query: "kava", Shops: []string{"lidl", "iki"}, Limit: 40})
	require.NoError(t, err)
	require.Len(t, repo.calls, 2)
	for _, c := range repo.calls {
		assert.Equal(t, []string{"lidl", "iki"}, c.shops)
	}
}
