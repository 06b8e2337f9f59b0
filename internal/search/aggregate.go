package search

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const listRetries = 2

// Group is the outcome of one grocery-list item: the item text and its own
// independently limited result page. Failed marks items whose query kept
// erroring after retries; siblings are unaffected.
type Group struct {
	Item   string
	Page   Page
	Failed bool
}

// SearchList runs one search per grocery-list item and returns one group per
// item, preserving input order. An empty list yields no groups, which is how
// consumers decide to fall back to flat browsing.
//
// Items run concurrently up to the configured limit. A slow or failing item
// never blocks or aborts the rest of the batch: transient executor failures
// are retried, and an item that still fails comes back as an empty group with
// Failed set. Cancelling ctx abandons outstanding items, so a superseded
// request stops racing the one that replaced it.
func (s *Service) SearchList(ctx context.Context, items []string) []Group {
	if len(items) == 0 {
		return nil
	}

	groups := make([]Group, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)

	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			req := Request{Query: item, Limit: s.cfg.ItemLimit}
			page, err := s.searchWithRetry(ctx, req)
			if err != nil {
				log.Warn().Err(err).Str("item", item).Msg("grocery list item search failed")
				groups[i] = Group{Item: item, Page: Page{Limit: s.cfg.ItemLimit}, Failed: true}
				return nil
			}
			groups[i] = Group{Item: item, Page: page}
			return nil
		})
	}
	// Item failures are recorded in their group, never returned, so Wait
	// cannot cancel sibling searches.
	_ = g.Wait()
	return groups
}

// searchWithRetry retries transient executor failures a bounded number of
// times with exponential backoff. Context cancellation stops the retry loop
// immediately so an abandoned batch does not keep hammering the store.
func (s *Service) searchWithRetry(ctx context.Context, req Request) (Page, error) {
	var page Page
	op := func() error {
		var err error
		page, err = s.Search(ctx, req)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 50 * time.Millisecond
	bo.MaxElapsedTime = 2 * time.Second

	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, listRetries), ctx)); err != nil {
		return Page{}, err
	}
	return page, nil
}
