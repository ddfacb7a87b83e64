// Package search fans a product query out to every configured site, collects
// each site's cheapest matching listing, and ranks the survivors globally by
// price.
package search

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"pricescout/relevance"
	"pricescout/scraper"
	"pricescout/text"
)

// MaxResults caps how many listings a query returns after global ranking.
const MaxResults = 3

// ErrInvalidQuery reports a query with no usable keywords after
// normalization.
var ErrInvalidQuery = errors.New("search: query must contain at least one keyword")

// Aggregator runs the fan-out/fan-in pipeline over a fixed set of site
// scrapers.
type Aggregator struct {
	scrapers    []*scraper.SiteScraper
	logger      *zap.Logger
	maxSessions int
	maxResults  int
}

// NewAggregator builds the pipeline. maxSessions bounds how many rendering
// sessions run at once; zero or negative means one per site.
func NewAggregator(scrapers []*scraper.SiteScraper, maxSessions int, logger *zap.Logger) *Aggregator {
	if maxSessions <= 0 {
		maxSessions = len(scrapers)
	}
	return &Aggregator{
		scrapers:    scrapers,
		logger:      logger,
		maxSessions: maxSessions,
		maxResults:  MaxResults,
	}
}

// Search runs one query across all sites and returns up to MaxResults
// listings ascending by price, ties broken by site registry order. Sites that
// fail or find no match contribute nothing and never abort their siblings; an
// empty result set is a valid outcome, not an error.
func (a *Aggregator) Search(ctx context.Context, query string) ([]scraper.Listing, error) {
	keywords := text.Tokenize(query)
	if len(keywords) == 0 {
		return nil, ErrInvalidQuery
	}
	matcher := relevance.NewKeywordMatcher(keywords)

	logger := a.logger.With(zap.String("query_id", uuid.NewString()))
	logger.Info("search started",
		zap.String("query", query),
		zap.Strings("keywords", keywords),
		zap.Int("sites", len(a.scrapers)))

	// Results are addressed by site index so registry order survives the
	// fan-in and gives the sort a stable tie-break.
	found := make([]*scraper.Listing, len(a.scrapers))
	g := new(errgroup.Group)
	g.SetLimit(a.maxSessions)
	for i, sc := range a.scrapers {
		g.Go(func() error {
			listing, err := sc.Scrape(ctx, query, matcher)
			if err != nil {
				logger.Warn("site contributed nothing",
					zap.String("site", sc.SiteID()),
					zap.Error(err))
				return nil
			}
			found[i] = listing
			return nil
		})
	}
	// Goroutines absorb their own failures, so the join never errors and
	// every site runs to completion before ranking.
	_ = g.Wait()

	results := make([]scraper.Listing, 0, len(found))
	for _, listing := range found {
		if listing != nil {
			results = append(results, *listing)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Price < results[j].Price
	})
	if len(results) > a.maxResults {
		results = results[:a.maxResults]
	}

	logger.Info("search finished", zap.Int("results", len(results)))
	return results, nil
}
