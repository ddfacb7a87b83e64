// Package scraper drives one external site's search flow: load the results
// page in an isolated rendering session, extract a bounded prefix of listing
// candidates, keep those whose titles match the query, and surface the
// cheapest as the site's contribution.
package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"pricescout/price"
	"pricescout/relevance"
	"pricescout/text"
)

// MaxCandidatesPerSite caps how many listing containers are read from one
// results page. The tail of a results page is mostly sponsored or loosely
// related entries, and the cap bounds worst-case extraction cost.
const MaxCandidatesPerSite = 3

// Candidate is one raw extraction from a results page, before matching. It
// lives only for the duration of the loop that classifies it.
type Candidate struct {
	Title     string
	PriceText string
	Href      string
}

// SiteScraper runs one site's search flow and yields at most one listing per
// query.
type SiteScraper struct {
	site     Site
	sessions SessionFactory
	logger   *zap.Logger
}

func NewSiteScraper(site Site, sessions SessionFactory, logger *zap.Logger) *SiteScraper {
	return &SiteScraper{
		site:     site,
		sessions: sessions,
		logger:   logger.With(zap.String("site", site.ID)),
	}
}

// SiteID returns the descriptor id this scraper serves.
func (s *SiteScraper) SiteID() string {
	return s.site.ID
}

// Scrape searches the site for query and returns the cheapest matching
// listing among the first MaxCandidatesPerSite results. A page with no match
// returns (nil, nil); navigation, wait and extraction failures return an
// error for the caller to absorb. The session is released on every exit path.
func (s *SiteScraper) Scrape(ctx context.Context, query string, matcher *relevance.KeywordMatcher) (*Listing, error) {
	session, err := s.sessions.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	defer session.Close()

	searchURL := s.site.SearchURL + url.QueryEscape(query)
	doc, err := session.Load(searchURL, s.site.Selectors.Container)
	if err != nil {
		return nil, err
	}

	var cheapest *Listing
	doc.Find(s.site.Selectors.Container).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= MaxCandidatesPerSite {
			return false
		}

		cand := s.extract(sel)
		if cand.Title == "" {
			return true
		}
		if !matcher.Matches(text.Normalize(cand.Title)) {
			return true
		}

		value, err := price.Parse(cand.PriceText)
		if err != nil {
			// A matched candidate with unreadable price text is demoted to a
			// non-match rather than promoted with a sentinel price.
			s.logger.Warn("dropping matched candidate",
				zap.String("title", cand.Title),
				zap.String("price_text", cand.PriceText),
				zap.Error(err))
			return true
		}

		listing := &Listing{
			Title:  cand.Title,
			Price:  value,
			Link:   s.resolveLink(cand.Href),
			Source: s.site.ID,
		}
		if cheapest == nil || listing.Price < cheapest.Price {
			cheapest = listing
		}
		return true
	})

	if cheapest == nil {
		s.logger.Info("no matching listing", zap.String("query", query))
	}
	return cheapest, nil
}

func (s *SiteScraper) extract(sel *goquery.Selection) Candidate {
	href, _ := sel.Find(s.site.Selectors.Link).First().Attr("href")
	return Candidate{
		Title:     strings.TrimSpace(sel.Find(s.site.Selectors.Title).First().Text()),
		PriceText: strings.TrimSpace(sel.Find(s.site.Selectors.Price).First().Text()),
		Href:      strings.TrimSpace(href),
	}
}

// resolveLink makes the site's href absolute against its base URL.
func (s *SiteScraper) resolveLink(href string) string {
	if href == "" {
		return s.site.BaseURL
	}
	base, err := url.Parse(s.site.BaseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return s.site.BaseURL + href
	}
	return base.ResolveReference(ref).String()
}
