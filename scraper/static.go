package scraper

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// StaticFetcher opens sessions that fetch results pages over plain HTTP and
// parse the returned HTML. It serves sites whose listings are server-rendered,
// where spinning up a browser buys nothing.
type StaticFetcher struct {
	logger     *zap.Logger
	userAgent  string
	navTimeout time.Duration
}

func NewStaticFetcher(logger *zap.Logger, userAgent string, navTimeout time.Duration) *StaticFetcher {
	return &StaticFetcher{
		logger:     logger,
		userAgent:  userAgent,
		navTimeout: navTimeout,
	}
}

// NewSession builds a fresh collector per session so no cookies or transport
// state carry over between sites or queries.
func (f *StaticFetcher) NewSession(ctx context.Context) (Session, error) {
	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(f.navTimeout)

	return &staticSession{
		collector: c,
		ctx:       ctx,
	}, nil
}

type staticSession struct {
	collector *colly.Collector
	ctx       context.Context
}

func (s *staticSession) Load(pageURL, waitFor string) (*goquery.Document, error) {
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}

	var (
		doc     *goquery.Document
		loadErr error
	)
	s.collector.OnResponse(func(r *colly.Response) {
		d, err := goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
		if err != nil {
			loadErr = fmt.Errorf("parse %s: %w", pageURL, err)
			return
		}
		doc = d
	})
	s.collector.OnError(func(_ *colly.Response, err error) {
		loadErr = fmt.Errorf("fetch %s: %w", pageURL, err)
	})

	if err := s.collector.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("visit %s: %w", pageURL, err)
	}
	if loadErr != nil {
		return nil, loadErr
	}
	if doc == nil {
		return nil, fmt.Errorf("fetch %s: empty response", pageURL)
	}
	if doc.Find(waitFor).Length() == 0 {
		return nil, fmt.Errorf("%w: %q on %s", ErrNoListings, waitFor, pageURL)
	}
	return doc, nil
}

func (s *staticSession) Close() {}
