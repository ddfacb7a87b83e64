package scraper

import (
	"context"
	"errors"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoListings reports a results page on which the listing selector never
// appeared, either because the wait timed out or because the fetched document
// does not contain it.
var ErrNoListings = errors.New("no listing elements found")

// Session is one isolated rendering session. Load navigates to url, waits for
// at least one element matching waitFor, and returns a snapshot of the
// resulting document. Sessions are single-use and never shared: each site
// scrape opens its own and must Close it on every exit path.
type Session interface {
	Load(url, waitFor string) (*goquery.Document, error)
	Close()
}

// SessionFactory opens sessions for one rendering mode. The context passed to
// NewSession bounds the whole session: cancelling it tears the session down.
type SessionFactory interface {
	NewSession(ctx context.Context) (Session, error)
}
