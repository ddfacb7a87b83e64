package scraper

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// BrowserConfig carries the Chrome session settings.
type BrowserConfig struct {
	Headless        bool
	UserAgent       string
	ProxyURL        string
	NavTimeout      time.Duration
	SelectorTimeout time.Duration
}

// Browser opens isolated headless-Chrome sessions. Every session gets its own
// exec allocator and tab, so cookies and page state never leak between sites
// or between concurrent queries.
type Browser struct {
	logger *zap.Logger
	cfg    BrowserConfig
	opts   []chromedp.ExecAllocatorOption
}

func NewBrowser(logger *zap.Logger, cfg BrowserConfig) *Browser {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Flag("headless", cfg.Headless),
		chromedp.UserAgent(cfg.UserAgent),

		// Stealth options
		chromedp.Flag("accept-language", "en-US,en;q=0.9"),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("exclude-switches", "enable-automation"),
		chromedp.Flag("disable-extensions", ""),
	)
	if cfg.ProxyURL != "" {
		opts = append(opts, chromedp.ProxyServer(cfg.ProxyURL))
	}

	return &Browser{
		logger: logger,
		cfg:    cfg,
		opts:   opts,
	}
}

// NewSession starts a fresh browser context and tab parented on ctx.
func (b *Browser) NewSession(ctx context.Context) (Session, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, b.opts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	return &chromeSession{
		browser: b,
		ctx:     tabCtx,
		cancel: func() {
			tabCancel()
			allocCancel()
		},
	}, nil
}

type chromeSession struct {
	browser *Browser
	ctx     context.Context
	cancel  context.CancelFunc
}

func (s *chromeSession) Load(pageURL, waitFor string) (*goquery.Document, error) {
	navCtx, cancelNav := context.WithTimeout(s.ctx, s.browser.cfg.NavTimeout)
	defer cancelNav()

	s.browser.logger.Debug("navigating", zap.String("url", pageURL))

	err := chromedp.Run(navCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(network.Headers{
			"Accept-Language": "en-US,en;q=0.9",
		}),
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Evaluate(`
			Object.defineProperty(navigator, 'webdriver', {
				get: () => undefined,
			});
			window.chrome = { runtime: {} };
		`, nil),
	)
	if err != nil {
		return nil, fmt.Errorf("navigate %s: %w", pageURL, err)
	}

	// The listing selector gets its own bounded wait; listings often render
	// well after body on script-heavy result pages.
	waitCtx, cancelWait := context.WithTimeout(s.ctx, s.browser.cfg.SelectorTimeout)
	defer cancelWait()

	var html string
	err = chromedp.Run(waitCtx,
		chromedp.WaitVisible(waitFor, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: wait for %q on %s: %v", ErrNoListings, waitFor, pageURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return doc, nil
}

func (s *chromeSession) Close() {
	s.cancel()
}
