package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"

	"pricescout/api"
	"pricescout/config"
	"pricescout/scraper"
	"pricescout/search"

	"go.uber.org/zap"
)

func main() {
	// =========
	// Profiling
	// =========
	go func() {
		http.ListenAndServe(":6060", nil)
	}()

	// =========
	// Config
	// =========
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	sites, err := config.LoadSites(cfg.SitesPath)
	if err != nil {
		log.Fatalf("Failed to load site registry: %v", err)
	}

	// =========
	// Logging
	// =========
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// =========
	// Rendering sessions
	// =========
	browser := scraper.NewBrowser(logger, scraper.BrowserConfig{
		Headless:        cfg.Headless,
		UserAgent:       cfg.UserAgent,
		ProxyURL:        cfg.ProxyURL,
		NavTimeout:      cfg.NavTimeout,
		SelectorTimeout: cfg.SelectorTimeout,
	})
	fetcher := scraper.NewStaticFetcher(logger, cfg.UserAgent, cfg.NavTimeout)

	// =========
	// Site scrapers
	// =========
	scrapers := make([]*scraper.SiteScraper, 0, len(sites))
	for _, site := range sites {
		var sessions scraper.SessionFactory = browser
		if site.Render == scraper.RenderStatic {
			sessions = fetcher
		}
		scrapers = append(scrapers, scraper.NewSiteScraper(site, sessions, logger))
	}

	// =========
	// Aggregator
	// =========
	aggregator := search.NewAggregator(scrapers, cfg.MaxSessions, logger)

	// =========
	// HTTP
	// =========
	logger.Info("pipeline ready",
		zap.Int("sites", len(sites)),
		zap.Int("max_sessions", cfg.MaxSessions))

	server := api.NewServer(aggregator, cfg.AppPort, logger)
	if err := server.Start(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
