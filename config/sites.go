package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pricescout/scraper"
)

// Site registry validation errors.
var (
	ErrNoSites             = errors.New("at least one site is required")
	ErrNoEnabledSites      = errors.New("at least one site must be enabled")
	ErrSiteMissingID       = errors.New("site id is required")
	ErrSiteMissingURL      = errors.New("site search_url is required")
	ErrSiteMissingBaseURL  = errors.New("site base_url is required")
	ErrSiteInvalidRender   = errors.New("site render must be 'chrome' or 'static'")
	ErrSiteMissingSelector = errors.New("site selectors require container, title, price and link")
)

type siteFile struct {
	Sites []scraper.Site `yaml:"sites"`
}

// LoadSites reads the site registry and returns the enabled entries in file
// order. Adding or removing a source is a registry edit, not a code change;
// disabled entries are still validated so a broken edit fails at startup.
func LoadSites(path string) ([]scraper.Site, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site registry: %w", err)
	}
	sites, err := ParseSites(raw)
	if err != nil {
		return nil, fmt.Errorf("site registry %s: %w", path, err)
	}
	return sites, nil
}

// ParseSites parses and validates raw YAML registry content.
func ParseSites(raw []byte) ([]scraper.Site, error) {
	var f siteFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(f.Sites) == 0 {
		return nil, ErrNoSites
	}

	enabled := make([]scraper.Site, 0, len(f.Sites))
	for i, site := range f.Sites {
		if site.Render == "" {
			site.Render = scraper.RenderChrome
		}
		if err := validateSite(site); err != nil {
			return nil, fmt.Errorf("site %d (%q): %w", i, site.ID, err)
		}
		if site.Enabled {
			enabled = append(enabled, site)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoEnabledSites
	}
	return enabled, nil
}

func validateSite(site scraper.Site) error {
	if site.ID == "" {
		return ErrSiteMissingID
	}
	if site.SearchURL == "" {
		return ErrSiteMissingURL
	}
	if site.BaseURL == "" {
		return ErrSiteMissingBaseURL
	}
	if site.Render != scraper.RenderChrome && site.Render != scraper.RenderStatic {
		return ErrSiteInvalidRender
	}
	sel := site.Selectors
	if sel.Container == "" || sel.Title == "" || sel.Price == "" || sel.Link == "" {
		return ErrSiteMissingSelector
	}
	return nil
}
