package scraper

// Rendering modes for a site's search results. Chrome drives a headless
// browser for pages that build their listings with JavaScript; static fetches
// the HTML directly and is cheaper for server-rendered sites.
const (
	RenderChrome = "chrome"
	RenderStatic = "static"
)

// Selectors identifies the listing fields on a search-results page. Container
// matches the repeating listing element; the rest are scoped within one
// container.
type Selectors struct {
	Container string `yaml:"container"`
	Title     string `yaml:"title"`
	Price     string `yaml:"price"`
	Link      string `yaml:"link"`
}

// Site describes one external retailer: where to search, how to resolve the
// site's relative listing links, and which elements carry the fields. Sites
// are loaded once at startup and only read afterwards, so the same Site value
// is safely shared by every in-flight scrape.
type Site struct {
	ID        string    `yaml:"id"`
	SearchURL string    `yaml:"search_url"`
	BaseURL   string    `yaml:"base_url"`
	Render    string    `yaml:"render"`
	Enabled   bool      `yaml:"enabled"`
	Selectors Selectors `yaml:"selectors"`
}

// Listing is a matched, priced, linked result surfaced to callers. Price is
// always a successfully parsed non-negative number and Link is always
// absolute.
type Listing struct {
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
	Link   string  `json:"link"`
	Source string  `json:"store"`
}
