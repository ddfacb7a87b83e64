package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricescout/scraper"
)

const validRegistry = `
sites:
  - id: alpha
    search_url: "https://alpha.example/search?q="
    base_url: "https://alpha.example"
    render: chrome
    enabled: true
    selectors:
      container: "div.result"
      title: "h2"
      price: "span.price"
      link: "a"
  - id: beta
    search_url: "https://beta.example/s?k="
    base_url: "https://beta.example"
    render: static
    enabled: false
    selectors:
      container: "li.item"
      title: ".title"
      price: ".price"
      link: "a.item"
  - id: gamma
    search_url: "https://gamma.example/find?text="
    base_url: "https://gamma.example"
    enabled: true
    selectors:
      container: ".product"
      title: ".name"
      price: ".cost"
      link: "a"
`

func TestParseSitesKeepsEnabledInOrder(t *testing.T) {
	sites, err := ParseSites([]byte(validRegistry))
	require.NoError(t, err)
	require.Len(t, sites, 2)
	assert.Equal(t, "alpha", sites[0].ID)
	assert.Equal(t, "gamma", sites[1].ID)
}

func TestParseSitesDefaultsRenderToChrome(t *testing.T) {
	sites, err := ParseSites([]byte(validRegistry))
	require.NoError(t, err)
	assert.Equal(t, scraper.RenderChrome, sites[1].Render)
}

func TestParseSitesValidation(t *testing.T) {
	testCases := []struct {
		name     string
		yaml     string
		expected error
	}{
		{"Empty", `sites: []`, ErrNoSites},
		{
			"AllDisabled",
			`
sites:
  - id: alpha
    search_url: "https://alpha.example/search?q="
    base_url: "https://alpha.example"
    enabled: false
    selectors: {container: "div", title: "h2", price: "span", link: "a"}
`,
			ErrNoEnabledSites,
		},
		{
			"MissingID",
			`
sites:
  - search_url: "https://alpha.example/search?q="
    base_url: "https://alpha.example"
    enabled: true
    selectors: {container: "div", title: "h2", price: "span", link: "a"}
`,
			ErrSiteMissingID,
		},
		{
			"MissingBaseURL",
			`
sites:
  - id: alpha
    search_url: "https://alpha.example/search?q="
    enabled: true
    selectors: {container: "div", title: "h2", price: "span", link: "a"}
`,
			ErrSiteMissingBaseURL,
		},
		{
			"BadRender",
			`
sites:
  - id: alpha
    search_url: "https://alpha.example/search?q="
    base_url: "https://alpha.example"
    render: phantomjs
    enabled: true
    selectors: {container: "div", title: "h2", price: "span", link: "a"}
`,
			ErrSiteInvalidRender,
		},
		{
			"MissingSelector",
			`
sites:
  - id: alpha
    search_url: "https://alpha.example/search?q="
    base_url: "https://alpha.example"
    enabled: true
    selectors: {container: "div", title: "h2", link: "a"}
`,
			ErrSiteMissingSelector,
		},
		{
			"DisabledEntryStillValidated",
			`
sites:
  - id: alpha
    search_url: "https://alpha.example/search?q="
    base_url: "https://alpha.example"
    enabled: true
    selectors: {container: "div", title: "h2", price: "span", link: "a"}
  - id: broken
    search_url: ""
    base_url: "https://broken.example"
    enabled: false
    selectors: {container: "div", title: "h2", price: "span", link: "a"}
`,
			ErrSiteMissingURL,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSites([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}
