package catalog

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/launchpad/internal/domain"
)

// Catalog is the fixed, ordered list of built-in sites. It is never
// mutated after construction and is safe for concurrent reads.
type Catalog struct {
	sites []domain.Site
	byURL map[string]int
}

// New builds a catalog from already-mapped sites.
func New(sites []domain.Site) (*Catalog, error) {
	c := &Catalog{
		sites: make([]domain.Site, 0, len(sites)),
		byURL: make(map[string]int, len(sites)),
	}
	for _, s := range sites {
		if _, dup := c.byURL[s.URL]; dup {
			return nil, fmt.Errorf("duplicate catalog url: %s", s.URL)
		}
		c.byURL[s.URL] = len(c.sites)
		c.sites = append(c.sites, s)
	}
	return c, nil
}

// Map converts a parsed catalog file to a Catalog.
// Entries without a url are skipped; names default to DeriveName.
func Map(f File) (*Catalog, error) {
	sites := make([]domain.Site, 0, len(f.Sites))

	for _, e := range f.Sites {
		if strings.TrimSpace(e.URL) == "" {
			continue
		}
		if strings.TrimSpace(e.Color) == "" {
			return nil, fmt.Errorf("catalog site %q has no color", e.URL)
		}

		u := domain.NormalizeURL(e.URL)
		name := strings.TrimSpace(e.Name)
		if name == "" {
			name = domain.DeriveName(u)
		}

		text := domain.TextColor(strings.ToLower(strings.TrimSpace(e.TextColor)))
		if !text.Valid() {
			text = domain.TextWhite
		}

		sites = append(sites, domain.Site{
			Name:      name,
			URL:       u,
			Color:     domain.BuiltInClass(e.Color),
			TextColor: text,
		})
	}

	if len(sites) == 0 {
		return nil, fmt.Errorf("no valid sites found in catalog")
	}

	return New(sites)
}

// Load reads and maps the catalog at path ("" = embedded default).
func Load(path string) (*Catalog, error) {
	f, err := NewLoader(path).Load()
	if err != nil {
		return nil, err
	}
	return Map(f)
}

// Sites returns the catalog in display order.
func (c *Catalog) Sites() []domain.Site {
	out := make([]domain.Site, len(c.sites))
	copy(out, c.sites)
	return out
}

// Lookup returns the built-in site with the given URL.
func (c *Catalog) Lookup(url string) (domain.Site, bool) {
	i, ok := c.byURL[url]
	if !ok {
		return domain.Site{}, false
	}
	return c.sites[i], true
}

// Contains reports whether url belongs to a built-in site.
func (c *Catalog) Contains(url string) bool {
	_, ok := c.byURL[url]
	return ok
}

// Len returns the number of built-in sites.
func (c *Catalog) Len() int {
	return len(c.sites)
}
