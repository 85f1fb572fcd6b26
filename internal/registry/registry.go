package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MrSnakeDoc/launchpad/internal/catalog"
	"github.com/MrSnakeDoc/launchpad/internal/domain"
	"github.com/MrSnakeDoc/launchpad/internal/logger"
	"github.com/MrSnakeDoc/launchpad/internal/store"
)

const defaultSaveTimeout = 5 * time.Second

// Change tells subscribers which persisted collection was rewritten.
type Change struct {
	Collection string `json:"collection"`
}

// Subscriber receives change notifications. It is called outside the
// registry lock and may read the registry.
type Subscriber func(Change)

// Registry owns the three persisted collections: the ordered custom
// sites, the name overrides for built-ins and the hidden built-in set.
//
// Every mutation runs under one lock and persists before the lock is
// released, so saves land in the same order as the mutations.
type Registry struct {
	mu        sync.RWMutex
	catalog   *catalog.Catalog
	store     store.BlobStore
	log       logger.Logger
	custom    []domain.Site
	overrides map[string]string
	hidden    []string

	subMu  sync.Mutex
	subs   map[int]Subscriber
	nextID int

	saveTimeout time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithSaveTimeout bounds every store write.
func WithSaveTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.saveTimeout = d
		}
	}
}

// New builds a Registry and loads the persisted collections from st.
// Missing, unreadable or malformed blobs start as empty collections.
func New(ctx context.Context, cat *catalog.Catalog, st store.BlobStore, log logger.Logger, opts ...Option) *Registry {
	r := &Registry{
		catalog:     cat,
		store:       st,
		log:         log,
		overrides:   map[string]string{},
		subs:        map[int]Subscriber{},
		saveTimeout: defaultSaveTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	start := time.Now()
	r.custom = r.loadCustom(ctx)
	r.overrides = r.loadOverrides(ctx)
	r.hidden = r.loadHidden(ctx)

	log.Info("registry loaded",
		logger.Int("builtin", cat.Len()),
		logger.Int("custom", len(r.custom)),
		logger.Int("overrides", len(r.overrides)),
		logger.Int("hidden", len(r.hidden)),
		logger.Duration("took", time.Since(start)))

	return r
}

// AddCustomSite appends a new custom site with an auto gradient.
// A blank name is derived from the URL.
func (r *Registry) AddCustomSite(ctx context.Context, name, rawURL string) (domain.Site, error) {
	if strings.TrimSpace(rawURL) == "" {
		return domain.Site{}, emptyField("url")
	}
	u := domain.NormalizeURL(rawURL)

	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DeriveName(u)
	}

	r.mu.Lock()
	if r.taken(u, -1) {
		r.mu.Unlock()
		return domain.Site{}, &DuplicateError{URL: u}
	}

	site := domain.NewCustomSite(name, u)
	r.custom = append(r.custom, site)
	r.persist(ctx, store.KeyCustomSites, r.custom)
	r.mu.Unlock()

	r.log.Info("custom site added", logger.String("url", u), logger.String("name", name))
	r.notify(store.KeyCustomSites)
	return site, nil
}

// UpdateSite edits the site currently stored under originalURL.
//
// For a built-in site only the name changes: it becomes an override, and
// the override is dropped when the name is blank or equals the catalog
// default. For a custom site the entry is replaced in place. An empty
// newColor keeps the URL-derived gradient.
func (r *Registry) UpdateSite(ctx context.Context, originalURL, newName, newURL, newColor string) (domain.Site, error) {
	if builtin, ok := r.catalog.Lookup(originalURL); ok {
		return r.renameBuiltIn(ctx, builtin, newName), nil
	}

	if strings.TrimSpace(newURL) == "" {
		return domain.Site{}, emptyField("url")
	}
	u := domain.NormalizeURL(newURL)

	name := strings.TrimSpace(newName)
	if name == "" {
		name = domain.DeriveName(u)
	}

	r.mu.Lock()
	idx := r.indexOf(originalURL)
	if idx < 0 {
		r.mu.Unlock()
		return domain.Site{}, siteNotFound(originalURL)
	}
	if r.taken(u, idx) {
		r.mu.Unlock()
		return domain.Site{}, &DuplicateError{URL: u}
	}

	site := domain.NewCustomSite(name, u)
	if c := strings.TrimSpace(newColor); c != "" {
		site = site.WithSolidColor(c)
	}
	r.custom[idx] = site
	r.persist(ctx, store.KeyCustomSites, r.custom)
	r.mu.Unlock()

	r.log.Info("custom site updated",
		logger.String("from", originalURL),
		logger.String("url", u),
		logger.String("color", site.Color.Kind.String()))
	r.notify(store.KeyCustomSites)
	return site, nil
}

func (r *Registry) renameBuiltIn(ctx context.Context, builtin domain.Site, newName string) domain.Site {
	name := strings.TrimSpace(newName)

	r.mu.Lock()
	prev, had := r.overrides[builtin.URL]
	if name == "" || name == builtin.Name {
		delete(r.overrides, builtin.URL)
	} else {
		r.overrides[builtin.URL] = name
	}
	now, has := r.overrides[builtin.URL]
	changed := had != has || prev != now
	if changed {
		r.persist(ctx, store.KeyNameOverrides, r.overrides)
	}
	r.mu.Unlock()

	if has {
		builtin.Name = now
	}
	if changed {
		r.log.Info("built-in site renamed",
			logger.String("url", builtin.URL),
			logger.String("name", builtin.Name))
		r.notify(store.KeyNameOverrides)
	}
	return builtin
}

// RemoveCustomSite deletes the custom site with the given URL. It reports
// whether anything was removed.
func (r *Registry) RemoveCustomSite(ctx context.Context, url string) bool {
	r.mu.Lock()
	idx := r.indexOf(url)
	if idx < 0 {
		r.mu.Unlock()
		return false
	}
	r.custom = append(r.custom[:idx:idx], r.custom[idx+1:]...)
	r.persist(ctx, store.KeyCustomSites, r.custom)
	r.mu.Unlock()

	r.log.Info("custom site removed", logger.String("url", url))
	r.notify(store.KeyCustomSites)
	return true
}

// HideBuiltIn hides a catalog site. Unknown URLs and already hidden
// sites are ignored.
func (r *Registry) HideBuiltIn(ctx context.Context, url string) bool {
	if !r.catalog.Contains(url) {
		return false
	}

	r.mu.Lock()
	for _, h := range r.hidden {
		if h == url {
			r.mu.Unlock()
			return false
		}
	}
	r.hidden = append(r.hidden, url)
	r.persist(ctx, store.KeyHiddenSites, r.hidden)
	r.mu.Unlock()

	r.log.Info("built-in site hidden", logger.String("url", url))
	r.notify(store.KeyHiddenSites)
	return true
}

// RestoreAllHidden unhides every built-in site and returns how many were
// hidden. Name overrides are kept.
func (r *Registry) RestoreAllHidden(ctx context.Context) int {
	r.mu.Lock()
	n := len(r.hidden)
	if n == 0 {
		r.mu.Unlock()
		return 0
	}
	r.hidden = []string{}
	r.persist(ctx, store.KeyHiddenSites, r.hidden)
	r.mu.Unlock()

	r.log.Info("hidden sites restored", logger.Int("count", n))
	r.notify(store.KeyHiddenSites)
	return n
}

// ReorderCustomSites moves the custom site at from to position to,
// shifting the others. Equal or out-of-range indices are a no-op.
func (r *Registry) ReorderCustomSites(ctx context.Context, from, to int) bool {
	r.mu.Lock()
	n := len(r.custom)
	if from == to || from < 0 || to < 0 || from >= n || to >= n {
		r.mu.Unlock()
		return false
	}

	moved := r.custom[from]
	list := make([]domain.Site, 0, n)
	list = append(list, r.custom[:from]...)
	list = append(list, r.custom[from+1:]...)
	list = append(list[:to], append([]domain.Site{moved}, list[to:]...)...)
	r.custom = list
	r.persist(ctx, store.KeyCustomSites, r.custom)
	r.mu.Unlock()

	r.log.Debug("custom sites reordered", logger.Int("from", from), logger.Int("to", to))
	r.notify(store.KeyCustomSites)
	return true
}

// VisibleBuiltInSites returns the catalog in order, minus hidden sites,
// with name overrides applied.
func (r *Registry) VisibleBuiltInSites() []domain.Site {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hidden := make(map[string]struct{}, len(r.hidden))
	for _, h := range r.hidden {
		hidden[h] = struct{}{}
	}

	all := r.catalog.Sites()
	out := make([]domain.Site, 0, len(all))
	for _, s := range all {
		if _, skip := hidden[s.URL]; skip {
			continue
		}
		if name, ok := r.overrides[s.URL]; ok {
			s.Name = name
		}
		out = append(out, s)
	}
	return out
}

// CustomSites returns a copy of the custom list in display order.
func (r *Registry) CustomSites() []domain.Site {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Site, len(r.custom))
	copy(out, r.custom)
	return out
}

// CustomSite looks up a custom site by URL.
func (r *Registry) CustomSite(url string) (domain.Site, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(url); i >= 0 {
		return r.custom[i], true
	}
	return domain.Site{}, false
}

// HiddenCount is the number of hidden built-in sites.
func (r *Registry) HiddenCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hidden)
}

// Overrides returns a copy of the built-in name overrides keyed by URL.
func (r *Registry) Overrides() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.overrides))
	for k, v := range r.overrides {
		out[k] = v
	}
	return out
}

// IsBuiltIn reports whether url belongs to the catalog.
func (r *Registry) IsBuiltIn(url string) bool {
	return r.catalog.Contains(url)
}

// Subscribe registers fn for change notifications. The returned func
// unregisters it.
func (r *Registry) Subscribe(fn Subscriber) (unsubscribe func()) {
	r.subMu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	r.subMu.Unlock()

	return func() {
		r.subMu.Lock()
		delete(r.subs, id)
		r.subMu.Unlock()
	}
}

func (r *Registry) notify(collection string) {
	r.subMu.Lock()
	subs := make([]Subscriber, 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.subMu.Unlock()

	ev := Change{Collection: collection}
	for _, fn := range subs {
		fn(ev)
	}
}

// taken reports whether u collides with a built-in or with a custom site
// other than the one at skip. Caller holds mu.
func (r *Registry) taken(u string, skip int) bool {
	if r.catalog.Contains(u) {
		return true
	}
	for i, s := range r.custom {
		if i != skip && s.URL == u {
			return true
		}
	}
	return false
}

// indexOf returns the position of url in the custom list, or -1.
// Caller holds mu.
func (r *Registry) indexOf(url string) int {
	for i, s := range r.custom {
		if s.URL == url {
			return i
		}
	}
	return -1
}

// persist writes one collection. Failures are logged; the in-memory
// state stays authoritative. Caller holds mu.
func (r *Registry) persist(ctx context.Context, key string, v any) {
	blob, err := json.Marshal(v)
	if err != nil {
		r.log.Error("failed to encode collection", logger.String("key", key), logger.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.saveTimeout)
	defer cancel()

	if err := r.store.Save(ctx, key, blob); err != nil {
		r.log.Error("failed to persist collection",
			logger.String("key", key),
			logger.Int("bytes", len(blob)),
			logger.Error(err))
	}
}

func (r *Registry) read(ctx context.Context, key string, v any) bool {
	blob, err := r.store.Load(ctx, key)
	if err != nil {
		r.log.Error("failed to load collection", logger.String("key", key), logger.Error(err))
		return false
	}
	if len(blob) == 0 {
		return false
	}
	if err := json.Unmarshal(blob, v); err != nil {
		r.log.Warn("ignoring malformed collection",
			logger.String("key", key),
			logger.Error(fmt.Errorf("decode %s: %w", key, err)))
		return false
	}
	return true
}

// loadCustom drops entries that would break URL uniqueness: blank URLs,
// URLs now owned by the catalog, and repeats.
func (r *Registry) loadCustom(ctx context.Context) []domain.Site {
	var raw []domain.Site
	if !r.read(ctx, store.KeyCustomSites, &raw) {
		return []domain.Site{}
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]domain.Site, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s.URL) == "" || r.catalog.Contains(s.URL) {
			continue
		}
		if _, dup := seen[s.URL]; dup {
			continue
		}
		seen[s.URL] = struct{}{}
		if strings.TrimSpace(s.Name) == "" {
			s.Name = domain.DeriveName(s.URL)
		}
		out = append(out, s)
	}
	if dropped := len(raw) - len(out); dropped > 0 {
		r.log.Warn("dropped invalid custom sites", logger.Int("count", dropped))
	}
	return out
}

func (r *Registry) loadOverrides(ctx context.Context) map[string]string {
	raw := map[string]string{}
	if !r.read(ctx, store.KeyNameOverrides, &raw) {
		return map[string]string{}
	}

	out := make(map[string]string, len(raw))
	for u, name := range raw {
		builtin, ok := r.catalog.Lookup(u)
		name = strings.TrimSpace(name)
		if !ok || name == "" || name == builtin.Name {
			continue
		}
		out[u] = name
	}
	return out
}

func (r *Registry) loadHidden(ctx context.Context) []string {
	var raw []string
	if !r.read(ctx, store.KeyHiddenSites, &raw) {
		return []string{}
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, u := range raw {
		if _, dup := seen[u]; dup || !r.catalog.Contains(u) {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
