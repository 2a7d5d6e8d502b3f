package assetcache

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"
)

const installConcurrency = 4

type Config struct {
	// Name is the current cache version, e.g. memo-share-app-v1.
	Name   string
	Assets []string
	// Origin receives requests for paths that are not cached.
	Origin string
}

// Status describes the current cache.
type Status struct {
	Name      string   `json:"name"`
	Installed bool     `json:"installed"`
	Assets    int      `json:"assets"`
	Cached    []string `json:"cached"`
	Caches    []string `json:"caches"`
}

type Manager struct {
	cfg      Config
	registry *Registry
	fetcher  Fetcher
	proxy    http.Handler
	log      *slog.Logger
}

func NewManager(cfg Config, registry *Registry, fetcher Fetcher, log *slog.Logger) (*Manager, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("cache name is empty")
	}

	origin, err := url.Parse(cfg.Origin)
	if err != nil || origin.Host == "" {
		return nil, ErrBadOrigin
	}

	proxy := httputil.NewSingleHostReverseProxy(origin)
	director := proxy.Director
	proxy.Director = func(r *http.Request) {
		director(r)
		r.Host = origin.Host
	}

	return &Manager{
		cfg:      cfg,
		registry: registry,
		fetcher:  fetcher,
		proxy:    proxy,
		log:      log.With("component", "asset_cache"),
	}, nil
}

// Install fetches every asset and stores them in the current cache. If any
// fetch fails nothing is stored.
func (m *Manager) Install(ctx context.Context) error {
	assets := make([]Asset, len(m.cfg.Assets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(installConcurrency)
	for i, path := range m.cfg.Assets {
		g.Go(func() error {
			a, err := m.fetcher.Fetch(ctx, path)
			if err != nil {
				return err
			}
			assets[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		m.log.Error("install failed", "cache", m.cfg.Name, "error", err)
		return fmt.Errorf("install %s: %w", m.cfg.Name, err)
	}

	cache := m.registry.Open(m.cfg.Name)
	for _, a := range assets {
		cache.Put(a)
	}

	m.log.Info("cache installed", "cache", m.cfg.Name, "assets", len(assets))
	return nil
}

// Activate deletes every cache except the current one and returns the
// deleted names.
func (m *Manager) Activate() []string {
	var deleted []string
	for _, name := range m.registry.Keys() {
		if name == m.cfg.Name {
			continue
		}
		if m.registry.Delete(name) {
			m.log.Info("old cache deleted", "cache", name)
			deleted = append(deleted, name)
		}
	}
	return deleted
}

func (m *Manager) Status() Status {
	st := Status{
		Name:   m.cfg.Name,
		Assets: len(m.cfg.Assets),
		Cached: []string{},
		Caches: m.registry.Keys(),
	}
	if m.registry.Has(m.cfg.Name) {
		st.Installed = true
		st.Cached = m.registry.Open(m.cfg.Name).Paths()
	}
	return st
}

// ServeHTTP answers GET and HEAD from the cache and hands everything else
// to the origin. Network responses are not stored.
func (m *Manager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		if a, ok := m.registry.Match(r.URL.Path); ok {
			m.writeAsset(w, r, a)
			return
		}
	}

	m.log.Debug("cache miss", "path", r.URL.Path)
	m.proxy.ServeHTTP(w, r)
}

func (m *Manager) writeAsset(w http.ResponseWriter, r *http.Request, a Asset) {
	for k, vs := range a.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(a.Body)))
	w.Header().Set("X-Cache", "HIT")

	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if r.Method != http.MethodHead {
		_, _ = w.Write(a.Body)
	}
}
