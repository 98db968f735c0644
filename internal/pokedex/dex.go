package pokedex

import (
	"context"
	"sync"

	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/apex/log"
)

type Options struct {
	Listing  ListingOptions
	Language string
}

// Dex holds the listing that was fetched on start-up and answers searches and
// detail lookups against it.
type Dex struct {
	api  API
	opts Options

	mu      sync.RWMutex
	entries []models.ListEntry
	loaded  bool
}

func New(api API, opts Options) *Dex {
	if opts.Language == "" {
		opts.Language = "en"
	}

	return &Dex{
		api:     api,
		opts:    opts,
		entries: []models.ListEntry{},
	}
}

// Load fetches the listing. On failure the error is logged and the list is
// left empty.
func (d *Dex) Load(ctx context.Context) error {
	logger := log.FromContext(ctx)

	entries, err := FetchListing(ctx, d.api, d.opts.Listing)
	if err != nil {
		logger.WithError(err).Error("failed to fetch pokemon listing")
		return err
	}

	d.mu.Lock()
	d.entries = entries
	d.loaded = true
	d.mu.Unlock()

	logger.WithField("count", len(entries)).Info("pokemon listing loaded")
	return nil
}

func (d *Dex) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loaded
}

func (d *Dex) Entries() []models.ListEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]models.ListEntry{}, d.entries...)
}

func (d *Dex) Search(mode models.FilterMode, term string) []models.ListEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Filter(d.entries, mode, term)
}

func (d *Dex) Detail(ctx context.Context, id int) *models.DetailView {
	return FetchDetail(ctx, d.api, id, d.opts.Language)
}

// NewDetailLoader returns a loader fetching details through this Dex.
func (d *Dex) NewDetailLoader() *DetailLoader {
	return NewDetailLoader(d.Detail)
}

type contextKey struct{}

func NewContext(ctx context.Context, d *Dex) context.Context {
	return context.WithValue(ctx, contextKey{}, d)
}

func FromContext(ctx context.Context) *Dex {
	d, _ := ctx.Value(contextKey{}).(*Dex)
	return d
}
