package pokedex

import (
	"context"
	"sync"

	"github.com/FlagBrew/local-pokedex/internal/models"
)

// DetailLoader serialises asynchronous detail loads. Starting a load cancels
// the one in flight, and a result is only applied while its generation is
// still the newest.
type DetailLoader struct {
	fetch func(ctx context.Context, id int) *models.DetailView

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func NewDetailLoader(fetch func(ctx context.Context, id int) *models.DetailView) *DetailLoader {
	return &DetailLoader{fetch: fetch}
}

// Load fetches id in the background and calls apply with the result unless a
// newer Load (or Cancel) happened in the meantime. The returned channel is
// closed once the load finished, applied or not. apply runs with the loader
// locked and must not call back into it.
func (l *DetailLoader) Load(ctx context.Context, id int, apply func(*models.DetailView)) <-chan struct{} {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.generation++
	gen := l.generation
	loadCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()

		view := l.fetch(loadCtx, id)

		l.mu.Lock()
		defer l.mu.Unlock()
		if gen != l.generation || loadCtx.Err() != nil {
			return
		}
		apply(view)
	}()

	return done
}

// Cancel drops whatever load is in flight.
func (l *DetailLoader) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.generation++
}

func (l *DetailLoader) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}
