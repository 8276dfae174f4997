package catalog

import (
	"context"
	"os"
	"sync"
	"time"
)

// Event conveys a reloaded catalog or an error from a watcher poll.
type Event struct {
	Catalog Catalog
	Err     error
}

// Watcher polls the catalog file at a fixed interval and publishes a reloaded
// catalog whenever the file changes on disk. The first stat only records a
// baseline; the initial catalog load is the caller's responsibility.
type Watcher struct {
	path     string
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	lastMod  time.Time
	lastSize int64
}

// NewWatcher creates a watcher that polls the catalog file every interval.
func NewWatcher(path string, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}
	if info, err := os.Stat(path); err == nil {
		w.lastMod = info.ModTime()
		w.lastSize = info.Size()
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current check
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel is
// closed. Call after Stop when a clean shutdown is required. Safe to call
// more than once.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			evt, changed := w.check()
			if !changed {
				continue
			}
			select {
			case <-w.ctx.Done():
				return
			case w.events <- evt:
			}
		}
	}
}

func (w *Watcher) check() (Event, bool) {
	info, err := os.Stat(w.path)
	if err != nil {
		// Transient: the file may be mid-replace. Report nothing until a
		// subsequent poll sees it again.
		return Event{}, false
	}
	if info.ModTime().Equal(w.lastMod) && info.Size() == w.lastSize {
		return Event{}, false
	}
	w.lastMod = info.ModTime()
	w.lastSize = info.Size()
	cat, err := Load(w.path)
	if err != nil {
		return Event{Err: err}, true
	}
	return Event{Catalog: cat}, true
}
