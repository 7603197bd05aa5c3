package paging

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/model"
)

// DefaultPageSize is used when Config.PageSize is not positive
const DefaultPageSize = 10

// Config configures a Pager
type Config struct {
	PageSize int
	Logger   *zap.Logger
}

// LoadError is a failed page load surfaced to the consumer. The pager does not
// retry; calling LoadNext or LoadPrevious again retries the same key.
type LoadError struct {
	FlowID string
	Key    int
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load page %d: %v", e.Key, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Snapshot is the consumer-facing view of the current flow. Seq grows with
// every snapshot taken; listeners run outside the pager lock, so a consumer
// applies a snapshot only when its Seq is above the last one applied.
type Snapshot struct {
	Seq        uint64
	FlowID     string
	Items      []model.Post
	Loading    bool
	EndReached bool
	Err        *LoadError
}

// Pager drives flows of page loads. Each flow owns its own Source instance,
// created by the factory when the flow starts.
type Pager struct {
	mu        sync.Mutex
	factory   func() Source
	pageSize  int
	flow      *flow
	seq       uint64
	listeners []func(Snapshot)
	logger    *zap.Logger
}

type flow struct {
	id         string
	source     Source
	startKey   int
	started    bool
	pages      []LoadedPage
	items      []model.Post
	seen       map[string]struct{}
	prevKey    *int
	nextKey    *int
	appending  bool
	prepending bool
	err        *LoadError
}

// NewPager creates a pager and starts its first flow at FirstKey
func NewPager(factory func() Source, cfg Config) *Pager {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	p := &Pager{
		factory:  factory,
		pageSize: cfg.PageSize,
		logger:   logging.OrNop(cfg.Logger).Named("pager"),
	}
	p.flow = p.newFlow(FirstKey)
	return p
}

func (p *Pager) newFlow(startKey int) *flow {
	f := &flow{
		id:       uuid.NewString(),
		source:   p.factory(),
		startKey: startKey,
		seen:     make(map[string]struct{}),
	}
	p.logger.Debug("flow started", zap.String("flow", f.id), zap.Int("start_key", startKey))
	return f
}

// PageSize returns the number of items requested per page
func (p *Pager) PageSize() int {
	return p.pageSize
}

// OnChange registers a callback invoked after every flow change. Callbacks run
// on the goroutine that caused the change.
func (p *Pager) OnChange(fn func(Snapshot)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Snapshot returns the current flow state
func (p *Pager) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

// LoadNext loads the page after the last loaded one. It is a no-op when a
// load is already running or the end was reached. Results arriving after the
// flow was replaced are dropped.
func (p *Pager) LoadNext(ctx context.Context) error {
	p.mu.Lock()
	f := p.flow
	if f.appending {
		p.mu.Unlock()
		return nil
	}
	key := f.startKey
	if f.started {
		if f.nextKey == nil {
			p.mu.Unlock()
			return nil
		}
		key = *f.nextKey
	}
	f.appending = true
	snap := p.snapshotLocked()
	p.mu.Unlock()
	p.notify(snap)

	result, err := f.source.Load(ctx, LoadParams{Key: key, Size: p.pageSize})

	p.mu.Lock()
	f.appending = false
	if p.flow != f {
		p.mu.Unlock()
		p.logger.Debug("dropping page from superseded flow", zap.String("flow", f.id), zap.Int("key", key))
		return nil
	}
	if err != nil {
		loadErr := &LoadError{FlowID: f.id, Key: key, Err: err}
		f.err = loadErr
		snap = p.snapshotLocked()
		p.mu.Unlock()
		p.logger.Warn("page load failed", zap.String("flow", f.id), zap.Int("key", key), zap.Error(err))
		p.notify(snap)
		return loadErr
	}

	if !f.started {
		f.started = true
		f.prevKey = result.PrevKey
	}
	f.err = nil
	f.nextKey = result.NextKey
	fresh := f.unseen(result.Items)
	f.pages = append(f.pages, LoadedPage{Key: key, Result: result, Kept: len(fresh)})
	f.items = append(f.items, fresh...)
	snap = p.snapshotLocked()
	p.mu.Unlock()

	p.logger.Debug("page loaded", zap.String("flow", f.id), zap.Int("key", key), zap.Int("items", len(result.Items)))
	p.notify(snap)
	return nil
}

// LoadPrevious loads the page before the first loaded one. It only does work
// for flows resumed past the first key.
func (p *Pager) LoadPrevious(ctx context.Context) error {
	p.mu.Lock()
	f := p.flow
	if f.prepending || !f.started || f.prevKey == nil {
		p.mu.Unlock()
		return nil
	}
	key := *f.prevKey
	f.prepending = true
	p.mu.Unlock()

	result, err := f.source.Load(ctx, LoadParams{Key: key, Size: p.pageSize})

	p.mu.Lock()
	f.prepending = false
	if p.flow != f {
		p.mu.Unlock()
		return nil
	}
	if err != nil {
		loadErr := &LoadError{FlowID: f.id, Key: key, Err: err}
		f.err = loadErr
		snap := p.snapshotLocked()
		p.mu.Unlock()
		p.notify(snap)
		return loadErr
	}

	f.err = nil
	f.prevKey = result.PrevKey
	fresh := f.unseen(result.Items)
	f.pages = append([]LoadedPage{{Key: key, Result: result, Kept: len(fresh)}}, f.pages...)
	f.items = append(fresh, f.items...)
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.notify(snap)
	return nil
}

// Refresh replaces the current flow with a new one starting at FirstKey.
// In-flight loads of the old flow are ignored when they complete.
func (p *Pager) Refresh() {
	p.restart(func(*flow) int { return FirstKey })
}

// Invalidate replaces the current flow with one that resumes near anchor, an
// index into the current items
func (p *Pager) Invalidate(anchor int) {
	p.restart(func(f *flow) int {
		return RefreshKey(State{Pages: f.pages, Anchor: anchor})
	})
}

func (p *Pager) restart(startKey func(*flow) int) {
	p.mu.Lock()
	old := p.flow
	p.flow = p.newFlow(startKey(old))
	snap := p.snapshotLocked()
	p.mu.Unlock()

	p.logger.Info("flow replaced", zap.String("old", old.id), zap.String("new", snap.FlowID))
	p.notify(snap)
}

// unseen filters out posts already present in the flow and marks the rest seen
func (f *flow) unseen(items []model.Post) []model.Post {
	out := make([]model.Post, 0, len(items))
	for _, item := range items {
		if _, dup := f.seen[item.ID]; dup {
			continue
		}
		f.seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}

func (p *Pager) snapshotLocked() Snapshot {
	f := p.flow
	items := make([]model.Post, len(f.items))
	copy(items, f.items)
	p.seq++
	return Snapshot{
		Seq:        p.seq,
		FlowID:     f.id,
		Items:      items,
		Loading:    f.appending || f.prepending,
		EndReached: f.started && f.nextKey == nil,
		Err:        f.err,
	}
}

func (p *Pager) notify(snap Snapshot) {
	p.mu.Lock()
	listeners := append([]func(Snapshot){}, p.listeners...)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
