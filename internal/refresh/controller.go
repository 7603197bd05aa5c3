// Package refresh implements the elastic pull-to-refresh header: it consumes
// vertical drag deltas around an inner scrollable, decides on release whether
// to commit to a refresh, and animates the header between its rest positions.
package refresh

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/model"
)

// Gesture and animation defaults
const (
	DefaultHeaderHeight    float32 = 64
	DefaultMaxPullRatio    float32 = 1.35
	DefaultAnimateDuration         = 200 * time.Millisecond
	DefaultFinishDelay             = 450 * time.Millisecond
	DefaultSafetyTimeout           = 1200 * time.Millisecond
	DefaultFrameInterval           = 16 * time.Millisecond

	// AxisLockRatio is how much one axis must dominate to classify a drag
	AxisLockRatio float32 = 1.2

	baseResistance  float32 = 1.2
	resistanceSlope float32 = 1.6
	maxResistedPull float32 = 2
)

// Options configures a Controller; zero fields take the defaults
type Options struct {
	HeaderHeight    float32
	MaxPullRatio    float32
	AnimateDuration time.Duration
	FinishDelay     time.Duration
	SafetyTimeout   time.Duration
	FrameInterval   time.Duration
	Logger          *zap.Logger
}

func (o *Options) setDefaults() {
	if o.HeaderHeight <= 0 {
		o.HeaderHeight = DefaultHeaderHeight
	}
	if o.MaxPullRatio <= 0 {
		o.MaxPullRatio = DefaultMaxPullRatio
	}
	if o.AnimateDuration <= 0 {
		o.AnimateDuration = DefaultAnimateDuration
	}
	if o.FinishDelay <= 0 {
		o.FinishDelay = DefaultFinishDelay
	}
	if o.SafetyTimeout <= 0 {
		o.SafetyTimeout = DefaultSafetyTimeout
	}
	if o.FrameInterval <= 0 {
		o.FrameInterval = DefaultFrameInterval
	}
}

type axis int

const (
	axisUndecided axis = iota
	axisVertical
	axisHorizontal
)

// Snapshot is the observable header state
type Snapshot struct {
	State    model.RefreshState
	Offset   float32
	Progress float32
}

// Controller owns the refresh state and the header offset. Offset changes
// come from gesture callbacks or from the single running animation.
type Controller struct {
	mu        sync.Mutex
	opts      Options
	state     model.RefreshState
	offset    float32
	axis      axis
	external  bool
	onRefresh func()
	anim      *Animator
	safety    *Animator
	listeners []func(Snapshot)
	logger    *zap.Logger
}

// NewController creates a controller that calls onRefresh when a pull is
// committed
func NewController(onRefresh func(), opts Options) *Controller {
	opts.setDefaults()
	c := &Controller{
		opts:      opts,
		onRefresh: onRefresh,
		logger:    logging.OrNop(opts.Logger).Named("refresh"),
	}
	c.anim = NewAnimator(&c.mu, opts.FrameInterval, c.notify)
	c.safety = NewAnimator(&c.mu, opts.FrameInterval, c.notify)
	return c
}

// HeaderHeight returns the committed header height in pixels
func (c *Controller) HeaderHeight() float32 {
	return c.opts.HeaderHeight
}

// OnChange registers a callback invoked after every state or offset change
func (c *Controller) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Snapshot returns the current state, offset and progress
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// State returns the current refresh state
func (c *Controller) State() model.RefreshState {
	return c.Snapshot().State
}

// Offset returns the header offset in pixels
func (c *Controller) Offset() float32 {
	return c.Snapshot().Offset
}

// BeginGesture resets the axis classification for a new touch sequence
func (c *Controller) BeginGesture() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.axis = axisUndecided
}

// PreScroll is offered a drag delta before the inner scrollable. An upward
// drag (dy < 0) first collapses a visible header. Returns the consumed dy.
func (c *Controller) PreScroll(dx, dy float32) float32 {
	c.mu.Lock()
	if c.horizontalLocked(dx, dy) || dy >= 0 || c.offset <= 0 {
		c.mu.Unlock()
		return 0
	}

	c.anim.Cancel()
	next := c.offset + dy
	if next < 0 {
		next = 0
	}
	consumed := next - c.offset
	c.offset = next
	if c.offset == 0 {
		c.state = model.RefreshIdle
		c.safety.Cancel()
	}
	c.mu.Unlock()

	c.notify()
	return consumed
}

// PostScroll is offered the drag delta the inner scrollable left over, i.e.
// when it is already at its top. A downward drag (dy > 0) extends the header
// against a growing resistance. Returns the consumed dy.
func (c *Controller) PostScroll(dx, dy float32) float32 {
	c.mu.Lock()
	if c.horizontalLocked(dx, dy) || dy <= 0 {
		c.mu.Unlock()
		return 0
	}

	c.anim.Cancel()
	h := c.opts.HeaderHeight
	c.offset = clamp(c.offset+dy/c.resistance(), 0, h*c.opts.MaxPullRatio)
	if c.offset > 0 && (c.state == model.RefreshIdle || c.state == model.RefreshPulling) {
		c.state = model.RefreshPulling
	}
	c.mu.Unlock()

	c.notify()
	return dy
}

// resistance grows from 1.2 at rest to 4.4 at twice the header height
func (c *Controller) resistance() float32 {
	pulled := clamp(c.offset/c.opts.HeaderHeight, 0, maxResistedPull)
	return baseResistance + pulled*resistanceSlope
}

// Release ends the gesture. A header pulled to at least its height commits to
// a refresh; anything less springs back. Returns the consumed fling velocity.
func (c *Controller) Release(velocityY float32) float32 {
	c.mu.Lock()
	horizontal := c.axis == axisHorizontal
	c.axis = axisUndecided
	if horizontal || c.offset <= 0 {
		c.mu.Unlock()
		return 0
	}

	h := c.opts.HeaderHeight
	commit := false
	switch {
	case c.state == model.RefreshRefreshing:
		c.animateToLocked(h, nil)
	case c.state == model.RefreshFinished:
		c.animateToLocked(0, func() {
			c.state = model.RefreshIdle
		})
	case c.offset >= h:
		c.state = model.RefreshRefreshing
		c.animateToLocked(h, nil)
		c.armSafetyLocked()
		commit = true
	default:
		c.state = model.RefreshIdle
		c.animateToLocked(0, nil)
	}
	offset := c.offset
	c.mu.Unlock()

	c.notify()
	if commit {
		c.logger.Debug("refresh committed", zap.Float32("offset", offset))
		if c.onRefresh != nil {
			c.onRefresh()
		}
	}
	return velocityY
}

// SetRefreshing mirrors the externally observed refreshing flag. Only
// transitions of the flag have an effect.
func (c *Controller) SetRefreshing(refreshing bool) {
	c.mu.Lock()
	if refreshing == c.external {
		c.mu.Unlock()
		return
	}
	c.external = refreshing

	switch {
	case refreshing && c.state != model.RefreshRefreshing:
		c.state = model.RefreshRefreshing
		c.animateToLocked(c.opts.HeaderHeight, nil)
		c.armSafetyLocked()
	case !refreshing && c.state == model.RefreshRefreshing:
		c.finishLocked()
	}
	c.mu.Unlock()

	c.notify()
}

// finishLocked shows the finished header at its full height for the display
// delay, then hides it. A header still travelling to that height finishes the
// trip first.
func (c *Controller) finishLocked() {
	c.state = model.RefreshFinished
	c.safety.Cancel()

	hide := func() {
		c.anim.After(c.opts.FinishDelay, func() {
			c.animateToLocked(0, func() {
				c.state = model.RefreshIdle
			})
		})
	}
	if c.offset != c.opts.HeaderHeight {
		c.animateToLocked(c.opts.HeaderHeight, hide)
		return
	}
	hide()
}

// armSafetyLocked forces the header back if the refresh never reports back
func (c *Controller) armSafetyLocked() {
	c.safety.After(c.opts.SafetyTimeout, func() {
		if c.state != model.RefreshRefreshing {
			return
		}
		c.logger.Warn("refresh did not finish in time, hiding header", zap.Duration("timeout", c.opts.SafetyTimeout))
		c.finishLocked()
	})
}

func (c *Controller) animateToLocked(target float32, done func()) {
	c.anim.Animate(c.offset, target, c.opts.AnimateDuration, func(v float32) {
		c.offset = v
	}, done)
}

// horizontalLocked classifies the drag and reports whether it belongs to a
// horizontal gesture. Once horizontal, a gesture stays horizontal.
func (c *Controller) horizontalLocked(dx, dy float32) bool {
	if c.axis != axisHorizontal {
		ax, ay := abs(dx), abs(dy)
		if ax > AxisLockRatio*ay {
			c.axis = axisHorizontal
		} else if ay > AxisLockRatio*ax {
			c.axis = axisVertical
		}
	}
	return c.axis == axisHorizontal
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:    c.state,
		Offset:   c.offset,
		Progress: c.offset / c.opts.HeaderHeight,
	}
}

func (c *Controller) notify() {
	c.mu.Lock()
	snap := c.snapshotLocked()
	listeners := append([]func(Snapshot){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
