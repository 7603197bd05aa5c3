package chrome

import (
	"context"
	"image/color"
	"sync"

	"fyne.io/fyne/v2/data/binding"
	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/palette"
)

// ColorResolver picks a color for an image; palette.Resolver satisfies it
type ColorResolver interface {
	Resolve(ctx context.Context, source string, fallback color.Color) palette.Result
}

// Dispatcher runs f on the UI goroutine
type Dispatcher func(f func())

// Coordinator keeps the resolved chrome in sync with the latest Config. Only
// the most recent Update may write results; image resolutions started for an
// older config are dropped when they complete.
type Coordinator struct {
	mu        sync.Mutex
	resolver  ColorResolver
	window    Window
	dispatch  Dispatcher
	ctx       context.Context
	cancel    context.CancelFunc
	gen       uint64
	cfg       Config
	autoIcons *bool
	autoColor *color.NRGBA
	resolved  Resolved
	state     binding.Untyped
	onChange  []func(Resolved)
	logger    *zap.Logger
}

// NewCoordinator creates a coordinator. A nil dispatch runs completions on
// the resolving goroutine.
func NewCoordinator(resolver ColorResolver, window Window, dispatch Dispatcher, logger *zap.Logger) *Coordinator {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		resolver: resolver,
		window:   window,
		dispatch: dispatch,
		ctx:      ctx,
		cancel:   cancel,
		state:    binding.NewUntyped(),
		logger:   logging.OrNop(logger).Named("chrome"),
	}
}

// Close abandons pending resolutions
func (c *Coordinator) Close() {
	c.cancel()
}

// Update makes cfg the active configuration. Solid and absent backgrounds
// resolve immediately; image backgrounds resolve in the background.
func (c *Coordinator) Update(cfg Config) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.cfg = cfg
	c.autoIcons = nil
	c.autoColor = nil

	needIcons, needColor := cfg.NeedsAutoIcons(), cfg.NeedsAutoColor()
	var pending *ImageBackground
	if needIcons || needColor {
		switch bg := cfg.Background.(type) {
		case SolidBackground:
			c.setAutoLocked(bg.Color, palette.UseDarkIcons(palette.Luminance(bg.Color)), needIcons, needColor)
		case ImageBackground:
			pending = &bg
		case nil:
			c.setAutoLocked(cfg.FallbackBarColor, palette.UseDarkIcons(palette.Luminance(cfg.FallbackIconColor)), needIcons, needColor)
		}
	}
	c.mu.Unlock()

	c.publish()

	if pending != nil {
		go c.resolveImage(gen, *pending, needIcons, needColor)
	}
}

func (c *Coordinator) resolveImage(gen uint64, bg ImageBackground, needIcons, needColor bool) {
	result := c.resolver.Resolve(c.ctx, bg.Source, bg.Fallback)
	if c.ctx.Err() != nil {
		return
	}

	c.dispatch(func() {
		c.mu.Lock()
		if gen != c.gen {
			c.mu.Unlock()
			c.logger.Debug("dropping stale palette result", zap.String("source", bg.Source))
			return
		}
		c.setAutoLocked(result.Color, result.DarkIcons, needIcons, needColor)
		c.mu.Unlock()

		c.logger.Debug("palette resolved",
			zap.String("source", bg.Source),
			zap.String("color", palette.Hex(result.Color)),
			zap.Bool("dark_icons", result.DarkIcons),
			zap.Bool("from_image", result.FromImage))
		c.publish()
	})
}

func (c *Coordinator) setAutoLocked(col color.NRGBA, darkIcons, needIcons, needColor bool) {
	if needIcons {
		c.autoIcons = &darkIcons
	}
	if needColor {
		c.autoColor = &col
	}
}

// Reapply pushes the current resolved values to the window again
func (c *Coordinator) Reapply() {
	c.mu.Lock()
	cfg, resolved := c.cfg, c.resolved
	c.mu.Unlock()
	c.apply(cfg, resolved)
}

// Resolved returns the latest resolved chrome
func (c *Coordinator) Resolved() Resolved {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolved
}

// Binding exposes the resolved chrome as observable UI state holding a Resolved
func (c *Coordinator) Binding() binding.Untyped {
	return c.state
}

// OnChange registers a callback invoked after every publish
func (c *Coordinator) OnChange(fn func(Resolved)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = append(c.onChange, fn)
}

func (c *Coordinator) publish() {
	c.mu.Lock()
	cfg := c.cfg
	resolved := merge(cfg, c.autoIcons, c.autoColor)
	c.resolved = resolved
	listeners := append([]func(Resolved){}, c.onChange...)
	c.mu.Unlock()

	if err := c.state.Set(resolved); err != nil {
		c.logger.Warn("chrome binding update failed", zap.Error(err))
	}
	c.apply(cfg, resolved)
	for _, fn := range listeners {
		fn(resolved)
	}
}

func (c *Coordinator) apply(cfg Config, r Resolved) {
	if c.window == nil {
		return
	}
	navLight := !r.StatusBarDarkIcons
	if r.NavBarDarkIcons != nil {
		navLight = !*r.NavBarDarkIcons
	}
	c.window.Apply(WindowChrome{
		DecorFitsSystemWindows: !cfg.Immersive,
		StatusBarColor:         r.StatusBarColor,
		NavBarColor:            r.NavBarColor,
		StatusBarLightIcons:    !r.StatusBarDarkIcons,
		NavBarLightIcons:       navLight,
	})
}

// merge combines explicit overrides, automatic values and literal defaults,
// in that order of precedence
func merge(cfg Config, autoIcons *bool, autoColor *color.NRGBA) Resolved {
	r := Resolved{
		StatusBarColor: cfg.StatusBarColor,
		NavBarColor:    cfg.NavBarColor,
	}
	if autoColor != nil {
		r.StatusBarColor = *autoColor
	}

	switch {
	case cfg.StatusBarDarkIcons != nil:
		r.StatusBarDarkIcons = *cfg.StatusBarDarkIcons
	case autoIcons != nil:
		r.StatusBarDarkIcons = *autoIcons
	default:
		r.StatusBarDarkIcons = opaqueDarkIcons(cfg.StatusBarColor)
	}

	switch {
	case cfg.NavBarDarkIcons != nil:
		r.NavBarDarkIcons = Bool(*cfg.NavBarDarkIcons)
	case cfg.NavBarColor.A > 0:
		r.NavBarDarkIcons = Bool(palette.UseDarkIcons(palette.Luminance(cfg.NavBarColor)))
	}
	return r
}

func opaqueDarkIcons(c color.NRGBA) bool {
	if c.A == 0 {
		return false
	}
	return palette.UseDarkIcons(palette.Luminance(c))
}
