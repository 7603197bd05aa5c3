package chrome

import (
	"context"
	"image/color"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/feed-client/internal/palette"
)

var (
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	navy  = color.NRGBA{R: 10, G: 20, B: 90, A: 255}
	sky   = color.NRGBA{R: 200, G: 230, B: 255, A: 255}
)

type recordingWindow struct {
	mu      sync.Mutex
	applied []WindowChrome
}

func (w *recordingWindow) Apply(wc WindowChrome) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.applied = append(w.applied, wc)
}

func (w *recordingWindow) last() WindowChrome {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.applied[len(w.applied)-1]
}

func (w *recordingWindow) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.applied)
}

// gatedResolver returns a fixed color per source once that source's gate opens
type gatedResolver struct {
	colors map[string]color.NRGBA
	gates  map[string]chan struct{}
}

func (g *gatedResolver) Resolve(ctx context.Context, source string, fallback color.Color) palette.Result {
	if gate, ok := g.gates[source]; ok {
		<-gate
	}
	c, ok := g.colors[source]
	if !ok {
		c = palette.ToNRGBA(fallback)
	}
	return palette.Result{Color: c, DarkIcons: palette.UseDarkIcons(palette.Luminance(c)), FromImage: ok}
}

func newCoordinator(t *testing.T, resolver ColorResolver) (*Coordinator, *recordingWindow) {
	t.Helper()
	test.NewApp()
	window := &recordingWindow{}
	c := NewCoordinator(resolver, window, nil, nil)
	t.Cleanup(c.Close)
	return c, window
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestUpdate_LiteralValuesWithoutAuto(t *testing.T) {
	c, window := newCoordinator(t, &gatedResolver{})

	c.Update(Config{
		Immersive:      true,
		StatusBarColor: white,
		NavBarColor:    black,
		Background:     ImageBackground{Source: "ignored"},
	})

	r := c.Resolved()
	if r.StatusBarColor != white || !r.StatusBarDarkIcons {
		t.Errorf("Expected white bar with dark icons, got %+v", r)
	}
	if r.NavBarDarkIcons == nil || *r.NavBarDarkIcons {
		t.Errorf("Black nav bar should use light icons, got %v", r.NavBarDarkIcons)
	}

	applied := window.last()
	if applied.DecorFitsSystemWindows {
		t.Error("Immersive config should draw under system bars")
	}
	if applied.StatusBarLightIcons || !applied.NavBarLightIcons {
		t.Errorf("Unexpected icon flags %+v", applied)
	}
}

func TestUpdate_SolidBackgroundResolvesSynchronously(t *testing.T) {
	c, _ := newCoordinator(t, &gatedResolver{})

	c.Update(Config{
		StatusBarColor: TransparentColor,
		AutoIcons:      true,
		AutoColor:      true,
		Background:     SolidBackground{Color: sky},
	})

	r := c.Resolved()
	if r.StatusBarColor != sky {
		t.Errorf("Expected bar color %v, got %v", sky, r.StatusBarColor)
	}
	if !r.StatusBarDarkIcons {
		t.Error("Light sky background needs dark icons")
	}
}

func TestUpdate_ExplicitOverrideWins(t *testing.T) {
	c, _ := newCoordinator(t, &gatedResolver{})

	c.Update(Config{
		StatusBarColor:     TransparentColor,
		StatusBarDarkIcons: Bool(false),
		AutoIcons:          true,
		AutoColor:          true,
		Background:         SolidBackground{Color: white},
	})

	r := c.Resolved()
	if r.StatusBarDarkIcons {
		t.Error("Explicit light icons should override the auto decision")
	}
	if r.StatusBarColor != white {
		t.Errorf("Auto color should still apply, got %v", r.StatusBarColor)
	}
}

func TestUpdate_AutoColorOnlyWithTransparentSentinel(t *testing.T) {
	c, _ := newCoordinator(t, &gatedResolver{})

	c.Update(Config{
		StatusBarColor: navy,
		AutoColor:      true,
		Background:     SolidBackground{Color: white},
	})

	if r := c.Resolved(); r.StatusBarColor != navy {
		t.Errorf("Opaque literal color should be kept, got %v", r.StatusBarColor)
	}
}

func TestUpdate_AbsentBackgroundUsesFallbacks(t *testing.T) {
	c, _ := newCoordinator(t, &gatedResolver{})

	c.Update(Config{
		StatusBarColor:    TransparentColor,
		AutoIcons:         true,
		AutoColor:         true,
		FallbackIconColor: white,
		FallbackBarColor:  navy,
	})

	r := c.Resolved()
	if r.StatusBarColor != navy || !r.StatusBarDarkIcons {
		t.Errorf("Expected navy bar with icons decided by white, got %+v", r)
	}
}

func TestUpdate_ImageBackgroundResolvesAsync(t *testing.T) {
	gate := make(chan struct{})
	resolver := &gatedResolver{
		colors: map[string]color.NRGBA{"a.jpg": sky},
		gates:  map[string]chan struct{}{"a.jpg": gate},
	}
	c, window := newCoordinator(t, resolver)

	c.Update(Config{
		StatusBarColor: TransparentColor,
		AutoIcons:      true,
		AutoColor:      true,
		Background:     ImageBackground{Source: "a.jpg", Fallback: black},
	})

	if r := c.Resolved(); r.StatusBarColor != TransparentColor {
		t.Errorf("Color should be unresolved before the palette completes, got %v", r.StatusBarColor)
	}
	before := window.count()

	close(gate)
	waitFor(t, func() bool { return c.Resolved().StatusBarColor == sky })

	if !c.Resolved().StatusBarDarkIcons {
		t.Error("Expected dark icons over the sky image")
	}
	if window.count() <= before {
		t.Error("Resolved values should be applied to the window")
	}
	if got, _ := c.Binding().Get(); got.(Resolved).StatusBarColor != sky {
		t.Errorf("Binding should hold the resolved chrome, got %+v", got)
	}
}

func TestUpdate_StaleResolutionIsDropped(t *testing.T) {
	slowGate := make(chan struct{})
	resolver := &gatedResolver{
		colors: map[string]color.NRGBA{"slow.jpg": navy, "fast.jpg": sky},
		gates:  map[string]chan struct{}{"slow.jpg": slowGate},
	}
	c, _ := newCoordinator(t, resolver)

	var mu sync.Mutex
	var published []Resolved
	c.OnChange(func(r Resolved) {
		mu.Lock()
		published = append(published, r)
		mu.Unlock()
	})

	base := Config{StatusBarColor: TransparentColor, AutoIcons: true, AutoColor: true}
	slow, fast := base, base
	slow.Background = ImageBackground{Source: "slow.jpg"}
	fast.Background = ImageBackground{Source: "fast.jpg"}

	c.Update(slow)
	c.Update(fast)
	waitFor(t, func() bool { return c.Resolved().StatusBarColor == sky })

	close(slowGate)
	time.Sleep(50 * time.Millisecond)

	if r := c.Resolved(); r.StatusBarColor != sky {
		t.Errorf("Stale resolution overwrote the active config: %v", r.StatusBarColor)
	}
	mu.Lock()
	defer mu.Unlock()
	for _, r := range published {
		if r.StatusBarColor == navy {
			t.Error("Stale resolution was published")
		}
	}
}

func TestReapply(t *testing.T) {
	c, window := newCoordinator(t, &gatedResolver{})
	c.Update(Config{StatusBarColor: white})

	before := window.count()
	c.Reapply()
	c.Reapply()
	if window.count() != before+2 {
		t.Errorf("Expected two more applications, got %d", window.count()-before)
	}
	if window.last().StatusBarColor != white {
		t.Errorf("Reapply changed the color to %v", window.last().StatusBarColor)
	}
}

func TestMerge_NavBarDefaults(t *testing.T) {
	r := merge(Config{}, nil, nil)
	if r.NavBarDarkIcons != nil {
		t.Errorf("Transparent nav bar without override should use the platform default, got %v", *r.NavBarDarkIcons)
	}
	if r.StatusBarDarkIcons {
		t.Error("Transparent status bar defaults to light icons")
	}

	r = merge(Config{NavBarColor: black, NavBarDarkIcons: Bool(true)}, nil, nil)
	if r.NavBarDarkIcons == nil || !*r.NavBarDarkIcons {
		t.Error("Explicit nav bar override should win")
	}
}
