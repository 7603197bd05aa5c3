package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/feed-client/internal/model"
	"github.com/ytget/feed-client/internal/refresh"
)

// InnerScroller is the scrollable the refresh header is nested around.
// ScrollBy moves the content by dy (positive towards the top) and returns the
// part of dy it consumed.
type InnerScroller interface {
	ScrollBy(dy float32) float32
}

// DragAdapter routes one drag gesture through the nested-scroll chain: the
// controller first (collapsing a visible header), then the inner scroller,
// then the controller again with whatever the inner scroller left over.
type DragAdapter struct {
	ctrl  *refresh.Controller
	inner InnerScroller
	now   func() time.Time

	dragging bool
	lastAt   time.Time
	velocity float32
}

// NewDragAdapter creates an adapter; inner may be nil for a static content
func NewDragAdapter(ctrl *refresh.Controller, inner InnerScroller) *DragAdapter {
	return &DragAdapter{ctrl: ctrl, inner: inner, now: time.Now}
}

// Drag feeds one delta of the gesture. dy is positive when the finger moves
// down. Returns the total consumed dy.
func (a *DragAdapter) Drag(dx, dy float32) float32 {
	now := a.now()
	if !a.dragging {
		a.dragging = true
		a.velocity = 0
		a.ctrl.BeginGesture()
	} else if dt := now.Sub(a.lastAt).Seconds(); dt > 0 {
		a.velocity = dy / float32(dt)
	}
	a.lastAt = now

	consumed := a.ctrl.PreScroll(dx, dy)
	rest := dy - consumed
	if rest != 0 && a.inner != nil {
		scrolled := a.inner.ScrollBy(rest)
		consumed += scrolled
		rest -= scrolled
	}
	if rest > 0 {
		consumed += a.ctrl.PostScroll(dx, rest)
	}
	return consumed
}

// End finishes the gesture and hands the last measured velocity to the
// controller
func (a *DragAdapter) End() float32 {
	if !a.dragging {
		return 0
	}
	a.dragging = false
	v := a.velocity
	a.velocity = 0
	return a.ctrl.Release(v)
}

// Dragging reports whether a gesture is in progress
func (a *DragAdapter) Dragging() bool {
	return a.dragging
}

// scrollInner adapts a container.Scroll to InnerScroller
type scrollInner struct {
	scroll *container.Scroll
}

func (i scrollInner) ScrollBy(dy float32) float32 {
	s := i.scroll
	max := s.Content.MinSize().Height - s.Size().Height
	if max < 0 {
		max = 0
	}
	before := s.Offset.Y
	next := before - dy
	if next < 0 {
		next = 0
	}
	if next > max {
		next = max
	}
	if next == before {
		return 0
	}
	s.Offset.Y = next
	s.Refresh()
	if s.OnScrolled != nil {
		s.OnScrolled(s.Offset)
	}
	return before - next
}

// dragCatcher sits transparently on top of the scroll content. It only takes
// drags, so taps and wheel events still reach the widgets underneath.
type dragCatcher struct {
	widget.BaseWidget
	adapter *DragAdapter
}

func newDragCatcher(adapter *DragAdapter) *dragCatcher {
	d := &dragCatcher{adapter: adapter}
	d.ExtendBaseWidget(d)
	return d
}

func (d *dragCatcher) Dragged(e *fyne.DragEvent) {
	d.adapter.Drag(e.Dragged.DX, e.Dragged.DY)
}

func (d *dragCatcher) DragEnd() {
	d.adapter.End()
}

func (d *dragCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

// PullToRefresh wraps a scroll container with an elastic refresh header
// driven by a refresh.Controller
type PullToRefresh struct {
	widget.BaseWidget

	ctrl         *refresh.Controller
	scroll       *container.Scroll
	adapter      *DragAdapter
	catcher      *dragCatcher
	localization *Localization

	headerLabel   *widget.Label
	headerSpinner *widget.ProgressBarInfinite
	header        *fyne.Container

	snap refresh.Snapshot
}

// NewPullToRefresh creates the container. Controller changes are marshalled
// to the UI goroutine with fyne.Do.
func NewPullToRefresh(scroll *container.Scroll, ctrl *refresh.Controller, localization *Localization) *PullToRefresh {
	p := &PullToRefresh{
		ctrl:         ctrl,
		scroll:       scroll,
		localization: localization,
	}
	p.adapter = NewDragAdapter(ctrl, scrollInner{scroll: scroll})
	p.catcher = newDragCatcher(p.adapter)

	p.headerLabel = widget.NewLabel("")
	p.headerLabel.Alignment = fyne.TextAlignCenter
	p.headerSpinner = widget.NewProgressBarInfinite()
	p.headerSpinner.Hide()
	p.header = container.NewVBox(p.headerLabel, p.headerSpinner)

	ctrl.OnChange(func(s refresh.Snapshot) {
		fyne.Do(func() { p.apply(s) })
	})
	p.ExtendBaseWidget(p)
	p.apply(ctrl.Snapshot())
	return p
}

// Adapter exposes the drag adapter, e.g. for keyboard or test driven pulls
func (p *PullToRefresh) Adapter() *DragAdapter {
	return p.adapter
}

// HeaderText returns the current header caption
func (p *PullToRefresh) HeaderText() string {
	return p.headerLabel.Text
}

func (p *PullToRefresh) apply(s refresh.Snapshot) {
	p.snap = s
	p.headerLabel.SetText(headerText(s, p.localization))
	if s.State == model.RefreshRefreshing {
		p.headerSpinner.Show()
	} else {
		p.headerSpinner.Hide()
	}
	p.Refresh()
}

// headerText picks the caption for a controller snapshot
func headerText(s refresh.Snapshot, l *Localization) string {
	switch s.State {
	case model.RefreshPulling:
		if s.Progress >= 1 {
			return l.GetText(KeyReleaseToRefresh)
		}
		return l.GetText(KeyPullToRefresh)
	case model.RefreshRefreshing:
		return l.GetText(KeyRefreshing)
	case model.RefreshFinished:
		return l.GetText(KeyRefreshed)
	default:
		return ""
	}
}

// CreateRenderer creates the widget renderer
func (p *PullToRefresh) CreateRenderer() fyne.WidgetRenderer {
	return &pullToRefreshRenderer{p: p}
}

type pullToRefreshRenderer struct {
	p *PullToRefresh
}

// Layout places the header above the content, both shifted down by the
// current pull offset
func (r *pullToRefreshRenderer) Layout(size fyne.Size) {
	p := r.p
	h := p.ctrl.HeaderHeight()
	offset := p.snap.Offset

	p.header.Move(fyne.NewPos(0, offset-h))
	p.header.Resize(fyne.NewSize(size.Width, h))

	contentH := size.Height - offset
	if contentH < 0 {
		contentH = 0
	}
	p.scroll.Move(fyne.NewPos(0, offset))
	p.scroll.Resize(fyne.NewSize(size.Width, contentH))

	p.catcher.Move(fyne.NewPos(0, 0))
	p.catcher.Resize(size)
}

func (r *pullToRefreshRenderer) MinSize() fyne.Size {
	return r.p.scroll.MinSize()
}

func (r *pullToRefreshRenderer) Refresh() {
	r.Layout(r.p.Size())
	canvas.Refresh(r.p)
}

// Objects keeps the catcher last so it is hit first for drags
func (r *pullToRefreshRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.p.header, r.p.scroll, r.p.catcher}
}

func (r *pullToRefreshRenderer) Destroy() {}
