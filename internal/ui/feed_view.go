package ui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/paging"
	"github.com/ytget/feed-client/internal/refresh"
)

// FeedView shows a pager's items in a pull-to-refresh scroll. The next page
// is requested when the scroll gets near the bottom.
type FeedView struct {
	pager        *paging.Pager
	ctrl         *refresh.Controller
	localization *Localization
	timeout      time.Duration
	logger       *zap.Logger

	rows     *fyne.Container
	footer   *widget.Label
	retryBtn *widget.Button
	scroll   *container.Scroll
	ptr      *PullToRefresh
	content  fyne.CanvasObject

	seq      uint64
	flowID   string
	firstID  string
	rendered int
}

// NewFeedView creates the view; top is an optional header above the scroll
func NewFeedView(pager *paging.Pager, localization *Localization, top fyne.CanvasObject, logger *zap.Logger) *FeedView {
	v := &FeedView{
		pager:        pager,
		localization: localization,
		timeout:      LoadTimeout,
		logger:       logging.OrNop(logger).Named("feed"),
	}
	v.ctrl = refresh.NewController(v.Reload, refresh.Options{Logger: logger})

	v.rows = container.NewVBox()
	v.footer = widget.NewLabel("")
	v.footer.Alignment = fyne.TextAlignCenter
	v.retryBtn = widget.NewButton(localization.GetText(KeyRetry), func() { go v.loadNext() })
	v.retryBtn.Hide()

	v.scroll = container.NewVScroll(container.NewVBox(v.rows, v.footer, v.retryBtn))
	v.scroll.OnScrolled = v.onScrolled
	v.ptr = NewPullToRefresh(v.scroll, v.ctrl, localization)

	if top != nil {
		v.content = container.NewBorder(top, nil, nil, nil, v.ptr)
	} else {
		v.content = v.ptr
	}

	pager.OnChange(func(s paging.Snapshot) {
		fyne.Do(func() { v.render(s) })
	})
	v.render(pager.Snapshot())
	return v
}

// Content returns the view's root object
func (v *FeedView) Content() fyne.CanvasObject {
	return v.content
}

// Controller returns the pull-to-refresh controller of the view
func (v *FeedView) Controller() *refresh.Controller {
	return v.ctrl
}

// Start loads the first page in the background
func (v *FeedView) Start() {
	go v.loadNext()
}

// Reload starts a new flow and shows the refresh header until its first page
// is in. It is also the controller's commit callback.
func (v *FeedView) Reload() {
	v.ctrl.SetRefreshing(true)
	v.pager.Refresh()
	go func() {
		v.loadNext()
		v.ctrl.SetRefreshing(false)
	}()
}

// Invalidate restarts the flow around the first row on screen and rebuilds
// rows with the current settings. Rows above it come back through
// LoadPrevious when scrolling up.
func (v *FeedView) Invalidate() {
	v.retryBtn.SetText(v.localization.GetText(KeyRetry))
	v.invalidateAt(firstVisibleRow(v.rows.Objects, v.scroll.Offset.Y))
}

func (v *FeedView) invalidateAt(anchor int) {
	v.pager.Invalidate(anchor)
	go v.loadNext()
}

func (v *FeedView) loadNext() {
	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()
	if err := v.pager.LoadNext(ctx); err != nil {
		v.logger.Debug("load next failed", zap.Error(err))
	}
}

func (v *FeedView) loadPrevious() {
	ctx, cancel := context.WithTimeout(context.Background(), v.timeout)
	defer cancel()
	if err := v.pager.LoadPrevious(ctx); err != nil {
		v.logger.Debug("load previous failed", zap.Error(err))
	}
}

func (v *FeedView) onScrolled(pos fyne.Position) {
	contentH := v.scroll.Content.MinSize().Height
	if pos.Y+v.scroll.Size().Height >= contentH-LoadMoreThreshold {
		go v.loadNext()
	}
	if pos.Y <= LoadMoreThreshold {
		go v.loadPrevious()
	}
}

// firstVisibleRow returns the index of the first row not scrolled past y
func firstVisibleRow(rows []fyne.CanvasObject, y float32) int {
	for i, row := range rows {
		if row.Position().Y+row.Size().Height > y {
			return i
		}
	}
	if len(rows) == 0 {
		return 0
	}
	return len(rows) - 1
}

// render updates rows and footer from a pager snapshot. Snapshots older than
// the last one rendered are ignored. Pages appended to the current flow only
// add rows. A new flow keeps the old rows on screen until
// its first page arrives.
func (v *FeedView) render(s paging.Snapshot) {
	if s.Seq <= v.seq {
		return
	}
	v.seq = s.Seq

	switch {
	case s.FlowID == v.flowID && len(s.Items) >= v.rendered && v.rendered > 0 && s.Items[0].ID == v.firstID:
		for _, p := range s.Items[v.rendered:] {
			v.rows.Add(NewPostCard(p))
		}
		v.rendered = len(s.Items)
	case len(s.Items) == 0 && !s.EndReached && s.Err == nil:
		// New flow still empty.
	default:
		objs := make([]fyne.CanvasObject, 0, len(s.Items))
		for _, p := range s.Items {
			objs = append(objs, NewPostCard(p))
		}
		v.rows.Objects = objs
		v.rows.Refresh()
		v.flowID = s.FlowID
		v.rendered = len(s.Items)
		v.firstID = ""
		if len(s.Items) > 0 {
			v.firstID = s.Items[0].ID
		}
	}

	v.retryBtn.Hide()
	switch {
	case s.Err != nil:
		v.footer.SetText(v.localization.GetText(KeyLoadFailed))
		v.retryBtn.Show()
	case s.Loading:
		v.footer.SetText(v.localization.GetText(KeyLoadingMore))
	case s.EndReached:
		v.footer.SetText(v.localization.GetText(KeyNoMore))
	default:
		v.footer.SetText("")
	}
}

// RenderedCount returns the number of post rows on screen
func (v *FeedView) RenderedCount() int {
	return len(v.rows.Objects)
}

// FooterText returns the footer caption
func (v *FeedView) FooterText() string {
	return v.footer.Text
}
