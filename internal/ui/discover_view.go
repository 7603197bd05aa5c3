package ui

import (
	"context"
	"fmt"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/model"
	"github.com/ytget/feed-client/internal/trending"
)

// DiscoverView lists the hot-search topics
type DiscoverView struct {
	service      *trending.Service
	localization *Localization
	logger       *zap.Logger

	topics  []model.TrendingTopic
	status  *widget.Label
	list    *widget.List
	content fyne.CanvasObject
}

// NewDiscoverView creates the view and subscribes to service updates
func NewDiscoverView(service *trending.Service, localization *Localization, logger *zap.Logger) *DiscoverView {
	v := &DiscoverView{
		service:      service,
		localization: localization,
		logger:       logging.OrNop(logger).Named("discover"),
	}

	v.status = widget.NewLabel("")
	v.status.Importance = widget.LowImportance
	refreshBtn := widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), v.Refresh)
	refreshBtn.Importance = widget.LowImportance

	v.list = widget.NewList(
		func() int { return len(v.topics) },
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil, widget.NewLabel("00"), widget.NewLabel(""), widget.NewLabel(""))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id >= len(v.topics) {
				return
			}
			t := v.topics[id]
			row := obj.(*fyne.Container)
			// Border puts the center object first, then the edges
			row.Objects[0].(*widget.Label).SetText(t.Title)
			row.Objects[1].(*widget.Label).SetText(fmt.Sprintf("%d", t.Rank))
			row.Objects[2].(*widget.Label).SetText(topicBadge(t))
		},
	)
	v.list.OnSelected = func(id widget.ListItemID) {
		v.list.UnselectAll()
		if id < len(v.topics) {
			v.open(v.topics[id])
		}
	}

	top := container.NewBorder(nil, nil, nil, refreshBtn, v.status)
	v.content = container.NewBorder(top, nil, nil, nil, v.list)

	service.SetUpdateCallback(func(u trending.Update) {
		fyne.Do(func() { v.render(u) })
	})
	return v
}

// Content returns the view's root object
func (v *DiscoverView) Content() fyne.CanvasObject {
	return v.content
}

// Start shows the cached list and then refreshes it in the background
func (v *DiscoverView) Start() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
		defer cancel()
		if err := v.service.LoadCached(ctx); err != nil {
			v.logger.Warn("cached trending unavailable", zap.Error(err))
		}
		v.refresh(ctx)
	}()
}

// Refresh fetches the list again
func (v *DiscoverView) Refresh() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), LoadTimeout)
		defer cancel()
		v.refresh(ctx)
	}()
}

func (v *DiscoverView) refresh(ctx context.Context) {
	if err := v.service.Refresh(ctx); err != nil {
		v.logger.Debug("trending refresh", zap.Error(err))
	}
}

func (v *DiscoverView) render(u trending.Update) {
	v.topics = u.Topics
	v.status.SetText(statusText(u, v.localization))
	v.list.Refresh()
}

// TopicCount returns the number of topics on screen
func (v *DiscoverView) TopicCount() int {
	return len(v.topics)
}

// StatusText returns the caption above the list
func (v *DiscoverView) StatusText() string {
	return v.status.Text
}

func (v *DiscoverView) open(t model.TrendingTopic) {
	u, err := url.Parse(t.URL)
	if err != nil || t.URL == "" {
		return
	}
	if err := fyne.CurrentApp().OpenURL(u); err != nil {
		v.logger.Warn("open topic", zap.String("url", t.URL), zap.Error(err))
	}
}

func topicBadge(t model.TrendingTopic) string {
	switch t.Tag {
	case "hot":
		return IconHot
	case "new":
		return IconNew
	}
	if t.Heat > 0 {
		return model.GetDisplayCount(int(t.Heat))
	}
	return ""
}

func statusText(u trending.Update, l *Localization) string {
	switch {
	case u.Err != nil:
		return l.GetText(KeyTrendingFailed)
	case u.Source == trending.SourceCache:
		return l.GetText(KeyTrendingCached) + MiddleDotSeparator + u.Refreshed.Format(StatusClockLayout)
	case u.Source == trending.SourceRemote:
		return l.GetText(KeyTrendingUpdated) + MiddleDotSeparator + u.Refreshed.Format(StatusClockLayout)
	}
	return ""
}
