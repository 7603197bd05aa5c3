package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/feed-client/internal/model"
)

// NewPostCard renders one feed post
func NewPostCard(p model.Post) fyne.CanvasObject {
	author := widget.NewLabelWithStyle(p.AuthorName, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	meta := widget.NewLabel(p.TimeText)
	meta.Importance = widget.LowImportance

	content := widget.NewLabel(p.Content)
	content.Wrapping = fyne.TextWrapWord

	rows := []fyne.CanvasObject{
		container.NewHBox(author, meta),
		content,
	}
	if summary := mediaSummary(p.Media()); summary != "" {
		media := widget.NewLabel(summary)
		media.Importance = widget.LowImportance
		rows = append(rows, media)
	}

	counts := widget.NewLabel(countsLine(p))
	if p.Liked {
		counts.Importance = widget.DangerImportance
	}
	rows = append(rows, counts, widget.NewSeparator())
	return container.NewVBox(rows...)
}

// mediaSummary describes attachments compactly, e.g. "🖼 3 · ▶ 1"
func mediaSummary(media []model.Media) string {
	var images, videos, lives int
	for _, m := range media {
		switch m.(type) {
		case model.Image, model.Gif:
			images++
		case model.Video:
			videos++
		case model.LivePhoto:
			lives++
		}
	}
	var parts []string
	if images > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", IconImage, images))
	}
	if videos > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", IconVideo, videos))
	}
	if lives > 0 {
		parts = append(parts, fmt.Sprintf("%s %d", IconLive, lives))
	}
	return strings.Join(parts, MiddleDotSeparator)
}

// countsLine formats the engagement counters of a post
func countsLine(p model.Post) string {
	return strings.Join([]string{
		IconLike + " " + model.GetDisplayCount(p.Likes),
		IconComment + " " + model.GetDisplayCount(p.Comments),
		IconShare + " " + model.GetDisplayCount(p.Shares),
		IconViews + " " + model.GetDisplayCount(p.Views),
	}, MiddleDotSeparator)
}
