package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/feed-client/internal/model"
)

// NewMessagesView lists conversations with their last message
func NewMessagesView(convs []model.Conversation, localization *Localization) fyne.CanvasObject {
	return widget.NewList(
		func() int { return len(convs) },
		func() fyne.CanvasObject {
			peer := widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
			last := widget.NewLabel("")
			last.Truncation = fyne.TextTruncateEllipsis
			return container.NewBorder(nil, nil, nil, widget.NewLabel(""), container.NewVBox(peer, last))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			c := convs[id]
			row := obj.(*fyne.Container)
			texts := row.Objects[0].(*fyne.Container)
			texts.Objects[0].(*widget.Label).SetText(c.Peer)
			texts.Objects[1].(*widget.Label).SetText(c.LastMessage)
			row.Objects[1].(*widget.Label).SetText(conversationMeta(c, localization))
		},
	)
}

func conversationMeta(c model.Conversation, l *Localization) string {
	if c.HasUnread() {
		return fmt.Sprintf("%s%s%d %s", c.TimeText, MiddleDotSeparator, c.Unread, l.GetText(KeyUnread))
	}
	return c.TimeText
}
