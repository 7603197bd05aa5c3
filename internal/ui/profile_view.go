package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/feed-client/internal/config"
)

// ProfileView shows the local identity and the number of local posts
type ProfileView struct {
	settings     *config.Settings
	localization *Localization

	nickname  *widget.Label
	avatar    *widget.Hyperlink
	postCount *widget.Label
	editBtn   *widget.Button
	content   fyne.CanvasObject
}

// NewProfileView creates the view. count is the live number of local posts.
func NewProfileView(settings *config.Settings, localization *Localization, count binding.Int, onEdit func()) *ProfileView {
	v := &ProfileView{settings: settings, localization: localization}

	v.nickname = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.nickname.SizeName = theme.SizeNameHeadingText
	v.avatar = widget.NewHyperlink("", nil)
	v.avatar.Alignment = fyne.TextAlignCenter

	v.postCount = widget.NewLabelWithData(binding.IntToStringWithFormat(count, "%d"))
	v.postCount.Alignment = fyne.TextAlignCenter
	postsCaption := widget.NewLabel(localization.GetText(KeyMyPosts))
	postsCaption.Alignment = fyne.TextAlignCenter

	v.editBtn = widget.NewButton(localization.GetText(KeyEditProfile), onEdit)
	v.editBtn.Importance = widget.HighImportance

	v.content = container.NewVBox(
		v.nickname,
		v.avatar,
		widget.NewSeparator(),
		container.NewGridWithColumns(1, v.postCount, postsCaption),
		widget.NewSeparator(),
		v.editBtn,
	)
	v.Reload()
	return v
}

// Content returns the view's root object
func (v *ProfileView) Content() fyne.CanvasObject {
	return v.content
}

// Reload reads nickname and avatar from settings
func (v *ProfileView) Reload() {
	v.nickname.SetText(v.settings.GetNickname())
	avatar := v.settings.GetAvatar()
	v.avatar.SetText(avatar)
	_ = v.avatar.SetURLFromString(avatar)
	v.editBtn.SetText(v.localization.GetText(KeyEditProfile))
}

// Nickname returns the nickname on screen
func (v *ProfileView) Nickname() string {
	return v.nickname.Text
}

// PostCountText returns the bound post counter text
func (v *ProfileView) PostCountText() string {
	return v.postCount.Text
}
