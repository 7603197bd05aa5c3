package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/go-playground/validator/v10"

	"github.com/ytget/feed-client/internal/config"
)

// ProfileDialog edits the nickname and avatar used for local posts, plus the
// interface preferences
type ProfileDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	nicknameEntry   *widget.Entry
	avatarEntry     *widget.Entry
	languageSelect  *widget.Select
	immersiveCheck  *widget.Check
	languageByLabel map[string]string
}

// NewProfileDialog creates a new profile dialog; onSaved runs after a save
func NewProfileDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *ProfileDialog {
	pd := &ProfileDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	pd.createUI()
	return pd
}

// Show displays the dialog with the current settings
func (pd *ProfileDialog) Show() {
	pd.loadCurrentSettings()
	pd.dialog.Show()
}

// createUI creates the dialog UI
func (pd *ProfileDialog) createUI() {
	l := pd.localization

	pd.nicknameEntry = widget.NewEntry()
	pd.nicknameEntry.SetPlaceHolder(config.DefaultNickname)

	pd.avatarEntry = widget.NewEntry()
	pd.avatarEntry.SetPlaceHolder(config.DefaultAvatar)
	pd.avatarEntry.Validator = validateAvatarURL

	// Language selection, shown by label and stored by code
	options := pd.settings.GetLanguageOptions()
	pd.languageByLabel = make(map[string]string, len(options))
	labels := make([]string, 0, len(options))
	for code, label := range options {
		pd.languageByLabel[label] = code
		labels = append(labels, label)
	}
	sort.Strings(labels)
	pd.languageSelect = widget.NewSelect(labels, nil)

	pd.immersiveCheck = widget.NewCheck(l.GetText(KeyImmersive), nil)

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyNickname), pd.nicknameEntry),
		widget.NewFormItem(l.GetText(KeyAvatarURL), pd.avatarEntry),
		widget.NewFormItem(l.GetText(KeyLanguage), pd.languageSelect),
	)

	pd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeyEditProfile),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		container.NewVBox(form, pd.immersiveCheck),
		pd.onSave,
		pd.window,
	)

	pd.dialog.Resize(fyne.NewSize(380, 320))
}

// loadCurrentSettings loads current settings into the UI
func (pd *ProfileDialog) loadCurrentSettings() {
	pd.nicknameEntry.SetText(pd.settings.GetNickname())
	pd.avatarEntry.SetText(pd.settings.GetAvatar())
	pd.languageSelect.SetSelected(pd.settings.GetLanguageOptions()[pd.settings.GetLanguage()])
	pd.immersiveCheck.SetChecked(pd.settings.GetImmersiveBars())
}

// onSave handles saving the settings
func (pd *ProfileDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	pd.save()
	dialog.ShowInformation(pd.localization.GetText(KeyEditProfile), pd.localization.GetText(KeySettingsSaved), pd.window)
}

// save writes the form into settings. An empty nickname or avatar restores
// the default.
func (pd *ProfileDialog) save() {
	pd.settings.SetNickname(strings.TrimSpace(pd.nicknameEntry.Text))

	avatar := strings.TrimSpace(pd.avatarEntry.Text)
	if validateAvatarURL(avatar) == nil {
		pd.settings.SetAvatar(avatar)
	}

	if code, ok := pd.languageByLabel[pd.languageSelect.Selected]; ok {
		pd.settings.SetLanguage(code)
		pd.localization.SetLanguage(code)
	}
	pd.settings.SetImmersiveBars(pd.immersiveCheck.Checked)

	if pd.onSaved != nil {
		pd.onSaved()
	}
}

// validateAvatarURL accepts an empty value or an http(s) URL
func validateAvatarURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	if err := validate.Var(input, "http_url"); err != nil {
		return errInvalidAvatarURL
	}
	return nil
}

var validate = validator.New()
