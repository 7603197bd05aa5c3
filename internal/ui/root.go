package ui

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/feed-client/internal/chrome"
	"github.com/ytget/feed-client/internal/config"
	"github.com/ytget/feed-client/internal/localfeed"
	"github.com/ytget/feed-client/internal/logging"
	"github.com/ytget/feed-client/internal/model"
	"github.com/ytget/feed-client/internal/paging"
	"github.com/ytget/feed-client/internal/trending"
)

// Tab is a bottom navigation destination
type Tab int

const (
	TabHome Tab = iota
	TabVideo
	TabDiscover
	TabMessages
	TabProfile
)

// String returns the localization key of the tab title
func (t Tab) String() string {
	switch t {
	case TabHome:
		return KeyTabHome
	case TabVideo:
		return KeyTabVideo
	case TabDiscover:
		return KeyTabDiscover
	case TabMessages:
		return KeyTabMessages
	case TabProfile:
		return KeyTabProfile
	default:
		return "Unknown"
	}
}

// Deps are the services the shell is built from
type Deps struct {
	Settings      *config.Settings
	Store         *localfeed.Store
	HomePager     *paging.Pager
	VideoPager    *paging.Pager
	Trending      *trending.Service
	Chrome        *chrome.Coordinator
	Strip         *StatusStrip
	Conversations []model.Conversation
	Logger        *zap.Logger
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	deps         Deps
	localization *Localization
	logger       *zap.Logger

	tabs     *container.AppTabs
	home     *FeedView
	video    *FeedView
	discover *DiscoverView
	profile  *ProfileView

	composeEntry *widget.Entry
	publishBtn   *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, deps Deps) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(deps.Settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		deps:         deps,
		localization: localization,
		logger:       logging.OrNop(deps.Logger).Named("ui"),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	// Compose row on top of the home feed
	ui.composeEntry = widget.NewMultiLineEntry()
	ui.composeEntry.SetPlaceHolder(l.GetText(KeyComposeHint))
	ui.composeEntry.SetMinRowsVisible(2)
	ui.publishBtn = widget.NewButton(l.GetText(KeyPublish), ui.onPublish)
	ui.publishBtn.Importance = widget.HighImportance
	compose := container.NewBorder(nil, nil, nil, ui.publishBtn, ui.composeEntry)

	ui.home = NewFeedView(ui.deps.HomePager, l, compose, ui.deps.Logger)
	ui.video = NewFeedView(ui.deps.VideoPager, l, nil, ui.deps.Logger)
	ui.discover = NewDiscoverView(ui.deps.Trending, l, ui.deps.Logger)
	ui.profile = NewProfileView(ui.deps.Settings, l, ui.deps.Store.CountBinding(), ui.onEditProfile)

	ui.tabs = container.NewAppTabs(
		container.NewTabItemWithIcon(l.GetText(KeyTabHome), theme.HomeIcon(), ui.home.Content()),
		container.NewTabItemWithIcon(l.GetText(KeyTabVideo), theme.MediaVideoIcon(), ui.video.Content()),
		container.NewTabItemWithIcon(l.GetText(KeyTabDiscover), theme.SearchIcon(), ui.discover.Content()),
		container.NewTabItemWithIcon(l.GetText(KeyTabMessages), theme.MailComposeIcon(), NewMessagesView(ui.deps.Conversations, l)),
		container.NewTabItemWithIcon(l.GetText(KeyTabProfile), theme.AccountIcon(), ui.profile.Content()),
	)
	ui.tabs.SetTabLocation(container.TabLocationBottom)
	ui.tabs.OnSelected = func(*container.TabItem) { ui.applyChrome() }

	content := container.NewBorder(ui.deps.Strip.Top(), ui.deps.Strip.Bottom(), nil, nil, ui.tabs)
	ui.window.SetContent(content)

	// Posts are only appended from the compose box, on the UI goroutine.
	ui.deps.Store.OnChange(func([]model.Post) { ui.onLocalFeedChanged() })
	// The OS may reset the bars while the app is in the background.
	fyne.CurrentApp().Lifecycle().SetOnEnteredForeground(ui.deps.Chrome.Reapply)

	ui.home.Start()
	ui.video.Start()
	ui.discover.Start()
	ui.applyChrome()

	ui.logger.Debug("ui setup completed")
}

// CurrentTab returns the selected tab
func (ui *RootUI) CurrentTab() Tab {
	return Tab(ui.tabs.SelectedIndex())
}

// SelectTab switches the bottom navigation
func (ui *RootUI) SelectTab(t Tab) {
	ui.tabs.SelectIndex(int(t))
	ui.applyChrome()
}

// applyChrome pushes the chrome config of the current tab to the coordinator
func (ui *RootUI) applyChrome() {
	s := ui.deps.Settings
	ui.deps.Chrome.Update(ChromeConfigFor(ui.CurrentTab(), s.GetImmersiveBars(), s.GetAvatar()))
}

// ChromeConfigFor builds the bar configuration for a tab. Home and messages
// use light bars with derived icon contrast, video is dark, and discovery and
// profile tint the bars from their header image.
func ChromeConfigFor(t Tab, immersive bool, avatar string) chrome.Config {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{A: 255}

	switch t {
	case TabVideo:
		return chrome.Config{
			Immersive:          immersive,
			StatusBarColor:     black,
			NavBarColor:        black,
			StatusBarDarkIcons: chrome.Bool(false),
			NavBarDarkIcons:    chrome.Bool(false),
			Background:         chrome.SolidBackground{Color: black},
		}
	case TabDiscover:
		return imageChrome(immersive, DiscoverBannerURL)
	case TabProfile:
		return imageChrome(immersive, avatar)
	case TabMessages:
		return chrome.Config{
			Immersive:      immersive,
			StatusBarColor: LightSurface,
			NavBarColor:    LightSurface,
			AutoIcons:      true,
			Background:     chrome.SolidBackground{Color: LightSurface},
		}
	default:
		return chrome.Config{
			Immersive:      immersive,
			StatusBarColor: white,
			NavBarColor:    white,
			AutoIcons:      true,
			Background:     chrome.SolidBackground{Color: white},
		}
	}
}

func imageChrome(immersive bool, source string) chrome.Config {
	return chrome.Config{
		Immersive:         immersive,
		StatusBarColor:    chrome.TransparentColor,
		NavBarColor:       LightSurface,
		AutoIcons:         true,
		AutoColor:         true,
		Background:        chrome.ImageBackground{Source: source, Fallback: BrandOrange},
		FallbackIconColor: LightIconColor,
		FallbackBarColor:  BrandOrange,
	}
}

// onPublish appends the composed text to the local feed and reloads home
func (ui *RootUI) onPublish() {
	text := strings.TrimSpace(ui.composeEntry.Text)
	if text == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyPublish), ui.localization.GetText(KeyEmptyPost), ui.window)
		return
	}
	post, ok := ui.deps.Store.Append(text, nil)
	if !ok {
		dialog.ShowInformation(ui.localization.GetText(KeyPublish), ui.localization.GetText(KeyPublishFailed), ui.window)
		return
	}
	ui.logger.Info("post published", zap.String("id", post.ID))
	ui.composeEntry.SetText("")
}

// onLocalFeedChanged shows the home feed from the top, newest local post first
func (ui *RootUI) onLocalFeedChanged() {
	ui.SelectTab(TabHome)
	ui.home.Reload()
}

// onEditProfile shows the profile dialog
func (ui *RootUI) onEditProfile() {
	NewProfileDialog(ui.deps.Settings, ui.localization, ui.window, ui.onProfileSaved).Show()
}

func (ui *RootUI) onProfileSaved() {
	ui.profile.Reload()
	ui.refreshUITexts()
	ui.home.Invalidate()
	ui.applyChrome()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization
	ui.window.SetTitle(l.GetText(KeyAppTitle))
	for i, item := range ui.tabs.Items {
		item.Text = l.GetText(Tab(i).String())
	}
	ui.tabs.Refresh()
	ui.composeEntry.SetPlaceHolder(l.GetText(KeyComposeHint))
	ui.publishBtn.SetText(l.GetText(KeyPublish))
}
