package ui

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/ytget/feed-client/internal/chrome"
)

// Icon tints used by the strips
var (
	LightIconColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	DarkIconColor  = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
)

// StatusStrip draws the status and navigation bars inside the window. It is
// the chrome.Window of the desktop shell; on a phone the same values go to
// the OS bars.
type StatusStrip struct {
	mu   sync.Mutex
	last chrome.WindowChrome

	statusBg   *canvas.Rectangle
	statusText *canvas.Text
	navBg      *canvas.Rectangle
	navHandle  *canvas.Rectangle

	top    *fyne.Container
	bottom *fyne.Container
	now    func() time.Time
}

// NewStatusStrip creates both strips with transparent bars and dark icons
func NewStatusStrip() *StatusStrip {
	s := &StatusStrip{now: time.Now}

	s.statusBg = canvas.NewRectangle(color.Transparent)
	s.statusBg.SetMinSize(fyne.NewSize(0, StatusStripHeight))
	s.statusText = canvas.NewText(s.now().Format(StatusClockLayout), DarkIconColor)
	s.statusText.TextStyle = fyne.TextStyle{Bold: true}
	s.statusText.TextSize = 12
	s.top = container.NewStack(s.statusBg, container.NewHBox(layout.NewSpacer(), s.statusText, layout.NewSpacer()))

	s.navBg = canvas.NewRectangle(color.Transparent)
	s.navBg.SetMinSize(fyne.NewSize(0, NavStripHeight))
	s.navHandle = canvas.NewRectangle(DarkIconColor)
	s.navHandle.SetMinSize(fyne.NewSize(96, 4))
	s.navHandle.CornerRadius = 2
	s.bottom = container.NewStack(s.navBg, container.NewCenter(s.navHandle))
	return s
}

// Apply implements chrome.Window. It must run on the UI goroutine.
func (s *StatusStrip) Apply(c chrome.WindowChrome) {
	s.mu.Lock()
	s.last = c
	s.mu.Unlock()

	s.statusBg.FillColor = c.StatusBarColor
	s.statusText.Color = iconColor(c.StatusBarLightIcons)
	s.statusText.Text = s.now().Format(StatusClockLayout)
	s.navBg.FillColor = c.NavBarColor
	s.navHandle.FillColor = iconColor(c.NavBarLightIcons)

	s.statusBg.Refresh()
	s.statusText.Refresh()
	s.navBg.Refresh()
	s.navHandle.Refresh()
}

// Last returns the most recently applied chrome
func (s *StatusStrip) Last() chrome.WindowChrome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Top is the status bar strip
func (s *StatusStrip) Top() fyne.CanvasObject {
	return s.top
}

// Bottom is the navigation bar strip
func (s *StatusStrip) Bottom() fyne.CanvasObject {
	return s.bottom
}

// StatusIconColor returns the tint currently used for status bar icons
func (s *StatusStrip) StatusIconColor() color.Color {
	return s.statusText.Color
}

func iconColor(light bool) color.Color {
	if light {
		return LightIconColor
	}
	return DarkIconColor
}
