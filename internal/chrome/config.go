// Package chrome resolves the status bar and navigation bar appearance from a
// declarative configuration and applies it to the host window.
package chrome

import (
	"image/color"
)

// TransparentColor is the sentinel bar color asking for an automatic color
var TransparentColor = color.NRGBA{}

// Background is what is drawn behind the status bar. Implementations are
// SolidBackground and ImageBackground; a nil Background means unknown.
type Background interface {
	isBackground()
}

// SolidBackground is a flat color
type SolidBackground struct {
	Color color.NRGBA
}

// ImageBackground is an image whose palette decides the bar appearance
type ImageBackground struct {
	Source   string
	Fallback color.NRGBA
}

func (SolidBackground) isBackground() {}
func (ImageBackground) isBackground() {}

// Config is rebuilt by the shell on every UI state change
type Config struct {
	Immersive      bool
	StatusBarColor color.NRGBA
	NavBarColor    color.NRGBA

	// Explicit icon contrast; nil leaves the decision to the coordinator
	StatusBarDarkIcons *bool
	NavBarDarkIcons    *bool

	AutoIcons bool
	AutoColor bool

	Background Background

	// Used for automatic values when Background is nil
	FallbackIconColor color.NRGBA
	FallbackBarColor  color.NRGBA
}

// NeedsAutoIcons reports whether the status bar icon contrast is derived
func (c Config) NeedsAutoIcons() bool {
	return c.AutoIcons && c.StatusBarDarkIcons == nil
}

// NeedsAutoColor reports whether the status bar color is derived
func (c Config) NeedsAutoColor() bool {
	return c.AutoColor && c.StatusBarColor == TransparentColor
}

// imageSource returns the image source and fallback when the background is an image
func (c Config) imageSource() (ImageBackground, bool) {
	bg, ok := c.Background.(ImageBackground)
	return bg, ok
}

// Resolved is the final bar appearance
type Resolved struct {
	StatusBarColor     color.NRGBA
	StatusBarDarkIcons bool
	NavBarColor        color.NRGBA
	// NavBarDarkIcons is nil when the platform default applies
	NavBarDarkIcons *bool
}

// WindowChrome is what the OS window controller accepts
type WindowChrome struct {
	DecorFitsSystemWindows bool
	StatusBarColor         color.NRGBA
	NavBarColor            color.NRGBA
	StatusBarLightIcons    bool
	NavBarLightIcons       bool
}

// Window applies bar appearance to the host window
type Window interface {
	Apply(WindowChrome)
}

// Bool returns a pointer to v, for the optional override fields
func Bool(v bool) *bool {
	return &v
}
