package ui

import (
	"errors"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconLike     = "♥"
	IconComment  = "💬"
	IconShare    = "↗"
	IconViews    = "👁"
	IconImage    = "🖼"
	IconVideo    = "▶"
	IconLive     = "◉"
	IconHot      = "🔥"
	IconNew      = "🆕"
	IconSettings = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	StatusClockLayout  = "15:04"
)

// Layout sizing
const (
	StatusStripHeight float32 = 24
	NavStripHeight    float32 = 16
	PostCardMinWidth  float32 = 300
	AvatarSize        float32 = 40
	ComposeMinHeight  float32 = 72

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Window defaults
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 820
)

// Loading behaviour
const (
	// LoadMoreThreshold is how close to the bottom a scroll must get before
	// the next page is requested
	LoadMoreThreshold float32 = 200
	LoadTimeout               = 15 * time.Second
)

// Chrome backgrounds per tab
const (
	DiscoverBannerURL = "https://picsum.photos/seed/discover/800/300"
)

var errInvalidAvatarURL = errors.New("avatar must be an http(s) URL")
