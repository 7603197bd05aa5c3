package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyNickname      = "user_nickname"
	KeyAvatar        = "user_avatar"
	KeyPageSize      = "feed_page_size"
	KeyLanguage      = "app_language"
	KeyImmersiveBars = "immersive_system_bars"
)

// Default values
const (
	DefaultNickname      = "Me"
	DefaultAvatar        = "https://picsum.photos/seed/me/100/100"
	DefaultPageSize      = 10
	DefaultLanguage      = "system"
	DefaultImmersiveBars = true
)

// Page size bounds
const (
	MinPageSize = 5
	MaxPageSize = 50
)

// Settings manages user preferences backed by the app preference store
type Settings struct {
	prefs fyne.Preferences
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{prefs: app.Preferences()}
}

// Preferences exposes the underlying key-value store
func (s *Settings) Preferences() fyne.Preferences {
	return s.prefs
}

// GetNickname returns the display name used for locally authored posts
func (s *Settings) GetNickname() string {
	return s.prefs.StringWithFallback(KeyNickname, DefaultNickname)
}

// SetNickname sets the display name; empty resets to the default
func (s *Settings) SetNickname(name string) {
	if name == "" {
		s.prefs.RemoveValue(KeyNickname)
		return
	}
	s.prefs.SetString(KeyNickname, name)
}

// GetAvatar returns the avatar URL used for locally authored posts
func (s *Settings) GetAvatar() string {
	return s.prefs.StringWithFallback(KeyAvatar, DefaultAvatar)
}

// SetAvatar sets the avatar URL; empty resets to the default
func (s *Settings) SetAvatar(url string) {
	if url == "" {
		s.prefs.RemoveValue(KeyAvatar)
		return
	}
	s.prefs.SetString(KeyAvatar, url)
}

// GetPageSize returns the number of posts requested per page
func (s *Settings) GetPageSize() int {
	value := s.prefs.Int(KeyPageSize)
	if value <= 0 {
		s.SetPageSize(DefaultPageSize)
		return DefaultPageSize
	}
	return value
}

// SetPageSize sets the page size, clamped to [MinPageSize, MaxPageSize]
func (s *Settings) SetPageSize(size int) {
	if size < MinPageSize {
		size = MinPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	s.prefs.SetInt(KeyPageSize, size)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.prefs.String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.prefs.SetString(KeyLanguage, lang)
}

// GetImmersiveBars returns whether content draws under the system bars
func (s *Settings) GetImmersiveBars() bool {
	return s.prefs.BoolWithFallback(KeyImmersiveBars, DefaultImmersiveBars)
}

// SetImmersiveBars sets whether content draws under the system bars
func (s *Settings) SetImmersiveBars(immersive bool) {
	s.prefs.SetBool(KeyImmersiveBars, immersive)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"zh":     "中文",
	}
}
