package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.Preferences() != app.Preferences() {
		t.Error("Settings preferences should match the app preferences")
	}
}

func TestNicknameAndAvatar(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default values
	if name := settings.GetNickname(); name != DefaultNickname {
		t.Errorf("Expected default nickname %s, got %s", DefaultNickname, name)
	}
	if avatar := settings.GetAvatar(); avatar != DefaultAvatar {
		t.Errorf("Expected default avatar %s, got %s", DefaultAvatar, avatar)
	}

	// Test setting custom values
	settings.SetNickname("weibo_fan")
	settings.SetAvatar("https://img/me.png")
	if name := settings.GetNickname(); name != "weibo_fan" {
		t.Errorf("Expected nickname 'weibo_fan', got %s", name)
	}
	if avatar := settings.GetAvatar(); avatar != "https://img/me.png" {
		t.Errorf("Expected avatar 'https://img/me.png', got %s", avatar)
	}

	// Test empty resets to default
	settings.SetNickname("")
	if name := settings.GetNickname(); name != DefaultNickname {
		t.Errorf("Empty nickname should reset to %s, got %s", DefaultNickname, name)
	}
}

func TestPageSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if size := settings.GetPageSize(); size != DefaultPageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultPageSize, size)
	}

	settings.SetPageSize(20)
	if size := settings.GetPageSize(); size != 20 {
		t.Errorf("Expected page size 20, got %d", size)
	}

	// Test boundary values
	settings.SetPageSize(1)
	if settings.GetPageSize() != MinPageSize {
		t.Errorf("Page size should be clamped to minimum %d", MinPageSize)
	}

	settings.SetPageSize(500)
	if settings.GetPageSize() != MaxPageSize {
		t.Errorf("Page size should be clamped to maximum %d", MaxPageSize)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("zh")
	if lang := settings.GetLanguage(); lang != "zh" {
		t.Errorf("Expected language 'zh', got %s", lang)
	}
}

func TestImmersiveBars(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetImmersiveBars() {
		t.Error("Immersive bars should default to true")
	}

	settings.SetImmersiveBars(false)
	if settings.GetImmersiveBars() {
		t.Error("Expected immersive bars to be disabled")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, lang := range []string{"system", "en", "zh"} {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}
}
