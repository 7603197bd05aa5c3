package ui

import "testing"

func TestLocalization(t *testing.T) {
	l := NewLocalization()
	if got := l.GetText(KeyTabHome); got != "Home" {
		t.Errorf("Expected Home, got %s", got)
	}

	l.SetLanguage("zh")
	if l.GetCurrentLanguage() != "zh" {
		t.Fatalf("Expected zh, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyTabHome); got != "首页" {
		t.Errorf("Expected 首页, got %s", got)
	}

	l.SetLanguage("fr")
	if l.GetCurrentLanguage() != "zh" {
		t.Errorf("Expected unsupported language to be ignored, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestLocalizationCoversAllKeys(t *testing.T) {
	l := NewLocalization()
	for key := range l.texts["en"] {
		if _, ok := l.texts["zh"][key]; !ok {
			t.Errorf("Missing zh text for %s", key)
		}
	}
}
