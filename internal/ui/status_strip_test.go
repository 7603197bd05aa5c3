package ui

import (
	"context"
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/feed-client/internal/chrome"
	"github.com/ytget/feed-client/internal/palette"
)

type fixedResolver struct {
	result palette.Result
}

func (r fixedResolver) Resolve(ctx context.Context, source string, fallback color.Color) palette.Result {
	return r.result
}

func TestStatusStripApply(t *testing.T) {
	test.NewApp()
	s := NewStatusStrip()

	red := color.NRGBA{R: 200, A: 255}
	s.Apply(chrome.WindowChrome{StatusBarColor: red, StatusBarLightIcons: true})

	if s.Last().StatusBarColor != red {
		t.Errorf("Expected last chrome to be recorded, got %+v", s.Last())
	}
	if s.statusBg.FillColor != red {
		t.Errorf("Expected status background %v, got %v", red, s.statusBg.FillColor)
	}
	if s.StatusIconColor() != LightIconColor {
		t.Errorf("Expected light icons, got %v", s.StatusIconColor())
	}
	if s.navHandle.FillColor != DarkIconColor {
		t.Errorf("Expected dark nav handle, got %v", s.navHandle.FillColor)
	}
}

func TestChromeForTabsThroughCoordinator(t *testing.T) {
	test.NewApp()
	strip := NewStatusStrip()
	purple := color.NRGBA{R: 90, G: 20, B: 140, A: 255}
	coord := chrome.NewCoordinator(fixedResolver{palette.Result{Color: purple, DarkIcons: false, FromImage: true}}, strip, nil, nil)
	defer coord.Close()

	coord.Update(ChromeConfigFor(TabHome, true, ""))
	home := strip.Last()
	if home.StatusBarLightIcons {
		t.Error("Expected dark icons on the white home bar")
	}
	if home.DecorFitsSystemWindows {
		t.Error("Expected immersive layout")
	}

	coord.Update(ChromeConfigFor(TabVideo, false, ""))
	video := strip.Last()
	if !video.StatusBarLightIcons || !video.NavBarLightIcons {
		t.Errorf("Expected light icons on video, got %+v", video)
	}
	if !video.DecorFitsSystemWindows {
		t.Error("Expected non-immersive layout")
	}

	coord.Update(ChromeConfigFor(TabDiscover, true, ""))
	waitFor(t, func() bool { return strip.Last().StatusBarColor == purple })
	if !strip.Last().StatusBarLightIcons {
		t.Error("Expected light icons from the palette result")
	}
}

func TestChromeConfigFor(t *testing.T) {
	avatar := "https://example.com/me.png"

	profile := ChromeConfigFor(TabProfile, true, avatar)
	bg, ok := profile.Background.(chrome.ImageBackground)
	if !ok || bg.Source != avatar {
		t.Errorf("Expected avatar image background, got %#v", profile.Background)
	}
	if !profile.NeedsAutoColor() || !profile.NeedsAutoIcons() {
		t.Error("Expected profile bars derived from the image")
	}

	discover := ChromeConfigFor(TabDiscover, false, avatar)
	if bg, ok := discover.Background.(chrome.ImageBackground); !ok || bg.Source != DiscoverBannerURL {
		t.Errorf("Expected banner background, got %#v", discover.Background)
	}

	video := ChromeConfigFor(TabVideo, true, avatar)
	if video.StatusBarDarkIcons == nil || *video.StatusBarDarkIcons {
		t.Error("Expected explicit light icons on video")
	}

	home := ChromeConfigFor(TabHome, true, avatar)
	if !home.NeedsAutoIcons() || home.NeedsAutoColor() {
		t.Errorf("Expected home to derive icons only, got %+v", home)
	}
}
