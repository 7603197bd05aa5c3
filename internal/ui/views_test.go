package ui

import (
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/feed-client/internal/config"
	"github.com/ytget/feed-client/internal/model"
	"github.com/ytget/feed-client/internal/trending"
)

func TestTopicBadge(t *testing.T) {
	tests := []struct {
		topic model.TrendingTopic
		want  string
	}{
		{model.TrendingTopic{Tag: "hot", Heat: 100}, IconHot},
		{model.TrendingTopic{Tag: "new"}, IconNew},
		{model.TrendingTopic{Heat: 25000}, "2.5w"},
		{model.TrendingTopic{}, ""},
	}
	for _, tt := range tests {
		if got := topicBadge(tt.topic); got != tt.want {
			t.Errorf("topicBadge(%+v) = %q, want %q", tt.topic, got, tt.want)
		}
	}
}

func TestStatusText(t *testing.T) {
	l := NewLocalization()
	at := time.Date(2024, 3, 14, 9, 26, 0, 0, time.UTC)

	if got := statusText(trending.Update{}, l); got != "" {
		t.Errorf("Expected empty status, got %q", got)
	}
	if got := statusText(trending.Update{Source: trending.SourceCache, Refreshed: at}, l); got != "Showing saved list · 09:26" {
		t.Errorf("Unexpected cache status %q", got)
	}
	if got := statusText(trending.Update{Source: trending.SourceRemote, Refreshed: at}, l); got != "Updated · 09:26" {
		t.Errorf("Unexpected remote status %q", got)
	}
	failed := trending.Update{Source: trending.SourceCache, Refreshed: at, Err: errors.New("offline")}
	if got := statusText(failed, l); got != "Could not update the list" {
		t.Errorf("Unexpected failure status %q", got)
	}
}

func TestConversationMeta(t *testing.T) {
	l := NewLocalization()
	read := model.Conversation{TimeText: "09:26"}
	if got := conversationMeta(read, l); got != "09:26" {
		t.Errorf("Expected time only, got %q", got)
	}
	unread := model.Conversation{TimeText: "09:26", Unread: 3}
	if got := conversationMeta(unread, l); got != "09:26 · 3 unread" {
		t.Errorf("Expected unread badge, got %q", got)
	}
}

func TestProfileViewReflectsSettingsAndCount(t *testing.T) {
	a := test.NewApp()
	settings := config.NewSettings(a)
	count := binding.NewInt()

	v := NewProfileView(settings, NewLocalization(), count, nil)
	if v.Nickname() != config.DefaultNickname {
		t.Errorf("Expected default nickname, got %q", v.Nickname())
	}

	settings.SetNickname("Ada")
	v.Reload()
	if v.Nickname() != "Ada" {
		t.Errorf("Expected Ada, got %q", v.Nickname())
	}

	_ = count.Set(4)
	waitFor(t, func() bool { return v.PostCountText() == "4" })
}
