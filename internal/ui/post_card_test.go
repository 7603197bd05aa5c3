package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/feed-client/internal/model"
)

func TestMediaSummary(t *testing.T) {
	tests := []struct {
		name  string
		media []model.Media
		want  string
	}{
		{"none", nil, ""},
		{"images", []model.Media{model.Image{URL: "a"}, model.Gif{URL: "b"}}, "🖼 2"},
		{"mixed", []model.Media{model.Image{URL: "a"}, model.Video{URL: "v"}, model.LivePhoto{ImageURL: "i", VideoURL: "v"}}, "🖼 1 · ▶ 1 · ◉ 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mediaSummary(tt.media); got != tt.want {
				t.Errorf("mediaSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCountsLine(t *testing.T) {
	p := model.Post{Likes: 15000, Comments: 3, Shares: 0, Views: 9999}
	want := "♥ 1.5w · 💬 3 · ↗ 0 · 👁 9999"
	if got := countsLine(p); got != want {
		t.Errorf("countsLine() = %q, want %q", got, want)
	}
}

func TestNewPostCard(t *testing.T) {
	test.NewApp()
	p := model.Post{ID: "1", AuthorName: "Ada", Content: "hi", Images: []string{"https://x/1.jpg"}}
	card := NewPostCard(p).(*fyne.Container)
	// header, content, media, counts, separator
	if len(card.Objects) != 5 {
		t.Errorf("Expected 5 rows, got %d", len(card.Objects))
	}

	plain := NewPostCard(model.Post{ID: "2", Content: "text only"}).(*fyne.Container)
	if len(plain.Objects) != 4 {
		t.Errorf("Expected 4 rows without media, got %d", len(plain.Objects))
	}
}
