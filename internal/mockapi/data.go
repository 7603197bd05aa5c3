package mockapi

import (
	"fmt"
	"time"

	"github.com/ytget/feed-client/internal/model"
)

var authors = []string{"Ada", "Linus", "Grace", "Ken", "Barbara", "Rob", "Margaret", "Dennis"}

var snippets = []string{
	"Morning walk by the river, the light was perfect today.",
	"Finally finished the weekend project. Photos below.",
	"Anyone else think the new coffee place is overrated?",
	"Trying out a new recipe tonight.",
	"Throwback to last summer.",
	"Reading list for the month is ready.",
}

var trendingTitles = []string{
	"Spring festival travel rush", "New phone launch event", "City marathon results",
	"Heatwave warning issued", "Box office weekend record", "Championship final tonight",
	"Metro line 12 opens", "Lunar eclipse photos", "Campus graduation season",
	"Pet adoption day", "Tech conference keynote", "Street food festival",
}

// Base is the fixed clock the mock data is generated from.
var Base = time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)

func picsum(seed string, w, h int) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/%d/%d", seed, w, h)
}

// Posts returns n deterministic remote posts, newest first.
func Posts(n int) []model.Post {
	posts := make([]model.Post, 0, n)
	for i := 0; i < n; i++ {
		author := authors[i%len(authors)]
		created := Base.Add(-time.Duration(i) * 37 * time.Minute)
		p := model.Post{
			ID:           fmt.Sprintf("remote_%d", i+1),
			AuthorName:   author,
			AuthorAvatar: picsum("avatar-"+author, 96, 96),
			CreatedAt:    created.UnixMilli(),
			TimeText:     created.Format("01-02 15:04"),
			Content:      snippets[i%len(snippets)],
			Likes:        (i * 137) % 2000,
			Comments:     (i * 31) % 300,
			Shares:       (i * 7) % 90,
			Views:        (i*4219)%60000 + 100,
			Liked:        i%5 == 0,
		}
		images := make([]model.Media, 0, i%4)
		for j := 0; j < i%4; j++ {
			images = append(images, model.Image{URL: picsum(fmt.Sprintf("post-%d-%d", i+1, j), 600, 400)})
		}
		if len(images) > 0 {
			// Generated URLs are never empty.
			_ = p.SetMedia(images)
		}
		posts = append(posts, p)
	}
	return posts
}

// Videos returns n deterministic short videos.
func Videos(n int) []model.ShortVideo {
	videos := make([]model.ShortVideo, 0, n)
	for i := 0; i < n; i++ {
		author := authors[(i+3)%len(authors)]
		id := fmt.Sprintf("%d", 1000+i)
		videos = append(videos, model.ShortVideo{
			ID:       id,
			Title:    fmt.Sprintf("Clip #%d: %s", i+1, snippets[(i+2)%len(snippets)]),
			Author:   author,
			Avatar:   picsum("avatar-"+author, 96, 96),
			PlayURL:  fmt.Sprintf("https://media.example.com/videos/%s.mp4", id),
			CoverURL: picsum("cover-"+id, 540, 960),
			Likes:    (i * 911) % 50000,
			Comments: (i * 53) % 4000,
			Shares:   (i * 17) % 1500,
			Views:    (i*7919)%900000 + 1000,
		})
	}
	return videos
}

// Topics returns n deterministic trending topics ranked from 1.
func Topics(n int) []model.TrendingTopic {
	topics := make([]model.TrendingTopic, 0, n)
	for i := 0; i < n; i++ {
		title := trendingTitles[i%len(trendingTitles)]
		if i >= len(trendingTitles) {
			title = fmt.Sprintf("%s (%d)", title, i/len(trendingTitles)+1)
		}
		t := model.TrendingTopic{
			Rank:  i + 1,
			Title: title,
			URL:   fmt.Sprintf("https://s.example.com/search?q=%d", i+1),
			Heat:  int64(5_000_000 / (i + 1)),
		}
		switch {
		case i < 3:
			t.Tag = "hot"
		case i%7 == 4:
			t.Tag = "new"
		}
		topics = append(topics, t)
	}
	return topics
}

var lastMessages = []string{
	"See you tomorrow!", "Sent you the photos.", "Haha that's great",
	"Are you coming tonight?", "Thanks a lot", "[Voice message]",
}

// Conversations returns n deterministic message threads, most recent first.
func Conversations(n int) []model.Conversation {
	convs := make([]model.Conversation, 0, n)
	for i := 0; i < n; i++ {
		peer := authors[(i+5)%len(authors)]
		at := Base.Add(-time.Duration(i*i) * 11 * time.Minute)
		convs = append(convs, model.Conversation{
			ID:          fmt.Sprintf("conv_%d", i+1),
			Peer:        peer,
			Avatar:      picsum("avatar-"+peer, 96, 96),
			LastMessage: lastMessages[i%len(lastMessages)],
			TimeText:    at.Format("01-02 15:04"),
			Unread:      (i * 3) % 5,
		})
	}
	return convs
}
