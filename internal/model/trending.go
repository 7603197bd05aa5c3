package model

import "time"

// TrendingTopic is one entry of the hot-search list on the discovery tab
type TrendingTopic struct {
	Rank      int       `json:"rank"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Heat      int64     `json:"heat"`
	Tag       string    `json:"tag,omitempty"` // e.g. "hot", "new"
	FetchedAt time.Time `json:"fetched_at"`
}

// ShortVideo is one entry of the short-video feed
type ShortVideo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Avatar   string `json:"avatar"`
	PlayURL  string `json:"play_url"`
	CoverURL string `json:"cover_url"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Shares   int    `json:"shares"`
	Views    int    `json:"views"`
}

// ToPost maps a short video into the uniform feed representation
func (v ShortVideo) ToPost() Post {
	p := Post{
		ID:           "video_" + v.ID,
		AuthorName:   v.Author,
		AuthorAvatar: v.Avatar,
		Content:      v.Title,
		Likes:        v.Likes,
		Comments:     v.Comments,
		Shares:       v.Shares,
		Views:        v.Views,
	}
	if v.PlayURL != "" {
		// A non-empty play URL always encodes.
		_ = p.SetMedia([]Media{Video{URL: v.PlayURL, CoverURL: v.CoverURL}})
	}
	return p
}
