package model

import (
	"fmt"
	"strings"
)

// Post represents a single feed entry. Images and MediaJSON are the two
// encodings of the same attachments; use Media and SetMedia to keep them in
// sync.
type Post struct {
	ID           string
	AuthorName   string
	AuthorAvatar string
	TimeText     string // display timestamp, e.g. "03-14 09:26"
	CreatedAt    int64  // epoch milliseconds
	Content      string
	Likes        int
	Comments     int
	Shares       int
	Views        int
	Liked        bool
	Images       []string // legacy image URL list
	MediaJSON    string   // typed media list, see EncodeMedia
}

// Media returns the typed attachments, falling back to the legacy image list
// when no typed media is stored
func (p *Post) Media() []Media {
	if media := DecodeMedia(p.MediaJSON); len(media) > 0 {
		return media
	}
	return ImagesToMedia(p.Images)
}

// SetMedia stores media in both encodings. On error the post is unchanged.
func (p *Post) SetMedia(media []Media) error {
	encoded, err := EncodeMedia(media)
	if err != nil {
		return err
	}
	p.MediaJSON = encoded
	p.Images = EncodeImages(media)
	return nil
}

// HasVideo reports whether any attachment plays motion
func (p *Post) HasVideo() bool {
	for _, m := range p.Media() {
		switch m.(type) {
		case Video, LivePhoto:
			return true
		}
	}
	return false
}

// GetDisplayCount formats an engagement counter the way the feed shows it
func GetDisplayCount(n int) string {
	switch {
	case n <= 0:
		return "0"
	case n < 10000:
		return fmt.Sprintf("%d", n)
	default:
		s := fmt.Sprintf("%.1f", float64(n)/10000)
		return strings.TrimSuffix(s, ".0") + "w"
	}
}
