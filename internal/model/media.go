package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MediaKind identifies a media variant in its serialized form
type MediaKind string

const (
	MediaKindImage     MediaKind = "image"
	MediaKindGif       MediaKind = "gif"
	MediaKindVideo     MediaKind = "video"
	MediaKindLivePhoto MediaKind = "live_photo"
)

// Media is one attachment of a post. The set of implementations is closed:
// Image, Gif, Video and LivePhoto.
type Media interface {
	Kind() MediaKind
	isMedia()
}

// Image is a still picture
type Image struct {
	URL string
}

// Gif is an animated picture
type Gif struct {
	URL string
}

// Video is a clip with an optional cover frame
type Video struct {
	URL      string
	CoverURL string
}

// LivePhoto pairs a still picture with a short motion clip
type LivePhoto struct {
	ImageURL string
	VideoURL string
}

func (Image) Kind() MediaKind     { return MediaKindImage }
func (Gif) Kind() MediaKind       { return MediaKindGif }
func (Video) Kind() MediaKind     { return MediaKindVideo }
func (LivePhoto) Kind() MediaKind { return MediaKindLivePhoto }

func (Image) isMedia()     {}
func (Gif) isMedia()       {}
func (Video) isMedia()     {}
func (LivePhoto) isMedia() {}

// ErrEmptyMediaURL is returned when a media entry is missing a required URL
var ErrEmptyMediaURL = errors.New("media entry has an empty url")

// mediaEntry is the tagged wire form of a Media value
type mediaEntry struct {
	Type  MediaKind `json:"type"`
	URL   string    `json:"url,omitempty"`
	Cover string    `json:"cover,omitempty"`
	Image string    `json:"image,omitempty"`
	Video string    `json:"video,omitempty"`
}

// EncodeMedia serializes media into its tagged JSON list form
func EncodeMedia(media []Media) (string, error) {
	entries := make([]mediaEntry, 0, len(media))
	for i, m := range media {
		var entry mediaEntry
		switch v := m.(type) {
		case Image:
			entry = mediaEntry{Type: MediaKindImage, URL: v.URL}
		case Gif:
			entry = mediaEntry{Type: MediaKindGif, URL: v.URL}
		case Video:
			entry = mediaEntry{Type: MediaKindVideo, URL: v.URL, Cover: v.CoverURL}
		case LivePhoto:
			if v.ImageURL == "" || v.VideoURL == "" {
				return "", fmt.Errorf("media %d: %w", i, ErrEmptyMediaURL)
			}
			entry = mediaEntry{Type: MediaKindLivePhoto, Image: v.ImageURL, Video: v.VideoURL}
		default:
			return "", fmt.Errorf("media %d: unsupported type %T", i, m)
		}
		if entry.Type != MediaKindLivePhoto && entry.URL == "" {
			return "", fmt.Errorf("media %d: %w", i, ErrEmptyMediaURL)
		}
		entries = append(entries, entry)
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return "", fmt.Errorf("encode media: %w", err)
	}
	return string(data), nil
}

// DecodeMedia parses the tagged JSON list form. Entries that are malformed or
// of an unknown type are skipped; an unparsable document yields nil.
func DecodeMedia(data string) []Media {
	if data == "" {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil
	}

	media := make([]Media, 0, len(raw))
	for _, item := range raw {
		var entry mediaEntry
		if err := json.Unmarshal(item, &entry); err != nil {
			continue
		}
		if m, ok := entry.toMedia(); ok {
			media = append(media, m)
		}
	}
	return media
}

func (e mediaEntry) toMedia() (Media, bool) {
	switch e.Type {
	case MediaKindImage:
		return Image{URL: e.URL}, e.URL != ""
	case MediaKindGif:
		return Gif{URL: e.URL}, e.URL != ""
	case MediaKindVideo:
		return Video{URL: e.URL, CoverURL: e.Cover}, e.URL != ""
	case MediaKindLivePhoto:
		return LivePhoto{ImageURL: e.Image, VideoURL: e.Video}, e.Image != "" && e.Video != ""
	default:
		return nil, false
	}
}

// EncodeImages returns the legacy image list: Image and Gif URLs in order
func EncodeImages(media []Media) []string {
	images := make([]string, 0, len(media))
	for _, m := range media {
		switch v := m.(type) {
		case Image:
			images = append(images, v.URL)
		case Gif:
			images = append(images, v.URL)
		}
	}
	return images
}

// ImagesToMedia wraps legacy image URLs as Image variants
func ImagesToMedia(images []string) []Media {
	media := make([]Media, 0, len(images))
	for _, url := range images {
		if url == "" {
			continue
		}
		media = append(media, Image{URL: url})
	}
	return media
}

// CoverURL returns the best still frame for a media entry
func CoverURL(m Media) string {
	switch v := m.(type) {
	case Image:
		return v.URL
	case Gif:
		return v.URL
	case Video:
		return v.CoverURL
	case LivePhoto:
		return v.ImageURL
	default:
		return ""
	}
}
