package model

import (
	"reflect"
	"testing"
)

func TestPost_MediaFallsBackToImages(t *testing.T) {
	post := &Post{Images: []string{"https://img/1.jpg", "", "https://img/2.jpg"}}

	result := post.Media()
	expected := []Media{Image{URL: "https://img/1.jpg"}, Image{URL: "https://img/2.jpg"}}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Media() = %#v, expected %#v", result, expected)
	}
}

func TestPost_MediaPrefersTypedList(t *testing.T) {
	post := &Post{
		Images:    []string{"https://legacy.jpg"},
		MediaJSON: `[{"type":"video","url":"https://v/1.mp4"}]`,
	}

	result := post.Media()
	expected := []Media{Video{URL: "https://v/1.mp4"}}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Media() = %#v, expected %#v", result, expected)
	}
	if !post.HasVideo() {
		t.Error("Expected HasVideo() to be true")
	}
}

func TestPost_SetMediaKeepsEncodingsConsistent(t *testing.T) {
	post := &Post{}
	media := []Media{
		Gif{URL: "https://img/1.gif"},
		Video{URL: "https://v/1.mp4"},
		Image{URL: "https://img/2.jpg"},
	}

	if err := post.SetMedia(media); err != nil {
		t.Fatalf("SetMedia() error: %v", err)
	}

	if !reflect.DeepEqual(post.Images, EncodeImages(media)) {
		t.Errorf("Images = %v, expected %v", post.Images, EncodeImages(media))
	}
	if !reflect.DeepEqual(post.Media(), media) {
		t.Errorf("Media() = %#v, expected %#v", post.Media(), media)
	}
}

func TestPost_SetMediaErrorLeavesPostUnchanged(t *testing.T) {
	post := &Post{Images: []string{"https://img/1.jpg"}}

	if err := post.SetMedia([]Media{Image{}}); err == nil {
		t.Fatal("Expected error for empty image url")
	}
	if post.MediaJSON != "" || len(post.Images) != 1 {
		t.Errorf("Post was modified on error: %+v", post)
	}
}

func TestGetDisplayCount(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{-3, "0"},
		{0, "0"},
		{999, "999"},
		{10000, "1w"},
		{15300, "1.5w"},
	}

	for _, test := range tests {
		if result := GetDisplayCount(test.n); result != test.expected {
			t.Errorf("GetDisplayCount(%d) = %s, expected %s", test.n, result, test.expected)
		}
	}
}

func TestShortVideo_ToPost(t *testing.T) {
	video := ShortVideo{ID: "42", Title: "cat", Author: "a", PlayURL: "https://v/42.mp4", CoverURL: "https://c/42.jpg", Likes: 7}

	post := video.ToPost()
	if post.ID != "video_42" {
		t.Errorf("Expected ID 'video_42', got '%s'", post.ID)
	}
	expected := []Media{Video{URL: "https://v/42.mp4", CoverURL: "https://c/42.jpg"}}
	if !reflect.DeepEqual(post.Media(), expected) {
		t.Errorf("Media() = %#v, expected %#v", post.Media(), expected)
	}
	if len(post.Images) != 0 {
		t.Errorf("Expected no legacy images, got %v", post.Images)
	}
}
