package palette

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func encodePNG(t *testing.T, c color.Color) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(c, 8, 8)); err != nil {
		t.Fatalf("png.Encode() error: %v", err)
	}
	return buf.Bytes()
}

func TestHTTPDecoder_FetchesURL(t *testing.T) {
	data := encodePNG(t, color.NRGBA{R: 0, G: 128, B: 255, A: 255})
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer server.Close()

	decoder := NewHTTPDecoder(0, "feed-client-test")
	img, err := decoder.Decode(context.Background(), server.URL+"/a.png")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("Expected 8px wide image, got %d", img.Bounds().Dx())
	}
	if gotUA != "feed-client-test" {
		t.Errorf("Expected user agent header, got %q", gotUA)
	}
}

func TestHTTPDecoder_Errors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("not an image"))
	}))
	defer server.Close()

	decoder := NewHTTPDecoder(0, "")
	for _, source := range []string{"", server.URL + "/missing.png", server.URL + "/garbage.png", "/no/such/file.png"} {
		if _, err := decoder.Decode(context.Background(), source); err == nil {
			t.Errorf("Decode(%q) expected an error", source)
		}
	}
}

func TestHTTPDecoder_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.png")
	if err := os.WriteFile(path, encodePNG(t, color.White), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	img, err := NewHTTPDecoder(0, "").Decode(context.Background(), "file://"+path)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if img.Bounds().Dy() != 8 {
		t.Errorf("Expected 8px tall image, got %d", img.Bounds().Dy())
	}
}
