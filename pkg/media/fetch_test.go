package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/clueboard/pkg/httputil"
)

func TestDataURIPassthrough(t *testing.T) {
	f := NewFetcher(nil)
	src := "data:image/png;base64,AAA"
	got, err := f.DataURI(context.Background(), src)
	if err != nil {
		t.Fatalf("DataURI: %v", err)
	}
	if got != src {
		t.Errorf("DataURI = %q, want unchanged input", got)
	}
}

func TestDataURIFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	payload := []byte{0x89, 'P', 'N', 'G'}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatal(err)
	}

	f := NewFetcher(nil)
	got, err := f.DataURI(context.Background(), path)
	if err != nil {
		t.Fatalf("DataURI: %v", err)
	}

	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
	if got != want {
		t.Errorf("DataURI = %q, want %q", got, want)
	}
	if Classify(got) != TypeImage {
		t.Errorf("Classify(result) = %q, want image", Classify(got))
	}
}

func TestDataURIFromFileMissing(t *testing.T) {
	f := NewFetcher(nil)
	if _, err := f.DataURI(context.Background(), filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDataURIFromURL(t *testing.T) {
	payload := []byte("fake-jpeg-bytes")
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "image/jpeg; charset=binary")
		w.Write(payload)
	}))
	defer srv.Close()

	cache, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	f := NewFetcher(cache)

	want := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(payload)
	for i := range 2 {
		got, err := f.DataURI(context.Background(), srv.URL+"/photo.jpg")
		if err != nil {
			t.Fatalf("DataURI (call %d): %v", i+1, err)
		}
		if got != want {
			t.Errorf("DataURI = %q, want %q", got, want)
		}
	}
	// Second call is served from cache.
	if hits != 1 {
		t.Errorf("server hits = %d, want 1", hits)
	}
}

func TestDataURIFromURLRetriesServerErrors(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits == 1 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		fmt.Fprint(w, "notes")
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	f.retryDelay = time.Millisecond
	got, err := f.DataURI(context.Background(), srv.URL+"/song.mp3")
	if err != nil {
		t.Fatalf("DataURI: %v", err)
	}
	if !strings.HasPrefix(got, "data:audio/mpeg;base64,") {
		t.Errorf("DataURI = %q, want audio/mpeg data URI", got)
	}
	if hits != 2 {
		t.Errorf("server hits = %d, want 2", hits)
	}
}

func TestDataURIFromURLClientErrorAborts(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	if _, err := f.DataURI(context.Background(), srv.URL+"/gone.png"); err == nil {
		t.Fatal("expected error for 404")
	}
	// 4xx is not transient; it must not retry.
	if hits != 1 {
		t.Errorf("server hits = %d, want 1", hits)
	}
}
