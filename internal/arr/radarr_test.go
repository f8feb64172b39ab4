package arr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNewRadarrClient(t *testing.T) {
	client := NewRadarrClient("http://test:7878", "test-key", 30*time.Second, &mockLogger{})
	if client == nil {
		t.Fatal("NewRadarrClient() returned nil")
	}

	if client.GetName() != "radarr" {
		t.Errorf("Expected name 'radarr', got '%s'", client.GetName())
	}

	if got := client.MediaURL("inception-2010"); got != "http://test:7878/movie/inception-2010" {
		t.Errorf("Expected deep link 'http://test:7878/movie/inception-2010', got '%s'", got)
	}
}

func TestRadarrClient_GetLibrary_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/movie/" {
			t.Errorf("Expected path '/api/v3/movie/', got '%s'", r.URL.Path)
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Errorf("Expected apikey 'test-key', got '%s'", r.URL.Query().Get("apikey"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":42,"title":"Inception","path":"/movies/Inception","titleSlug":"inception-2010","year":2010,"tmdbId":27205,"imdbId":"tt1375666"}
		]`))
	}))
	defer server.Close()

	client := NewRadarrClient(server.URL, "test-key", 30*time.Second, &mockLogger{})

	entries, err := client.GetLibrary(context.Background())
	if err != nil {
		t.Fatalf("GetLibrary() failed: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	inception := entries[0]
	if inception.ID != 42 || inception.Title != "Inception" || inception.Year != 2010 {
		t.Errorf("Unexpected entry: %+v", inception)
	}
	if inception.TmdbID != "27205" {
		t.Errorf("Expected TmdbID '27205', got '%s'", inception.TmdbID)
	}
	if inception.Kind != "movie" {
		t.Errorf("Expected kind 'movie', got '%s'", inception.Kind)
	}
	if inception.URL != server.URL+"/movie/inception-2010" {
		t.Errorf("Unexpected deep link '%s'", inception.URL)
	}
}

func TestRadarrClient_GetLibrary_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer server.Close()

	client := NewRadarrClient(server.URL, "test-key", 30*time.Second, &mockLogger{})

	if _, err := client.GetLibrary(context.Background()); err == nil {
		t.Error("Expected GetLibrary() to fail on malformed response")
	}
}

func TestRadarrClient_DeleteMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/api/v3/movie/42" {
			t.Errorf("Expected path '/api/v3/movie/42', got '%s'", r.URL.Path)
		}
		if r.URL.Query().Get("deleteFiles") != "true" {
			t.Errorf("Expected deleteFiles=true, got '%s'", r.URL.Query().Get("deleteFiles"))
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewRadarrClient(server.URL, "test-key", 30*time.Second, &mockLogger{})

	if err := client.DeleteMedia(context.Background(), 42); err != nil {
		t.Errorf("DeleteMedia() failed: %v", err)
	}
}

func TestRadarrClient_DeleteMedia_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewRadarrClient(server.URL, "test-key", 30*time.Second, &mockLogger{})

	if err := client.DeleteMedia(context.Background(), 42); err == nil {
		t.Error("Expected DeleteMedia() to fail on 404")
	}
}
