package elevenlabs_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartmeet/pkg/elevenlabs"
)

func TestSynthesize(t *testing.T) {
	audio := []byte("fake-mp3-bytes")

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/text-to-speech/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("xi-api-key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write(audio)
	}))
	defer ts.Close()

	client := elevenlabs.NewClient("test-key", elevenlabs.WithBaseURL(ts.URL))

	got, err := client.Synthesize(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != base64.StdEncoding.EncodeToString(audio) {
		t.Errorf("unexpected audio payload: %q", got)
	}
}

func TestSynthesizeEmptyText(t *testing.T) {
	client := elevenlabs.NewClient("test-key")

	got, err := client.Synthesize(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty audio for empty text, got %q", got)
	}
}

func TestSynthesizeAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"detail":"quota exceeded"}`))
	}))
	defer ts.Close()

	client := elevenlabs.NewClient("test-key", elevenlabs.WithBaseURL(ts.URL))

	_, err := client.Synthesize(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error on API failure")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("expected status code in error, got %v", err)
	}
}
