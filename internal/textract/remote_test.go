package textract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func newTestRemote(t *testing.T, handler http.Handler) (*RemoteClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewRemoteClient(srv.URL, "test-key", []string{"high_quality"}, 5*time.Second)
	c.pollEvery = 10 * time.Millisecond
	return c, srv
}

func TestRemoteClient_UploadPollRetrieve(t *testing.T) {
	var polls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/whisper", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("unstract-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if got := r.URL.Query().Get("mode"); got != "high_quality" {
			t.Errorf("mode = %q", got)
		}
		if got := r.URL.Query().Get("output_mode"); got != "layout_preserving" {
			t.Errorf("output_mode = %q", got)
		}
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{"whisper_hash": "abc123", "status": "processing"})
	})
	mux.HandleFunc("/whisper-status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if got := r.URL.Query().Get("whisper_hash"); got != "abc123" {
			t.Errorf("whisper_hash = %q", got)
		}
		status := "processing"
		if polls.Add(1) >= 2 {
			status = "processed"
		}
		json.NewEncoder(w).Encode(map[string]string{"status": status})
	})
	mux.HandleFunc("/whisper-retrieve", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"result_text": "RECOVERED LAYOUT TEXT"})
	})

	c, _ := newTestRemote(t, mux)

	res, err := c.Extract(context.Background(), Document{Filename: "q.pdf", Data: []byte("pdf")})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Text != "RECOVERED LAYOUT TEXT" {
		t.Errorf("text = %q", res.Text)
	}
	if res.Backend != "remote" || res.Mode != "high_quality" {
		t.Errorf("backend/mode = %q/%q", res.Backend, res.Mode)
	}
	if polls.Load() < 2 {
		t.Errorf("expected at least 2 status polls, got %d", polls.Load())
	}
}

func TestRemoteClient_FallsToNextMode(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/whisper", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.URL.Query().Get("mode") == "high_quality" {
			http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"whisper_hash": "h2"})
	})
	mux.HandleFunc("/whisper-status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "processed"})
	})
	mux.HandleFunc("/whisper-retrieve", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"result_text": "from low cost"})
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := NewRemoteClient(srv.URL, "k", []string{"high_quality", "low_cost"}, 5*time.Second)
	c.pollEvery = 10 * time.Millisecond

	res, err := c.Extract(context.Background(), Document{Filename: "q.pdf", Data: []byte("pdf")})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if res.Mode != "low_cost" {
		t.Errorf("mode = %q, want low_cost", res.Mode)
	}
}

func TestRemoteClient_ProcessingError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/whisper", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"whisper_hash": "h"})
	})
	mux.HandleFunc("/whisper-status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": "corrupt file"})
	})

	c, _ := newTestRemote(t, mux)

	_, err := c.Extract(context.Background(), Document{Filename: "q.pdf", Data: []byte("pdf")})
	if err == nil || !strings.Contains(err.Error(), "corrupt file") {
		t.Fatalf("err = %v, want processing error", err)
	}
}

func TestRemoteClient_EmptyResultIsError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/whisper", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"whisper_hash": "h"})
	})
	mux.HandleFunc("/whisper-status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "processed"})
	})
	mux.HandleFunc("/whisper-retrieve", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"result_text": ""})
	})

	c, _ := newTestRemote(t, mux)

	_, err := c.Extract(context.Background(), Document{Filename: "q.pdf", Data: []byte("pdf")})
	if err == nil {
		t.Fatal("expected error for empty result text")
	}
}

func TestRemoteClient_NoModesConfigured(t *testing.T) {
	c := &RemoteClient{}

	_, err := c.Extract(context.Background(), Document{Filename: "q.pdf", Data: []byte("pdf")})
	if err == nil {
		t.Fatal("expected error with no modes")
	}
	if !strings.Contains(err.Error(), "no remote modes") {
		t.Errorf("err = %v", err)
	}
}
