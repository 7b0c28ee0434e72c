package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pvanrooyen/quotecomp/internal/catalog"
	"github.com/pvanrooyen/quotecomp/internal/config"
	"github.com/pvanrooyen/quotecomp/internal/quote"
	"github.com/pvanrooyen/quotecomp/internal/textract"
)

func testServer(apiKey string) *Server {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		Port:           "0",
		APIKey:         apiKey,
		WorkerCount:    2,
		MaxUploadBytes: 1 << 20,
	}
	processor := quote.NewProcessor(textract.NewPipeline(nil, log), catalog.Default(), cfg.WorkerCount, log)
	return NewServer(processor, log, cfg)
}

func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, data := range files {
		fw, err := w.CreateFormFile("files", name)
		if err != nil {
			t.Fatal(err)
		}
		fw.Write(data)
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestHealth(t *testing.T) {
	srv := testServer("")
	rr := httptest.NewRecorder()

	srv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestCompare_ReturnsRecordPerFile(t *testing.T) {
	quoteText := []byte(`COMMERCIAL INSURANCE QUOTE

Client: Endpoint Test Customer (Pty) Ltd
Fire Cover Premium: R450.00
Total premium: R2,500.00
`)
	body, contentType := multipartBody(t, map[string][]byte{"quote_a.txt": quoteText})

	req := httptest.NewRequest(http.MethodPost, "/api/compare", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	testServer("").ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		Quotes []json.RawMessage `json:"quotes"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Quotes) != 1 {
		t.Fatalf("quotes = %d", len(resp.Quotes))
	}
}

func TestCompare_RejectsUnsupportedType(t *testing.T) {
	body, contentType := multipartBody(t, map[string][]byte{"virus.exe": []byte("nope")})

	req := httptest.NewRequest(http.MethodPost, "/api/compare", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	testServer("").ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestCompare_NoFiles(t *testing.T) {
	body, contentType := multipartBody(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/compare", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	testServer("").ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestAuth_RejectionIsJSON(t *testing.T) {
	srv := testServer("secret")
	body, contentType := multipartBody(t, map[string][]byte{"q.txt": []byte("text")})

	req := httptest.NewRequest(http.MethodPost, "/api/compare", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer wrong-key")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("rejection body is not JSON: %v", err)
	}
	if resp["error"] != "invalid api key" {
		t.Errorf("error = %q", resp["error"])
	}
}

func TestCompare_AuthRequired(t *testing.T) {
	srv := testServer("secret")
	body, contentType := multipartBody(t, map[string][]byte{"q.txt": []byte("text")})

	req := httptest.NewRequest(http.MethodPost, "/api/compare", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated status = %d", rr.Code)
	}

	body, contentType = multipartBody(t, map[string][]byte{"q.txt": []byte("enough text to make the upload worthwhile for extraction purposes here")})
	req = httptest.NewRequest(http.MethodPost, "/api/compare", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer secret")
	rr = httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("authenticated status = %d, body %s", rr.Code, rr.Body.String())
	}
}
