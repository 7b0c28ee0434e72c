package textract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultModes is the fixed quality-mode cascade, highest fidelity
// first. Each mode is a fresh upload; a mode that fails or times out is
// abandoned, never retried.
var DefaultModes = []string{"high_quality", "low_cost", "form", "native_text"}

// RemoteClient extracts text through a hosted document-layout service
// (LLMWhisperer-style three-step protocol: upload, poll, retrieve).
type RemoteClient struct {
	baseURL     string
	apiKey      string
	modes       []string
	modeTimeout time.Duration
	pollEvery   time.Duration
	httpClient  *http.Client
}

// NewRemoteClient builds a client for the layout extraction service.
// modeTimeout bounds each quality-mode attempt end to end.
func NewRemoteClient(baseURL, apiKey string, modes []string, modeTimeout time.Duration) *RemoteClient {
	if len(modes) == 0 {
		modes = DefaultModes
	}
	if modeTimeout <= 0 {
		modeTimeout = 120 * time.Second
	}
	return &RemoteClient{
		baseURL:     baseURL,
		apiKey:      apiKey,
		modes:       modes,
		modeTimeout: modeTimeout,
		pollEvery:   2 * time.Second,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *RemoteClient) Name() string { return "remote" }

// Extract tries each quality mode in order and returns the first mode
// that yields text.
func (c *RemoteClient) Extract(ctx context.Context, doc Document) (Result, error) {
	if len(c.modes) == 0 {
		return Result{}, fmt.Errorf("no remote modes configured")
	}
	var lastErr error
	for _, mode := range c.modes {
		text, err := c.extractMode(ctx, doc, mode)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		return Result{Text: text, Backend: "remote", Mode: mode}, nil
	}
	return Result{}, fmt.Errorf("all remote modes failed: %w", lastErr)
}

type whisperResponse struct {
	WhisperHash string `json:"whisper_hash"`
	Status      string `json:"status"`
}

type statusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

type retrieveResponse struct {
	ResultText string `json:"result_text"`
}

func (c *RemoteClient) extractMode(ctx context.Context, doc Document, mode string) (string, error) {
	modeCtx, cancel := context.WithTimeout(ctx, c.modeTimeout)
	defer cancel()

	hash, err := c.upload(modeCtx, doc, mode)
	if err != nil {
		return "", fmt.Errorf("mode %s: upload: %w", mode, err)
	}

	if err := c.waitProcessed(modeCtx, hash); err != nil {
		return "", fmt.Errorf("mode %s: %w", mode, err)
	}

	text, err := c.retrieve(modeCtx, hash)
	if err != nil {
		return "", fmt.Errorf("mode %s: retrieve: %w", mode, err)
	}
	if text == "" {
		return "", fmt.Errorf("mode %s: empty result", mode)
	}
	return text, nil
}

func (c *RemoteClient) upload(ctx context.Context, doc Document, mode string) (string, error) {
	q := url.Values{}
	q.Set("mode", mode)
	q.Set("output_mode", "layout_preserving")
	q.Set("file_name", doc.Filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/whisper?"+q.Encode(), bytes.NewReader(doc.Data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("unstract-key", c.apiKey)

	var wr whisperResponse
	if err := c.doJSON(req, &wr); err != nil {
		return "", err
	}
	if wr.WhisperHash == "" {
		return "", fmt.Errorf("no whisper_hash in response")
	}
	return wr.WhisperHash, nil
}

func (c *RemoteClient) waitProcessed(ctx context.Context, hash string) error {
	ticker := time.NewTicker(c.pollEvery)
	defer ticker.Stop()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			c.baseURL+"/whisper-status?whisper_hash="+url.QueryEscape(hash), nil)
		if err != nil {
			return err
		}
		req.Header.Set("unstract-key", c.apiKey)

		var sr statusResponse
		if err := c.doJSON(req, &sr); err != nil {
			return fmt.Errorf("status poll: %w", err)
		}

		switch sr.Status {
		case "processed":
			return nil
		case "error":
			return fmt.Errorf("remote processing failed: %s", sr.Error)
		case "processing", "queued":
			// keep polling
		default:
			return fmt.Errorf("unexpected status %q", sr.Status)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("processing timeout: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func (c *RemoteClient) retrieve(ctx context.Context, hash string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/whisper-retrieve?whisper_hash="+url.QueryEscape(hash), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("unstract-key", c.apiKey)

	var rr retrieveResponse
	if err := c.doJSON(req, &rr); err != nil {
		return "", err
	}
	return rr.ResultText, nil
}

func (c *RemoteClient) doJSON(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("remote service status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
