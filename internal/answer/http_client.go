package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
)

const maxErrorBody = 512

type httpClient struct {
	base   string
	origin string
	client *http.Client
}

func (c *httpClient) Endpoint() string {
	return c.base + "/chat/ask"
}

func (c *httpClient) Ask(ctx context.Context, query string, topK int) (Result, error) {
	if strings.TrimSpace(query) == "" {
		return Result{}, fmt.Errorf("query cannot be empty")
	}
	buf, err := json.Marshal(Request{Query: query, TopK: topK})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(buf))
	if err != nil {
		return Result{}, &TransportError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, &TransportError{Op: "post " + c.Endpoint(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Printf("[answer] ask failed: %s (%s)", resp.Status, strings.TrimSpace(string(body)))
		return Result{}, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, &TransportError{Op: "read response", Err: err}
	}
	var parsed Result
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Result{}, &TransportError{Op: "decode response", Err: err}
	}
	if parsed.Matches == nil {
		parsed.Matches = []Match{}
	}
	return parsed, nil
}

func (c *httpClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.origin+"/health", nil)
	if err != nil {
		return &TransportError{Op: "build request", Err: err}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Op: "health check", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}
	var parsed struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return &TransportError{Op: "decode health", Err: err}
	}
	if parsed.Status != "ok" {
		return fmt.Errorf("service reported status %q", parsed.Status)
	}
	return nil
}
