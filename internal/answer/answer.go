// Package answer talks to the Video Highlight Chat service: it submits questions
// and decodes the answer plus the matched highlight segments.
package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "/api"
	DefaultOrigin  = "http://localhost:8000"
	DefaultTopK    = 5

	// Limits enforced by the service's request validation.
	MinTopK        = 1
	MaxTopK        = 20
	MaxQueryLength = 2000
)

const defaultHTTPTimeout = 60 * time.Second

// Config describes how to reach the answer service.
type Config struct {
	// BaseURL is the API root; relative values are resolved against Origin.
	BaseURL    string
	Origin     string
	TopK       int
	HTTPClient *http.Client
}

// Client exposes the service operations used by the query panel.
type Client interface {
	Ask(ctx context.Context, query string, topK int) (Result, error)
	Health(ctx context.Context) error
	Endpoint() string
}

// Request is the JSON body posted to /chat/ask.
type Request struct {
	Query string `json:"query"`
	TopK  int    `json:"top_k"`
}

// Result is one answer plus its ranked matches.
type Result struct {
	Answer  string  `json:"answer"`
	Matches []Match `json:"matches"`
}

// Match is one highlight segment returned by the service.
type Match struct {
	ID          MatchID `json:"id"`
	VideoID     string  `json:"video_id,omitempty"`
	Filename    string  `json:"filename"`
	StartSec    float64 `json:"start_sec"`
	EndSec      float64 `json:"end_sec"`
	Summary     string  `json:"summary,omitempty"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Label picks the text shown next to a match.
func (m Match) Label() string {
	for _, candidate := range []string{m.Summary, m.Title, m.Description} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return "(no summary)"
}

// MatchID holds the service's identifier for a match. Strings and numbers keep
// their textual form; any other JSON value is kept as its compacted source.
type MatchID string

func (id *MatchID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	switch {
	case trimmed == "null":
		*id = ""
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = MatchID(s)
	case strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "["):
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return fmt.Errorf("match id: %w", err)
		}
		*id = MatchID(buf.String())
	default:
		// numbers and booleans
		*id = MatchID(trimmed)
	}
	return nil
}

// NewFromEnv builds a client from explicit config, falling back to environment variables.
func NewFromEnv(cfg Config) (Client, error) {
	base := firstNonEmpty(cfg.BaseURL, os.Getenv("HIGHLIGHT_API_URL"), os.Getenv("VITE_API_URL"), DefaultBaseURL)
	origin := firstNonEmpty(cfg.Origin, os.Getenv("HIGHLIGHT_API_ORIGIN"), DefaultOrigin)
	endpoint, err := resolveBase(base, origin)
	if err != nil {
		return nil, err
	}
	originURL, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	originURL.Path = ""
	originURL.RawQuery = ""
	return &httpClient{
		base:   endpoint,
		origin: strings.TrimRight(originURL.String(), "/"),
		client: pickHTTPClient(cfg.HTTPClient),
	}, nil
}

// TopKFromEnv returns the configured result limit clamped to the service range.
func TopKFromEnv(flagValue int) int {
	topK := flagValue
	if topK == 0 {
		if env := os.Getenv("HIGHLIGHT_TOP_K"); env != "" {
			if parsed, err := strconv.Atoi(strings.TrimSpace(env)); err == nil {
				topK = parsed
			}
		}
	}
	if topK == 0 {
		topK = DefaultTopK
	}
	return ClampTopK(topK)
}

// ClampTopK bounds a result limit to what the service accepts.
func ClampTopK(topK int) int {
	if topK < MinTopK {
		return MinTopK
	}
	if topK > MaxTopK {
		return MaxTopK
	}
	return topK
}

func resolveBase(base, origin string) (string, error) {
	base = strings.TrimSpace(base)
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid api base %q: %w", base, err)
	}
	if parsed.IsAbs() {
		return strings.TrimRight(parsed.String(), "/"), nil
	}
	root, err := url.Parse(strings.TrimSpace(origin))
	if err != nil || !root.IsAbs() {
		return "", fmt.Errorf("relative api base %q needs an absolute origin, got %q", base, origin)
	}
	return strings.TrimRight(root.ResolveReference(parsed).String(), "/"), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	// Keyword and vector search both run per request; the caller's context bounds the wait.
	return &http.Client{Timeout: defaultHTTPTimeout}
}
