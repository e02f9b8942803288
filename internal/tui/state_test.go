package tui

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/csheth/highlightchat/internal/answer"
)

func TestResolveAsk(t *testing.T) {
	t.Parallel()

	loading := Loading{Seq: 3, Query: "q", StartedAt: time.Unix(100, 0)}
	tests := []struct {
		name    string
		msg     askResultMsg
		wantErr string
		wantLen int
	}{
		{name: "success", msg: askResultMsg{seq: 3, result: answer.Result{Answer: "a", Matches: []answer.Match{{ID: "1"}}}}, wantLen: 1},
		{name: "nil matches", msg: askResultMsg{seq: 3, result: answer.Result{Answer: "a"}}},
		{name: "http", msg: askResultMsg{seq: 3, err: &answer.HTTPError{StatusCode: 500}}, wantErr: "HTTP 500"},
		{name: "not found hints at base", msg: askResultMsg{seq: 3, err: &answer.HTTPError{StatusCode: 404}}, wantErr: "HTTP 404 (no /chat/ask at this base; try -api-url http://localhost:8000)"},
		{name: "wrapped http", msg: askResultMsg{seq: 3, err: fmt.Errorf("ask: %w", &answer.HTTPError{StatusCode: 503})}, wantErr: "HTTP 503"},
		{name: "transport", msg: askResultMsg{seq: 3, err: errors.New("connection refused")}, wantErr: "connection refused"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			next := resolveAsk(loading, tt.msg)
			if tt.wantErr != "" {
				failed, ok := next.(Failed)
				if !ok {
					t.Fatalf("expected Failed, got %T", next)
				}
				if failed.Message != tt.wantErr {
					t.Fatalf("message mismatch: got %q want %q", failed.Message, tt.wantErr)
				}
				return
			}
			done, ok := next.(Succeeded)
			if !ok {
				t.Fatalf("expected Succeeded, got %T", next)
			}
			if done.Result.Matches == nil {
				t.Fatal("matches should never be nil after success")
			}
			if len(done.Result.Matches) != tt.wantLen {
				t.Fatalf("match count: got %d want %d", len(done.Result.Matches), tt.wantLen)
			}
			if !done.AskedAt.Equal(loading.StartedAt) || done.Query != "q" {
				t.Fatalf("loading context not carried over: %#v", done)
			}
		})
	}
}
