package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/csheth/highlightchat/internal/answer"
)

func TestNewExchangeRendersSpans(t *testing.T) {
	t.Parallel()

	result := answer.Result{
		Answer: "X",
		Matches: []answer.Match{
			{ID: "1", Filename: "a.mp4", StartSec: 0, EndSec: 1.5, Summary: "s"},
			{ID: "2", Filename: "b.mp4", StartSec: 3600, EndSec: 3661.5},
		},
	}
	exchange := NewExchange("what happened?", 5, "http://localhost:8000/api/chat/ask", time.Now(), result)
	if len(exchange.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(exchange.Matches))
	}
	if exchange.Matches[0].Span != "00:00.000–00:01.500" {
		t.Fatalf("unexpected span: %q", exchange.Matches[0].Span)
	}
	if exchange.Matches[1].Label != "(no summary)" {
		t.Fatalf("unexpected label: %q", exchange.Matches[1].Label)
	}
}

func TestAppendAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "transcript.json")
	first := NewExchange("q1", 5, "", time.Now(), answer.Result{Answer: "a1"})
	second := NewExchange("q2", 3, "", time.Now(), answer.Result{Answer: "a2"})

	if err := Append(path, first); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := Append(path, second); err != nil {
		t.Fatalf("second Append() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 exchanges, got %d", len(got))
	}
	if got[0].Query != "q1" || got[1].Answer != "a2" {
		t.Fatalf("unexpected exchanges: %#v", got)
	}
	if got[0].ExportedAt.IsZero() {
		t.Fatal("export timestamp not recorded")
	}
}

func TestAppendPreservesForeignEntries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kb.json")
	if err := os.WriteFile(path, []byte(`[{"entryType":"note","title":"keep me"}]`), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := Append(path, NewExchange("q", 5, "", time.Now(), answer.Result{})); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "keep me") {
		t.Fatalf("foreign entry dropped: %s", data)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected only exchange entries, got %d", len(got))
	}
}

func TestAppendWithoutPathIsNoop(t *testing.T) {
	t.Parallel()

	if err := Append("", NewExchange("q", 5, "", time.Now(), answer.Result{})); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
