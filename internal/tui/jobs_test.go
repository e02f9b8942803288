package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/csheth/highlightchat/internal/answer"
)

func TestJobSnapshotFinish(t *testing.T) {
	t.Parallel()

	running := jobSnapshot{ID: "ask-3", Kind: jobKindAsk, Seq: 2, Status: jobStatusRunning, StartedAt: time.Now().Add(-time.Second)}

	done := running.finish(nil)
	if done.Status != jobStatusSucceeded || done.Err != "" {
		t.Fatalf("expected success, got %#v", done)
	}
	if done.Duration < time.Second || done.Seq != 2 {
		t.Fatalf("unexpected duration or seq: %#v", done)
	}

	failed := running.finish(errors.New("boom"))
	if failed.Status != jobStatusFailed || failed.Err != "boom" {
		t.Fatalf("expected failure, got %#v", failed)
	}
	if running.Status != jobStatusRunning {
		t.Fatal("finish must not mutate the running snapshot")
	}
	if failed.label() != "ask-3#2" {
		t.Fatalf("unexpected label %q", failed.label())
	}
}

func TestSupersededAskShowsInBadges(t *testing.T) {
	m := newTestModel(t, Config{Client: &fakeClient{}})

	m.Submit("slow question")
	slowSeq := m.seq
	m.Update(jobSignalMsg{Snapshot: jobSnapshot{ID: "ask-1", Kind: jobKindAsk, Seq: slowSeq, Status: jobStatusRunning}})
	if got := m.jobStatusBadges(); len(got) != 1 || got[0] != "ask-1…" {
		t.Fatalf("expected running badge, got %q", got)
	}

	m.Submit("fast question")
	if got := m.jobStatusBadges(); len(got) != 1 || got[0] != "ask-1 superseded" {
		t.Fatalf("new submission should supersede the running ask, got %q", got)
	}
	m.Update(jobSignalMsg{Snapshot: jobSnapshot{ID: "ask-2", Kind: jobKindAsk, Seq: m.seq, Status: jobStatusRunning}})

	m.Update(jobResultEnvelope{
		Snapshot: jobSnapshot{ID: "ask-2", Kind: jobKindAsk, Seq: m.seq, Status: jobStatusSucceeded, Duration: 40 * time.Millisecond},
		Payload:  askResultMsg{seq: m.seq, result: answer.Result{Answer: "fast"}},
	})
	m.Update(jobResultEnvelope{
		Snapshot: jobSnapshot{ID: "ask-1", Kind: jobKindAsk, Seq: slowSeq, Status: jobStatusSucceeded, Duration: 2 * time.Second},
		Payload:  askResultMsg{seq: slowSeq, result: answer.Result{Answer: "slow"}},
	})

	if m.answerText() != "fast" {
		t.Fatalf("superseded answer applied: %q", m.answerText())
	}
	got := m.jobStatusBadges()
	if len(got) != 2 || got[0] != "ask-1 superseded" || !strings.HasPrefix(got[1], "ask-2 ✓") {
		t.Fatalf("unexpected badges %q", got)
	}
}

func TestNonAskJobsAreNeverSuperseded(t *testing.T) {
	m := newTestModel(t, Config{Client: &fakeClient{}})
	m.Submit("first")
	m.Submit("second")

	m.Update(jobResultEnvelope{Snapshot: jobSnapshot{ID: "health-1", Kind: jobKindHealth, Status: jobStatusSucceeded}})
	if got := m.jobStatusBadges(); len(got) != 1 || !strings.HasPrefix(got[0], "health-1 ✓") {
		t.Fatalf("unexpected badges %q", got)
	}
}
