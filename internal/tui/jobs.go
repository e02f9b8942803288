package tui

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type jobKind string

type jobStatus string

const (
	jobKindAsk    jobKind = "ask"
	jobKindHealth jobKind = "health"
	jobKindExport jobKind = "export"
)

const (
	jobStatusRunning    jobStatus = "running"
	jobStatusSucceeded  jobStatus = "succeeded"
	jobStatusFailed     jobStatus = "failed"
	jobStatusSuperseded jobStatus = "superseded"
)

const maxTrackedJobs = 4

type jobSnapshot struct {
	ID   string
	Kind jobKind
	// Seq is the request sequence an ask job answers; zero for other kinds.
	Seq         uint64
	Status      jobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Err         string
	Duration    time.Duration
}

// finish stamps the outcome of a run onto a copy of the running snapshot.
func (s jobSnapshot) finish(err error) jobSnapshot {
	s.CompletedAt = time.Now()
	s.Duration = s.CompletedAt.Sub(s.StartedAt)
	s.Status = jobStatusSucceeded
	if err != nil {
		s.Status = jobStatusFailed
		s.Err = err.Error()
	}
	return s
}

func (s jobSnapshot) label() string {
	if s.Seq == 0 {
		return s.ID
	}
	return fmt.Sprintf("%s#%d", s.ID, s.Seq)
}

type jobSignalMsg struct {
	Snapshot jobSnapshot
}

type jobResultEnvelope struct {
	Snapshot jobSnapshot
	Payload  tea.Msg
}

type jobRunner func(context.Context) (tea.Msg, error)

type jobBus struct {
	counter int64
}

func newJobBus() *jobBus {
	return &jobBus{}
}

func (b *jobBus) nextID(kind jobKind) string {
	idx := atomic.AddInt64(&b.counter, 1)
	return fmt.Sprintf("%s-%d", kind, idx)
}

// Start runs a background job. seq ties an ask job to the submission it
// answers so the panel can tell a superseded ask from the live one; pass zero
// for jobs that are not tied to a submission.
func (b *jobBus) Start(kind jobKind, seq uint64, runner jobRunner) tea.Cmd {
	running := jobSnapshot{
		ID:        b.nextID(kind),
		Kind:      kind,
		Seq:       seq,
		Status:    jobStatusRunning,
		StartedAt: time.Now(),
	}
	announce := func() tea.Msg {
		return jobSignalMsg{Snapshot: running}
	}
	run := func() tea.Msg {
		payload, err := runner(context.Background())
		done := running.finish(err)
		log.Printf("[jobs] %s %s (duration=%s, err=%v)", done.label(), done.Status, done.Duration, err)
		return jobResultEnvelope{Snapshot: done, Payload: payload}
	}
	return tea.Sequence(announce, run)
}

// trackJob records the latest snapshot per job, keeping only the most recent
// few. An ask snapshot from an older submission is shown as superseded
// whatever its own outcome was, since its answer is never displayed.
func (m *model) trackJob(snapshot jobSnapshot) {
	if m.supersedes(snapshot) {
		snapshot.Status = jobStatusSuperseded
	}
	for i := range m.jobs {
		if m.jobs[i].ID == snapshot.ID {
			m.jobs[i] = snapshot
			return
		}
	}
	m.jobs = append(m.jobs, snapshot)
	if len(m.jobs) > maxTrackedJobs {
		m.jobs = m.jobs[len(m.jobs)-maxTrackedJobs:]
	}
}

// supersedeAsks marks every tracked ask older than the current submission.
func (m *model) supersedeAsks() {
	for i := range m.jobs {
		if m.supersedes(m.jobs[i]) {
			m.jobs[i].Status = jobStatusSuperseded
		}
	}
}

func (m *model) supersedes(snapshot jobSnapshot) bool {
	return snapshot.Kind == jobKindAsk && snapshot.Seq != 0 && snapshot.Seq < m.seq
}

func (m *model) jobStatusBadges() []string {
	badges := make([]string, 0, len(m.jobs))
	for _, job := range m.jobs {
		switch job.Status {
		case jobStatusRunning:
			badges = append(badges, fmt.Sprintf("%s…", job.ID))
		case jobStatusSucceeded:
			badges = append(badges, fmt.Sprintf("%s ✓ %s", job.ID, job.Duration.Round(time.Millisecond)))
		case jobStatusFailed:
			badges = append(badges, fmt.Sprintf("%s ✗", job.ID))
		case jobStatusSuperseded:
			badges = append(badges, fmt.Sprintf("%s superseded", job.ID))
		}
	}
	return badges
}
