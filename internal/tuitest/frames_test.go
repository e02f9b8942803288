package tuitest

import "testing"

func TestParseFramesSplitsOnClear(t *testing.T) {
	t.Parallel()

	raw := []byte("\x1b[2J\x1b[Hfirst   \r\n\x1b[2J\x1b[H\x1b[1mVideo\x1b[0m Highlight Chat\r\n\r\n")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d: %#v", len(frames), frames)
	}
	rec := &Recording{Raw: raw, Frames: frames}
	final, ok := rec.FinalFrame()
	if !ok {
		t.Fatal("expected final frame")
	}
	if final.Plain != "Video Highlight Chat" {
		t.Fatalf("unexpected plain frame %q", final.Plain)
	}
	if frames[0].Plain != "first" {
		t.Fatalf("trailing spaces not trimmed: %q", frames[0].Plain)
	}
}

type captureWriter struct{ data []byte }

func (c *captureWriter) Write(p []byte) (int, error) {
	c.data = append(c.data, p...)
	return len(p), nil
}

func TestTerminalResponderAnswersSplitQuery(t *testing.T) {
	t.Parallel()

	w := &captureWriter{}
	tr := newTerminalResponder(w)
	tr.Process([]byte("junk\x1b["))
	tr.Process([]byte("6n more"))
	if string(w.data) != "\x1b[1;1R" {
		t.Fatalf("unexpected reply %q", w.data)
	}
}
