// Package tuitest drives the compiled highlightchat binary inside a pseudo
// terminal and captures what it draws.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

const (
	defaultCols    = 100
	defaultRows    = 30
	defaultTimeout = 8 * time.Second
)

// Step is one scripted interaction. Delay elapses before Input is written.
type Step struct {
	Delay time.Duration
	Input []byte
}

// Type returns a step that writes text as if typed.
func Type(text string) Step {
	return Step{Input: []byte(text)}
}

// Pause returns a step that only waits.
func Pause(d time.Duration) Step {
	return Step{Delay: d}
}

// Config describes the program under test and the script replayed against it.
type Config struct {
	Command        []string
	Dir            string
	Env            []string
	Cols           int
	Rows           int
	Steps          []Step
	Timeout        time.Duration
	AllowInterrupt bool
}

// Recording is the raw terminal stream plus the frames parsed out of it.
type Recording struct {
	Raw      []byte
	Frames   []Frame
	Duration time.Duration
}

// ptyOutput collects everything the program writes while answering terminal queries.
type ptyOutput struct {
	mu        sync.Mutex
	buf       bytes.Buffer
	responder *terminalResponder
}

func (o *ptyOutput) write(chunk []byte) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.responder.Process(chunk)
	o.buf.Write(chunk)
}

func (o *ptyOutput) bytes() []byte {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]byte(nil), o.buf.Bytes()...)
}

// Run starts cfg.Command on a PTY, replays the steps and waits for exit.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	cols, rows := cfg.Cols, cfg.Rows
	if cols <= 0 {
		cols = defaultCols
	}
	if rows <= 0 {
		rows = defaultRows
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = withTerm(append(os.Environ(), cfg.Env...))

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	out := &ptyOutput{responder: newTerminalResponder(ptmx)}
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		chunk := make([]byte, 4096)
		for {
			n, readErr := ptmx.Read(chunk)
			if n > 0 {
				out.write(chunk[:n])
			}
			if readErr != nil {
				return
			}
		}
	}()

	start := time.Now()
	for _, step := range cfg.Steps {
		if step.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("tuitest: script interrupted: %w", ctx.Err())
			case <-time.After(step.Delay):
			}
		}
		if len(step.Input) == 0 {
			continue
		}
		if _, err := ptmx.Write(step.Input); err != nil {
			return nil, fmt.Errorf("tuitest: write input: %w", err)
		}
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()

	select {
	case err := <-exited:
		if err != nil && !(cfg.AllowInterrupt && isInterrupt(err)) {
			return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
	}

	_ = ptmx.Close()
	<-drained

	raw := out.bytes()
	return &Recording{Raw: raw, Frames: parseFrames(raw), Duration: time.Since(start)}, nil
}

func isInterrupt(err error) bool {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 130 {
		return true
	}
	return strings.Contains(err.Error(), "signal: interrupt")
}

func withTerm(env []string) []string {
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

var (
	// KeyEnter submits the current input.
	KeyEnter = []byte{'\r'}
	// KeyCtrlC quits the program.
	KeyCtrlC = []byte{3}
	// KeyEsc clears the input.
	KeyEsc = []byte{27}
)
