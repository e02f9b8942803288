package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/highlightchat/internal/answer"
	"github.com/csheth/highlightchat/internal/transcript"
)

const (
	askTimeout    = 90 * time.Second
	healthTimeout = 5 * time.Second
)

type healthResultMsg struct {
	err error
}

type exportResultMsg struct {
	path  string
	count int
	err   error
}

func askJob(seq uint64, client answer.Client, query string, topK int) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, askTimeout)
		defer cancel()
		result, err := client.Ask(ctx, query, topK)
		return askResultMsg{seq: seq, result: result, err: err}, err
	}
}

func healthJob(client answer.Client) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		ctx, cancel := context.WithTimeout(parent, healthTimeout)
		defer cancel()
		err := client.Health(ctx)
		return healthResultMsg{err: err}, err
	}
}

func exportJob(path string, exchange transcript.Exchange) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		if err := transcript.Append(path, exchange); err != nil {
			return exportResultMsg{path: path, err: err}, err
		}
		return exportResultMsg{path: path, count: 1}, nil
	}
}
