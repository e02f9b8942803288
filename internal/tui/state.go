package tui

import (
	"errors"
	"net/http"
	"time"

	"github.com/csheth/highlightchat/internal/answer"
)

// RequestState is the lifecycle of the most recent submission. Exactly one of
// Idle, Loading, Succeeded or Failed is held at a time, so an error and an
// answer can never be shown together.
type RequestState interface {
	requestState()
}

// Idle means nothing has been asked yet.
type Idle struct{}

// Loading marks an in-flight submission.
type Loading struct {
	Seq       uint64
	Query     string
	StartedAt time.Time
}

// Succeeded holds the last answer and its matches.
type Succeeded struct {
	Query   string
	AskedAt time.Time
	Result  answer.Result
}

// Failed holds a one-line description of what went wrong.
type Failed struct {
	Query   string
	Message string
}

func (Idle) requestState()      {}
func (Loading) requestState()   {}
func (Succeeded) requestState() {}
func (Failed) requestState()    {}

// askResultMsg carries the outcome of an ask job back to the UI loop.
type askResultMsg struct {
	seq    uint64
	result answer.Result
	err    error
}

// resolveAsk folds a finished ask into the next state.
func resolveAsk(current Loading, msg askResultMsg) RequestState {
	if msg.err != nil {
		return Failed{Query: current.Query, Message: failureMessage(msg.err)}
	}
	result := msg.result
	if result.Matches == nil {
		result.Matches = []answer.Match{}
	}
	return Succeeded{Query: current.Query, AskedAt: current.StartedAt, Result: result}
}

// notFoundHint follows a 404, which usually means the /api prefix is wrong for
// a service that mounts /chat at its root.
const notFoundHint = "(no /chat/ask at this base; try -api-url http://localhost:8000)"

// failureMessage keeps HTTP failures to their status code and passes other
// errors through verbatim.
func failureMessage(err error) string {
	var httpErr *answer.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.StatusCode == http.StatusNotFound {
			return httpErr.Error() + " " + notFoundHint
		}
		return httpErr.Error()
	}
	return err.Error()
}
