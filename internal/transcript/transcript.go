// Package transcript persists exported question/answer exchanges to a JSON file.
package transcript

import (
	"time"

	"github.com/csheth/highlightchat/internal/answer"
	"github.com/csheth/highlightchat/internal/timefmt"
)

// Exchange is one exported question together with the service's reply.
type Exchange struct {
	EntryType  string       `json:"entryType"`
	Query      string       `json:"query"`
	TopK       int          `json:"topK"`
	Endpoint   string       `json:"endpoint,omitempty"`
	Answer     string       `json:"answer,omitempty"`
	Matches    []MatchEntry `json:"matches,omitempty"`
	AskedAt    time.Time    `json:"askedAt"`
	ExportedAt time.Time    `json:"exportedAt"`
}

// MatchEntry mirrors answer.Match with pre-rendered timestamps for human readers.
type MatchEntry struct {
	ID       string  `json:"id"`
	Filename string  `json:"filename"`
	StartSec float64 `json:"startSec"`
	EndSec   float64 `json:"endSec"`
	Span     string  `json:"span"`
	Label    string  `json:"label"`
}

// NewExchange snapshots a successful result.
func NewExchange(query string, topK int, endpoint string, askedAt time.Time, result answer.Result) Exchange {
	matches := make([]MatchEntry, 0, len(result.Matches))
	for _, m := range result.Matches {
		matches = append(matches, MatchEntry{
			ID:       string(m.ID),
			Filename: m.Filename,
			StartSec: m.StartSec,
			EndSec:   m.EndSec,
			Span:     timefmt.Range(m.StartSec, m.EndSec),
			Label:    m.Label(),
		})
	}
	return Exchange{
		EntryType: entryTypeExchange,
		Query:     query,
		TopK:      topK,
		Endpoint:  endpoint,
		Answer:    result.Answer,
		Matches:   matches,
		AskedAt:   askedAt,
	}
}
