package tuitest

import (
	"bytes"
	"io"
)

// queryReplies answers the capability queries termenv and bubbletea send at
// startup; without replies they wait for a timeout before drawing.
var queryReplies = []struct {
	query []byte
	reply []byte
}{
	{[]byte("\x1b[6n"), []byte("\x1b[1;1R")},
	{[]byte("\x1b]10;?\x07"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{[]byte("\x1b]10;?\x1b\\"), []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{[]byte("\x1b]11;?\x07"), []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{[]byte("\x1b]11;?\x1b\\"), []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

type terminalResponder struct {
	w    io.Writer
	tail []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, tail: make([]byte, 0, 128)}
}

// Process scans a chunk of program output for terminal queries. A short tail is kept so
// queries split across reads are still seen.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.tail = append(tr.tail, chunk...)
	for tr.answerOne() {
	}
	if len(tr.tail) > 256 {
		tr.tail = append(tr.tail[:0], tr.tail[len(tr.tail)-64:]...)
	}
}

func (tr *terminalResponder) answerOne() bool {
	for _, q := range queryReplies {
		idx := bytes.Index(tr.tail, q.query)
		if idx < 0 {
			continue
		}
		tr.tail = tr.tail[idx+len(q.query):]
		_, _ = tr.w.Write(q.reply)
		return true
	}
	return false
}
